package logic

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/redis/redistest"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/chess"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message/moverecord"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/config"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/svc"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/types"
)

type fakeRecorder struct {
	lock   sync.Mutex
	starts []*moverecord.GameStartRecode
	moves  []*moverecord.MoveRecode
	ends   []*moverecord.GameEndRecode
}

func (r *fakeRecorder) RecordStart(recode *moverecord.GameStartRecode) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.starts = append(r.starts, recode)
}

func (r *fakeRecorder) RecordMove(recode *moverecord.MoveRecode) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.moves = append(r.moves, recode)
}

func (r *fakeRecorder) RecordEnd(recode *moverecord.GameEndRecode) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ends = append(r.ends, recode)
}

func newTestContext(t *testing.T) (*svc.ServiceContext, *fakeRecorder) {
	t.Helper()

	var c config.Config
	c.Game.MaxBoardSize = 15
	c.Game.SessionExpire = 60
	c.Game.LockExpire = 5
	c.Game.LockTimeout = time.Second
	c.Game.SearchTimeout = 5 * time.Second
	c.Analysis.PushInterval = 10 * time.Millisecond
	c.Analysis.ResultExpire = 60

	recorder := &fakeRecorder{}
	svcCtx := svc.NewServiceContextWith(c, redistest.CreateRedis(t), recorder)
	t.Cleanup(svcCtx.Stop)
	return svcCtx, recorder
}

// storeGame saves a human-vs-AI game after playing moves in order.
func storeGame(t *testing.T, svcCtx *svc.ServiceContext, size int, first chess.Cell, moves ...chess.Move) message.GameUid {
	t.Helper()

	g, err := chess.NewGame(size, first)
	require.NoError(t, err)
	for _, m := range moves {
		require.NoError(t, g.Add(m))
	}

	s := message.GameSession{GameUid: message.NewGameUid(), AIPlayer: chess.Player2, Game: g}
	require.NoError(t, saveSession(context.Background(), svcCtx, &s))
	return s.GameUid
}

func TestCreateGame(t *testing.T) {
	svcCtx, recorder := newTestContext(t)
	ctx := context.Background()

	for _, size := range []int{0, 2, 16} {
		_, err := NewCreateGameLogic(ctx, svcCtx).CreateGame(&types.CreateGameRequest{BoardSize: size})
		assert.ErrorIs(t, err, BoardSizeOutOfRangeErr, "size %d", size)
	}

	view, err := NewCreateGameLogic(ctx, svcCtx).CreateGame(&types.CreateGameRequest{BoardSize: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, view.BoardSize)
	assert.Equal(t, 5, view.WinLength)
	assert.Equal(t, int(chess.Player1), view.NowPlayer)
	assert.Equal(t, string(chess.Running), view.Status)
	assert.Zero(t, view.Steps)
	assert.Nil(t, view.LastMove)
	assert.Nil(t, view.AIMove)

	stored, err := NewGetGameLogic(ctx, svcCtx).GetGame(message.GameUid(view.GameUid))
	require.NoError(t, err)
	assert.Equal(t, view.Board, stored.Board)
	assert.Len(t, recorder.starts, 1)
}

func TestCreateGameAIFirst(t *testing.T) {
	svcCtx, recorder := newTestContext(t)

	view, err := NewCreateGameLogic(context.Background(), svcCtx).CreateGame(&types.CreateGameRequest{BoardSize: 7, AIFirst: true})
	require.NoError(t, err)
	require.NotNil(t, view.AIMove)
	assert.Equal(t, chess.NewMove(3, 3), view.AIMove.Move)
	assert.Equal(t, int(chess.Player2), view.Board[3][3])
	assert.Equal(t, int(chess.Player1), view.NowPlayer)
	assert.Equal(t, 1, view.Steps)
	require.Len(t, recorder.moves, 1)
	assert.Equal(t, chess.Player2.String(), recorder.moves[0].Player)
}

func TestGetGameNotFound(t *testing.T) {
	svcCtx, _ := newTestContext(t)
	_, err := NewGetGameLogic(context.Background(), svcCtx).GetGame(message.NewGameUid())
	assert.ErrorIs(t, err, GameNotFoundErr)
}

func TestPlayMove(t *testing.T) {
	svcCtx, recorder := newTestContext(t)
	ctx := context.Background()
	uid := storeGame(t, svcCtx, 3, chess.Player1)

	view, err := NewPlayMoveLogic(ctx, svcCtx).PlayMove(uid, &types.MoveRequest{Row: 0, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, 2, view.Steps)
	assert.Equal(t, int(chess.Player1), view.Board[0][0])
	require.NotNil(t, view.AIMove)
	assert.Equal(t, int(chess.Player2), view.Board[view.AIMove.Move.Row][view.AIMove.Move.Col])
	assert.Equal(t, int(chess.Player1), view.NowPlayer)
	assert.Len(t, recorder.moves, 2)

	_, err = NewPlayMoveLogic(ctx, svcCtx).PlayMove(uid, &types.MoveRequest{Row: 0, Col: 0})
	assert.ErrorIs(t, err, chess.ErrOccupied)

	_, err = NewPlayMoveLogic(ctx, svcCtx).PlayMove(uid, &types.MoveRequest{Row: 3, Col: 0})
	assert.ErrorIs(t, err, chess.ErrOutOfRange)

	stored, err := NewGetGameLogic(ctx, svcCtx).GetGame(uid)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Steps, "rejected moves are not saved")
}

func TestPlayMoveWinAndRematch(t *testing.T) {
	svcCtx, recorder := newTestContext(t)
	ctx := context.Background()
	uid := storeGame(t, svcCtx, 3, chess.Player1,
		chess.NewMove(0, 0), chess.NewMove(2, 2),
		chess.NewMove(0, 1), chess.NewMove(2, 1),
	)

	view, err := NewPlayMoveLogic(ctx, svcCtx).PlayMove(uid, &types.MoveRequest{Row: 0, Col: 2})
	require.NoError(t, err)
	assert.Equal(t, string(chess.Player1Won), view.Status)
	assert.Equal(t, int(chess.Player1), view.Winner)
	assert.Nil(t, view.AIMove)
	require.Len(t, recorder.ends, 1)
	assert.Equal(t, string(chess.Player1Won), recorder.ends[0].Status)

	_, err = NewPlayMoveLogic(ctx, svcCtx).PlayMove(uid, &types.MoveRequest{Row: 1, Col: 1})
	assert.ErrorIs(t, err, chess.ErrGameOver)

	view, err = NewRematchLogic(ctx, svcCtx).Rematch(uid)
	require.NoError(t, err)
	assert.Equal(t, string(chess.Running), view.Status)
	assert.Zero(t, view.Steps)
	assert.Equal(t, int(chess.Player1), view.NowPlayer)
	assert.Len(t, recorder.starts, 1)
}

func TestPlayMoveNotYourTurn(t *testing.T) {
	svcCtx, _ := newTestContext(t)
	uid := storeGame(t, svcCtx, 3, chess.Player2)

	_, err := NewPlayMoveLogic(context.Background(), svcCtx).PlayMove(uid, &types.MoveRequest{Row: 1, Col: 1})
	assert.ErrorIs(t, err, NotYourTurnErr)
}

func firstEmpty(t *testing.T, board [][]int) *types.MoveRequest {
	t.Helper()
	for r, row := range board {
		for c, v := range row {
			if v == int(chess.Empty) {
				return &types.MoveRequest{Row: r, Col: c}
			}
		}
	}
	t.Fatal("board is full")
	return nil
}

func TestPlayMoveSlowerThanLockTimeout(t *testing.T) {
	svcCtx, _ := newTestContext(t)
	svcCtx.Config.Game.LockTimeout = 50 * time.Millisecond
	svcCtx.Config.Game.ThinkingDelay = 200 * time.Millisecond
	ctx := context.Background()
	uid := storeGame(t, svcCtx, 3, chess.Player1)

	view, err := NewPlayMoveLogic(ctx, svcCtx).PlayMove(uid, &types.MoveRequest{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, view.Steps)

	view, err = NewPlayMoveLogic(ctx, svcCtx).PlayMove(uid, firstEmpty(t, view.Board))
	require.NoError(t, err, "the lock is released after the acquire deadline")
	assert.Equal(t, 4, view.Steps)
}

func TestPlayMoveBlocksThreat(t *testing.T) {
	svcCtx, _ := newTestContext(t)
	uid := storeGame(t, svcCtx, 3, chess.Player1, chess.NewMove(0, 0), chess.NewMove(1, 1))

	view, err := NewPlayMoveLogic(context.Background(), svcCtx).PlayMove(uid, &types.MoveRequest{Row: 0, Col: 1})
	require.NoError(t, err)
	require.NotNil(t, view.AIMove)
	assert.Equal(t, chess.NewMove(0, 2), view.AIMove.Move)
	assert.Equal(t, "block", view.AIMove.Reason)
}

func TestPlayAIFallsBackWhenCancelled(t *testing.T) {
	svcCtx, recorder := newTestContext(t)

	g, err := chess.NewGame(3, chess.Player1)
	require.NoError(t, err)
	require.NoError(t, g.Add(chess.NewMove(1, 1)))
	s := message.GameSession{GameUid: message.NewGameUid(), AIPlayer: chess.Player2, Game: g}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	info, err := playAI(ctx, svcCtx, &s)
	require.NoError(t, err)
	assert.Equal(t, chess.NewMove(0, 0), info.Move)
	assert.Equal(t, fallbackReason, info.Reason)
	assert.Equal(t, chess.Player2, g.Board.At(0, 0))
	assert.Len(t, recorder.moves, 1)
}

func TestBestMove(t *testing.T) {
	svcCtx, _ := newTestContext(t)
	l := NewBestMoveLogic(context.Background(), svcCtx)

	for _, test := range []struct {
		name     string
		req      types.BoardRequest
		expected chess.Move
		reason   string
	}{
		{
			name:     "win",
			req:      types.BoardRequest{Board: [][]int{{1, 1, 0}, {2, 2, 0}, {0, 0, 0}}},
			expected: chess.NewMove(1, 2),
			reason:   "win",
		},
		{
			name:     "block",
			req:      types.BoardRequest{Board: [][]int{{1, 1, 0}, {2, 0, 0}, {0, 2, 0}}, Player: 2},
			expected: chess.NewMove(0, 2),
			reason:   "block",
		},
		{
			name:     "player one",
			req:      types.BoardRequest{Board: [][]int{{1, 1, 0}, {2, 2, 0}, {0, 0, 0}}, Player: 1},
			expected: chess.NewMove(0, 2),
			reason:   "win",
		},
		{
			name:     "full board",
			req:      types.BoardRequest{Board: [][]int{{1, 2, 1}, {1, 2, 2}, {2, 1, 1}}},
			expected: chess.NoMove,
			reason:   "no-move",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			info, err := l.BestMove(&test.req)
			require.NoError(t, err)
			assert.Equal(t, test.expected, info.Move)
			assert.Equal(t, test.reason, info.Reason)
		})
	}

	_, err := l.BestMove(&types.BoardRequest{Board: [][]int{{0, 0}, {0, 0}}})
	assert.ErrorIs(t, err, BoardSizeOutOfRangeErr)

	_, err = l.BestMove(&types.BoardRequest{Board: [][]int{{0, 0, 0}, {0, 0}, {0, 0, 0}}})
	assert.ErrorIs(t, err, InvalidBoardErr)

	_, err = l.BestMove(&types.BoardRequest{Board: [][]int{{0, 0, 0}, {0, 7, 0}, {0, 0, 0}}})
	assert.ErrorIs(t, err, InvalidBoardErr)

	_, err = l.BestMove(&types.BoardRequest{Board: [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, Player: 3})
	assert.ErrorIs(t, err, InvalidPlayerErr)
}

func TestBestMoveFallsBackWhenOutOfTime(t *testing.T) {
	svcCtx, _ := newTestContext(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	board := make([][]int, 11)
	for i := range board {
		board[i] = make([]int, 11)
	}
	board[5][5] = int(chess.Player1)

	info, err := NewBestMoveLogic(ctx, svcCtx).BestMove(&types.BoardRequest{Board: board})
	require.NoError(t, err)
	assert.Equal(t, chess.NewMove(0, 0), info.Move)
	assert.Equal(t, fallbackReason, info.Reason)
}

func TestAnalysis(t *testing.T) {
	svcCtx, _ := newTestContext(t)
	ctx := context.Background()
	l := NewAnalysisLogic(ctx, svcCtx)

	resp, err := l.PostAnalysis(&types.BoardRequest{Board: [][]int{{1, 1, 0}, {2, 0, 0}, {0, 2, 0}}})
	require.NoError(t, err)
	uid := message.GameUid(resp.Uid)

	pending, err := l.InquireAnalysis(uid)
	assert.ErrorIs(t, err, AnalysisPendingErr)
	assert.Equal(t, "pending", pending.Status)

	var queued []string
	assert.Eventually(t, func() bool {
		queued = queued[:0]
		for _, p := range message.RedisPartitions {
			items, err := svcCtx.RedisClient.Lrange(p.ListKey(), 0, -1)
			if err != nil {
				return false
			}
			queued = append(queued, items...)
		}
		return len(queued) == 1
	}, time.Second, 10*time.Millisecond)

	task, err := message.NewAnalysisTask(queued[0])
	require.NoError(t, err)
	assert.Equal(t, uid, task.Uid)
	assert.Equal(t, chess.Player2, task.Player)
	assert.Equal(t, chess.Player1, task.Board.At(0, 0))

	result := message.AnalysisResult{Uid: uid}
	result.Move, result.Reason = chess.NewMove(0, 2), "block"
	require.NoError(t, svcCtx.RedisClient.Setex(uid.ResultKey(), result.String(), 60))

	done, err := l.InquireAnalysis(uid)
	require.NoError(t, err)
	assert.Equal(t, "done", done.Status)
	require.NotNil(t, done.Result)
	assert.Equal(t, chess.NewMove(0, 2), done.Result.Move)

	_, err = l.InquireAnalysis(message.NewGameUid())
	assert.ErrorIs(t, err, AnalysisNotFoundErr)
}

func TestGetTopicMessageList(t *testing.T) {
	svcCtx, _ := newTestContext(t)
	first := message.RedisPartitions[0]
	_, err := svcCtx.RedisClient.Lpush(first.ListKey(), "a", "b", "c")
	require.NoError(t, err)

	lists, err := GetTopicMessageList(context.Background(), svcCtx, []string{"1", "2", "3", "4"})
	require.NoError(t, err)

	assert.NotContains(t, lists, first)
	for _, p := range message.RedisPartitions[1:] {
		assert.Len(t, lists[p], 1, "partition %d", p)
	}
}
