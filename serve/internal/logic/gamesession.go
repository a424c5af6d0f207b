package logic

import (
	"context"
	"fmt"
	"time"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/assess"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/chess"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/svc"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/types"
)

func checkBoardSize(svcCtx *svc.ServiceContext, boardSize int) error {
	maxSize := min(svcCtx.Config.Game.MaxBoardSize, assess.MaxBoardSize)
	if boardSize < chess.MinBoardSize || boardSize > maxSize {
		return fmt.Errorf("%w: %d not in [%d, %d]", BoardSizeOutOfRangeErr, boardSize, chess.MinBoardSize, maxSize)
	}
	return nil
}

func loadSession(ctx context.Context, svcCtx *svc.ServiceContext, uid message.GameUid) (s message.GameSession, err error) {
	str, err := svcCtx.RedisClient.GetCtx(ctx, uid.SessionKey())
	if err != nil {
		return s, err
	}

	if str == "" {
		return s, GameNotFoundErr
	}

	return message.NewGameSession(str)
}

func saveSession(ctx context.Context, svcCtx *svc.ServiceContext, s *message.GameSession) error {
	s.TimeStamp = message.NewTimeStamp(time.Now())
	return svcCtx.RedisClient.SetexCtx(ctx, s.GameUid.SessionKey(), s.String(), svcCtx.Config.Game.SessionExpire)
}

func newGameView(s message.GameSession, aiMove *types.SearchInfo) *types.GameView {
	g := s.Game
	view := &types.GameView{
		GameUid:   string(s.GameUid),
		BoardSize: g.Board.Size,
		WinLength: g.WinLength,
		Board:     g.Board.Rows(),
		NowPlayer: int(g.NowPlayer),
		AIPlayer:  int(s.AIPlayer),
		Status:    string(g.Status),
		Winner:    int(g.Winner),
		Steps:     g.StepCount(),
		AIMove:    aiMove,
	}

	if last := g.LastMove(); !last.IsNoMove() {
		view.LastMove = &last
	}

	return view
}

func newSearchInfo(res assess.Result) *types.SearchInfo {
	return &types.SearchInfo{
		Move:      res.Move,
		Reason:    string(res.Reason),
		Depth:     res.Depth,
		Score:     res.Score,
		Nodes:     res.Nodes,
		ElapsedMs: res.Elapsed.Milliseconds(),
	}
}
