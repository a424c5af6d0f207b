package logic

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/chess"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/svc"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/types"
)

type PlayMoveLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewPlayMoveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PlayMoveLogic {
	return &PlayMoveLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// PlayMove applies the human move and, if the game goes on, the AI reply.
// Both happen under the game lock so concurrent requests on one game are
// serialized.
func (l *PlayMoveLogic) PlayMove(uid message.GameUid, req *types.MoveRequest) (view *types.GameView, err error) {
	lockCtx, cancel := context.WithTimeout(l.ctx, l.svcCtx.Config.Game.LockTimeout)
	defer cancel()

	err = l.svcCtx.GameLock(uid).Do(lockCtx, func() error {
		s, err := loadSession(l.ctx, l.svcCtx, uid)
		if err != nil {
			return err
		}

		g := s.Game
		if g.Over() {
			return chess.ErrGameOver
		}

		if g.NowPlayer != s.HumanPlayer() {
			return NotYourTurnErr
		}

		if err = g.Add(chess.NewMove(req.Row, req.Col)); err != nil {
			return err
		}
		recordMove(l.svcCtx, s, s.HumanPlayer(), nil)

		var aiMove *types.SearchInfo
		if s.AITurn() {
			if err = l.think(); err != nil {
				return err
			}

			if aiMove, err = playAI(l.ctx, l.svcCtx, &s); err != nil {
				return err
			}
		}

		if err = saveSession(l.ctx, l.svcCtx, &s); err != nil {
			return err
		}

		view = newGameView(s, aiMove)
		return nil
	})

	return view, err
}

func (l *PlayMoveLogic) think() error {
	delay := l.svcCtx.Config.Game.ThinkingDelay
	if delay <= 0 {
		return nil
	}

	select {
	case <-l.ctx.Done():
		return l.ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
