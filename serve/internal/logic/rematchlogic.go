package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/svc"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/types"
)

type RematchLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewRematchLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RematchLogic {
	return &RematchLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Rematch clears the board of uid, keeping its size and first player.
func (l *RematchLogic) Rematch(uid message.GameUid) (view *types.GameView, err error) {
	lockCtx, cancel := context.WithTimeout(l.ctx, l.svcCtx.Config.Game.LockTimeout)
	defer cancel()

	err = l.svcCtx.GameLock(uid).Do(lockCtx, func() error {
		s, err := loadSession(l.ctx, l.svcCtx, uid)
		if err != nil {
			return err
		}

		s.Game.Reset()
		recordStart(l.svcCtx, s)
		l.Infof("game %s: rematch", uid)

		var aiMove *types.SearchInfo
		if s.AITurn() {
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
