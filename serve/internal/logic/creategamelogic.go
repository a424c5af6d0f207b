package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/chess"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/svc"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/types"
)

type CreateGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewCreateGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateGameLogic {
	return &CreateGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// The human always plays Player1 and the AI Player2; aiFirst only decides
// who opens.
func (l *CreateGameLogic) CreateGame(req *types.CreateGameRequest) (*types.GameView, error) {
	if err := checkBoardSize(l.svcCtx, req.BoardSize); err != nil {
		return nil, err
	}

	first := chess.Player1
	if req.AIFirst {
		first = chess.Player2
	}

	g, err := chess.NewGame(req.BoardSize, first)
	if err != nil {
		return nil, err
	}

	s := message.GameSession{
		GameUid:  message.NewGameUid(),
		AIPlayer: chess.Player2,
		Game:     g,
	}
	recordStart(l.svcCtx, s)
	l.Infof("game %s: created %dx%d, first %s", s.GameUid, req.BoardSize, req.BoardSize, first)

	var aiMove *types.SearchInfo
	if s.AITurn() {
		if aiMove, err = playAI(l.ctx, l.svcCtx, &s); err != nil {
			return nil, err
		}
	}

	if err = saveSession(l.ctx, l.svcCtx, &s); err != nil {
		return nil, err
	}

	return newGameView(s, aiMove), nil
}
