package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/assess"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/chess"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/svc"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/types"
)

type BestMoveLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewBestMoveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *BestMoveLogic {
	return &BestMoveLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func parseBoardRequest(svcCtx *svc.ServiceContext, req *types.BoardRequest) (b chess.Board, player chess.Cell, err error) {
	player = chess.Cell(req.Player)
	if req.Player == 0 {
		player = chess.Player2
	}

	if req.Player < 0 || req.Player > 2 {
		return b, player, InvalidPlayerErr
	}

	if err = checkBoardSize(svcCtx, len(req.Board)); err != nil {
		return b, player, err
	}

	b, err = chess.NewBoardFromRows(req.Board)
	if err != nil {
		return b, player, errors.Join(InvalidBoardErr, err)
	}

	return b, player, nil
}

// BestMove searches the posted position directly, without a game session.
func (l *BestMoveLogic) BestMove(req *types.BoardRequest) (*types.SearchInfo, error) {
	b, player, err := parseBoardRequest(l.svcCtx, req)
	if err != nil {
		return nil, err
	}

	engine, err := assess.NewEngine(b.Size, assess.WithPlayer(player))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(l.ctx, l.svcCtx.Config.Game.SearchTimeout)
	defer cancel()

	res, err := engine.Search(ctx, &b)
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		l.Infof("best move search stopped before any move: %v", err)
	case err != nil:
		return nil, fmt.Errorf("search: %w", err)
	}

	if res.Move.IsNoMove() && !b.Full() {
		res.Move, res.Reason = b.FirstEmpty(), fallbackReason
	}

	l.Infof("best move for %s on %dx%d: %v (%s)", player, b.Size, b.Size, res.Move, res.Reason)
	return newSearchInfo(res), nil
}
