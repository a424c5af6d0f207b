package logic

import (
	"context"
	"errors"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/assess"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/svc"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/types"
)

const fallbackReason = "fallback"

// playAI makes the AI move on s. If the search cannot produce a legal move
// in time the first empty cell is played instead.
func playAI(ctx context.Context, svcCtx *svc.ServiceContext, s *message.GameSession) (*types.SearchInfo, error) {
	logger := logx.WithContext(ctx)
	g := s.Game

	engine, err := assess.NewEngine(g.Board.Size, assess.WithPlayer(s.AIPlayer))
	if err != nil {
		return nil, err
	}

	searchCtx, cancel := context.WithTimeout(ctx, svcCtx.Config.Game.SearchTimeout)
	defer cancel()

	res, err := engine.Search(searchCtx, &g.Board)
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		logger.Infof("game %s: search stopped before any move: %v", s.GameUid, err)
	case err != nil:
		return nil, err
	}

	if res.Move.IsNoMove() || !g.Board.InBounds(res.Move.Row, res.Move.Col) || !g.Board.IsEmpty(res.Move) {
		res.Move = g.Board.FirstEmpty()
		res.Reason = fallbackReason
		logger.Infof("game %s: falling back to %v", s.GameUid, res.Move)
	}

	if err = g.Add(res.Move); err != nil {
		return nil, err
	}

	logger.Infof("game %s: AI played %v (%s, depth %d, %d nodes, %v)", s.GameUid, res.Move, res.Reason, res.Depth, res.Nodes, res.Elapsed)
	recordMove(svcCtx, *s, s.AIPlayer, &res)
	return newSearchInfo(res), nil
}
