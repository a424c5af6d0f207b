package assess

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/chess"
)

const (
	// WinScore is the magnitude of a forced result. It exceeds the largest
	// heuristic score of any accepted board size, checked in NewEngine, and
	// Infinity still fits a 32-bit int.
	WinScore = 1 << 29
	Infinity = WinScore * 2

	MaxBoardSize = 32

	// nodes between two cancellation checks
	checkInterval = 1024
)

var (
	ErrWeights           = errors.New("heuristic weights overflow the win score")
	ErrPlayer            = errors.New("engine player must be Player1 or Player2")
	ErrNodeBudget        = errors.New("node budget must be positive")
	ErrBoardSizeMismatch = errors.New("board size does not match engine")
)

type Reason string

const (
	ReasonWin    Reason = "win"
	ReasonBlock  Reason = "block"
	ReasonSearch Reason = "search"
	ReasonNoMove Reason = "no-move"
)

type Result struct {
	Move      chess.Move    `json:"move"`
	Score     int           `json:"score"`
	Depth     int           `json:"depth"`
	Nodes     int64         `json:"nodes"`
	Reason    Reason        `json:"reason"`
	Cancelled bool          `json:"cancelled,omitempty"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Engine finds moves for one side on boards of a fixed size. It holds no
// per-search state and may be shared, but a single board must not be
// searched by two goroutines at once.
type Engine struct {
	boardSize  int
	winLength  int
	player     chess.Cell
	nodeBudget int
	maxDepth   int
	weights    Weights
}

func NewEngine(boardSize int, options ...Option) (*Engine, error) {
	if boardSize < chess.MinBoardSize || boardSize > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d", chess.ErrBoardSize, boardSize)
	}

	e := &Engine{
		boardSize:  boardSize,
		winLength:  chess.WinLength(boardSize),
		player:     chess.Player2,
		nodeBudget: NodeBudget,
		maxDepth:   MaxDepth,
		weights:    DefaultWeights(),
	}

	for _, option := range options {
		option(e)
	}

	if !e.player.IsPlayer() {
		return nil, ErrPlayer
	}

	if e.nodeBudget <= 0 {
		return nil, ErrNodeBudget
	}

	if err := e.weights.validate(boardSize); err != nil {
		return nil, err
	}

	return e, nil
}

func (w Weights) validate(boardSize int) error {
	for _, v := range []int{w.Win, w.AlmostWin, w.ThreeInRow, w.TwoInRow, w.CenterBonus} {
		if v < 0 || v >= WinScore/4 {
			return ErrWeights
		}
	}

	if w.MaxHeuristic(boardSize) >= WinScore {
		return ErrWeights
	}
	return nil
}

func (e *Engine) BoardSize() int { return e.boardSize }

func (e *Engine) WinLength() int { return e.winLength }

func (e *Engine) Player() chess.Cell { return e.player }

// Depth is the search depth the engine will use on b.
func (e *Engine) Depth(b *chess.Board) int {
	return computeDepth(b.EmptyCount(), e.nodeBudget, e.maxDepth)
}

// Evaluate is the static score of b from the engine's side.
func (e *Engine) Evaluate(b *chess.Board) int {
	return e.weights.EvaluateBoard(b, e.player, e.winLength)
}

// Search returns the best move for the engine's side on b. The board is
// mutated during the search and restored before Search returns.
//
// If ctx is done before any root move has been fully searched, Search
// returns NoMove and ctx.Err(). If it is done later, the best fully searched
// move is returned with Cancelled set.
func (e *Engine) Search(ctx context.Context, b *chess.Board) (res Result, err error) {
	start := time.Now()
	defer func() { res.Elapsed = time.Since(start) }()

	res = Result{Move: chess.NoMove, Reason: ReasonNoMove}
	if b.Size != e.boardSize {
		return res, fmt.Errorf("%w: board %d, engine %d", ErrBoardSizeMismatch, b.Size, e.boardSize)
	}

	moves := CandidateMoves(b)
	if len(moves) == 0 {
		return res, nil
	}

	for _, m := range moves {
		if b.IsWinningMove(m.Row, m.Col, e.player, e.winLength) {
			res.Move, res.Score, res.Reason = m, WinScore, ReasonWin
			return res, nil
		}
	}

	opponent := e.player.Opponent()
	for _, m := range moves {
		if b.IsWinningMove(m.Row, m.Col, opponent, e.winLength) {
			res.Move, res.Score, res.Reason = m, e.Evaluate(b), ReasonBlock
			return res, nil
		}
	}

	s := &searcher{
		Engine:   e,
		ctx:      ctx,
		opponent: opponent,
	}
	depth := e.Depth(b)
	best, bestScore := chess.NoMove, -Infinity

	for _, m := range moves {
		if ctx.Err() != nil {
			res.Cancelled = true
			break
		}

		score := chess.Try(b, m, e.player, func() int {
			return s.minimax(b, depth-1, false, bestScore, Infinity)
		})

		if s.stopped {
			res.Cancelled = true
			break
		}

		if best.IsNoMove() || score > bestScore {
			best, bestScore = m, score
		}
	}

	res.Nodes = s.nodes
	res.Depth = depth
	if best.IsNoMove() {
		return res, ctx.Err()
	}

	res.Move, res.Score, res.Reason = best, bestScore, ReasonSearch
	return res, nil
}

// GetBestMove searches b without a deadline.
func (e *Engine) GetBestMove(b *chess.Board) chess.Move {
	res, err := e.Search(context.Background(), b)
	if err != nil {
		return chess.NoMove
	}
	return res.Move
}

// GetBestMove returns the best Player2 move on b, or NoMove when the board
// is full or boardSize is not a valid configuration.
func GetBestMove(b *chess.Board, boardSize int) chess.Move {
	e, err := NewEngine(boardSize)
	if err != nil {
		return chess.NoMove
	}
	return e.GetBestMove(b)
}

type searcher struct {
	*Engine
	ctx      context.Context
	opponent chess.Cell
	nodes    int64
	stopped  bool
}

func (s *searcher) done() bool {
	if s.stopped {
		return true
	}
	if s.nodes%checkInterval == 0 && s.ctx.Err() != nil {
		s.stopped = true
	}
	return s.stopped
}

func (s *searcher) minimax(b *chess.Board, depth int, maximizing bool, alpha, beta int) int {
	s.nodes++
	if s.done() {
		return 0
	}

	if depth == 0 {
		return s.Evaluate(b)
	}

	moves := CandidateMoves(b)
	if len(moves) == 0 {
		return s.Evaluate(b)
	}

	if maximizing {
		maxEval := -Infinity
		for _, m := range moves {
			if b.IsWinningMove(m.Row, m.Col, s.player, s.winLength) {
				return WinScore + depth
			}

			eval := chess.Try(b, m, s.player, func() int {
				return s.minimax(b, depth-1, false, alpha, beta)
			})
			if s.stopped {
				return 0
			}

			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if beta <= alpha {
				break
			}
		}
		return maxEval
	}

	minEval := Infinity
	for _, m := range moves {
		if b.IsWinningMove(m.Row, m.Col, s.opponent, s.winLength) {
			return -WinScore - depth
		}

		eval := chess.Try(b, m, s.opponent, func() int {
			return s.minimax(b, depth-1, true, alpha, beta)
		})
		if s.stopped {
			return 0
		}

		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if beta <= alpha {
			break
		}
	}
	return minEval
}
