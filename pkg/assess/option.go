package assess

import "github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/chess"

type Option func(*Engine)

// WithPlayer sets the side the engine plays for.
func WithPlayer(player chess.Cell) Option {
	return func(e *Engine) {
		e.player = player
	}
}

func WithNodeBudget(nodeBudget int) Option {
	return func(e *Engine) {
		e.nodeBudget = nodeBudget
	}
}

// WithMaxDepth lowers the depth cap. Values are clamped into
// [MinDepth, MaxDepth].
func WithMaxDepth(maxDepth int) Option {
	return func(e *Engine) {
		e.maxDepth = min(MaxDepth, max(MinDepth, maxDepth))
	}
}

func WithWeights(weights Weights) Option {
	return func(e *Engine) {
		e.weights = weights
	}
}
