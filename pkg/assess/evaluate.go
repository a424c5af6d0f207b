package assess

import "github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/chess"

// Weights are the heuristic line and position weights. Their ratios are
// tuning knobs, not correctness requirements; only the ordering between the
// open-both, open-one and closed variants of a run matters.
type Weights struct {
	Win         int `json:"win"`
	AlmostWin   int `json:"almostWin"`
	ThreeInRow  int `json:"threeInRow"`
	TwoInRow    int `json:"twoInRow"`
	CenterBonus int `json:"centerBonus"`
}

func DefaultWeights() Weights {
	return Weights{
		Win:         100000,
		AlmostWin:   10101,
		ThreeInRow:  10099,
		TwoInRow:    301,
		CenterBonus: 39,
	}
}

// LineScore scores a run of count marks given which of its ends are open.
func (w Weights) LineScore(count int, leftOpen, rightOpen bool, winLength int) int {
	openBoth := leftOpen && rightOpen
	openOne := leftOpen || rightOpen

	if count >= winLength {
		return w.Win
	}

	if count == winLength-1 {
		if openBoth {
			return w.AlmostWin*2 + 1
		}
		if openOne {
			return w.AlmostWin
		}
		return w.ThreeInRow
	}

	if count == winLength-2 {
		if openBoth {
			return w.ThreeInRow*3 + 1
		}
		if openOne {
			return w.TwoInRow*2 + 1
		}
	}

	if count >= 2 && openOne {
		return w.TwoInRow
	}
	return count
}

func (w Weights) maxLineScore() int {
	return max(w.Win, w.AlmostWin*2+1, w.ThreeInRow, w.ThreeInRow*3+1, w.TwoInRow*2+1, w.TwoInRow)
}

// MaxHeuristic bounds |EvaluateBoard| for any board of boardSize. It is
// computed in int64 so oversized weights are caught rather than wrapped.
func (w Weights) MaxHeuristic(boardSize int) int64 {
	perCell := int64(len(chess.Axes))*int64(w.maxLineScore()) + int64(max(w.CenterBonus, 0))
	return int64(boardSize) * int64(boardSize) * perCell
}

// PositionBonus is the positional nudge for a mark at (row, col).
func (w Weights) PositionBonus(row, col, boardSize int) int {
	center := boardSize / 2
	distance := abs(row-center) + abs(col-center)
	return max(0, w.CenterBonus-distance)
}

// EvaluatePosition scores the four lines through (row, col) for player plus
// the center bonus of the cell.
func (w Weights) EvaluatePosition(b *chess.Board, row, col int, player chess.Cell, winLength int) (score int) {
	for _, axis := range chess.Axes {
		count, rightOpen, leftOpen := b.Line(row, col, axis[0], axis[1], player, winLength)
		score += w.LineScore(count, leftOpen, rightOpen, winLength)
	}
	score += w.PositionBonus(row, col, b.Size)
	return
}

// EvaluateBoard scores the board from player's perspective: the line
// potential of player's marks minus the opponent's.
func (w Weights) EvaluateBoard(b *chess.Board, player chess.Cell, winLength int) int {
	own, other := 0, 0
	opponent := player.Opponent()
	for i, c := range b.Cells {
		switch c {
		case player:
			own += w.EvaluatePosition(b, i/b.Size, i%b.Size, player, winLength)
		case opponent:
			other += w.EvaluatePosition(b, i/b.Size, i%b.Size, opponent, winLength)
		}
	}
	return own - other
}

// EvaluateBoard scores the board for Player2 with the default weights.
func EvaluateBoard(b *chess.Board, winLength int) int {
	return DefaultWeights().EvaluateBoard(b, chess.Player2, winLength)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
