package assess

import "github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/chess"

// CandidateRadius is the Chebyshev radius around occupied cells within which
// empty cells are searched.
const CandidateRadius = 2

// CandidateMoves returns the empty cells within CandidateRadius of any
// occupied cell, each once, in discovery order. An empty board yields only
// the center cell.
func CandidateMoves(b *chess.Board) (moves []chess.Move) {
	n := b.Size
	seen := make([]bool, len(b.Cells))
	hasMoved := false

	for row := range n {
		for col := range n {
			if b.At(row, col) == chess.Empty {
				continue
			}
			hasMoved = true

			for dRow := -CandidateRadius; dRow <= CandidateRadius; dRow++ {
				for dCol := -CandidateRadius; dCol <= CandidateRadius; dCol++ {
					r, c := row+dRow, col+dCol
					if !b.InBounds(r, c) || b.At(r, c) != chess.Empty || seen[r*n+c] {
						continue
					}
					seen[r*n+c] = true
					moves = append(moves, chess.NewMove(r, c))
				}
			}
		}
	}

	if !hasMoved {
		return []chess.Move{chess.NewMove(n/2, n/2)}
	}
	return
}
