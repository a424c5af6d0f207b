package chess

// Axes are the four line directions: horizontal, vertical, diagonal-down
// and diagonal-up. Each axis is scanned in both senses.
var Axes = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// Ray walks from (row, col) along (dRow, dCol), not counting the start cell,
// for at most limit cells. It returns how many contiguous cells hold player
// and whether the walk stopped at an in-bounds empty cell.
func (b *Board) Ray(row, col, dRow, dCol int, player Cell, limit int) (count int, open bool) {
	for i := 1; i <= limit; i++ {
		r := row + dRow*i
		c := col + dCol*i
		if !b.InBounds(r, c) {
			return
		}

		switch b.At(r, c) {
		case player:
			count++
		case Empty:
			open = true
			return
		default:
			return
		}
	}
	return
}

// Line returns the length of the run through (row, col) along one axis,
// counting (row, col) as player's, and whether each end is open.
func (b *Board) Line(row, col, dRow, dCol int, player Cell, winLength int) (count int, forwardOpen, backwardOpen bool) {
	forward, forwardOpen := b.Ray(row, col, dRow, dCol, player, winLength-1)
	backward, backwardOpen := b.Ray(row, col, -dRow, -dCol, player, winLength-1)
	return 1 + forward + backward, forwardOpen, backwardOpen
}

// IsWinningMove reports whether player has winLength in a row through
// (row, col). The cell itself is counted as player's whether or not it is
// already occupied, so it can be asked before placing the mark.
func (b *Board) IsWinningMove(row, col int, player Cell, winLength int) bool {
	for _, axis := range Axes {
		if count, _, _ := b.Line(row, col, axis[0], axis[1], player, winLength); count >= winLength {
			return true
		}
	}
	return false
}

// Winner scans the whole board for a completed line.
func (b *Board) Winner(winLength int) Cell {
	for i, c := range b.Cells {
		if c == Empty {
			continue
		}
		if b.IsWinningMove(i/b.Size, i%b.Size, c, winLength) {
			return c
		}
	}
	return Empty
}
