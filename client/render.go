package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/chess"
)

// Render writes the board with row and column indexes. The last move is
// underlined.
func Render(w io.Writer, g *chess.Game, au aurora.Aurora) {
	var builder strings.Builder
	n := g.Board.Size
	last := g.LastMove()

	builder.WriteString("   ")
	for col := range n {
		fmt.Fprintf(&builder, "%3d", col)
	}
	builder.WriteString("\n")

	for row := range n {
		fmt.Fprintf(&builder, "%3d", row)
		for col := range n {
			cell := g.Board.At(row, col)
			var mark aurora.Value
			switch cell {
			case chess.Player1:
				mark = au.Red(cell.Mark()).Bold()
			case chess.Player2:
				mark = au.Cyan(cell.Mark()).Bold()
			default:
				mark = au.Gray(12, cell.Mark())
			}

			if last == chess.NewMove(row, col) {
				mark = mark.Underline()
			}
			fmt.Fprintf(&builder, "  %s", mark)
		}
		builder.WriteString("\n")
	}

	_, _ = io.WriteString(w, builder.String())
}

func describeStatus(g *chess.Game) string {
	switch g.Status {
	case chess.Player1Won:
		return "X wins"
	case chess.Player2Won:
		return "O wins"
	case chess.Draw:
		return "draw"
	}
	return fmt.Sprintf("%s to move", g.NowPlayer.Mark())
}
