package chess

import "fmt"

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoMove is returned when no legal move remains.
var NoMove = Move{Row: -1, Col: -1}

func NewMove(row, col int) Move {
	return Move{Row: row, Col: col}
}

func (m Move) IsNoMove() bool {
	return m == NoMove
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}
