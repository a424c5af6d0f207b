package chess

type Cell int8

const (
	Empty   Cell = 0
	Player1 Cell = 1
	Player2 Cell = 2
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return ""
}

// Mark is the single character used when a board is printed.
func (c Cell) Mark() string {
	switch c {
	case Player1:
		return "X"
	case Player2:
		return "O"
	}
	return "."
}

func (c Cell) Opponent() Cell {
	switch c {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (c Cell) IsPlayer() bool {
	return c == Player1 || c == Player2
}

func (c Cell) Valid() bool {
	return c == Empty || c.IsPlayer()
}
