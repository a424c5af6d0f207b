package chess

import (
	"errors"
	"fmt"
	"strings"
)

const MinBoardSize = 3

var (
	ErrBoardSize  = errors.New("board size out of range")
	ErrBoardShape = errors.New("board is not square")
	ErrCellValue  = errors.New("invalid cell value")
	ErrOutOfRange = errors.New("move out of range")
	ErrOccupied   = errors.New("cell already occupied")
)

// WinLength is the number of contiguous marks needed to win on a board of
// the given size.
func WinLength(boardSize int) int {
	if boardSize >= 5 {
		return 5
	}
	return 3
}

type Board struct {
	Size  int    `json:"size"`
	Cells []Cell `json:"cells"`
}

func NewBoard(boardSize int) (newBoard Board, err error) {
	if boardSize < MinBoardSize {
		return Board{}, fmt.Errorf("%w: %d", ErrBoardSize, boardSize)
	}

	newBoard = Board{
		Size:  boardSize,
		Cells: make([]Cell, boardSize*boardSize),
	}
	return
}

// NewBoardFromRows builds a board from a row-major grid of cell values.
func NewBoardFromRows(rows [][]int) (newBoard Board, err error) {
	if newBoard, err = NewBoard(len(rows)); err != nil {
		return Board{}, err
	}

	for r, row := range rows {
		if len(row) != newBoard.Size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells", ErrBoardShape, r, len(row))
		}

		for c, v := range row {
			if v < int(Empty) || v > int(Player2) {
				return Board{}, fmt.Errorf("%w: %d at %v", ErrCellValue, v, NewMove(r, c))
			}
			newBoard.Cells[r*newBoard.Size+c] = Cell(v)
		}
	}

	return
}

// Validate checks a board that did not come from NewBoard, such as one
// decoded from a message.
func (b *Board) Validate() error {
	if b.Size < MinBoardSize {
		return fmt.Errorf("%w: %d", ErrBoardSize, b.Size)
	}

	if len(b.Cells) != b.Size*b.Size {
		return fmt.Errorf("%w: %d cells for size %d", ErrBoardShape, len(b.Cells), b.Size)
	}

	for i, c := range b.Cells {
		if !c.Valid() {
			return fmt.Errorf("%w: %d at %v", ErrCellValue, c, NewMove(i/b.Size, i%b.Size))
		}
	}
	return nil
}

func (b *Board) index(row, col int) int {
	return row*b.Size + col
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.Size && col < b.Size
}

func (b *Board) At(row, col int) Cell {
	return b.Cells[b.index(row, col)]
}

func (b *Board) Set(row, col int, cell Cell) {
	b.Cells[b.index(row, col)] = cell
}

func (b *Board) IsEmpty(m Move) bool {
	return b.InBounds(m.Row, m.Col) && b.At(m.Row, m.Col) == Empty
}

func (b *Board) EmptyCount() (count int) {
	for _, c := range b.Cells {
		if c == Empty {
			count++
		}
	}
	return
}

func (b *Board) OccupiedCount() int {
	return len(b.Cells) - b.EmptyCount()
}

func (b *Board) Full() bool {
	return b.EmptyCount() == 0
}

// FirstEmpty scans row-major for the first empty cell.
func (b *Board) FirstEmpty() Move {
	for i, c := range b.Cells {
		if c == Empty {
			return NewMove(i/b.Size, i%b.Size)
		}
	}
	return NoMove
}

func (b *Board) Reset() {
	for i := range b.Cells {
		b.Cells[i] = Empty
	}
}

func (b *Board) Clone() (newBoard Board) {
	newBoard = Board{
		Size:  b.Size,
		Cells: make([]Cell, len(b.Cells)),
	}
	copy(newBoard.Cells, b.Cells)
	return
}

func (b *Board) Equal(other *Board) bool {
	if b.Size != other.Size || len(b.Cells) != len(other.Cells) {
		return false
	}
	for i := range b.Cells {
		if b.Cells[i] != other.Cells[i] {
			return false
		}
	}
	return true
}

func (b *Board) Rows() (rows [][]int) {
	rows = make([][]int, b.Size)
	for r := range b.Size {
		rows[r] = make([]int, b.Size)
		for c := range b.Size {
			rows[r][c] = int(b.At(r, c))
		}
	}
	return
}

func (b *Board) String() string {
	var builder strings.Builder
	for r := range b.Size {
		for c := range b.Size {
			if c > 0 {
				builder.WriteString(" ")
			}
			builder.WriteString(b.At(r, c).Mark())
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

// Try places cell at m, runs fn and restores the previous value of m on
// every exit path of fn.
func Try[T any](b *Board, m Move, cell Cell, fn func() T) T {
	i := b.index(m.Row, m.Col)
	prev := b.Cells[i]
	b.Cells[i] = cell
	defer func() { b.Cells[i] = prev }()
	return fn()
}
