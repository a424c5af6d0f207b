package chess

import (
	"errors"
	"fmt"
)

var (
	ErrGameOver = errors.New("game is over")
	ErrNoPlayer = errors.New("first player must be Player1 or Player2")
)

type Status string

const (
	Running    Status = "running"
	Player1Won Status = "player1-won"
	Player2Won Status = "player2-won"
	Draw       Status = "draw"
)

type Game struct {
	Board       Board  `json:"board"`
	WinLength   int    `json:"winLength"`
	FirstPlayer Cell   `json:"firstPlayer"`
	NowPlayer   Cell   `json:"nowPlayer"`
	Status      Status `json:"status"`
	Winner      Cell   `json:"winner"`
	History     []Move `json:"history"`
}

func NewGame(boardSize int, first Cell) (*Game, error) {
	if !first.IsPlayer() {
		return nil, ErrNoPlayer
	}

	b, err := NewBoard(boardSize)
	if err != nil {
		return nil, err
	}

	return &Game{
		Board:       b,
		WinLength:   WinLength(boardSize),
		FirstPlayer: first,
		NowPlayer:   first,
		Status:      Running,
	}, nil
}

func (g *Game) Over() bool {
	return g.Status != Running
}

func (g *Game) StepCount() int {
	return len(g.History)
}

func (g *Game) LastMove() Move {
	if len(g.History) == 0 {
		return NoMove
	}
	return g.History[len(g.History)-1]
}

// Add places the mark of the player to move at m and advances the turn.
func (g *Game) Add(m Move) error {
	if g.Over() {
		return ErrGameOver
	}

	if !g.Board.InBounds(m.Row, m.Col) {
		return fmt.Errorf("%w: %v", ErrOutOfRange, m)
	}

	if !g.Board.IsEmpty(m) {
		return fmt.Errorf("%w: %v", ErrOccupied, m)
	}

	g.Board.Set(m.Row, m.Col, g.NowPlayer)
	g.History = append(g.History, m)

	switch {
	case g.Board.IsWinningMove(m.Row, m.Col, g.NowPlayer, g.WinLength):
		g.Winner = g.NowPlayer
		if g.NowPlayer == Player1 {
			g.Status = Player1Won
		} else {
			g.Status = Player2Won
		}
	case g.Board.Full():
		g.Status = Draw
	default:
		g.NowPlayer = g.NowPlayer.Opponent()
	}

	return nil
}

// Reset clears the board for a rematch of the same size and first player.
func (g *Game) Reset() {
	g.Board.Reset()
	g.NowPlayer = g.FirstPlayer
	g.Status = Running
	g.Winner = Empty
	g.History = nil
}
