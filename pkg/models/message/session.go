package message

import (
	"github.com/bytedance/sonic"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/chess"
)

// GameSession is the redis representation of a player-vs-AI game.
type GameSession struct {
	TimeStamp TimeStamp   `json:"timeStamp"`
	GameUid   GameUid     `json:"gameUid"`
	AIPlayer  chess.Cell  `json:"aiPlayer"`
	Game      *chess.Game `json:"game"`
}

func NewGameSession(str string) (newGameSession GameSession, err error) {
	err = sonic.UnmarshalString(str, &newGameSession)
	return
}

func (s GameSession) String() string {
	str, _ := sonic.MarshalString(s)
	return str
}

func (s GameSession) HumanPlayer() chess.Cell {
	return s.AIPlayer.Opponent()
}

func (s GameSession) AITurn() bool {
	return !s.Game.Over() && s.Game.NowPlayer == s.AIPlayer
}
