package types

import "github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/chess"

type CreateGameRequest struct {
	BoardSize int  `json:"boardSize"`
	AIFirst   bool `json:"aiFirst"`
}

type MoveRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SearchInfo describes how the AI picked its last move.
type SearchInfo struct {
	Move      chess.Move `json:"move"`
	Reason    string     `json:"reason"`
	Depth     int        `json:"depth"`
	Score     int        `json:"score"`
	Nodes     int64      `json:"nodes"`
	ElapsedMs int64      `json:"elapsedMs"`
}

type GameView struct {
	GameUid   string      `json:"gameUid"`
	BoardSize int         `json:"boardSize"`
	WinLength int         `json:"winLength"`
	Board     [][]int     `json:"board"`
	NowPlayer int         `json:"nowPlayer"`
	AIPlayer  int         `json:"aiPlayer"`
	Status    string      `json:"status"`
	Winner    int         `json:"winner"`
	LastMove  *chess.Move `json:"lastMove,omitempty"`
	Steps     int         `json:"steps"`
	AIMove    *SearchInfo `json:"aiMove,omitempty"`
}

// BoardRequest carries a position and the side to move, which defaults to
// Player2 when zero.
type BoardRequest struct {
	Board  [][]int `json:"board"`
	Player int     `json:"player"`
}

type AnalysisResponse struct {
	Uid string `json:"uid"`
}

type AnalysisResultResponse struct {
	Uid    string      `json:"uid"`
	Status string      `json:"status"`
	Result *SearchInfo `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}
