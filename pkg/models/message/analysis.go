package message

import (
	"github.com/bytedance/sonic"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/assess"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/chess"
)

// AnalysisTask asks a worker for the best move of Player on Board.
type AnalysisTask struct {
	TimeStamp TimeStamp   `json:"timeStamp"`
	Uid       GameUid     `json:"uid"`
	Board     chess.Board `json:"board"`
	Player    chess.Cell  `json:"player"`
}

// NewAnalysisTask decodes a queued task and rejects malformed boards.
func NewAnalysisTask(str string) (newAnalysisTask AnalysisTask, err error) {
	if err = sonic.UnmarshalString(str, &newAnalysisTask); err != nil {
		return
	}
	err = newAnalysisTask.Board.Validate()
	return
}

func (a AnalysisTask) String() string {
	str, _ := sonic.MarshalString(a)
	return str
}

type AnalysisResult struct {
	TimeStamp TimeStamp `json:"timeStamp"`
	Uid       GameUid   `json:"uid"`
	assess.Result
	Error string `json:"error,omitempty"`
}

func NewAnalysisResult(str string) (newAnalysisResult AnalysisResult, err error) {
	err = sonic.UnmarshalString(str, &newAnalysisResult)
	return
}

func (a AnalysisResult) String() string {
	str, _ := sonic.MarshalString(a)
	return str
}
