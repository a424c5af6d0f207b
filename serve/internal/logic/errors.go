package logic

import "errors"

var (
	BoardSizeOutOfRangeErr = errors.New("board size out of range")
	InvalidBoardErr        = errors.New("invalid board")
	InvalidPlayerErr       = errors.New("player must be 1 or 2")
	GameNotFoundErr        = errors.New("game not found")
	NotYourTurnErr         = errors.New("not your turn")
	AnalysisNotFoundErr    = errors.New("analysis not found")
	AnalysisPendingErr     = errors.New("analysis pending")
)
