package main

import (
	"flag"
	"fmt"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/chess"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/model"
)

var (
	BoardSizeConf = flag.Int("BoardSize", 3, "board size, 3 to 15")
	SelfPlayConf  = flag.Int("SelfPlay", 0, "number of AI vs AI games to play, 0 for an interactive game")
	SeedConf      = flag.Int64("Seed", 1, "seed of the random self-play openings")
	NoColorConf   = flag.Bool("NoColor", false, "print the board without colors")

	AIFirst = model.Off
)

func init() {
	flag.Var(&AIFirst, "AIFirst", "AI opens the interactive game, On or Off")
}

func checkConfig() error {
	if *BoardSizeConf < chess.MinBoardSize || *BoardSizeConf > 15 {
		return fmt.Errorf("%w: %d not in [%d, 15]", chess.ErrBoardSize, *BoardSizeConf, chess.MinBoardSize)
	}

	if *SelfPlayConf < 0 {
		return fmt.Errorf("SelfPlay must not be negative: %d", *SelfPlayConf)
	}

	return nil
}
