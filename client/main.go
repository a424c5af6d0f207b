package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/logrusorgru/aurora"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/chess"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/model"
)

func main() {
	flag.Parse()
	if err := checkConfig(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	au := aurora.NewAurora(!*NoColorConf)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *SelfPlayConf == 0 {
		if _, err := PlayInteractive(ctx, os.Stdin, os.Stdout, *BoardSizeConf, bool(AIFirst), au); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	bar := model.NewBar(*SelfPlayConf, fmt.Sprintf("self-play %dx%d", *BoardSizeConf, *BoardSizeConf))
	tally, err := SelfPlay(ctx, *SelfPlayConf, *BoardSizeConf, *SeedConf, func(*chess.Game) { bar.Add(1) })
	bar.Close()
	fmt.Println()

	fmt.Printf("%s %d  %s %d  %s %d\n",
		au.Red("X wins"), tally.Player1Wins,
		au.Cyan("O wins"), tally.Player2Wins,
		au.Bold("draws"), tally.Draws,
	)

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
