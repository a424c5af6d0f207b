package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/assess"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/chess"
)

const moveTimeout = 10 * time.Second

var errMoveSyntax = errors.New(`want "row col"`)

func parseMove(line string) (m chess.Move, err error) {
	if _, err = fmt.Sscanf(strings.TrimSpace(line), "%d %d", &m.Row, &m.Col); err != nil {
		return chess.NoMove, errMoveSyntax
	}
	return m, nil
}

// engineMove asks engine for a move and falls back to the first empty cell
// when the search runs out of time.
func engineMove(ctx context.Context, engine *assess.Engine, g *chess.Game) (chess.Move, assess.Result) {
	ctx, cancel := context.WithTimeout(ctx, moveTimeout)
	defer cancel()

	res, err := engine.Search(ctx, &g.Board)
	if err != nil || res.Move.IsNoMove() || !g.Board.IsEmpty(res.Move) {
		return g.Board.FirstEmpty(), res
	}
	return res.Move, res
}

// PlayInteractive runs one game of the human (X) against the engine (O),
// reading moves from in. "quit" ends the game early.
func PlayInteractive(ctx context.Context, in io.Reader, out io.Writer, size int, aiFirst bool, au aurora.Aurora) (*chess.Game, error) {
	first := chess.Player1
	if aiFirst {
		first = chess.Player2
	}

	g, err := chess.NewGame(size, first)
	if err != nil {
		return nil, err
	}

	engine, err := assess.NewEngine(size)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(in)
	for !g.Over() {
		if g.NowPlayer == engine.Player() {
			m, res := engineMove(ctx, engine, g)
			if err = g.Add(m); err != nil {
				return g, err
			}
			fmt.Fprintf(out, "%s plays %v (%s, depth %d, %d nodes)\n", au.Cyan("O"), m, res.Reason, res.Depth, res.Nodes)
			continue
		}

		Render(out, g, au)
		fmt.Fprintf(out, "%s, your move (row col): ", au.Red("X"))
		if !scanner.Scan() {
			if err = scanner.Err(); err != nil {
				return g, err
			}
			return g, io.ErrUnexpectedEOF
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "quit" {
			return g, nil
		}

		m, err := parseMove(line)
		if err == nil {
			err = g.Add(m)
		}
		if err != nil {
			fmt.Fprintf(out, "%s\n", au.Yellow(err.Error()))
		}
	}

	Render(out, g, au)
	fmt.Fprintf(out, "%s\n", au.Bold(describeStatus(g)))
	return g, nil
}

type Tally struct {
	Player1Wins int
	Player2Wins int
	Draws       int
}

func (t *Tally) Add(g *chess.Game) {
	switch g.Status {
	case chess.Player1Won:
		t.Player1Wins++
	case chess.Player2Won:
		t.Player2Wins++
	case chess.Draw:
		t.Draws++
	}
}

// SelfPlay plays the given number of engine-vs-engine games, alternating first
// players. Each game opens on a random cell so the series is not one game
// repeated. done is called after every finished game.
func SelfPlay(ctx context.Context, games, size int, seed int64, done func(*chess.Game)) (tally Tally, err error) {
	engines := map[chess.Cell]*assess.Engine{}
	for _, player := range []chess.Cell{chess.Player1, chess.Player2} {
		if engines[player], err = assess.NewEngine(size, assess.WithPlayer(player)); err != nil {
			return tally, err
		}
	}

	rng := rand.New(rand.NewSource(seed))
	for i := range games {
		if err = ctx.Err(); err != nil {
			return tally, err
		}

		first := chess.Player1
		if i%2 == 1 {
			first = chess.Player2
		}

		g, err := chess.NewGame(size, first)
		if err != nil {
			return tally, err
		}

		if err = g.Add(chess.NewMove(rng.Intn(size), rng.Intn(size))); err != nil {
			return tally, err
		}

		for !g.Over() {
			m, _ := engineMove(ctx, engines[g.NowPlayer], g)
			if err = g.Add(m); err != nil {
				return tally, err
			}
		}

		tally.Add(g)
		if done != nil {
			done(g)
		}
	}

	return tally, nil
}
