package chess

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRows(t *testing.T, rows [][]int) Board {
	t.Helper()
	b, err := NewBoardFromRows(rows)
	require.NoError(t, err)
	return b
}

func TestIsWinningMove(t *testing.T) {
	for _, test := range []struct {
		name     string
		rows     [][]int
		move     Move
		player   Cell
		expected bool
	}{
		{
			name:     "row",
			rows:     [][]int{{1, 1, 0}, {2, 2, 0}, {0, 0, 0}},
			move:     NewMove(1, 2),
			player:   Player2,
			expected: true,
		},
		{
			name:     "column",
			rows:     [][]int{{1, 2, 0}, {1, 2, 0}, {0, 0, 0}},
			move:     NewMove(2, 0),
			player:   Player1,
			expected: true,
		},
		{
			name:     "diagonal down",
			rows:     [][]int{{2, 1, 0}, {1, 2, 0}, {0, 0, 0}},
			move:     NewMove(2, 2),
			player:   Player2,
			expected: true,
		},
		{
			name:     "diagonal up",
			rows:     [][]int{{0, 0, 1}, {0, 1, 2}, {0, 2, 0}},
			move:     NewMove(2, 0),
			player:   Player1,
			expected: true,
		},
		{
			name:     "blocked",
			rows:     [][]int{{1, 2, 0}, {2, 2, 0}, {0, 0, 0}},
			move:     NewMove(0, 2),
			player:   Player1,
			expected: false,
		},
		{
			name:     "middle of run",
			rows:     [][]int{{0, 0, 0}, {2, 0, 2}, {0, 0, 0}},
			move:     NewMove(1, 1),
			player:   Player2,
			expected: true,
		},
		{
			name: "four is not five",
			rows: [][]int{
				{1, 1, 1, 0, 0},
				{0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0},
			},
			move:     NewMove(0, 3),
			player:   Player1,
			expected: false,
		},
		{
			name: "five on 5x5",
			rows: [][]int{
				{1, 1, 0, 1, 1},
				{0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0},
			},
			move:     NewMove(0, 2),
			player:   Player1,
			expected: true,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			b := mustRows(t, test.rows)
			before := b.Clone()
			got := b.IsWinningMove(test.move.Row, test.move.Col, test.player, WinLength(b.Size))
			assert.Equal(t, test.expected, got)
			assert.True(t, before.Equal(&b), "win detection must not mutate the board")
		})
	}
}

func reflect(b *Board, m Move, horizontal, vertical, transpose bool) (Board, Move) {
	out := b.Clone()
	n := b.Size
	mapping := func(r, c int) (int, int) {
		if horizontal {
			c = n - 1 - c
		}
		if vertical {
			r = n - 1 - r
		}
		if transpose {
			r, c = c, r
		}
		return r, c
	}
	for r := range n {
		for c := range n {
			rr, cc := mapping(r, c)
			out.Set(rr, cc, b.At(r, c))
		}
	}
	rr, cc := mapping(m.Row, m.Col)
	return out, NewMove(rr, cc)
}

func TestIsWinningMoveSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, size := range []int{3, 4, 5, 7, 9} {
		winLength := WinLength(size)
		for range 200 {
			b, err := NewBoard(size)
			require.NoError(t, err)
			for i := range b.Cells {
				b.Cells[i] = Cell(rng.Intn(3))
			}
			m := NewMove(rng.Intn(size), rng.Intn(size))
			player := Cell(rng.Intn(2) + 1)
			want := b.IsWinningMove(m.Row, m.Col, player, winLength)

			for _, flags := range [][3]bool{
				{true, false, false},
				{false, true, false},
				{false, false, true},
				{true, true, false},
				{true, true, true},
			} {
				rb, rm := reflect(&b, m, flags[0], flags[1], flags[2])
				assert.Equal(t, want, rb.IsWinningMove(rm.Row, rm.Col, player, winLength))
			}
		}
	}
}

func TestRay(t *testing.T) {
	b := mustRows(t, [][]int{
		{0, 2, 2, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})

	count, open := b.Ray(0, 0, 0, 1, Player2, 4)
	assert.Equal(t, 2, count)
	assert.True(t, open)

	count, open = b.Ray(0, 0, -1, 0, Player2, 4)
	assert.Equal(t, 0, count)
	assert.False(t, open, "board edge closes the ray")

	count, open = b.Ray(0, 0, 0, 1, Player2, 1)
	assert.Equal(t, 1, count)
	assert.False(t, open, "limit reached without an empty cell")
}

func TestWinner(t *testing.T) {
	b := mustRows(t, [][]int{{1, 2, 0}, {1, 2, 0}, {1, 0, 2}})
	assert.Equal(t, Player1, b.Winner(3))

	b = mustRows(t, [][]int{{1, 2, 1}, {1, 2, 2}, {2, 1, 1}})
	assert.Equal(t, Empty, b.Winner(3))
}
