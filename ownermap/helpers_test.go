package ownermap

import (
	"owner/board"
	"owner/utils"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// lineBoard is a minimal board.Board of points in a row, with group ids set
// by hand. A non-zero width wraps the row for display.
type lineBoard struct {
	width  int
	stones []board.Stone
	groups []board.Group
	komi   float64
	handi  int
}

func newLineBoard(stones ...board.Stone) *lineBoard {
	b := &lineBoard{stones: stones, groups: make([]board.Group, len(stones))}
	for i, s := range stones {
		b.groups[i] = board.NoGroup
		if s != board.None {
			b.groups[i] = board.Group(i)
		}
	}
	return b
}

func (b *lineBoard) Size() int {
	if b.width > 0 {
		return b.width
	}
	return len(b.stones)
}
func (b *lineBoard) NumPoints() int                    { return len(b.stones) }
func (b *lineBoard) At(p board.Point) board.Stone      { return b.stones[p] }
func (b *lineBoard) GroupAt(p board.Point) board.Group { return b.groups[p] }
func (b *lineBoard) OnePointEye(board.Point) board.Stone {
	return board.None
}
func (b *lineBoard) Komi() float64             { return b.komi }
func (b *lineBoard) HandicapCompensation() int { return b.handi }

// mapOf builds a map directly from per-point {none, black, white} counts.
// Every point must sum to the same total.
func mapOf(counts ...[board.NumStones]int) *Map {
	m := New(len(counts))
	for i, c := range counts {
		m.counts[i] = c
	}
	if len(counts) > 0 {
		m.playouts = counts[0][0] + counts[0][1] + counts[0][2]
	}
	return m
}

func fillTimes(m *Map, b board.Board, n int) {
	for i := 0; i < n; i++ {
		m.Fill(b)
	}
}

func randomGrid(size int, r *rand.Rand) *board.Grid {
	g := board.NewGrid(size)
	g.Transform(func(board.Point, board.Stone) board.Stone {
		return board.Stone(r.Intn(board.NumStones))
	})
	return g
}

func randomMap(size, playouts int, r *rand.Rand) *Map {
	m := New(size * size)
	for i := 0; i < playouts; i++ {
		m.Fill(randomGrid(size, r))
	}
	return m
}

func requireConsistent(t *testing.T, m *Map) {
	for p := range m.counts {
		require.Equal(t, m.playouts, utils.Sum(m.counts[p][:]), "Counts of point %d should sum to the playouts", p)
	}
}
