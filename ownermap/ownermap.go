// Package ownermap accumulates final point ownership over many playouts and
// derives point, group and score judgements from it.
//
// A Map is filled by exactly one goroutine at a time. Maps filled by separate
// workers are combined with Merge once all of them have finished; only then
// may the result be judged.
package ownermap

import (
	"fmt"

	"owner/board"
	"owner/utils"
)

// Map counts, for every point, how many playouts ended with each occupancy.
// One-point eyes are credited to the enclosing colour.
type Map struct {
	playouts int
	counts   [][board.NumStones]int
}

func New(numPoints int) *Map {
	return &Map{
		counts: make([][board.NumStones]int, numPoints),
	}
}

func (m *Map) NumPoints() int {
	return len(m.counts)
}

func (m *Map) Playouts() int {
	return m.playouts
}

func (m *Map) Count(p board.Point, s board.Stone) int {
	return m.counts[p][s]
}

// Fill records the final position of one playout.
func (m *Map) Fill(b board.Board) {
	if b.NumPoints() != len(m.counts) {
		panic(fmt.Sprintf("board has %d points, map has %d", b.NumPoints(), len(m.counts)))
	}

	m.playouts++
	for i := range m.counts {
		p := board.Point(i)
		color := b.At(p)
		if color == board.None {
			color = b.OnePointEye(p)
		}
		m.counts[p][color]++
	}
}

// Merge adds the statistics of src into m.
func (m *Map) Merge(src *Map) {
	if len(src.counts) != len(m.counts) {
		panic(fmt.Sprintf("cannot merge map of %d points into map of %d points", len(src.counts), len(m.counts)))
	}
	src.mustBeConsistent()

	m.playouts += src.playouts
	for i := range m.counts {
		for j := range m.counts[i] {
			m.counts[i][j] += src.counts[i][j]
		}
	}
}

// mustBeConsistent checks that every point accounts for every playout.
func (m *Map) mustBeConsistent() {
	for i := range m.counts {
		if total := utils.Sum(m.counts[i][:]); total != m.playouts {
			panic(fmt.Sprintf("point %d counts %d outcomes for %d playouts", i, total, m.playouts))
		}
	}
}
