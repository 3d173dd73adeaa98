package ownermap

import (
	"owner/board"
)

type Judgement int

const (
	Dame Judgement = iota
	BlackOwned
	WhiteOwned
	Unknown
)

const (
	// GroupThreshold separates settled points from unclear ones.
	GroupThreshold = 0.8
	// ScoreThreshold is used where a rough estimate is good enough.
	ScoreThreshold = 0.67
)

var judgementColors = map[Judgement]board.Stone{
	Dame:       board.None,
	BlackOwned: board.Black,
	WhiteOwned: board.White,
	Unknown:    board.None,
}

var colorJudgements = map[board.Stone]Judgement{
	board.None:  Dame,
	board.Black: BlackOwned,
	board.White: WhiteOwned,
}

func (j Judgement) String() string {
	switch j {
	case Dame:
		return "dame"
	case BlackOwned:
		return "black"
	case WhiteOwned:
		return "white"
	default:
		return "unknown"
	}
}

// Stone returns the colour a judgement awards the point to, None for dame
// and unknown points.
func (j Judgement) Stone() board.Stone {
	return judgementColors[j]
}

func judgementOf(s board.Stone) Judgement {
	return colorJudgements[s]
}

func (m *Map) mustHavePlayouts() {
	if m.playouts == 0 {
		panic("cannot judge ownership: 0 playouts")
	}
}

// Estimate returns the ownership lean of p in [-1, 1]; positive favours black.
func (m *Map) Estimate(p board.Point) float64 {
	m.mustHavePlayouts()

	b := m.counts[p][board.Black]
	w := m.counts[p][board.White]
	return float64(b-w) / float64(m.playouts)
}

// Judge classifies p by majority vote. Unclaimed outcomes count towards
// either colour; dame is tried first, then black, then white.
func (m *Map) Judge(p board.Point, thres float64) Judgement {
	m.mustHavePlayouts()

	n := m.counts[p][board.None]
	b := m.counts[p][board.Black]
	w := m.counts[p][board.White]
	needed := float64(m.playouts) * thres

	switch {
	case float64(n) >= needed:
		return Dame
	case float64(n+b) >= needed:
		return BlackOwned
	case float64(n+w) >= needed:
		return WhiteOwned
	default:
		return Unknown
	}
}

func (m *Map) Color(p board.Point, thres float64) board.Stone {
	return m.Judge(p, thres).Stone()
}
