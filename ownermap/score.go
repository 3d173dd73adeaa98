package ownermap

import (
	"fmt"
	"math"

	"owner/board"
)

// ScorePoint judges p for scoring. A stone on a point without a confident
// owner is assumed alive.
func ScorePoint(b board.Board, m *Map, p board.Point) Judgement {
	j := m.Judge(p, ScoreThreshold)
	s := b.At(p)
	if j != BlackOwned && j != WhiteOwned && s != board.None {
		return judgementOf(s)
	}
	return j
}

// Score estimates the final score from white's point of view.
func Score(b board.Board, m *Map) float64 {
	var tally [Unknown + 1]int
	for i := 0; i < b.NumPoints(); i++ {
		tally[ScorePoint(b, m, board.Point(i))]++
	}

	white := float64(tally[WhiteOwned]) + b.Komi() + float64(b.HandicapCompensation())
	return white - float64(tally[BlackOwned])
}

// ScoreFor returns the estimate from color's point of view.
func ScoreFor(b board.Board, m *Map, color board.Stone) float64 {
	score := Score(b, m)
	if color == board.Black {
		return -score
	}
	return score
}

// ScoreLabel renders the estimate as e.g. "W+6.5" or "B+2.0".
func ScoreLabel(b board.Board, m *Map) string {
	s := Score(b, m)
	leader := board.Black
	if s > 0 {
		leader = board.White
	}
	return fmt.Sprintf("%s+%.1f", leaderMark(leader), math.Abs(s))
}

func leaderMark(s board.Stone) string {
	if s == board.White {
		return "W"
	}
	return "B"
}
