package playout

import (
	"owner/board"

	"golang.org/x/exp/rand"
)

// Playout plays a position out to the end. It must not modify start.
type Playout func(start *board.Grid, r *rand.Rand) board.Board

// RandomFill keeps the stones of start and covers each empty point with a
// random colour, leaving roughly one in five empty.
func RandomFill(start *board.Grid, r *rand.Rand) board.Board {
	end := start.Copy()
	end.Transform(func(p board.Point, s board.Stone) board.Stone {
		if s != board.None {
			return s
		}
		switch r.Intn(5) {
		case 0:
			return board.None
		case 1, 2:
			return board.Black
		default:
			return board.White
		}
	})
	return end
}
