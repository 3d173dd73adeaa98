package ownermap

import (
	"fmt"
	"strings"

	"owner/board"
)

var strictSymbols = map[Judgement]byte{
	Dame:       ':',
	BlackOwned: 'X',
	WhiteOwned: 'O',
	Unknown:    ',',
}

var looseSymbols = map[Judgement]byte{
	Dame:       ':',
	BlackOwned: 'x',
	WhiteOwned: 'o',
	Unknown:    ',',
}

// Symbol returns the display character of p, falling back to the rough
// estimate when the confident one is unclear.
func Symbol(m *Map, p board.Point) byte {
	j := m.Judge(p, GroupThreshold)
	if j == Unknown {
		return looseSymbols[m.Judge(p, ScoreThreshold)]
	}
	return strictSymbols[j]
}

// Render draws the ownership of every point, Size() points per line. A nil
// or empty map renders placeholders and no score line.
func Render(b board.Board, m *Map) string {
	var sb strings.Builder
	hasData := m != nil && m.Playouts() > 0
	if hasData {
		fmt.Fprintf(&sb, "Score Est: %s\n", ScoreLabel(b, m))
	}

	n := b.NumPoints()
	width := b.Size()
	if width <= 0 {
		width = n
	}
	for i := 0; i < n; i++ {
		if hasData {
			sb.WriteByte(Symbol(m, board.Point(i)))
			sb.WriteByte(' ')
		} else {
			sb.WriteString(". ")
		}
		if (i+1)%width == 0 || i == n-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
