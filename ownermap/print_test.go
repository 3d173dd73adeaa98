package ownermap

import (
	"owner/board"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymbol(t *testing.T) {
	m := mapOf(
		[3]int{10, 0, 0},
		[3]int{0, 9, 1},
		[3]int{1, 0, 9},
		[3]int{0, 7, 3},
		[3]int{0, 3, 7},
		[3]int{0, 5, 5},
	)

	got := ""
	for p := 0; p < m.NumPoints(); p++ {
		got += string(Symbol(m, board.Point(p)))
	}
	require.Equal(t, ":XOxo,", got)
}

func TestRender(t *testing.T) {
	t.Run("placeholders without data", func(t *testing.T) {
		g := board.NewGrid(2)

		require.Equal(t, ". . \n. . \n", Render(g, nil))
		require.Equal(t, ". . \n. . \n", Render(g, New(4)))
	})

	t.Run("score header and symbols", func(t *testing.T) {
		g, err := board.Parse(`
			X.
			.O`)
		require.NoError(t, err)
		g.WithKomi(0.5)
		m := New(g.NumPoints())
		fillTimes(m, g, 10)

		lines := strings.Split(Render(g, m), "\n")

		require.Equal(t, "Score Est: W+0.5", lines[0])
		require.Equal(t, "X : ", lines[1])
		require.Equal(t, ": O ", lines[2])
	})
}

func TestRenderNonSquare(t *testing.T) {
	t.Run("single row", func(t *testing.T) {
		b := newLineBoard(board.None, board.Black, board.None)
		m := New(3)
		fillTimes(m, b, 10)

		require.Equal(t, "Score Est: B+1.0\n: X : \n", Render(b, m))
	})

	t.Run("wrapping a partial last row", func(t *testing.T) {
		b := newLineBoard(board.None, board.None, board.None, board.None, board.White)
		b.width = 2
		m := New(5)
		fillTimes(m, b, 10)

		require.Equal(t, "Score Est: W+1.0\n: : \n: : \nO \n", Render(b, m))
		require.Equal(t, ". . \n. . \n. \n", Render(b, nil))
	})
}
