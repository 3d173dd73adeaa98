package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b"}, "b"))
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
}

func TestSum(t *testing.T) {
	require.Equal(t, 6, Sum([]int{1, 2, 3}))
	require.InDelta(t, 1.5, Sum([]float64{0.5, 1}), 1e-9)
	require.Equal(t, 0, Sum([]int(nil)))
}
