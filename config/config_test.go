package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.NoError(t, err)
		require.Equal(t, Default(), c)
		require.NoError(t, c.Validate())
	})

	t.Run("overriding defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
goroutines: 2
sweep: [1, 2, 4]
playouts: 0
duration: 250ms
komi: 6.5
position: |
  X..
  ...
  ..O
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		c, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 2, c.Goroutines)
		require.Equal(t, []int{1, 2, 4}, c.GoroutineCounts())
		require.Equal(t, 250*time.Millisecond, c.Duration)
		require.Equal(t, 6.5, c.Komi)
		require.Equal(t, DefaultBoardSize, c.BoardSize, "Unset fields should keep their defaults")
		require.Contains(t, c.Position, "..O")
	})

	t.Run("rejecting malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("goroutines: [oops"), 0600))

		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("rejecting invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("goroutines: 0"), 0600))

		_, err := Load(path)
		require.ErrorContains(t, err, "goroutines")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"no goroutines", func(c *Config) { c.Goroutines = 0 }},
		{"bad sweep", func(c *Config) { c.Sweep = []int{1, -2} }},
		{"repeated sweep", func(c *Config) { c.Sweep = []int{1, 4, 1} }},
		{"no budget", func(c *Config) { c.Playouts = 0; c.Duration = 0 }},
		{"no board", func(c *Config) { c.BoardSize = 0 }},
		{"negative handicap", func(c *Config) { c.Handicap = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(c)
			require.Error(t, c.Validate())
		})
	}

	t.Run("position without board size", func(t *testing.T) {
		c := Default()
		c.BoardSize = 0
		c.Position = "X"
		require.NoError(t, c.Validate())
	})
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c := Default()
	c.Duration = 2 * time.Second
	c.Sweep = []int{1, 8}
	c.Seed = 42

	require.NoError(t, c.Save(path))
	got, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, c, got)
}
