package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"owner/utils"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGoroutines = 8
	DefaultPlayouts   = 1000
	DefaultBoardSize  = 9
	DefaultKomi       = 7.5
	DefaultOutput     = "experiments"
)

// Config describes one ownership experiment.
type Config struct {
	Goroutines int `yaml:"goroutines"`
	// Sweep lists goroutine counts to run one after the other; empty runs
	// Goroutines once.
	Sweep     []int         `yaml:"sweep"`
	Playouts  int           `yaml:"playouts"`
	Duration  time.Duration `yaml:"duration"`
	Seed      uint64        `yaml:"seed"`
	BoardSize int           `yaml:"board"`
	Position  string        `yaml:"position"` // rows of .XO, overrides BoardSize
	Komi      float64       `yaml:"komi"`
	Handicap  int           `yaml:"handicap"`
	Output    string        `yaml:"output"`
}

func Default() *Config {
	return &Config{
		Goroutines: DefaultGoroutines,
		Playouts:   DefaultPlayouts,
		BoardSize:  DefaultBoardSize,
		Komi:       DefaultKomi,
		Output:     DefaultOutput,
	}
}

// Load reads a YAML config over the defaults. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Goroutines <= 0 {
		return fmt.Errorf("goroutines must be positive, got %d", c.Goroutines)
	}
	for i, n := range c.Sweep {
		if n <= 0 {
			return fmt.Errorf("sweep goroutines must be positive, got %d", n)
		}
		if utils.FindIndex(c.Sweep[:i], n) >= 0 {
			return fmt.Errorf("sweep lists %d goroutines twice", n)
		}
	}
	if c.Playouts <= 0 && c.Duration <= 0 {
		return errors.New("playouts or duration must be set")
	}
	if c.Position == "" && c.BoardSize <= 0 {
		return fmt.Errorf("board size must be positive, got %d", c.BoardSize)
	}
	if c.Handicap < 0 {
		return fmt.Errorf("handicap must not be negative, got %d", c.Handicap)
	}
	return nil
}

// GoroutineCounts returns the goroutine count of every run.
func (c *Config) GoroutineCounts() []int {
	if len(c.Sweep) > 0 {
		return c.Sweep
	}
	return []int{c.Goroutines}
}

func (c *Config) Save(path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, b, 0600); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
