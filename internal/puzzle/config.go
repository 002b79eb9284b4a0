package puzzle

import (
	"fmt"
	"path/filepath"
)

// Config holds the settings for running a puzzle.
type Config struct {
	// DataDir holds per-day input directories (dayNN/input.txt).
	DataDir string
	// Input overrides the input path derived from DataDir.
	Input string
	// Workers bounds the goroutines a solver may use (<= 1 is sequential).
	Workers int
	// From and To restrict solvers that route between named categories.
	From string
	To   string
}

// DefaultConfig returns the default run configuration.
func DefaultConfig() Config {
	return Config{
		DataDir: "data",
		Workers: 1,
	}
}

// InputPath returns the input file for day.
func (c Config) InputPath(day int) string {
	if c.Input != "" {
		return c.Input
	}

	return filepath.Join(c.DataDir, fmt.Sprintf("day%02d", day), "input.txt")
}
