package puzzle

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// Runner resolves selectors against a registry and runs them.
type Runner struct {
	registry *Registry
	config   Config
	logger   *zap.Logger
}

// NewRunner creates a Runner. A nil logger disables logging.
func NewRunner(registry *Registry, config Config, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{
		registry: registry,
		config:   config,
		logger:   logger,
	}
}

// Run solves sel using the configured input file.
func (r *Runner) Run(ctx context.Context, sel Selector) (int64, error) {
	solver, err := r.registry.Lookup(sel)
	if err != nil {
		return 0, err
	}

	path := r.config.InputPath(sel.Day)

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open input for %s: %w", sel, err)
	}
	defer f.Close()

	r.logger.Debug("Solving puzzle",
		zap.Stringer("selector", sel),
		zap.String("input", path),
		zap.Int("workers", r.config.Workers))

	start := time.Now()

	answer, err := solver(ctx, f, r.config)
	if err != nil {
		r.logger.Warn("Puzzle failed", zap.Stringer("selector", sel), zap.Error(err))
		return 0, fmt.Errorf("failed to solve %s: %w", sel, err)
	}

	r.logger.Info("Puzzle solved",
		zap.Stringer("selector", sel),
		zap.Int64("answer", answer),
		zap.Duration("elapsed", time.Since(start)))

	return answer, nil
}
