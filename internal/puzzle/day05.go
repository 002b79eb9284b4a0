package puzzle

import (
	"context"
	"io"

	"almanac/internal/almanac"
)

// Default returns a registry with every available solver.
func Default() *Registry {
	r := NewRegistry()
	r.Register(5, 1, almanacPart1)
	r.Register(5, 2, almanacPart2)

	return r
}

func almanacOptions(cfg Config) almanac.Options {
	opts := almanac.DefaultOptions()
	opts.From = cfg.From
	opts.To = cfg.To

	if cfg.Workers > 0 {
		opts.Workers = cfg.Workers
	}

	return opts
}

func almanacPart1(_ context.Context, input io.Reader, cfg Config) (int64, error) {
	a, err := almanac.Parse(input)
	if err != nil {
		return 0, err
	}

	return almanac.SolvePart1(a, almanacOptions(cfg))
}

func almanacPart2(ctx context.Context, input io.Reader, cfg Config) (int64, error) {
	a, err := almanac.Parse(input)
	if err != nil {
		return 0, err
	}

	return almanac.SolvePart2(ctx, a, almanacOptions(cfg))
}
