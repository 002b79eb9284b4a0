package remap

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ResolveStageConcurrent is ResolveStage with input ranges resolved on up to
// workers goroutines. The output is identical to ResolveStage. The only error
// returned is the context's.
func ResolveStageConcurrent(ctx context.Context, rs []Range, s Stage, workers int) ([]Range, error) {
	if workers <= 1 || len(rs) <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		return ResolveStage(rs, s), nil
	}

	parts := make([][]Range, len(rs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, r := range rs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			parts[i] = ResolveRange(r, s)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Range
	for _, part := range parts {
		out = append(out, part...)
	}

	return Condense(out), nil
}

// ResolveRangesConcurrent is ResolveRanges using ResolveStageConcurrent for
// every stage.
func (p Pipeline) ResolveRangesConcurrent(ctx context.Context, rs []Range, workers int) ([]Range, error) {
	out := Condense(rs)

	for _, s := range p {
		var err error

		out, err = ResolveStageConcurrent(ctx, out, s, workers)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
