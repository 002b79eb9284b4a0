package almanac

import (
	"context"
	"fmt"
	"slices"

	"almanac/internal/remap"
)

// Options selects the route and the parallelism used to solve an almanac.
type Options struct {
	// From and To name the categories to route between; empty means the
	// first and last categories of the chain.
	From string
	To   string
	// Workers bounds the goroutines used for part 2 (<= 1 is sequential).
	Workers int
}

// DefaultOptions returns the default solving options.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// Locations maps every seed through the route and returns the results in
// seed order.
func Locations(a *Almanac, opts Options) ([]int64, error) {
	p, err := a.Route(opts.From, opts.To)
	if err != nil {
		return nil, err
	}

	locations := make([]int64, 0, len(a.Seeds))
	for _, seed := range a.Seeds {
		locations = append(locations, p.ResolvePoint(seed))
	}

	return locations, nil
}

// SolvePart1 returns the lowest location of any single seed.
func SolvePart1(a *Almanac, opts Options) (int64, error) {
	if len(a.Seeds) == 0 {
		return 0, ErrNoSeeds
	}

	locations, err := Locations(a, opts)
	if err != nil {
		return 0, err
	}

	return slices.Min(locations), nil
}

// RangeLocations maps the seed ranges through the route and returns the
// condensed final ranges.
func RangeLocations(ctx context.Context, a *Almanac, opts Options) ([]remap.Range, error) {
	seeds, err := a.SeedRanges()
	if err != nil {
		return nil, err
	}

	p, err := a.Route(opts.From, opts.To)
	if err != nil {
		return nil, err
	}

	return p.ResolveRangesConcurrent(ctx, seeds, opts.Workers)
}

// SolvePart2 returns the lowest location reachable from any seed range.
func SolvePart2(ctx context.Context, a *Almanac, opts Options) (int64, error) {
	ranges, err := RangeLocations(ctx, a, opts)
	if err != nil {
		return 0, err
	}

	lowest, ok := remap.Lowest(ranges)
	if !ok {
		return 0, fmt.Errorf("%w: every seed range is empty", ErrNoSeeds)
	}

	return lowest, nil
}
