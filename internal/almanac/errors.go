package almanac

import "errors"

var (
	// ErrNoSeeds is returned when solving an almanac without seeds.
	ErrNoSeeds = errors.New("almanac has no seeds")
	// ErrOddSeeds is returned when seeds cannot be paired into ranges.
	ErrOddSeeds = errors.New("seed ranges need an even number of seed values")
	// ErrSeedOverflow is returned when a seed range ends past the largest int64.
	ErrSeedOverflow = errors.New("seed range overflows")
	// ErrUnknownCategory is returned when a route names a category no block uses.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrNoRoute is returned when no chain of blocks links two categories.
	ErrNoRoute = errors.New("no route between categories")
	// ErrCycle is returned when blocks map categories in a loop.
	ErrCycle = errors.New("category cycle detected")
)
