package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
)

// ErrUnknownPuzzle is returned when no solver is registered for a selector.
var ErrUnknownPuzzle = errors.New("no solver registered")

// Solver computes one answer from a puzzle input.
type Solver func(ctx context.Context, input io.Reader, cfg Config) (int64, error)

// Registry maps selectors to solvers.
type Registry struct {
	solvers map[Selector]Solver
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[Selector]Solver)}
}

// Register adds a solver for day and part, replacing any previous one.
func (r *Registry) Register(day, part int, s Solver) {
	r.solvers[Selector{Day: day, Part: part}] = s
}

// Lookup returns the solver for sel.
func (r *Registry) Lookup(sel Selector) (Solver, error) {
	s, ok := r.solvers[sel]
	if !ok {
		return nil, fmt.Errorf("%w for day %d part %d (registered days: %v)",
			ErrUnknownPuzzle, sel.Day, sel.Part, r.Days())
	}

	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make(map[int]struct{})
	for sel := range r.solvers {
		days[sel.Day] = struct{}{}
	}

	return slices.Sorted(maps.Keys(days))
}
