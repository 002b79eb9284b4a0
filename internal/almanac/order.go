package almanac

import (
	"fmt"
	"sort"
)

// Ordered returns the sections so that a block mapping into a category runs
// before any block mapping out of it. Ties keep file order.
func (a *Almanac) Ordered() ([]Section, error) {
	order, err := topoSort(len(a.Sections), func(i int) []int {
		var deps []int

		from := a.Sections[i].From
		if from == "" {
			return nil
		}

		for j, s := range a.Sections {
			if j != i && s.To == from {
				deps = append(deps, j)
			}
		}

		return deps
	})
	if err != nil {
		return nil, err
	}

	sections := make([]Section, 0, len(order))
	for _, i := range order {
		sections = append(sections, a.Sections[i])
	}

	return sections, nil
}

// topoSort returns indices in execution order.
//
// Nodes are by index; depsFn(i) yields indices that must come before i.
// When several nodes are ready the smallest index goes first, so the result
// is deterministic. A cycle yields ErrCycle.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		return nil, fmt.Errorf("%w: %d of %d blocks are part of a loop", ErrCycle, n-len(order), n)
	}

	return order, nil
}
