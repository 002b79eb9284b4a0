package almanac

import (
	"fmt"
	"slices"

	"almanac/internal/common"
	"almanac/internal/diagnostic"
	"almanac/internal/match"
	"almanac/internal/remap"
)

const maxSuggestions = 3

// Route returns the pipeline carrying values from category from to category
// to. With neither given, every block runs in file order. Otherwise blocks are
// chained by name: an empty from starts at the first block in dependency
// order, an empty to ends at the last one. Routing a category to itself is
// the identity.
func (a *Almanac) Route(from, to string) (remap.Pipeline, error) {
	if from == "" && to == "" {
		return a.Pipeline(), nil
	}

	sections, err := a.Ordered()
	if err != nil {
		return nil, err
	}

	if from == "" {
		first, ok := common.First(sections)
		if !ok {
			return nil, unknownCategory(to, nil)
		}

		if first.From == "" {
			return nil, fmt.Errorf("%w: block %q has no source category", ErrNoRoute, first.Name)
		}

		from = first.From
	}

	if to == "" {
		last, _ := common.Last(sections)
		if last.To == "" {
			return nil, fmt.Errorf("%w: block %q has no target category", ErrNoRoute, last.Name)
		}

		to = last.To
	}

	categories := a.Categories()
	for _, c := range []string{from, to} {
		if !slices.Contains(categories, c) {
			return nil, unknownCategory(c, categories)
		}
	}

	next := make(map[string]Section)
	for _, s := range sections {
		if _, dup := next[s.From]; !dup && s.From != "" {
			next[s.From] = s
		}
	}

	var (
		p       remap.Pipeline
		visited = map[string]bool{from: true}
	)

	for cur := from; cur != to; {
		s, ok := next[cur]
		if !ok {
			return nil, fmt.Errorf("%w: nothing maps %q on the way to %q", ErrNoRoute, cur, to)
		}

		if visited[s.To] {
			return nil, fmt.Errorf("%w: %s revisits %q", ErrCycle, s.Name, s.To)
		}

		visited[s.To] = true
		p = append(p, s.Mappings)
		cur = s.To
	}

	return p, nil
}

func unknownCategory(name string, categories []string) error {
	d := diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticError,
		Code:        diagnostic.CodeUnknownCategory,
		Message:     fmt.Sprintf("%q is not a category of this almanac", name),
		Suggestions: match.SuggestNames(name, categories, maxSuggestions),
	}

	return fmt.Errorf("%w: %s", ErrUnknownCategory, d.String())
}
