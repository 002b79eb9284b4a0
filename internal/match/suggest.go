package match

import (
	"cmp"
	"slices"
)

// DefaultMinSimilarity is the lowest score a candidate needs to be suggested.
const DefaultMinSimilarity = 0.5

// Suggestion is a candidate name with its similarity to the query.
type Suggestion struct {
	Name  string
	Score float64
}

// Suggest returns up to limit candidates whose similarity to name is at least
// minScore, best first. Ties keep candidate order. A limit <= 0 means no limit.
func Suggest(name string, candidates []string, limit int, minScore float64) []Suggestion {
	var out []Suggestion

	for _, c := range candidates {
		score := Similarity(name, c)
		if score >= minScore {
			out = append(out, Suggestion{Name: c, Score: score})
		}
	}

	slices.SortStableFunc(out, func(a, b Suggestion) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}

// SuggestNames is Suggest with default thresholds, returning names only.
func SuggestNames(name string, candidates []string, limit int) []string {
	suggestions := Suggest(name, candidates, limit, DefaultMinSimilarity)

	names := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		names = append(names, s.Name)
	}

	return names
}
