package remap

import (
	"cmp"
	"slices"
)

// ResolveRange maps r through every mapping of s and returns the resulting
// pieces, uncondensed, in the order: leftovers before the first hit, the hit
// itself, leftovers after it.
func ResolveRange(r Range, s Stage) []Range {
	return resolveFrom(nil, r, s, 0)
}

// resolveFrom appends the image of r under s[i:] to out.
func resolveFrom(out []Range, r Range, s Stage, i int) []Range {
	if r.IsEmpty() {
		return out
	}

	if i == len(s) {
		return append(out, r)
	}

	sp := SplitRange(r, s[i])

	out = resolveFrom(out, sp.Before, s, i+1)
	if !sp.Mapped.IsEmpty() {
		out = append(out, sp.Mapped)
	}

	return resolveFrom(out, sp.After, s, i+1)
}

// ResolveStage maps every range in rs through s and condenses the result.
func ResolveStage(rs []Range, s Stage) []Range {
	var out []Range
	for _, r := range rs {
		out = resolveFrom(out, r, s, 0)
	}

	return Condense(out)
}

// Condense sorts ranges by start (ties: shorter first) and merges ranges that
// touch end-to-start. Empty ranges are dropped. Overlapping ranges are left
// as they are. Condense(Condense(x)) == Condense(x).
func Condense(rs []Range) []Range {
	sorted := make([]Range, 0, len(rs))
	for _, r := range rs {
		if !r.IsEmpty() {
			sorted = append(sorted, r)
		}
	}

	slices.SortFunc(sorted, func(a, b Range) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}

		return cmp.Compare(a.Length, b.Length)
	})

	condensed := make([]Range, 0, len(sorted))

	for _, r := range sorted {
		if n := len(condensed); n > 0 && condensed[n-1].End() == r.Start {
			condensed[n-1].Length += r.Length
			continue
		}

		condensed = append(condensed, r)
	}

	return condensed
}

// TotalLength sums the lengths of rs.
func TotalLength(rs []Range) int64 {
	var total int64
	for _, r := range rs {
		total += r.Length
	}

	return total
}

// Lowest returns the smallest start among rs, or false when rs holds no
// non-empty range.
func Lowest(rs []Range) (int64, bool) {
	var (
		lowest int64
		found  bool
	)

	for _, r := range rs {
		if r.IsEmpty() {
			continue
		}

		if !found || r.Start < lowest {
			lowest, found = r.Start, true
		}
	}

	return lowest, found
}
