package remap

// Split is the result of cutting one range against one mapping.
//
// Mapped holds the overlap already shifted into target space. Before and
// After hold the unmapped pieces preceding and following the mapping's source
// interval. When nothing overlaps, the whole input sits in After.
type Split struct {
	Mapped Range
	Before Range
	After  Range
}

// SplitRange cuts r against m.
func SplitRange(r Range, m Mapping) Split {
	lo := max(r.Start, m.SourceStart)
	hi := min(r.End(), m.SourceEnd())

	if m.Length <= 0 || r.IsEmpty() || lo >= hi {
		return Split{After: r}
	}

	var sp Split

	if r.Start < lo {
		sp.Before = Range{Start: r.Start, Length: lo - r.Start}
	}

	if r.End() > hi {
		sp.After = Range{Start: hi, Length: r.End() - hi}
	}

	sp.Mapped = Range{Start: m.Shift(lo), Length: hi - lo}

	return sp
}
