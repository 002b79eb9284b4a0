package remap

// Pipeline is an ordered list of stages; each stage's output feeds the next.
type Pipeline []Stage

// ResolvePoint maps a single value through every stage.
func (p Pipeline) ResolvePoint(v int64) int64 {
	for _, s := range p {
		v = s.Lookup(v)
	}

	return v
}

// Trace returns v after each stage. The result has one entry per stage.
func (p Pipeline) Trace(v int64) []int64 {
	trace := make([]int64, 0, len(p))
	for _, s := range p {
		v = s.Lookup(v)
		trace = append(trace, v)
	}

	return trace
}

// ResolveRanges threads rs through every stage and returns the condensed
// final ranges. An empty pipeline only condenses the input.
func (p Pipeline) ResolveRanges(rs []Range) []Range {
	out := Condense(rs)
	for _, s := range p {
		out = ResolveStage(out, s)
	}

	return out
}
