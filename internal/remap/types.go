package remap

import (
	"fmt"
	"math"

	"almanac/utils"
)

// Mapping shifts values in [SourceStart, SourceStart+Length) by a fixed offset.
type Mapping struct {
	SourceStart int64
	TargetStart int64
	Length      int64
}

// Shift moves v by the mapping's offset. The offset itself may not fit in an
// int64, so v is measured from SourceStart first. v must lie in the source
// interval.
func (m Mapping) Shift(v int64) int64 {
	return m.TargetStart + (v - m.SourceStart)
}

// SourceEnd returns the exclusive end of the source interval.
func (m Mapping) SourceEnd() int64 {
	return m.SourceStart + m.Length
}

// Contains reports whether v lies in the source interval.
func (m Mapping) Contains(v int64) bool {
	return utils.InSpan(m.SourceStart, v, m.Length)
}

// Source returns the source interval as a Range.
func (m Mapping) Source() Range {
	return Range{Start: m.SourceStart, Length: m.Length}
}

// Overflows reports whether the source or target interval would end past
// math.MaxInt64. Such mappings cannot be represented as half-open ranges.
func (m Mapping) Overflows() bool {
	return endOverflows(m.SourceStart, m.Length) || endOverflows(m.TargetStart, m.Length)
}

// String returns the mapping in almanac line order: target source length.
func (m Mapping) String() string {
	return fmt.Sprintf("%d %d %d", m.TargetStart, m.SourceStart, m.Length)
}

// Range is the half-open interval [Start, Start+Length).
type Range struct {
	Start  int64
	Length int64
}

// End returns the exclusive end of the range.
func (r Range) End() int64 {
	return r.Start + r.Length
}

// IsEmpty reports whether the range covers no values.
func (r Range) IsEmpty() bool {
	return r.Length <= 0
}

// Overflows reports whether the range would end past math.MaxInt64.
func (r Range) Overflows() bool {
	return endOverflows(r.Start, r.Length)
}

func endOverflows(start, length int64) bool {
	return length > 0 && start > math.MaxInt64-length
}

func (r Range) String() string {
	return fmt.Sprintf("(%d,%d)", r.Start, r.Length)
}

// Point returns the single-value range {v, 1}.
func Point(v int64) Range {
	return Range{Start: v, Length: 1}
}

// Stage is one ordered layer of mappings.
type Stage []Mapping

// Lookup maps a single value through the stage. The first mapping whose
// source interval contains v wins; unmatched values are returned unchanged.
func (s Stage) Lookup(v int64) int64 {
	for _, m := range s {
		if m.Contains(v) {
			return m.Shift(v)
		}
	}

	return v
}

// Overlaps returns index pairs of mappings whose source intervals intersect.
// Such mappings are legal; the earlier one shadows the later one.
func (s Stage) Overlaps() [][2]int {
	var pairs [][2]int

	for i := range s {
		for j := i + 1; j < len(s); j++ {
			lo := max(s[i].SourceStart, s[j].SourceStart)
			hi := min(s[i].SourceEnd(), s[j].SourceEnd())

			if lo < hi {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	return pairs
}
