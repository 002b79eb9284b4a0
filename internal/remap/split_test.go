package remap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRange(t *testing.T) {
	m := Mapping{TargetStart: 40, SourceStart: 20, Length: 10}

	tests := []struct {
		name     string
		input    Range
		mapping  Mapping
		expected Split
	}{
		{
			name:     "no overlap left",
			input:    Range{Start: 5, Length: 10},
			mapping:  m,
			expected: Split{After: Range{Start: 5, Length: 10}},
		},
		{
			name:     "no overlap right",
			input:    Range{Start: 30, Length: 10},
			mapping:  m,
			expected: Split{After: Range{Start: 30, Length: 10}},
		},
		{
			name:     "exact match",
			input:    Range{Start: 20, Length: 10},
			mapping:  m,
			expected: Split{Mapped: Range{Start: 40, Length: 10}},
		},
		{
			name:     "source enclosed",
			input:    Range{Start: 22, Length: 8},
			mapping:  m,
			expected: Split{Mapped: Range{Start: 42, Length: 8}},
		},
		{
			name:    "some preceding numbers",
			input:   Range{Start: 18, Length: 8},
			mapping: m,
			expected: Split{
				Mapped: Range{Start: 40, Length: 6},
				Before: Range{Start: 18, Length: 2},
			},
		},
		{
			name:    "some following numbers",
			input:   Range{Start: 24, Length: 8},
			mapping: m,
			expected: Split{
				Mapped: Range{Start: 44, Length: 6},
				After:  Range{Start: 30, Length: 2},
			},
		},
		{
			name:    "preceding and following numbers",
			input:   Range{Start: 18, Length: 14},
			mapping: m,
			expected: Split{
				Mapped: Range{Start: 40, Length: 10},
				Before: Range{Start: 18, Length: 2},
				After:  Range{Start: 30, Length: 2},
			},
		},
		{
			name:     "zero length mapping never overlaps",
			input:    Range{Start: 18, Length: 14},
			mapping:  Mapping{TargetStart: 40, SourceStart: 20, Length: 0},
			expected: Split{After: Range{Start: 18, Length: 14}},
		},
		{
			name:     "negative shift",
			input:    Range{Start: 98, Length: 2},
			mapping:  Mapping{TargetStart: 50, SourceStart: 98, Length: 2},
			expected: Split{Mapped: Range{Start: 50, Length: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitRange(tt.input, tt.mapping)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.input.Length, got.Before.Length+got.Mapped.Length+got.After.Length)
		})
	}
}

func TestOverflows(t *testing.T) {
	assert.False(t, Mapping{TargetStart: 50, SourceStart: 98, Length: 2}.Overflows())
	assert.False(t, Mapping{TargetStart: math.MaxInt64 - 2, SourceStart: 0, Length: 2}.Overflows())
	assert.True(t, Mapping{TargetStart: 0, SourceStart: math.MaxInt64 - 1, Length: 2}.Overflows())
	assert.True(t, Mapping{TargetStart: math.MaxInt64, SourceStart: 0, Length: 1}.Overflows())
	assert.False(t, Mapping{TargetStart: math.MaxInt64, SourceStart: 0, Length: 0}.Overflows())

	assert.False(t, Range{Start: math.MinInt64, Length: math.MaxInt64}.Overflows())
	assert.True(t, Range{Start: math.MaxInt64, Length: 1}.Overflows())
}

func TestSplitRangeExtremeOffset(t *testing.T) {
	// TargetStart-SourceStart does not fit in an int64.
	m := Mapping{TargetStart: math.MaxInt64 - 10, SourceStart: -20, Length: 5}
	require.False(t, m.Overflows())

	got := SplitRange(Range{Start: -18, Length: 2}, m)
	assert.Equal(t, Range{Start: math.MaxInt64 - 8, Length: 2}, got.Mapped)
	assert.True(t, got.Before.IsEmpty())
	assert.True(t, got.After.IsEmpty())
	assert.Equal(t, int64(math.MaxInt64-8), Stage{m}.Lookup(-18))
}
