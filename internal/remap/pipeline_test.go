package remap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// examplePipeline is the seven-stage seed → location almanac.
func examplePipeline() Pipeline {
	m := func(target, source, length int64) Mapping {
		return Mapping{TargetStart: target, SourceStart: source, Length: length}
	}

	return Pipeline{
		{m(50, 98, 2), m(52, 50, 48)},
		{m(0, 15, 37), m(37, 52, 2), m(39, 0, 15)},
		{m(49, 53, 8), m(0, 11, 42), m(42, 0, 7), m(57, 7, 4)},
		{m(88, 18, 7), m(18, 25, 70)},
		{m(45, 77, 23), m(81, 45, 19), m(68, 64, 13)},
		{m(0, 69, 1), m(1, 0, 69)},
		{m(60, 56, 37), m(56, 93, 4)},
	}
}

func TestPipelineResolvePoint(t *testing.T) {
	p := examplePipeline()

	seeds := []int64{79, 14, 55, 13}
	expected := []int64{82, 43, 86, 35}

	for i, seed := range seeds {
		assert.Equal(t, expected[i], p.ResolvePoint(seed), "seed %d", seed)
	}
}

func TestPipelineTrace(t *testing.T) {
	// Seed 79, soil 81, fertilizer 81, water 81, light 74, temperature 78,
	// humidity 78, location 82.
	assert.Equal(t, []int64{81, 81, 81, 74, 78, 78, 82}, examplePipeline().Trace(79))
	assert.Empty(t, Pipeline{}.Trace(79))
}

func TestPipelineResolveRanges(t *testing.T) {
	got := examplePipeline().ResolveRanges([]Range{{Start: 79, Length: 14}, {Start: 55, Length: 13}})

	lowest, ok := Lowest(got)
	assert.True(t, ok)
	assert.Equal(t, int64(46), lowest)

	var starts []int64
	for _, r := range got {
		starts = append(starts, r.Start)
	}

	if diff := cmp.Diff([]int64{46, 82, 86, 94}, starts); diff != "" {
		t.Errorf("final range starts mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, int64(27), TotalLength(got))
}

func TestPipelineRangeMatchesPoints(t *testing.T) {
	p := examplePipeline()

	for x := int64(0); x < 100; x++ {
		got := p.ResolveRanges([]Range{Point(x)})
		assert.Equal(t, []Range{Point(p.ResolvePoint(x))}, got, "x=%d", x)
	}
}

func TestEmptyPipeline(t *testing.T) {
	in := []Range{{Start: 55, Length: 13}, {Start: 79, Length: 14}}
	assert.Equal(t, in, Pipeline{}.ResolveRanges(in))
	assert.Equal(t, int64(7), Pipeline{}.ResolvePoint(7))
}
