package almanac

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/internal/diagnostic"
	"almanac/internal/remap"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line     string
		expected LineKind
	}{
		{"", LineBlank},
		{"   ", LineBlank},
		{"seeds: 79 14 55 13", LineSeeds},
		{"seed-to-soil map:", LineHeader},
		{"50 98 2", LineMapping},
		{"1 2 3 4 5", LineMapping},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String()+"/"+tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyLine(tt.line))
		})
	}
}

func TestLineKindString(t *testing.T) {
	assert.Equal(t, "blank", LineBlank.String())
	assert.Equal(t, "seeds", LineSeeds.String())
	assert.Equal(t, "header", LineHeader.String())
	assert.Equal(t, "mapping", LineMapping.String())
	assert.Equal(t, "LineKind(9)", LineKind(9).String())
}

func TestLoadFile(t *testing.T) {
	a, err := LoadFile("testdata/example.txt")
	require.NoError(t, err)

	assert.Equal(t, []int64{79, 14, 55, 13}, a.Seeds)
	require.Len(t, a.Sections, 7)
	assert.Empty(t, a.Diagnostics.Warnings)
	assert.Empty(t, a.Diagnostics.Infos)

	first := a.Sections[0]
	assert.Equal(t, "seed-to-soil", first.Name)
	assert.Equal(t, "seed", first.From)
	assert.Equal(t, "soil", first.To)
	assert.Equal(t, 3, first.Line)
	assert.Equal(t, remap.Stage{
		{TargetStart: 50, SourceStart: 98, Length: 2},
		{TargetStart: 52, SourceStart: 50, Length: 48},
	}, first.Mappings)

	assert.Equal(t, remap.Stage{
		{TargetStart: 49, SourceStart: 53, Length: 8},
		{TargetStart: 0, SourceStart: 11, Length: 42},
		{TargetStart: 42, SourceStart: 0, Length: 7},
		{TargetStart: 57, SourceStart: 7, Length: 4},
	}, a.Sections[2].Mappings)

	assert.Equal(t, remap.Stage{
		{TargetStart: 60, SourceStart: 56, Length: 37},
		{TargetStart: 56, SourceStart: 93, Length: 4},
	}, a.Sections[6].Mappings)

	assert.Equal(t,
		[]string{"seed", "soil", "fertilizer", "water", "light", "temperature", "humidity", "location"},
		a.Categories())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open almanac")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  string
		line  string
	}{
		{
			name:  "wrong field count",
			input: "seeds: 1 2\n\nseed-to-soil map:\n50 98\n",
			code:  diagnostic.CodeBadFieldCount,
			line:  "line 4",
		},
		{
			name:  "not a number",
			input: "seeds: 1 2\nseed-to-soil map:\n50 x 2\n",
			code:  diagnostic.CodeBadNumber,
			line:  "line 3",
		},
		{
			name:  "bad seed",
			input: "seeds: 1 two\n",
			code:  diagnostic.CodeBadNumber,
			line:  "line 1",
		},
		{
			name:  "negative length",
			input: "seeds: 1 2\nseed-to-soil map:\n50 98 -2\n",
			code:  diagnostic.CodeNegativeLength,
			line:  "line 3",
		},
		{
			name:  "mapping end overflows",
			input: "seeds: 1 2\nseed-to-soil map:\n0 9223372036854775807 1\n",
			code:  diagnostic.CodeBadNumber,
			line:  "line 3",
		},
		{
			name:  "target end overflows",
			input: "seeds: 1 2\nseed-to-soil map:\n9223372036854775800 0 8\n",
			code:  diagnostic.CodeBadNumber,
			line:  "line 3",
		},
		{
			name:  "mapping before header",
			input: "seeds: 1 2\n50 98 2\n",
			code:  diagnostic.CodeOrphanMapping,
			line:  "line 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.code)
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestParseReportsEveryError(t *testing.T) {
	_, err := ParseString("seed-to-soil map:\n1 2\n3 4 5\nx 1 1\n")
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "line 2")
	assert.Contains(t, msg, "line 4")
	assert.NotContains(t, msg, "line 3")
}

func TestParseWarnings(t *testing.T) {
	input := strings.Join([]string{
		"seed-to-soil map:",
		"",
		"soil-to-fertilizer map:",
		"100 0 10",
		"200 5 10",
	}, "\n")

	a, err := ParseString(input)
	require.NoError(t, err)

	codes := make([]string, 0, len(a.Diagnostics.Warnings))
	for _, w := range a.Diagnostics.Warnings {
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []string{
		diagnostic.CodeMissingSeeds,
		diagnostic.CodeEmptySection,
		diagnostic.CodeShadowedMapping,
	}, codes)
	assert.Equal(t, 1, a.Diagnostics.Warnings[1].Line)
	assert.Equal(t, "soil-to-fertilizer", a.Diagnostics.Warnings[2].Section)
}

func TestParseOutOfOrderNote(t *testing.T) {
	a, err := LoadFile("testdata/shuffled.txt")
	require.NoError(t, err)
	assert.Empty(t, a.Diagnostics.Warnings)
	assert.False(t, a.Diagnostics.HasErrors())

	require.Len(t, a.Diagnostics.Infos, 1)
	note := a.Diagnostics.Infos[0]
	assert.Equal(t, diagnostic.CodeOutOfOrder, note.Code)
	assert.Equal(t, "humidity-to-location", note.Section)
	assert.Equal(t, 3, note.Line)
}

func TestParseSeedsAcrossLines(t *testing.T) {
	a, err := ParseString("seeds: 1 2\nseeds: 3 4\n")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, a.Seeds)
	assert.Empty(t, a.Sections)
}

func TestParseUnnamedHeader(t *testing.T) {
	a, err := ParseString("seeds: 1\nmystery map:\n5 1 1\n")
	require.NoError(t, err)
	require.Len(t, a.Sections, 1)
	assert.Equal(t, "mystery", a.Sections[0].Name)
	assert.Empty(t, a.Sections[0].From)
	assert.Empty(t, a.Sections[0].To)
}
