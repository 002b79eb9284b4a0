package almanac

import "strings"

//go:generate go tool stringer -type=LineKind -linecomment -output=linekind_string.go

// LineKind classifies one line of a text almanac.
type LineKind int

const (
	LineBlank   LineKind = iota // blank
	LineSeeds                   // seeds
	LineHeader                  // header
	LineMapping                 // mapping
)

const (
	seedsPrefix  = "seeds:"
	headerSuffix = "map:"
)

// ClassifyLine reports what kind of line s is.
func ClassifyLine(s string) LineKind {
	s = strings.TrimSpace(s)

	switch {
	case s == "":
		return LineBlank
	case strings.HasPrefix(s, seedsPrefix):
		return LineSeeds
	case strings.HasSuffix(s, headerSuffix):
		return LineHeader
	default:
		return LineMapping
	}
}
