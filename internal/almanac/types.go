package almanac

import (
	"almanac/internal/diagnostic"
	"almanac/internal/remap"
)

// Almanac is a parsed seed almanac.
type Almanac struct {
	// Seeds are the raw numbers of the "seeds:" line.
	Seeds []int64
	// Sections are the mapping blocks in file order.
	Sections []Section
	// Diagnostics holds warnings found while reading.
	Diagnostics diagnostic.Diagnostics
}

// Section is one "<from>-to-<to> map:" block.
type Section struct {
	// Name is the header text without the trailing "map:".
	Name string
	// From and To are the categories parsed from Name; empty when Name is not
	// shaped "<from>-to-<to>".
	From string
	To   string
	// Line is the 1-based header line (0 when not read from text).
	Line int
	// Mappings in scan order.
	Mappings remap.Stage
}

// Categories returns every category named by a block, in first-seen order.
func (a *Almanac) Categories() []string {
	seen := make(map[string]bool)

	var out []string

	add := func(c string) {
		if c != "" && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	for _, s := range a.Sections {
		add(s.From)
		add(s.To)
	}

	return out
}

// Pipeline returns every block's mappings in file order. Headers are
// descriptive only; this is the chain used when no categories are named.
func (a *Almanac) Pipeline() remap.Pipeline {
	p := make(remap.Pipeline, 0, len(a.Sections))
	for _, s := range a.Sections {
		p = append(p, s.Mappings)
	}

	return p
}

func sectionName(from, to string) string {
	return from + "-to-" + to
}
