package almanac

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"almanac/internal/common"
	"almanac/internal/diagnostic"
	"almanac/internal/remap"
)

// LoadFile loads and parses a text almanac from the given path.
func LoadFile(path string) (*Almanac, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open almanac %s: %w", path, err)
	}
	defer f.Close()

	a, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return a, nil
}

// ParseString parses a text almanac held in memory.
func ParseString(s string) (*Almanac, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a text almanac. Every malformed line is reported in the
// returned error; warnings are kept in the almanac's Diagnostics.
func Parse(r io.Reader) (*Almanac, error) {
	p := &parser{almanac: &Almanac{}}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		p.line++
		p.parseLine(sc.Text())
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read almanac: %w", err)
	}

	p.almanac.Diagnostics.Merge(p.diags)
	inspect(p.almanac, p.sawSeeds)

	if p.almanac.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("failed to parse almanac: %w", p.almanac.Diagnostics.Error())
	}

	return p.almanac, nil
}

type parser struct {
	almanac  *Almanac
	diags    diagnostic.Diagnostics
	line     int
	sawSeeds bool
}

func (p *parser) parseLine(text string) {
	text = strings.TrimSpace(text)

	switch ClassifyLine(text) {
	case LineBlank:
	case LineSeeds:
		p.sawSeeds = true
		p.parseSeeds(strings.TrimPrefix(text, seedsPrefix))
	case LineHeader:
		p.parseHeader(strings.TrimSuffix(text, headerSuffix))
	case LineMapping:
		p.parseMapping(text)
	}
}

func (p *parser) parseSeeds(rest string) {
	for _, field := range strings.Fields(rest) {
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			p.diags.AddError(diagnostic.CodeBadNumber,
				fmt.Sprintf("seed %q is not an integer", field), p.line, seedsPrefix)

			continue
		}

		p.almanac.Seeds = append(p.almanac.Seeds, v)
	}
}

func (p *parser) parseHeader(name string) {
	name = strings.TrimSpace(name)
	from, to := splitName(name)

	p.almanac.Sections = append(p.almanac.Sections, Section{
		Name: name,
		From: from,
		To:   to,
		Line: p.line,
	})
}

func (p *parser) parseMapping(text string) {
	section, ok := common.Last(p.almanac.Sections)
	if !ok {
		p.diags.AddError(diagnostic.CodeOrphanMapping,
			fmt.Sprintf("line %q appears before any map header", text), p.line, "")

		return
	}

	m, ok := p.mappingFields(text, section.Name)
	if !ok {
		return
	}

	last := &p.almanac.Sections[len(p.almanac.Sections)-1]
	last.Mappings = append(last.Mappings, m)
}

// mappingFields parses "target source length".
func (p *parser) mappingFields(text, section string) (remap.Mapping, bool) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		p.diags.AddError(diagnostic.CodeBadFieldCount,
			fmt.Sprintf("expected 3 fields (target source length), got %d", len(fields)), p.line, section)

		return remap.Mapping{}, false
	}

	var values [3]int64

	for i, field := range fields {
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			p.diags.AddError(diagnostic.CodeBadNumber,
				fmt.Sprintf("%q is not an integer", field), p.line, section)

			return remap.Mapping{}, false
		}

		values[i] = v
	}

	if values[2] < 0 {
		p.diags.AddError(diagnostic.CodeNegativeLength,
			fmt.Sprintf("length %d is negative", values[2]), p.line, section)

		return remap.Mapping{}, false
	}

	m := remap.Mapping{TargetStart: values[0], SourceStart: values[1], Length: values[2]}
	if m.Overflows() {
		p.diags.AddError(diagnostic.CodeBadNumber,
			fmt.Sprintf("mapping %q runs past the largest 64-bit value", m.String()), p.line, section)

		return remap.Mapping{}, false
	}

	return m, true
}

// splitName splits "seed-to-soil" into its categories.
func splitName(name string) (from, to string) {
	from, to, ok := strings.Cut(name, "-to-")
	if !ok || from == "" || to == "" {
		return "", ""
	}

	return from, to
}

// inspect records warnings and notes that do not stop an almanac from being
// solved.
func inspect(a *Almanac, sawSeeds bool) {
	if !sawSeeds && len(a.Seeds) == 0 {
		a.Diagnostics.AddWarning(diagnostic.CodeMissingSeeds, "no seeds line", 0, "")
	}

	for _, s := range a.Sections {
		if common.IsEmpty(s.Mappings) {
			a.Diagnostics.AddWarning(diagnostic.CodeEmptySection,
				"block has no mappings; values pass through unchanged", s.Line, s.Name)

			continue
		}

		for _, pair := range s.Mappings.Overlaps() {
			a.Diagnostics.AddWarning(diagnostic.CodeShadowedMapping,
				fmt.Sprintf("mapping %q overlaps earlier mapping %q; the earlier one wins",
					s.Mappings[pair[1]].String(), s.Mappings[pair[0]].String()),
				s.Line, s.Name)
		}
	}

	if ordered, err := a.Ordered(); err == nil {
		for i, s := range ordered {
			if s.Name != a.Sections[i].Name {
				a.Diagnostics.AddInfo(diagnostic.CodeOutOfOrder,
					fmt.Sprintf("block %q is out of category order; the default route runs blocks in file order", a.Sections[i].Name),
					a.Sections[i].Line, a.Sections[i].Name)

				break
			}
		}
	}
}
