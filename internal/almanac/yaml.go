package almanac

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"almanac/internal/diagnostic"
	"almanac/internal/remap"
)

// LoadYAMLFile loads and parses a YAML almanac from the given path.
func LoadYAMLFile(path string) (*Almanac, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read almanac file %s: %w", path, err)
	}

	return ParseYAML(data)
}

// LoadAny loads a YAML almanac for .yaml/.yml paths and a text almanac
// otherwise.
func LoadAny(path string) (*Almanac, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAMLFile(path)
	default:
		return LoadFile(path)
	}
}

// ParseYAML parses YAML data into an Almanac.
func ParseYAML(data []byte) (*Almanac, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse almanac YAML: %w", err)
	}

	applyDefaults(&f)

	return FromFile(&f)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Maps {
		m := &f.Maps[i]

		switch {
		case m.Name == "" && m.From != "" && m.To != "":
			m.Name = sectionName(m.From, m.To)
		case m.Name != "" && m.From == "" && m.To == "":
			m.From, m.To = splitName(m.Name)
		}
	}
}

// FromFile converts the YAML form into an Almanac, reporting the same
// errors and warnings as the text parser.
func FromFile(f *File) (*Almanac, error) {
	a := &Almanac{Seeds: append([]int64(nil), f.Seeds...)}

	for i, def := range f.Maps {
		s := Section{Name: def.Name, From: def.From, To: def.To}

		for j, md := range def.Mappings {
			if md.Length < 0 {
				a.Diagnostics.AddError(diagnostic.CodeNegativeLength,
					fmt.Sprintf("maps[%d].mappings[%d]: length %d is negative", i, j, md.Length), 0, def.Name)

				continue
			}

			m := remap.Mapping{TargetStart: md.Target, SourceStart: md.Source, Length: md.Length}
			if m.Overflows() {
				a.Diagnostics.AddError(diagnostic.CodeBadNumber,
					fmt.Sprintf("maps[%d].mappings[%d]: %q runs past the largest 64-bit value", i, j, m.String()), 0, def.Name)

				continue
			}

			s.Mappings = append(s.Mappings, m)
		}

		a.Sections = append(a.Sections, s)
	}

	inspect(a, len(f.Seeds) > 0)

	if a.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("failed to load almanac: %w", a.Diagnostics.Error())
	}

	return a, nil
}

// ToFile converts an Almanac to its YAML form.
func ToFile(a *Almanac) *File {
	f := &File{
		Version: "1",
		Seeds:   append([]int64(nil), a.Seeds...),
		Maps:    make([]MapDef, 0, len(a.Sections)),
	}

	for _, s := range a.Sections {
		def := MapDef{From: s.From, To: s.To, Mappings: make([]MappingDef, 0, len(s.Mappings))}
		if s.From == "" || s.To == "" {
			def = MapDef{Name: s.Name, Mappings: def.Mappings}
		}

		for _, m := range s.Mappings {
			def.Mappings = append(def.Mappings, MappingDef{
				Target: m.TargetStart,
				Source: m.SourceStart,
				Length: m.Length,
			})
		}

		f.Maps = append(f.Maps, def)
	}

	return f
}

// Marshal serializes an Almanac to YAML.
func Marshal(a *Almanac) ([]byte, error) {
	return yaml.Marshal(ToFile(a))
}

// WriteYAMLFile writes an Almanac as YAML to the given path.
func WriteYAMLFile(a *Almanac, path string) error {
	data, err := Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal almanac: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write almanac file %s: %w", path, err)
	}

	return nil
}
