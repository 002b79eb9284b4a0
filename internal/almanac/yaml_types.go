package almanac

// File is the YAML form of an almanac.
type File struct {
	// Version of the file format. Defaults to "1".
	Version string `yaml:"version"`
	// Seeds are the raw seed numbers.
	Seeds []int64 `yaml:"seeds,flow"`
	// Maps are the mapping blocks in file order.
	Maps []MapDef `yaml:"maps"`
}

// MapDef is one mapping block. Either Name or both From and To may be given;
// the missing side is derived from the other.
type MapDef struct {
	Name     string       `yaml:"name,omitempty"`
	From     string       `yaml:"from,omitempty"`
	To       string       `yaml:"to,omitempty"`
	Mappings []MappingDef `yaml:"mappings"`
}

// MappingDef is one "target source length" line.
type MappingDef struct {
	Target int64 `yaml:"target"`
	Source int64 `yaml:"source"`
	Length int64 `yaml:"length"`
}
