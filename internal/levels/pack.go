package levels

import (
	"embed"
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed packs/*.yaml
var builtinFS embed.FS

// Pack is a named collection of levels stored as YAML.
type Pack struct {
	Name   string `yaml:"pack"`
	Levels []Def  `yaml:"levels"`
}

// ParsePack decodes a YAML level pack. Every level needs a unique ID and
// at least one row.
func ParsePack(data []byte, source string) (Pack, error) {
	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("levels: parse pack %s: %w", source, err)
	}

	seen := make(map[string]bool, len(p.Levels))
	for i := range p.Levels {
		d := &p.Levels[i]
		if d.ID == "" {
			return p, fmt.Errorf("levels: pack %s: level %d has no id", source, i)
		}
		if seen[d.ID] {
			return p, fmt.Errorf("levels: pack %s: duplicate level id %q", source, d.ID)
		}
		if len(d.Rows) == 0 {
			return p, fmt.Errorf("levels: pack %s: level %q has no rows", source, d.ID)
		}
		seen[d.ID] = true
		d.Source = source
	}
	return p, nil
}

// LoadPackFile reads a YAML level pack from disk.
func LoadPackFile(filename string) (Pack, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Pack{}, fmt.Errorf("levels: read pack %s: %w", filename, err)
	}
	return ParsePack(data, filename)
}

// Builtin returns the levels compiled into the binary, pack by pack in
// file name order.
func Builtin() ([]Def, error) {
	entries, err := builtinFS.ReadDir("packs")
	if err != nil {
		return nil, fmt.Errorf("levels: builtin packs: %w", err)
	}

	var defs []Def
	for _, e := range entries {
		name := path.Join("packs", e.Name())
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("levels: builtin pack %s: %w", name, err)
		}
		p, err := ParsePack(data, "builtin:"+e.Name())
		if err != nil {
			return nil, err
		}
		defs = append(defs, p.Levels...)
	}
	return defs, nil
}
