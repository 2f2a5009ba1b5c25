// Package levels finds and parses chase levels: plain text level files,
// YAML level packs and the built-in pack embedded in the binary. It also
// picks levels for a session.
package levels

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/mazechase/internal/maze"
)

// Def is an unparsed level: its identity and the raw rows.
type Def struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Rows   []string `yaml:"rows"`
	Source string   `yaml:"-"` // file or pack the level came from
}

// Title returns the display name, falling back to the ID.
func (d Def) Title() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

// Build parses the rows into a playable level. Spawn placement draws from rng.
func (d Def) Build(rng *rand.Rand) (*maze.Level, error) {
	lvl, err := maze.Load(d.Rows, rng)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", d.ID, err)
	}
	return lvl, nil
}

// Validate checks that the level parses. Spawn draws use a fixed seed.
func (d Def) Validate() error {
	_, err := d.Build(rand.New(rand.NewSource(1)))
	return err
}

// Find returns the level with the given ID.
func Find(defs []Def, id string) (Def, bool) {
	for _, d := range defs {
		if d.ID == id {
			return d, true
		}
	}
	return Def{}, false
}
