package levels

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadFile reads a level file by extension: .yaml/.yml are packs,
// anything else is a single text level.
func LoadFile(path string) ([]Def, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		p, err := LoadPackFile(path)
		if err != nil {
			return nil, err
		}
		return p.Levels, nil
	default:
		d, err := LoadTextFile(path)
		if err != nil {
			return nil, err
		}
		return []Def{d}, nil
	}
}

// LoadDir reads every .txt, .lvl, .yaml and .yml file under dir, in
// lexical path order. Level IDs must be unique across the directory.
func LoadDir(dir string) ([]Def, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".txt", ".lvl", ".yaml", ".yml":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: scan %s: %w", dir, err)
	}
	sort.Strings(paths)

	var defs []Def
	seen := make(map[string]string)
	for _, p := range paths {
		loaded, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		for _, d := range loaded {
			if prev, ok := seen[d.ID]; ok {
				return nil, fmt.Errorf("levels: duplicate level id %q in %s and %s", d.ID, prev, d.Source)
			}
			seen[d.ID] = d.Source
			defs = append(defs, d)
		}
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("levels: no levels in %s", dir)
	}
	return defs, nil
}

// Load returns the levels in dir, or the built-in levels when dir is empty.
func Load(dir string) ([]Def, error) {
	if dir == "" {
		return Builtin()
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	return LoadDir(dir)
}
