package levels

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MaxLineBytes is the longest level row ParseText accepts.
const MaxLineBytes = 1 << 20

// ParseText reads level rows from plain text. Trailing whitespace and
// carriage returns are trimmed from each line and trailing blank lines are
// dropped. Leading spaces are kept as empty tiles.
func ParseText(r io.Reader) ([]string, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), MaxLineBytes)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), " \t\r"))
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("levels: row %d longer than %d bytes: %w", len(rows)+1, MaxLineBytes, err)
		}
		return nil, fmt.Errorf("levels: read: %w", err)
	}

	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

// LoadTextFile reads a single text level. The ID is the file name without
// its extension.
func LoadTextFile(path string) (Def, error) {
	f, err := os.Open(path)
	if err != nil {
		return Def{}, fmt.Errorf("levels: open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ParseText(f)
	if err != nil {
		return Def{}, fmt.Errorf("levels: %s: %w", path, err)
	}

	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))
	return Def{ID: id, Rows: rows, Source: path}, nil
}
