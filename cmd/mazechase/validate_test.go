package main

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/mazechase/internal/maze"
)

func TestUnreachablePoints(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want int
	}{
		{
			name: "all reachable",
			rows: []string{
				"#######",
				"#@...!#",
				"#.!.!.#",
				"#######",
			},
			want: 0,
		},
		{
			name: "walled off room",
			rows: []string{
				"##########",
				"#@..!#...#",
				"#.!.!#...#",
				"##########",
			},
			want: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := maze.Load(tt.rows, rand.New(rand.NewSource(1)))
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if got := unreachablePoints(lvl); got != tt.want {
				t.Errorf("unreachablePoints() = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":        "23234",
		"0.0.0.0:2222":  "2222",
		"[::1]:22":      "22",
		"no-port-given": "no-port-given",
	}
	for in, want := range tests {
		if got := portOf(in); got != want {
			t.Errorf("portOf(%q) = %q, expected %q", in, got, want)
		}
	}
}
