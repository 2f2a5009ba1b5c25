package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/levels"
	"github.com/vovakirdan/mazechase/internal/maze"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check level files for errors",
	Long: `Parses each level file (.txt/.lvl text or .yaml pack) and builds
every level in it. Also warns about points the hero cannot reach.

Exits with status 1 if any level is malformed.

Examples:
  mazechase validate levels/*.txt
  mazechase validate my-pack.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func runValidate(_ *cobra.Command, args []string) {
	failed := 0
	for _, path := range args {
		defs, err := levels.LoadFile(path)
		if err != nil {
			fmt.Printf("FAIL  %s: %v\n", path, err)
			failed++
			continue
		}

		for _, d := range defs {
			lvl, err := d.Build(rand.New(rand.NewSource(flagSeed)))
			if err != nil {
				fmt.Printf("FAIL  %s: %v\n", path, err)
				failed++
				continue
			}

			fmt.Printf("ok    %s: %s (%dx%d, %d points)\n",
				path, d.ID, lvl.Width(), lvl.Height(), lvl.RemainingPoints())
			if n := unreachablePoints(lvl); n > 0 {
				fmt.Printf("      warning: %d points unreachable from the hero spawn\n", n)
			}
		}
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d level(s) failed validation\n", failed)
		os.Exit(1)
	}
}

// unreachablePoints counts points no path from the hero spawn leads to.
// Such a level can never be won.
func unreachablePoints(lvl *maze.Level) int {
	n := 0
	for _, p := range lvl.Points() {
		if _, ok := maze.PathLength(lvl, lvl.HeroSpawn(), p); !ok {
			n++
		}
	}
	return n
}
