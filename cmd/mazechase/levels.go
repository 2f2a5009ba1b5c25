package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the levels the game would play, in campaign order: the
built-in pack, or the files under --levels / levels.dir in the config.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	_, defs, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	maxIDLen := 2 // "ID" header
	for _, d := range defs {
		maxIDLen = max(maxIDLen, len(d.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-6s  %-20s  %s\n", maxIDLen, "ID", "Size", "Points", "Name", "Source")
	fmt.Printf("  %-*s  %-7s  %-6s  %-20s  %s\n", maxIDLen, "--", "----", "------", "----", "------")

	for _, d := range defs {
		size, points := "-", "-"
		if lvl, err := d.Build(rand.New(rand.NewSource(1))); err == nil {
			size = fmt.Sprintf("%dx%d", lvl.Width(), lvl.Height())
			points = fmt.Sprintf("%d", lvl.RemainingPoints())
		} else {
			points = "broken"
		}
		fmt.Printf("  %-*s  %-7s  %-6s  %-20s  %s\n", maxIDLen, d.ID, size, points, d.Title(), d.Source)
	}

	fmt.Println()
	fmt.Println("Run 'mazechase play <id>' to start at a level.")
}
