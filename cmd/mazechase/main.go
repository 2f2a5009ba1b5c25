// mazechase is a terminal maze chase: collect every point before the
// enemies catch you.
//
// Usage:
//
//	mazechase play [level-id]   - Play the campaign, or start at a level
//	mazechase play --random     - Play random levels
//	mazechase menu              - Pick a mode and level interactively
//	mazechase levels            - List available levels
//	mazechase validate <file>   - Check level files
//	mazechase scores [mode]     - Show high scores and recent runs
//	mazechase serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.mazechase/scores.db)
//	--config <path>      - Use a custom chase.yaml
//	--levels <dir>       - Load levels from a directory instead of the built-in pack
//	--difficulty <name>  - easy, normal, hard or fixed
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/config"

	// Register game modes
	_ "github.com/vovakirdan/mazechase/internal/games/chase"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevelsDir  string
	flagDifficulty string
	flagLogLevel   string

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "mazechase"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazechase",
	Short: "Maze Chase - collect the points, dodge the enemies",
	Long: `Maze Chase is a terminal game: steer the hero through a maze, eat
every point and stay away from the three enemies hunting you.

Available commands:
  play      - Play the campaign or random levels
  menu      - Interactive mode and level picker
  levels    - List available levels
  validate  - Check level files for errors
  scores    - View high scores and run history
  serve     - Start SSH server for remote play

Examples:
  mazechase play
  mazechase play 03-open --difficulty hard
  mazechase play --random --levels ./my-levels
  mazechase serve --ssh :2222`,
	PersistentPreRunE: setupLogging,
	SilenceUsage:      true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.mazechase/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom chase.yaml")
	pf.StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in pack)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setupLogging applies --log-level and checks flags shared by commands.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}
