package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/games/chase"
	"github.com/vovakirdan/mazechase/internal/platform/tui"
	"github.com/vovakirdan/mazechase/internal/registry"
)

var flagRandom bool

var playCmd = &cobra.Command{
	Use:   "play [level-id]",
	Short: "Play the campaign or random levels",
	Long: `Start playing. Without arguments the campaign starts at the first
level; give a level id to start there instead.

Controls:
  Arrows/WASD/HJKL  - Move (a press keeps moving for a short moment)
  P/Space           - Pause
  Enter             - Next level after a win
  R                 - Restart the level (a new session after being caught)
  Esc/B             - Leave (while paused or after being caught)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy    - Slow enemies, speeding up as you clear levels
  normal  - Standard pace, speeding up as you clear levels
  hard    - Fast enemies that start partway up the curve
  fixed   - No progression, the configured pace throughout

Examples:
  mazechase play
  mazechase play 02-rooms
  mazechase play --random
  mazechase play --difficulty hard --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRandom, "random", false, "Pick a random level after every win")
}

func runPlay(_ *cobra.Command, args []string) {
	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
	}

	gameID := chase.IDCampaign
	if flagRandom {
		gameID = chase.IDRandom
	}

	game, err := registry.Create(gameID, gameOptions(levelID))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'mazechase levels' to see available levels.")
		os.Exit(1)
	}

	store := openStore()
	cfg := runtimeConfig()
	logger.Debug("starting game", "game", gameID, "level", levelID, "seed", cfg.Seed, "fps", cfg.TickRate)

	runErr := tui.Run(game, store, logger, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
