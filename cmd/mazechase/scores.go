package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/games/chase"
	"github.com/vovakirdan/mazechase/internal/registry"
	"github.com/vovakirdan/mazechase/internal/storage"
)

var (
	flagScoresLimit int
	flagClear       bool
	flagScoresLevel string
	flagRunID       string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent runs",
	Long: `Display the top scores, recent runs and per-level statistics for a
game mode (default: chase).

Examples:
  mazechase scores
  mazechase scores chase_random
  mazechase scores --limit 20
  mazechase scores --level 01-corridor
  mazechase scores --run 6f1c2b9e-0d4a-4f8e-9a51-2c7d3e8b1f00
  mazechase scores chase --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores and runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs of the mode")
	scoresCmd.Flags().StringVar(&flagScoresLevel, "level", "", "Show only the scores of one level")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show the details of one run by its id")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := chase.IDCampaign
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		for _, g := range registry.List() {
			fmt.Fprintf(os.Stderr, "  %-14s %s\n", g.ID, g.Title)
		}
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores and runs for %s.\n", gameID)
		return
	}

	switch {
	case flagRunID != "":
		err = printRun(os.Stdout, store, flagRunID)
	case flagScoresLevel != "":
		err = printLevelScores(os.Stdout, store, gameID, flagScoresLevel, flagScoresLimit)
	default:
		err = printScores(store, gameID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID string, limit int) error {
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", gameID)
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mazechase play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-16s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-6s  %-16s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-6d  %-16s  %s\n", i+1, entry.Score, entry.LevelID, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("\nBest: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)

	runs, err := store.RecentRuns(gameID, limit)
	if err != nil {
		return err
	}
	if len(runs) > 0 {
		fmt.Printf("\nRecent Runs\n\n")
		fmt.Printf("  %-16s  %-9s  %-7s  %-6s  %-16s  %s\n", "Level", "Outcome", "Points", "Time", "Date", "Run")
		fmt.Printf("  %-16s  %-9s  %-7s  %-6s  %-16s  %s\n", "-----", "-------", "------", "----", "----", "---")
		for _, r := range runs {
			fmt.Printf("  %-16s  %-9s  %-7s  %-6s  %-16s  %s\n",
				r.LevelID, r.Outcome,
				fmt.Sprintf("%d/%d", r.Score, r.PointsTotal),
				r.Duration.Round(100*time.Millisecond),
				r.CreatedAt.Format("2006-01-02 15:04"),
				r.RunID)
		}
	}

	levelStats, err := store.GetLevelStats(gameID)
	if err != nil {
		return err
	}
	if len(levelStats) > 0 {
		ids := make([]string, 0, len(levelStats))
		for id := range levelStats {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Printf("\nLevels\n\n")
		fmt.Printf("  %-16s  %-5s  %-5s  %-6s  %-5s  %s\n", "Level", "Runs", "Wins", "Losses", "Best", "Fastest win")
		fmt.Printf("  %-16s  %-5s  %-5s  %-6s  %-5s  %s\n", "-----", "----", "----", "------", "----", "-----------")
		for _, id := range ids {
			ls := levelStats[id]
			fastest := "-"
			if ls.BestWin > 0 {
				fastest = ls.BestWin.Round(100 * time.Millisecond).String()
			}
			fmt.Printf("  %-16s  %-5d  %-5d  %-6d  %-5d  %s\n", id, ls.Runs, ls.Wins, ls.Losses, ls.BestScore, fastest)
		}
	}

	return nil
}

func printLevelScores(w io.Writer, store *storage.Store, gameID, levelID string, limit int) error {
	scores, err := store.TopLevelScores(gameID, levelID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s / %s\n\n", gameID, levelID)
	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded for this level yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-6d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.LevelHighScore(gameID, levelID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nBest: %d\n", best)
	return nil
}

func printRun(w io.Writer, store *storage.Store, runID string) error {
	run, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no run with id %q", runID)
	}

	fmt.Fprintf(w, "Run %s\n\n", run.RunID)
	fmt.Fprintf(w, "  Mode:     %s\n", run.GameID)
	fmt.Fprintf(w, "  Level:    %s\n", run.LevelID)
	fmt.Fprintf(w, "  Outcome:  %s\n", run.Outcome)
	fmt.Fprintf(w, "  Points:   %d/%d\n", run.Score, run.PointsTotal)
	fmt.Fprintf(w, "  Time:     %s\n", run.Duration.Round(100*time.Millisecond))
	fmt.Fprintf(w, "  Steps:    hero %d, enemies %d\n", run.HeroTicks, run.EnemyTicks)
	fmt.Fprintf(w, "  Date:     %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}
