package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacetris/internal/config"
	"github.com/vovakirdan/spacetris/internal/registry"
	"github.com/vovakirdan/spacetris/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [world]",
	Short: "Show high scores for a world",
	Long: `Display the high score table for the given world preset
(default: the configured preset).

Examples:
  spacetris scores
  spacetris scores compact
  spacetris scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every score of the world")
}

func runScores(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	worldID := cfg.World.Preset
	if len(args) == 1 {
		worldID = args[0]
	}
	preset, err := registry.Get(worldID)
	if err != nil {
		return fmt.Errorf("%w, run 'spacetris worlds' to list them", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(worldID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", preset.Title)
		return nil
	}

	scores, err := store.TopScores(worldID, cfg.Scores.Top)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", preset.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'spacetris play %s' to set the first high score!\n", worldID)
		return nil
	}

	fmt.Printf("  %-4s  %-20s  %8s  %5s  %5s  %s\n", "Rank", "Name", "Score", "Lines", "Level", "Date")
	fmt.Printf("  %-4s  %-20s  %8s  %5s  %5s  %s\n", "----", "----", "-----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-20s  %8d  %5d  %5d  %s\n",
			i+1, e.Name, e.Score, e.Lines, e.Level, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.WorldStats(worldID)
	if err == nil && stats != nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.0f  Lines cleared: %d\n",
			stats.HighScore, stats.Entries, stats.AvgScore, stats.TotalLines)
	}
	return nil
}
