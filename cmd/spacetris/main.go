// spacetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	spacetris play [world]     - Play, starting at the main menu
//	spacetris scores [world]   - Show the high score table
//	spacetris worlds           - List the available play fields
//	spacetris serve            - Start an SSH server for remote play
//	spacetris config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for a reproducible piece order
//	--db <path>          - Set database path (default: ~/.spacetris/scores.db)
//	--config <path>      - Use a specific YAML configuration file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacetris/internal/config"
	"github.com/vovakirdan/spacetris/internal/core"
	"github.com/vovakirdan/spacetris/internal/platform/tui"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacetris",
	Short: "Spacetris - a falling-block puzzle in your terminal",
	Long: `Spacetris drops tetrominoes into a 10x20 well. Fill rows to clear
them, score points and climb levels as the pieces fall faster.

Available commands:
  play     - Start the game at the main menu
  scores   - View high scores
  worlds   - List play field presets
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  spacetris play
  spacetris play compact --seed 42
  spacetris scores
  spacetris serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.spacetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a configuration YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(worldsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the program logger writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// sessionOptions derives the per-session settings from the configuration.
// worldID overrides the configured preset when not empty.
func sessionOptions(cfg config.Config, worldID string, rt core.RuntimeConfig, logger *log.Logger) tui.Options {
	if worldID == "" {
		worldID = cfg.World.Preset
	}
	return tui.Options{
		Runtime: rt,
		WorldID: worldID,
		World:   cfg.WorldConfig(0, 0),
		Top:     cfg.Scores.Top,
		Field: tui.FieldOptions{
			LandingShadow: cfg.Display.LandingShadow,
			Statistics:    cfg.Display.Statistics,
		},
		Starfield: cfg.Display.Starfield,
		Logger:    logger,
	}
}
