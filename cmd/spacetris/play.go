package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spacetris/internal/audio"
	"github.com/vovakirdan/spacetris/internal/config"
	"github.com/vovakirdan/spacetris/internal/core"
	"github.com/vovakirdan/spacetris/internal/platform/tui"
	"github.com/vovakirdan/spacetris/internal/registry"
	"github.com/vovakirdan/spacetris/internal/storage"
)

var (
	flagLogFile string
	flagMute    bool
)

var playCmd = &cobra.Command{
	Use:   "play [world]",
	Short: "Play spacetris",
	Long: `Open the main menu and play on the given world preset
(default: the configured preset, usually "classic").

Controls:
  Left/Right, A/D  - Move
  Up, W            - Rotate
  Down, S          - Soft drop
  Space            - Hard drop
  P/Esc            - Pause and return to the menu
  Ctrl+C           - Quit

Examples:
  spacetris play
  spacetris play compact
  spacetris play --seed 7 --mute
  spacetris play --log-file ~/.spacetris/play.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (discarded otherwise)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects and music")
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	worldID := ""
	if len(args) == 1 {
		worldID = args[0]
		if !registry.Exists(worldID) {
			return fmt.Errorf("unknown world %q, run 'spacetris worlds' to list them", worldID)
		}
	}

	// The alternate screen owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "spacetris")
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var sound *audio.SoundManager
	if cfg.Audio.Sound && !flagMute {
		sound = audio.NewSoundManager(cfg.Audio.Volume, logger)
		sound.SetMusicEnabled(cfg.Audio.Music)
		sound.SetMusicVolume(cfg.Audio.MusicVolume)
		if initErr := sound.Initialize(); initErr != nil {
			logger.Warn("audio unavailable, playing silently", "error", initErr)
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	return tui.Run(store, sound, sessionOptions(cfg, worldID, rt, logger))
}
