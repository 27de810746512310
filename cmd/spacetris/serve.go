package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacetris/internal/config"
	"github.com/vovakirdan/spacetris/internal/core"
	"github.com/vovakirdan/spacetris/internal/platform/tui"
	"github.com/vovakirdan/spacetris/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeWorld  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the spacetris SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own world and menu. Scores are stored
per-server, so all players share the same tables. Sound is not played
over SSH.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.spacetris/host_key

Examples:
  spacetris serve                           # Listen on :23234
  spacetris serve --ssh :2222               # Listen on port 2222
  spacetris serve --world compact           # Serve the compact field
  spacetris serve --db ./scores.db          # Use a specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeWorld, "world", "", "World preset served to every player")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagServeWorld != "" && !registry.Exists(flagServeWorld) {
		return fmt.Errorf("unknown world %q, run 'spacetris worlds' to list them", flagServeWorld)
	}

	logger, err := newLogger(os.Stderr, "spacetris-ssh")
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Session:     sessionOptions(cfg, flagServeWorld, rt, logger),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Starting spacetris SSH server on %s\n", flagSSHAddr)
	fmt.Println("Press Ctrl+C to stop")
	return server.ListenAndServe()
}
