package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacetris/internal/registry"
)

var worldsCmd = &cobra.Command{
	Use:   "worlds",
	Short: "List the play field presets",
	Args:  cobra.NoArgs,
	Run:   runWorlds,
}

func runWorlds(_ *cobra.Command, _ []string) {
	presets := registry.List()

	fmt.Println("Available worlds:")
	fmt.Println()

	maxIDLen := 2
	for _, p := range presets {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "-----")
	for _, p := range presets {
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, p.ID, fmt.Sprintf("%dx%d", p.Columns, p.Rows), p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'spacetris play <id>' to play a world.")
}
