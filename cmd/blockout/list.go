package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockout/internal/games/blockout/levels"
	"github.com/vovakirdan/blockout/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the campaign levels",
	Long:  `Shows the campaign levels, including levels loaded with --levels.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	campaign, err := levels.NewLoader(flagLevelsDir, logger).LoadAll()
	if err != nil {
		return err
	}

	if len(campaign) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Campaign levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range campaign {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-3s  %-*s  %-16s  %s\n", "#", maxIDLen, "ID", "Name", "Blocks")
	fmt.Printf("  %-3s  %-*s  %-16s  %s\n", "-", maxIDLen, "--", "----", "------")

	for i, l := range campaign {
		blocks := 0
		for _, p := range l.Snapshot().Pieces() {
			if !p.IsWall() {
				blocks++
			}
		}
		fmt.Printf("  %-3d  %-*s  %-16s  %d\n", i+1, maxIDLen, l.ID, l.Title(), blocks)
	}

	fmt.Println()
	fmt.Println("Game modes:")
	for _, g := range registry.List() {
		fmt.Printf("  %-16s  %s\n", g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'blockout play <#>' to play an unlocked level.")
	return nil
}
