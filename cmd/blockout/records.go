package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockout/internal/core"
	"github.com/vovakirdan/blockout/internal/games/blockout/levels"
	"github.com/vovakirdan/blockout/internal/platform/tui"
	"github.com/vovakirdan/blockout/internal/storage"
)

var flagPlain bool

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show progress and best clear times",
	Long: `Show campaign progress, the best clear time of every level and the
saved designs.

Examples:
  blockout records
  blockout records --plain`,
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive screen")
}

func runRecords(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	campaign, err := levels.NewLoader(flagLevelsDir, logger).LoadAll()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening progress database: %w", err)
	}
	defer store.Close()

	if !flagPlain {
		_, err := tui.RunRecords(store, campaign, runtimeConfig())
		return err
	}

	progress, err := store.LoadProgress()
	if err != nil {
		return err
	}
	clears, err := store.BestClears()
	if err != nil {
		return err
	}
	best := make(map[string]storage.ClearRecord, len(clears))
	for _, c := range clears {
		best[c.LevelID] = c
	}

	fmt.Printf("Coins: %d  Unlocked: %d/%d\n\n", progress.Coins, min(progress.MaxUnlocked, len(campaign)), len(campaign))
	fmt.Printf("  %-3s  %-16s  %-8s  %-6s  %s\n", "#", "Level", "Status", "Best", "Clears")
	fmt.Printf("  %-3s  %-16s  %-8s  %-6s  %s\n", "-", "-----", "------", "----", "------")

	for i, l := range campaign {
		status, bestTime, count := "open", "-", 0
		if i+1 > progress.MaxUnlocked {
			status = "locked"
		}
		if c, ok := best[l.ID]; ok {
			status = "cleared"
			secs := core.CeilDiv(c.BestTicks, max(flagFPS, 1))
			bestTime = fmt.Sprintf("%d:%02d", secs/60, secs%60)
			count = c.Clears
		}
		fmt.Printf("  %-3d  %-16s  %-8s  %-6s  %d\n", i+1, l.Title(), status, bestTime, count)
	}

	customs, err := store.CustomLevels()
	if err != nil {
		return err
	}
	if len(customs) > 0 {
		fmt.Println()
		fmt.Println("Designs:")
		for _, c := range customs {
			fmt.Printf("  %-20s  %s\n", c.Name, c.UpdatedAt.Format("2006-01-02 15:04"))
		}
	}
	return nil
}
