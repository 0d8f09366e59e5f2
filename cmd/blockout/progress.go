package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockout/internal/storage"
)

var flagReset bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Print or reset campaign progress",
	Long: `Print the saved campaign progress, or forget it with --reset.
Resetting keeps your saved designs.

Examples:
  blockout progress
  blockout progress --reset`,
	Args: cobra.NoArgs,
	RunE: runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagReset, "reset", false, "Forget unlocked levels, coins and clear records")
}

func runProgress(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening progress database: %w", err)
	}
	defer store.Close()

	if flagReset {
		if err := store.ResetProgress(); err != nil {
			return err
		}
		fmt.Println("Progress reset.")
	}

	p, err := store.LoadProgress()
	if err != nil {
		return err
	}
	fmt.Printf("Unlocked up to level: %d\n", p.MaxUnlocked)
	fmt.Printf("Last played level:    %d\n", p.LastPlayed)
	fmt.Printf("Coins:                %d\n", p.Coins)
	return nil
}
