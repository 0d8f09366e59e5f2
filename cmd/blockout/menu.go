package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockout/internal/games/blockout/levels"
	"github.com/vovakirdan/blockout/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Blockout with the interactive menu",
	Long: `Start Blockout in interactive menu mode.

Continue the campaign, pick an unlocked level, play or edit your own
designs and look at your records. After a game you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Records
  Esc          - Back
  Q            - Quit

Examples:
  blockout menu
  blockout menu --fps 30
  blockout menu --db ./blockout.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := uiLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	campaign, err := levels.NewLoader(flagLevelsDir, logger).LoadAll()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := gameOptions(logger)
	cfg := runtimeConfig()

	for {
		sel, err := tui.RunMenu(store, campaign, cfg)
		if err != nil {
			return err
		}
		cfg = sel.Config

		if sel.Quit {
			return nil
		}

		if sel.WantsRecords {
			goBack, err := tui.RunRecords(store, campaign, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		// Fresh seed for each game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		game, err := tui.NewGame(sel, opts, store)
		if err != nil {
			return err
		}
		backToMenu, err := tui.Run(game, cfg, logger)
		if err != nil {
			return fmt.Errorf("error running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
