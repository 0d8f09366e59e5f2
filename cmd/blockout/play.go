package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockout/internal/core"
	"github.com/vovakirdan/blockout/internal/games/blockout"
	"github.com/vovakirdan/blockout/internal/games/blockout/levels"
	"github.com/vovakirdan/blockout/internal/platform/tui"
	"github.com/vovakirdan/blockout/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the campaign",
	Long: `Play the campaign, resuming at the last level played or starting at
the given unlocked level.

Controls:
  Mouse drag      - Slide a block
  Tab             - Select the next block
  Arrows/WASD     - Move the selected block one cell
  Enter/Click     - Next level after a clear
  P               - Pause
  R               - Restart level
  Esc             - Leave (when paused or over)
  Q/Ctrl+C        - Quit
  F12             - Save a screenshot

Examples:
  blockout play
  blockout play 3
  blockout play --levels ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

var customCmd = &cobra.Command{
	Use:   "custom <name>",
	Short: "Play a level made in the editor",
	Long: `Play a design saved with the level editor.

Examples:
  blockout custom spiral`,
	Args: cobra.ExactArgs(1),
	RunE: runCustom,
}

var editCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Open the level editor",
	Long: `Open the level editor on a design, creating it if it does not exist.

Controls:
  Mouse           - Select and drag walls, gates and blocks
  1 / 2 / 3       - Add a wall / gate / block at the last click
  Arrows          - Move the selection one cell
  C / F / A / O   - Cycle color / shape / axis / gate side
  [ ] { }         - Shrink or grow width / height
  X/Delete        - Remove the selection
  U, Ctrl+Z       - Undo
  Y, Ctrl+Y       - Redo
  Ctrl+S          - Save
  Esc             - Leave the editor

Examples:
  blockout edit spiral`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func runPlay(_ *cobra.Command, args []string) error {
	sel := tui.MenuResult{Mode: blockout.ModeCampaign}
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid level %q: want a level number", args[0])
		}
		sel.StartLevel = n
	}
	return launch(sel)
}

func runCustom(_ *cobra.Command, args []string) error {
	return launch(tui.MenuResult{Mode: blockout.ModeCustom, CustomName: args[0]})
}

func runEdit(_ *cobra.Command, args []string) error {
	return launch(tui.MenuResult{Mode: blockout.ModeEditor, CustomName: args[0]})
}

// launch runs one game until the player quits or leaves it.
func launch(sel tui.MenuResult) error {
	logger, closer, err := uiLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	switch sel.Mode {
	case blockout.ModeCampaign:
		if sel.StartLevel > 0 {
			if err := checkUnlocked(sel.StartLevel, store, logger); err != nil {
				return err
			}
		}
	case blockout.ModeCustom:
		if store == nil {
			return fmt.Errorf("custom levels need the database")
		}
		if _, err := store.CustomLevel(sel.CustomName); err != nil {
			return err
		}
	case blockout.ModeEditor:
		if store == nil {
			fmt.Println("Warning: designs cannot be saved without the database")
		}
	}

	game, err := tui.NewGame(sel, gameOptions(logger), store)
	if err != nil {
		return err
	}
	if _, err := tui.Run(game, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// checkUnlocked rejects campaign levels that do not exist or are locked.
func checkUnlocked(level int, store *storage.Store, logger *log.Logger) error {
	campaign, err := levels.NewLoader(flagLevelsDir, logger).LoadAll()
	if err != nil {
		return err
	}
	if level > len(campaign) {
		return fmt.Errorf("level %d does not exist, the campaign has %d levels", level, len(campaign))
	}

	progress := core.NewProgress()
	if store != nil {
		if progress, err = store.LoadProgress(); err != nil {
			return err
		}
	}
	if level > progress.MaxUnlocked {
		return fmt.Errorf("level %d is locked, clear level %d first", level, progress.MaxUnlocked)
	}
	return nil
}
