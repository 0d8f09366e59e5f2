package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockout/internal/games/blockout/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check level files",
	Long: `Load level files (.yaml, .yml or the .txt line format) and report
problems: pieces off the grid, gates on the wrong side, blocks that start
inside a wall.

Examples:
  blockout validate ./levels/07.yaml
  blockout validate ./levels/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(_ *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	loader := levels.NewLoader("", logger)

	failed := 0
	for _, path := range args {
		lvl, err := loader.LoadFile(path)
		if err != nil {
			failed++
			var verr levels.ValidationError
			if errors.As(err, &verr) {
				fmt.Printf("FAIL  %s  %s: %s\n", path, verr.Code, verr.Message)
			} else {
				fmt.Printf("FAIL  %s  %v\n", path, err)
			}
			continue
		}
		fmt.Printf("ok    %s  (%s)\n", path, lvl.Title())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d level files failed validation", failed, len(args))
	}
	return nil
}
