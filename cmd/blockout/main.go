// blockout is a sliding-block puzzle for the terminal.
//
// Usage:
//
//	blockout list              - List campaign levels
//	blockout play [level]      - Play the campaign
//	blockout custom <name>     - Play a saved design
//	blockout edit <name>       - Open the level editor
//	blockout menu              - Start the interactive menu
//	blockout records           - Show progress and best clears
//	blockout progress          - Print or reset campaign progress
//	blockout validate <file>   - Check a level file
//	blockout serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible play
//	--db <path>         - Set database path (default: ~/.blockout/blockout.db)
//	--config <path>     - Use a custom engine config YAML
//	--levels <dir>      - Load extra levels from a directory
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockout/internal/core"
	"github.com/vovakirdan/blockout/internal/games/blockout"
	"github.com/vovakirdan/blockout/internal/storage"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagLevelsDir string
	flagLogLevel  string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockout",
	Short: "Blockout - slide colored blocks out through matching gates",
	Long: `Blockout is a sliding-block puzzle played in the terminal.

Drag blocks with the mouse (or select them with Tab and move them with the
arrow keys) and slide each one out through the gate of its color.

Available commands:
  list      - Show the campaign levels
  play      - Play the campaign
  custom    - Play a level made in the editor
  edit      - Open the level editor
  menu      - Interactive menu
  records   - Progress and best clear times
  progress  - Print or reset campaign progress
  validate  - Check a level file
  serve     - Start SSH server for remote play

Examples:
  blockout menu
  blockout play 3
  blockout edit spiral
  blockout serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockout/blockout.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra or replacement levels")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.blockout/blockout.log", "Log file used while the terminal UI runs")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(customCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the structured logger all components share.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockout",
		Level:           level,
	}), nil
}

// uiLogger returns a logger that writes to the log file, since the terminal
// belongs to the UI. The returned closer must be called on exit.
func uiLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard)
		return logger, io.NopCloser(nil), err
	}
	path := expandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the database, continuing without persistence on failure.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open progress database, progress will not be saved", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		return nil
	}
	return store
}

// gameOptions collects the flags every game mode shares.
func gameOptions(logger *log.Logger) blockout.Options {
	return blockout.Options{
		ConfigPath: flagConfig,
		LevelsDir:  flagLevelsDir,
		Logger:     logger,
	}
}
