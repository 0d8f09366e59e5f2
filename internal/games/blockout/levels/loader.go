// Package levels provides level loading functionality for blockout.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/blockout/internal/games/blockout/core"
	"github.com/vovakirdan/blockout/internal/games/blockout/levels/formats"
)

//go:embed campaign/*.yaml
var campaignFS embed.FS

// Level represents a complete level definition.
type Level struct {
	ID        string
	Name      string
	TimeLimit int // Seconds; zero means the session default
	Metadata  map[string]string
	FilePath  string

	snapshot core.Snapshot
}

func fromParsed(parsed formats.Level, filePath string) Level {
	return Level{
		ID:        parsed.ID,
		Name:      parsed.Name,
		TimeLimit: parsed.TimeLimit,
		Metadata:  parsed.Metadata,
		FilePath:  filePath,
		snapshot:  parsed.Snapshot(),
	}
}

// FromSnapshot wraps an arena snapshot, e.g. an editor design, as a level.
func FromSnapshot(id, name string, s core.Snapshot) Level {
	return Level{ID: id, Name: name, snapshot: s}
}

// Snapshot returns the initial pieces and gates.
func (l Level) Snapshot() core.Snapshot {
	return l.snapshot
}

// NewArena creates an arena holding the level's initial layout.
func (l Level) NewArena(t core.Tuning, seed int64) *core.Arena {
	a := core.NewArena(t, seed)
	a.Restore(l.snapshot)
	return a
}

// Title returns the display name, falling back to the ID.
func (l Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Loader handles loading levels from the built-in campaign and an optional
// directory. Directory levels replace campaign levels with the same ID.
type Loader struct {
	Root   string
	Logger *log.Logger
}

// NewLoader creates a new level loader. An empty root loads only the
// built-in campaign.
func NewLoader(root string, logger *log.Logger) *Loader {
	return &Loader{Root: root, Logger: logger}
}

// LoadAll loads the campaign and all level files under Root.
// Returns levels sorted by ID for deterministic ordering. Files that fail
// to parse or validate are skipped.
func (l *Loader) LoadAll() ([]Level, error) {
	byID := make(map[string]Level)

	campaign, err := l.walk(campaignFS, "campaign", "")
	if err != nil {
		return nil, err
	}
	for _, lvl := range campaign {
		byID[lvl.ID] = lvl
	}

	if l.Root != "" {
		dirLevels, err := l.walk(os.DirFS(l.Root), ".", l.Root)
		if err != nil {
			return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
		}
		for _, lvl := range dirLevels {
			if _, dup := byID[lvl.ID]; dup {
				l.debug("level overrides built-in", "id", lvl.ID, "file", lvl.FilePath)
			}
			byID[lvl.ID] = lvl
		}
	}

	levels := make([]Level, 0, len(byID))
	for _, lvl := range byID {
		levels = append(levels, lvl)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// Campaign returns only the built-in levels, sorted by ID.
func Campaign() ([]Level, error) {
	return (&Loader{}).LoadAll()
}

func (l *Loader) walk(fsys fs.FS, root, prefix string) ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		display := p
		if prefix != "" {
			display = path.Join(prefix, p)
		}
		lvl, err := parseLevel(data, ext, display)
		if err != nil {
			// Skip invalid files
			l.warn("skipping level file", "file", display, "err", err)
			return nil
		}

		levels = append(levels, lvl)
		return nil
	})
	return levels, err
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(filePath string) (Level, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", filePath, err)
	}
	return parseLevel(data, strings.ToLower(filepath.Ext(filePath)), filePath)
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// ParseText parses a level stored in the line format, as saved by the
// editor, and validates it.
func ParseText(id string, data []byte) (Level, error) {
	lvl, err := parseLevel(data, ".txt", "")
	if err != nil {
		return Level{}, err
	}
	lvl.ID, lvl.Name = id, id
	return lvl, nil
}

// DecodeText parses a level in the line format without validating it, so
// unfinished editor designs can be reopened.
func DecodeText(id string, data []byte) (Level, error) {
	parsed, err := formats.ParseText(data)
	if err != nil {
		return Level{}, err
	}
	parsed.ID, parsed.Name = id, id
	return fromParsed(parsed, ""), nil
}

// EncodeText serializes a level's layout in the line format.
func EncodeText(l Level) []byte {
	return formats.EncodeText(l.snapshot)
}

func parseLevel(data []byte, ext, filePath string) (Level, error) {
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", filePath, err)
	}
	if parsed.ID == "" && filePath != "" {
		base := filepath.Base(filePath)
		parsed.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if err := Validate(parsed); err != nil {
		return Level{}, fmt.Errorf("validating %s: %w", filePath, err)
	}
	return fromParsed(parsed, filePath), nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".txt":
		return formats.ParseText(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

func (l *Loader) warn(msg string, kv ...any) {
	if l.Logger != nil {
		l.Logger.Warn(msg, kv...)
	}
}

func (l *Loader) debug(msg string, kv ...any) {
	if l.Logger != nil {
		l.Logger.Debug(msg, kv...)
	}
}
