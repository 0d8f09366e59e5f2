// Package formats provides pluggable level file format parsers.
package formats

import (
	"github.com/vovakirdan/blockout/internal/games/blockout/core"
)

// Authoring geometry. Level files place things in logical pixels of a
// grid of 45px cells starting at (40, 100); tile coordinates address 90px
// tiles of the same grid.
const (
	CellSize    = 45
	TileSize    = 2 * CellSize
	GridOriginX = 40
	GridOriginY = 100

	// MaxShapeCells bounds each side of a shape grid; a taller shape
	// cannot fit the arena.
	MaxShapeCells = 32
)

// Level represents a parsed level ready for use.
type Level struct {
	ID        string
	Name      string
	TimeLimit int // Seconds; zero means the session default
	Pieces    []core.Piece
	Gates     []core.Gate
	Metadata  map[string]string
}

// Snapshot converts the level into an arena snapshot.
func (l *Level) Snapshot() core.Snapshot {
	return core.NewSnapshot(l.Pieces, l.Gates)
}

// FromSnapshot builds a level from an arena snapshot.
func FromSnapshot(id, name string, s core.Snapshot) Level {
	return Level{
		ID:     id,
		Name:   name,
		Pieces: s.Pieces(),
		Gates:  s.Gates(),
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt"}
}
