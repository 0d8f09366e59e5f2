package formats

import (
	"fmt"

	"github.com/vovakirdan/blockout/internal/games/blockout/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	TimeLimit int               `yaml:"time_limit,omitempty"`
	Gates     []YAMLGate        `yaml:"gates"`
	Walls     []YAMLRect        `yaml:"walls"`
	Pieces    []YAMLPiece       `yaml:"pieces"`
	Metadata  map[string]string `yaml:"metadata,omitempty"`
}

// YAMLRect is a rectangle in logical pixels.
type YAMLRect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLGate represents a gate.
type YAMLGate struct {
	YAMLRect `yaml:",inline"`
	Color    string `yaml:"color"`
	Side     string `yaml:"side"`
}

// YAMLTile places a piece by tile row and column.
type YAMLTile struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// YAMLPiece represents a movable piece. Position is either a tile or
// explicit x/y pixels. The footprint is either a catalog shape name, in
// tiles, or explicit cell rows.
type YAMLPiece struct {
	X     int       `yaml:"x,omitempty"`
	Y     int       `yaml:"y,omitempty"`
	Tile  *YAMLTile `yaml:"tile,omitempty"`
	Shape string    `yaml:"shape,omitempty"`
	Cells []string  `yaml:"cells,omitempty"`
	Color string    `yaml:"color"`
	Axis  string    `yaml:"axis,omitempty"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		ID:        yl.ID,
		Name:      yl.Name,
		TimeLimit: yl.TimeLimit,
		Metadata:  yl.Metadata,
	}

	for i, g := range yl.Gates {
		color, ok := core.ParseColor(g.Color)
		if !ok {
			return Level{}, fmt.Errorf("gate %d: unknown color %q", i, g.Color)
		}
		side, ok := core.ParseSide(g.Side)
		if !ok {
			return Level{}, fmt.Errorf("gate %d: unknown side %q", i, g.Side)
		}
		level.Gates = append(level.Gates, *core.NewGate(g.X, g.Y, g.W, g.H, color, side))
	}

	for _, w := range yl.Walls {
		level.Pieces = append(level.Pieces, *core.NewWall(w.X, w.Y, w.W, w.H, CellSize))
	}

	for i, p := range yl.Pieces {
		piece, err := p.toPiece()
		if err != nil {
			return Level{}, fmt.Errorf("piece %d: %w", i, err)
		}
		level.Pieces = append(level.Pieces, piece)
	}

	return level, nil
}

func (p YAMLPiece) toPiece() (core.Piece, error) {
	color, ok := core.ParseColor(p.Color)
	if !ok {
		return core.Piece{}, fmt.Errorf("unknown color %q", p.Color)
	}
	axis, ok := core.ParseAxis(p.Axis)
	if !ok {
		return core.Piece{}, fmt.Errorf("unknown axis %q", p.Axis)
	}

	var shape core.Shape
	switch {
	case p.Shape != "" && len(p.Cells) > 0:
		return core.Piece{}, fmt.Errorf("both shape and cells given")
	case p.Shape != "":
		tiles, ok := core.ShapeByName(p.Shape)
		if !ok {
			return core.Piece{}, fmt.Errorf("unknown shape %q", p.Shape)
		}
		shape = tiles.Expand(TileSize / CellSize)
	default:
		var err error
		shape, err = core.ParseShape(p.Cells)
		if err != nil {
			return core.Piece{}, err
		}
	}

	x, y := p.X, p.Y
	if p.Tile != nil {
		x = GridOriginX + p.Tile.Col*TileSize
		y = GridOriginY + p.Tile.Row*TileSize
	}

	return *core.NewPiece(x, y, shape, CellSize, color, axis), nil
}

// MarshalYAML encodes a level in the YAML format. Pieces are written with
// explicit cells; walls with their bounds.
func MarshalYAML(l Level) ([]byte, error) {
	yl := YAMLLevel{
		ID:        l.ID,
		Name:      l.Name,
		TimeLimit: l.TimeLimit,
		Metadata:  l.Metadata,
	}
	for _, g := range l.Gates {
		yl.Gates = append(yl.Gates, YAMLGate{
			YAMLRect: YAMLRect{X: g.X, Y: g.Y, W: g.W, H: g.H},
			Color:    g.Color.String(),
			Side:     g.Side.String(),
		})
	}
	for _, p := range l.Pieces {
		if p.IsWall() {
			yl.Walls = append(yl.Walls, YAMLRect{X: p.X, Y: p.Y, W: p.W, H: p.H})
			continue
		}
		yp := YAMLPiece{X: p.X, Y: p.Y, Cells: p.Shape.Strings(), Color: p.Color.String()}
		if p.Axis != core.AxisNone {
			yp.Axis = p.Axis.String()
		}
		yl.Pieces = append(yl.Pieces, yp)
	}
	return yaml.Marshal(yl)
}
