package formats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockout/internal/games/blockout/core"
	"github.com/vovakirdan/blockout/internal/games/blockout/levels/formats"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: demo
name: Demo
time_limit: 90
gates:
  - {x: 40, y: 60, w: 180, h: 40, color: blue, side: top}
walls:
  - {x: 0, y: 100, w: 40, h: 100}
pieces:
  - {tile: {row: 1, col: 2}, shape: L_TL, color: blue, axis: vertical}
  - x: 400
    y: 145
    color: pink
    cells: ["##", ".#"]
metadata:
  author: tester
`)
	l, err := formats.ParseYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "demo", l.ID)
	assert.Equal(t, "Demo", l.Name)
	assert.Equal(t, 90, l.TimeLimit)
	assert.Equal(t, "tester", l.Metadata["author"])

	require.Len(t, l.Gates, 1)
	assert.Equal(t, core.SideTop, l.Gates[0].Side)
	assert.Equal(t, core.ColorBlue, l.Gates[0].Color)

	require.Len(t, l.Pieces, 3)

	wall := l.Pieces[0]
	assert.True(t, wall.IsWall())
	assert.Equal(t, 100, wall.H)
	assert.Equal(t, 3, wall.Shape.Rows())

	tiled := l.Pieces[1]
	assert.Equal(t, 40+2*formats.TileSize, tiled.X)
	assert.Equal(t, 100+formats.TileSize, tiled.Y)
	assert.Equal(t, 180, tiled.W)
	assert.Equal(t, 4, tiled.Shape.Rows())
	assert.False(t, tiled.Shape.At(3, 3))
	assert.Equal(t, core.AxisVertical, tiled.Axis)

	cells := l.Pieces[2]
	assert.Equal(t, 400, cells.X)
	assert.Equal(t, 90, cells.W)
	assert.False(t, cells.Shape.At(1, 0))
	assert.Equal(t, core.AxisNone, cells.Axis)
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		msg  string
	}{
		{"syntax", "gates: [", "yaml unmarshal"},
		{"gate color", "gates:\n  - {x: 0, y: 0, w: 90, h: 40, color: teal, side: top}\n", "unknown color"},
		{"gate side", "gates:\n  - {x: 0, y: 0, w: 90, h: 40, color: red, side: up}\n", "unknown side"},
		{"shape", "pieces:\n  - {x: 40, y: 100, shape: ZIGZAG, color: red}\n", "unknown shape"},
		{"axis", "pieces:\n  - {x: 40, y: 100, shape: S_1x1, color: red, axis: diagonal}\n", "unknown axis"},
		{"both", "pieces:\n  - {x: 40, y: 100, shape: S_1x1, cells: ['#'], color: red}\n", "both shape and cells"},
		{"no footprint", "pieces:\n  - {x: 40, y: 100, color: red}\n", "piece 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := formats.ParseYAML([]byte(tt.data))
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestMarshalYAMLRoundTrip(t *testing.T) {
	in := formats.Level{
		ID:   "rt",
		Name: "Round Trip",
		Gates: []core.Gate{
			*core.NewGate(670, 145, 40, 90, core.ColorPink, core.SideRight),
		},
		Pieces: []core.Piece{
			*core.NewWall(90, 105, 220, 40, formats.CellSize),
			*core.NewPiece(130, 145, core.MustShape([][]bool{{true, true}, {true, false}}), formats.CellSize, core.ColorCyan, core.AxisHorizontal),
		},
	}

	data, err := formats.MarshalYAML(in)
	require.NoError(t, err)

	out, err := formats.ParseYAML(data)
	require.NoError(t, err)

	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.Gates, out.Gates)
	require.Len(t, out.Pieces, 2)
	assert.Equal(t, in.Pieces[0].Bounds(), out.Pieces[0].Bounds())
	assert.True(t, out.Pieces[0].IsWall())
	assert.True(t, in.Pieces[1].Shape.Equal(out.Pieces[1].Shape))
	assert.Equal(t, core.AxisHorizontal, out.Pieces[1].Axis)
}
