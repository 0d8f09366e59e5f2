package levels_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockout/internal/games/blockout/core"
	"github.com/vovakirdan/blockout/internal/games/blockout/levels"
	"github.com/vovakirdan/blockout/internal/games/blockout/levels/formats"
)

func tilePiece(x, y int, c core.Color) core.Piece {
	return *core.NewPiece(x, y, core.FilledShape(2, 2), formats.CellSize, c, core.AxisNone)
}

func validLevel() formats.Level {
	return formats.Level{
		ID: "ok",
		Gates: []core.Gate{
			*core.NewGate(40, 60, 90, 40, core.ColorRed, core.SideTop),
			*core.NewGate(0, 100, 40, 90, core.ColorBlue, core.SideLeft),
		},
		Pieces: []core.Piece{
			*core.NewWall(0, 190, 40, 90, formats.CellSize),
			tilePiece(40, 100, core.ColorRed),
			tilePiece(130, 100, core.ColorBlue),
		},
	}
}

func TestValidateAcceptsLevel(t *testing.T) {
	assert.NoError(t, levels.Validate(validLevel()))
}

func TestValidateCodes(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *formats.Level)
		code   string
	}{
		{
			name: "no movable pieces",
			mutate: func(l *formats.Level) {
				l.Pieces = l.Pieces[:1]
			},
			code: "NO_PIECES",
		},
		{
			name: "bad side",
			mutate: func(l *formats.Level) {
				l.Gates[0].Side = core.Side(7)
			},
			code: "BAD_SIDE",
		},
		{
			name: "wall colored gate",
			mutate: func(l *formats.Level) {
				l.Gates[1].Color = core.ColorWall
			},
			code: "WALL_COLOR",
		},
		{
			name: "empty gate",
			mutate: func(l *formats.Level) {
				l.Gates[0].W = 0
			},
			code: "BAD_GATE",
		},
		{
			name: "gate across its edge",
			mutate: func(l *formats.Level) {
				l.Gates[0].W, l.Gates[0].H = 40, 90
			},
			code: "BAD_GATE",
		},
		{
			name: "zero sized piece",
			mutate: func(l *formats.Level) {
				l.Pieces[1].W = 0
			},
			code: "BAD_PIECE",
		},
		{
			name: "off grid",
			mutate: func(l *formats.Level) {
				l.Pieces[2].X += 10
			},
			code: "OFF_GRID",
		},
		{
			name: "overlap",
			mutate: func(l *formats.Level) {
				l.Pieces[2].X = 85
			},
			code: "BLOCKED",
		},
		{
			name: "out of bounds",
			mutate: func(l *formats.Level) {
				l.Pieces[2].Y = 10
			},
			code: "BLOCKED",
		},
		{
			name: "inside a wall",
			mutate: func(l *formats.Level) {
				l.Pieces[0].MoveTo(130, 100)
			},
			code: "BLOCKED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validLevel()
			tt.mutate(&l)

			err := levels.Validate(l)
			require.Error(t, err)

			var ve levels.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.code, ve.Code)
			assert.Contains(t, err.Error(), "["+tt.code+"]")
		})
	}
}

func TestValidateAllowsWallsOffGrid(t *testing.T) {
	l := validLevel()
	l.Pieces[0].MoveTo(3, 197)
	assert.NoError(t, levels.Validate(l))
}
