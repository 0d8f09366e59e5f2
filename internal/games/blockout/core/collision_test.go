package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vovakirdan/blockout/internal/games/blockout/core"
)

const cell = 45

func square(x, y int, c core.Color) *core.Piece {
	return core.NewPiece(x, y, core.FilledShape(1, 1), cell, c, core.AxisNone)
}

func lPiece(x, y int, c core.Color) *core.Piece {
	s, err := core.ParseShape([]string{"#.", "##"})
	if err != nil {
		panic(err)
	}
	return core.NewPiece(x, y, s, cell, c, core.AxisNone)
}

func TestOracleBoundsRejection(t *testing.T) {
	o := core.NewOracle(core.DefaultTuning())
	p := square(100, 100, core.ColorRed)

	tests := []struct {
		name  string
		x, y  int
		valid bool
	}{
		{"inside", 100, 100, true},
		{"negative x", -1, 100, false},
		{"left edge", 0, 100, true},
		{"inside HUD margin", 100, 59, false},
		{"top edge", 100, 60, true},
		{"right edge", 955, 100, true},
		{"past right edge", 956, 100, false},
		{"bottom edge", 100, 1155, true},
		{"past bottom edge", 100, 1156, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, o.IsValidMove(p, tc.x, tc.y, nil))
		})
	}
}

func TestOracleWallScenario(t *testing.T) {
	o := core.NewOracle(core.DefaultTuning())
	p := square(100, 100, core.ColorRed)
	wall := core.NewWall(145, 100, 45, 45, cell)

	assert.False(t, o.IsValidMove(p, 110, 100, []*core.Piece{wall}))
	assert.True(t, o.IsValidMove(p, 50, 100, []*core.Piece{wall}))
}

func TestOracleWallIgnoresShape(t *testing.T) {
	o := core.NewOracle(core.DefaultTuning())
	p := square(250, 100, core.ColorRed)

	// The mover sits in the empty corner of an L: no cells overlap.
	l := lPiece(200, 100, core.ColorBlue)
	assert.True(t, o.IsValidMove(p, 250, 100, []*core.Piece{l}))

	// A wall with the same bounds rejects on the bounding box alone.
	wall := core.NewWall(200, 100, 90, 90, cell)
	assert.False(t, o.IsValidMove(p, 250, 100, []*core.Piece{wall}))
}

func TestOracleToleranceTouch(t *testing.T) {
	o := core.NewOracle(core.DefaultTuning())
	p := square(0, 100, core.ColorRed)

	t.Run("square neighbour", func(t *testing.T) {
		other := square(100, 100, core.ColorBlue)
		// Shrunk mover cell spans x+2..x+43; it touches 100 at x=57.
		assert.True(t, o.IsValidMove(p, 57, 100, []*core.Piece{other}))
		assert.False(t, o.IsValidMove(p, 58, 100, []*core.Piece{other}))
	})

	t.Run("L notch", func(t *testing.T) {
		l := lPiece(200, 100, core.ColorBlue)
		assert.True(t, o.IsValidMove(p, 245, 100, []*core.Piece{l}))
		assert.True(t, o.IsValidMove(p, 243, 100, []*core.Piece{l}), "touching after tolerance is not a collision")
		assert.False(t, o.IsValidMove(p, 242, 100, []*core.Piece{l}))
	})
}

func TestOracleIsIdempotent(t *testing.T) {
	o := core.NewOracle(core.DefaultTuning())
	p := square(100, 100, core.ColorRed)
	obstacles := []*core.Piece{core.NewWall(145, 100, 45, 45, cell), lPiece(300, 300, core.ColorBlue)}

	for _, pos := range [][2]int{{110, 100}, {50, 100}, {290, 300}} {
		first := o.IsValidMove(p, pos[0], pos[1], obstacles)
		second := o.IsValidMove(p, pos[0], pos[1], obstacles)
		assert.Equal(t, first, second, "position %v", pos)
	}
	assert.Equal(t, 100, p.X, "the oracle must not move the piece")
}

func TestOracleSkipsMoverInObstacles(t *testing.T) {
	o := core.NewOracle(core.DefaultTuning())
	p := square(100, 100, core.ColorRed)
	assert.True(t, o.IsValidMove(p, 100, 100, []*core.Piece{p}))
}

func TestOracleEmptyShapePanics(t *testing.T) {
	o := core.NewOracle(core.DefaultTuning())
	assert.Panics(t, func() {
		o.IsValidMove(&core.Piece{W: 45, H: 45}, 100, 100, nil)
	})
}
