package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vovakirdan/blockout/internal/games/blockout/core"
)

func TestSnapToGrid(t *testing.T) {
	tests := []struct {
		x, y   int
		wx, wy int
	}{
		{40, 100, 40, 100},
		{62, 122, 40, 100},
		{63, 123, 85, 145},
		{18, 78, 40, 100},
		{17, 77, -5, 55},
		{130, 190, 130, 190},
	}

	for _, tc := range tests {
		x, y := core.SnapToGrid(tc.x, tc.y, 45, 40, 100)
		assert.Equal(t, tc.wx, x, "x for (%d, %d)", tc.x, tc.y)
		assert.Equal(t, tc.wy, y, "y for (%d, %d)", tc.x, tc.y)
	}
}

func TestOracleSnap(t *testing.T) {
	o := core.NewOracle(core.DefaultTuning())

	t.Run("free spot", func(t *testing.T) {
		p := square(150, 200, core.ColorRed)
		assert.True(t, o.Snap(p, nil))
		assert.Equal(t, 130, p.X)
		assert.Equal(t, 190, p.Y)
	})

	t.Run("already aligned", func(t *testing.T) {
		p := square(130, 190, core.ColorRed)
		assert.False(t, o.Snap(p, nil))
	})

	t.Run("blocked spot keeps dragged position", func(t *testing.T) {
		p := square(165, 190, core.ColorRed)
		wall := core.NewWall(217, 190, 10, 45, cell)
		assert.False(t, o.Snap(p, []*core.Piece{wall}))
		assert.Equal(t, 165, p.X)
	})
}
