package blockout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	platformcore "github.com/vovakirdan/blockout/internal/core"
)

func TestViewportFitsAndCenters(t *testing.T) {
	world := platformcore.NewRect(0, 60, 800, 860)
	area := platformcore.NewRect(0, 2, 80, 22)
	v := NewViewport(world, area)

	assert.True(t, v.Valid())
	assert.Equal(t, 22, v.Screen.H, "height is the limiting side")
	assert.LessOrEqual(t, v.Screen.W, area.W)
	assert.InDelta(t, 2*v.colPx, v.rowPx, 1e-9)

	left := v.Screen.X - area.X
	right := area.Right() - v.Screen.Right()
	assert.LessOrEqual(t, platformcore.Abs(left-right), 1)
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(platformcore.NewRect(255, 45, 290, 790), platformcore.NewRect(0, 2, 120, 37))

	for row := v.Screen.Y; row < v.Screen.Bottom(); row++ {
		for col := v.Screen.X; col < v.Screen.Right(); col++ {
			x, y := v.ToWorld(col, row)
			gc, gr := v.ToScreen(x, y)
			if gc != col || gr != row {
				t.Fatalf("cell (%d,%d) -> world (%d,%d) -> cell (%d,%d)", col, row, x, y, gc, gr)
			}
		}
	}
}

func TestViewportCorners(t *testing.T) {
	world := platformcore.NewRect(100, 100, 400, 200)
	v := NewViewport(world, platformcore.NewRect(0, 0, 40, 10))

	col, row := v.ToScreen(world.X, world.Y)
	assert.Equal(t, v.Screen.X, col)
	assert.Equal(t, v.Screen.Y, row)

	col, row = v.ToScreen(world.Right()-1, world.Bottom()-1)
	assert.Equal(t, v.Screen.Right()-1, col)
	assert.Equal(t, v.Screen.Bottom()-1, row)
}

func TestViewportEmptyArea(t *testing.T) {
	v := NewViewport(platformcore.NewRect(0, 0, 100, 100), platformcore.NewRect(0, 0, 0, 10))
	assert.False(t, v.Valid())

	col, row := v.ToScreen(50, 50)
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)
}
