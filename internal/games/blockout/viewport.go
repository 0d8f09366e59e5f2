package blockout

import (
	"math"

	platformcore "github.com/vovakirdan/blockout/internal/core"
)

// Viewport maps logical pixels onto terminal cells. Terminal cells are
// about twice as tall as wide, so one row covers twice the pixels of one
// column.
type Viewport struct {
	World  platformcore.Rect // Logical region shown
	Screen platformcore.Rect // Cells the region occupies
	colPx  float64
	rowPx  float64
}

// NewViewport fits world into area, keeping the aspect ratio and centering
// the result.
func NewViewport(world, area platformcore.Rect) Viewport {
	if world.Empty() || area.Empty() {
		return Viewport{World: world}
	}
	colPx := math.Max(float64(world.W)/float64(area.W), float64(world.H)/float64(2*area.H))
	rowPx := 2 * colPx

	cols := min(int(math.Ceil(float64(world.W)/colPx)), area.W)
	rows := min(int(math.Ceil(float64(world.H)/rowPx)), area.H)

	return Viewport{
		World:  world,
		Screen: platformcore.NewRect(area.X+(area.W-cols)/2, area.Y+(area.H-rows)/2, cols, rows),
		colPx:  colPx,
		rowPx:  rowPx,
	}
}

// Valid reports whether the viewport has room to draw.
func (v Viewport) Valid() bool {
	return !v.Screen.Empty()
}

// ToWorld returns the logical point at the center of a cell.
func (v Viewport) ToWorld(col, row int) (x, y int) {
	x = v.World.X + int(math.Floor((float64(col-v.Screen.X)+0.5)*v.colPx))
	y = v.World.Y + int(math.Floor((float64(row-v.Screen.Y)+0.5)*v.rowPx))
	return x, y
}

// ToScreen returns the cell containing a logical point.
func (v Viewport) ToScreen(x, y int) (col, row int) {
	if !v.Valid() {
		return 0, 0
	}
	col = v.Screen.X + int(math.Floor(float64(x-v.World.X)/v.colPx))
	row = v.Screen.Y + int(math.Floor(float64(y-v.World.Y)/v.rowPx))
	return col, row
}
