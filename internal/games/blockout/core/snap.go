package core

import "math"

// SnapToGrid rounds (x, y) to the nearest grid point of the given cell
// size and origin. Halves round toward positive infinity.
func SnapToGrid(x, y, cell, originX, originY int) (int, int) {
	col := math.Floor(float64(x-originX)/float64(cell) + 0.5)
	row := math.Floor(float64(y-originY)/float64(cell) + 0.5)
	return originX + int(col)*cell, originY + int(row)*cell
}

// Snap moves p to the nearest grid point if the oracle accepts it there.
// It reports whether the piece moved; otherwise p keeps its position.
func (o Oracle) Snap(p *Piece, obstacles []*Piece) bool {
	t := o.Tuning
	sx, sy := SnapToGrid(p.X, p.Y, t.CellSize, t.GridOffsetX, t.GridOffsetY)
	if sx == p.X && sy == p.Y {
		return false
	}
	if !o.IsValidMove(p, sx, sy, obstacles) {
		return false
	}
	p.MoveTo(sx, sy)
	return true
}
