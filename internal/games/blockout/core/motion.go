package core

import "math"

// Resolver walks a drag path in short sub-steps so fast drags cannot skip
// over thin walls.
type Resolver struct {
	Oracle Oracle
}

// NewResolver creates a resolver with the given tuning.
func NewResolver(t Tuning) Resolver {
	return Resolver{Oracle: NewOracle(t)}
}

// Resolve returns the furthest position along the straight segment from
// the piece's current position to (tx, ty) that the oracle accepts.
// It stops at the first rejected sub-step. The piece is not modified; moved
// is false when the result equals the start.
func (r Resolver) Resolve(p *Piece, tx, ty int, obstacles []*Piece) (x, y int, moved bool) {
	x0, y0 := p.X, p.Y
	dx, dy := tx-x0, ty-y0

	dist := math.Hypot(float64(dx), float64(dy))
	if dist == 0 {
		return x0, y0, false
	}

	step := max(r.Oracle.Tuning.StepSize, 1)
	steps := int(math.Ceil(dist / float64(step)))

	lastX, lastY := x0, y0
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		nx := int(float64(x0) + float64(dx)*t)
		ny := int(float64(y0) + float64(dy)*t)

		if !r.Oracle.IsValidMove(p, nx, ny, obstacles) {
			break
		}
		lastX, lastY = nx, ny
	}

	return lastX, lastY, lastX != x0 || lastY != y0
}
