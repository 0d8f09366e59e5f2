package core

import (
	platformcore "github.com/vovakirdan/blockout/internal/core"
)

// Oracle decides whether a piece may occupy a candidate position.
// It holds no state besides its tuning, so results depend only on the
// arguments.
type Oracle struct {
	Tuning Tuning
}

// NewOracle creates an oracle with the given tuning.
func NewOracle(t Tuning) Oracle {
	return Oracle{Tuning: t}
}

// InBounds reports whether the piece fits inside the arena at (x, y).
func (o Oracle) InBounds(p *Piece, x, y int) bool {
	t := o.Tuning
	return x >= t.MinX && y >= t.MinY && x+p.W <= t.MaxX && y+p.H <= t.MaxY
}

// IsValidMove reports whether p may be placed with its top-left corner at
// (x, y) without overlapping any obstacle.
//
// The mover's bounding box, shrunk by LooseInset, is tested against each
// obstacle first. Walls reject on that test alone. Other obstacles reject
// only if an occupied mover cell, shrunk by CellTolerance, overlaps one of
// their occupied cells. All overlaps are strict: touching edges pass.
func (o Oracle) IsValidMove(p *Piece, x, y int, obstacles []*Piece) bool {
	if p.Shape.IsZero() {
		panic("blockout: mover has an empty shape")
	}
	if !o.InBounds(p, x, y) {
		return false
	}

	loose := platformcore.NewRect(x, y, p.W, p.H).Inset(o.Tuning.LooseInset)

	for _, other := range obstacles {
		if other == p {
			continue
		}
		if !loose.Intersects(other.Bounds()) {
			continue
		}
		if other.IsWall() {
			return false
		}
		if o.cellsOverlap(p, x, y, other) {
			return false
		}
	}
	return true
}

func (o Oracle) cellsOverlap(p *Piece, x, y int, other *Piece) bool {
	cell := o.Tuning.CellSize
	for _, mc := range p.Shape.Occupied() {
		mine := platformcore.NewRect(x+mc.Col*cell, y+mc.Row*cell, cell, cell).Inset(o.Tuning.CellTolerance)
		for _, oc := range other.Shape.Occupied() {
			theirs := platformcore.NewRect(other.X+oc.Col*cell, other.Y+oc.Row*cell, cell, cell)
			if mine.Intersects(theirs) {
				return true
			}
		}
	}
	return false
}
