package core

// GateDetector finds the gate a piece is aligned with after a move.
type GateDetector struct {
	Tolerance int
}

// Detect returns the first gate, in slice order, that matches the piece's
// color, overlaps it, suits its axis restriction and lines up with it
// within the tolerance. It returns nil when there is none.
//
// Top and bottom gates are entered by moving vertically, so horizontally
// restricted pieces skip them and alignment is checked on the x span.
// Left and right gates work the other way round.
func (d GateDetector) Detect(p *Piece, gates []*Gate) *Gate {
	b := p.Bounds()
	tol := d.Tolerance

	for _, g := range gates {
		if g.Color != p.Color {
			continue
		}
		gb := g.Bounds()
		if !b.Intersects(gb) {
			continue
		}

		var aligned bool
		if g.Side.HorizontalEdge() {
			if p.Axis == AxisHorizontal {
				continue
			}
			aligned = b.X >= gb.X-tol && b.Right() <= gb.Right()+tol
		} else {
			if p.Axis == AxisVertical {
				continue
			}
			aligned = b.Y >= gb.Y-tol && b.Bottom() <= gb.Bottom()+tol
		}

		if aligned {
			return g
		}
	}
	return nil
}
