package core

import "math/rand"

// ExitAnimator moves exiting pieces out through their target gate.
type ExitAnimator struct {
	Speed     int
	Jitter    int
	Threshold int
}

// Step advances an exiting piece by one tick: Speed pixels toward the
// gate side plus a random offset of up to Jitter on both axes.
// Pieces that are not exiting are left alone.
func (a ExitAnimator) Step(p *Piece, rng *rand.Rand) {
	if !p.Exiting || p.Target == nil {
		return
	}
	dx, dy := p.Target.Side.Delta()
	x := p.X + dx*a.Speed
	y := p.Y + dy*a.Speed
	if a.Jitter > 0 {
		x += rng.Intn(2*a.Jitter+1) - a.Jitter
		y += rng.Intn(2*a.Jitter+1) - a.Jitter
	}
	p.MoveTo(x, y)
}

// Done reports whether the piece's center has passed the exit threshold,
// measured from the gate's edge on the exit side.
func (a ExitAnimator) Done(p *Piece) bool {
	g := p.Target
	if !p.Exiting || g == nil {
		return false
	}
	cx, cy := p.Center()
	switch g.Side {
	case SideTop:
		return cy < g.Y+a.Threshold
	case SideBottom:
		return cy > g.Y+g.H-a.Threshold
	case SideLeft:
		return cx < g.X+a.Threshold
	case SideRight:
		return cx > g.X+g.W-a.Threshold
	default:
		return false
	}
}
