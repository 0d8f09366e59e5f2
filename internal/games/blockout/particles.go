package blockout

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/blockout/internal/games/blockout/core"
)

const particleFade = 0.03

// Particle is one fragment of an exit burst, in logical pixels.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Alpha  float64
	Color  core.Color
}

// Particles is a set of bursts fading out together.
type Particles struct {
	items []Particle
}

// Spawn adds n particles flying out of (x, y) in random directions.
func (ps *Particles) Spawn(rng *rand.Rand, x, y int, c core.Color, n int) {
	for i := 0; i < n; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := rng.Float64()*5 + 2
		ps.items = append(ps.items, Particle{
			X:     float64(x),
			Y:     float64(y),
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Alpha: 1,
			Color: c,
		})
	}
}

// Update moves every particle one tick and drops the faded ones.
func (ps *Particles) Update() {
	alive := ps.items[:0]
	for _, p := range ps.items {
		p.X += p.VX
		p.Y += p.VY
		p.Alpha -= particleFade
		if p.Alpha > 0 {
			alive = append(alive, p)
		}
	}
	ps.items = alive
}

// Len returns the number of live particles.
func (ps *Particles) Len() int { return len(ps.items) }

// All returns the live particles.
func (ps *Particles) All() []Particle { return ps.items }

// Clear removes every particle.
func (ps *Particles) Clear() { ps.items = ps.items[:0] }
