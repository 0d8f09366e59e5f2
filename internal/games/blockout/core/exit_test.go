package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vovakirdan/blockout/internal/games/blockout/core"
)

func TestExitAnimatorStep(t *testing.T) {
	a := core.ExitAnimator{Speed: 8, Jitter: 2, Threshold: 40}
	rng := rand.New(rand.NewSource(1))

	gate := core.NewGate(100, 60, 90, 40, core.ColorRed, core.SideTop)
	p := square(120, 200, core.ColorRed)
	p.BeginExit(gate)

	for i := 0; i < 20; i++ {
		x, y := p.X, p.Y
		a.Step(p, rng)
		assert.InDelta(t, y-8, p.Y, 2, "tick %d", i)
		assert.InDelta(t, x, p.X, 2, "tick %d", i)
	}
}

func TestExitAnimatorIgnoresIdlePieces(t *testing.T) {
	a := core.ExitAnimator{Speed: 8, Jitter: 2, Threshold: 40}
	p := square(120, 200, core.ColorRed)

	a.Step(p, rand.New(rand.NewSource(1)))
	assert.Equal(t, 120, p.X)
	assert.Equal(t, 200, p.Y)
	assert.False(t, a.Done(p))
}

func TestExitAnimatorDone(t *testing.T) {
	a := core.ExitAnimator{Speed: 8, Threshold: 40}

	tests := []struct {
		name string
		side core.Side
		x, y int
		done bool
	}{
		// Gate spans x 100..190, y 100..190. Piece center is (x+22, y+22).
		{"top not yet", core.SideTop, 120, 118, false},
		{"top crossed", core.SideTop, 120, 117, true},
		{"bottom not yet", core.SideBottom, 120, 128, false},
		{"bottom crossed", core.SideBottom, 120, 129, true},
		{"left not yet", core.SideLeft, 118, 120, false},
		{"left crossed", core.SideLeft, 117, 120, true},
		{"right not yet", core.SideRight, 128, 120, false},
		{"right crossed", core.SideRight, 129, 120, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gate := core.NewGate(100, 100, 90, 90, core.ColorRed, tc.side)
			p := square(tc.x, tc.y, core.ColorRed)
			p.BeginExit(gate)
			assert.Equal(t, tc.done, a.Done(p))
		})
	}
}
