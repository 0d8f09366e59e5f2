package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/blockout/internal/games/blockout/core"
)

func tile(x, y int, c core.Color, axis core.Axis) *core.Piece {
	return core.NewPiece(x, y, core.FilledShape(2, 2), cell, c, axis)
}

func TestArenaDragAndSnap(t *testing.T) {
	a := core.NewArena(core.DefaultTuning(), 1)
	p := tile(130, 190, core.ColorBlue, core.AxisNone)
	a.AddPiece(p)

	require.True(t, a.BeginDrag(140, 200))
	assert.Same(t, p, a.Dragging())
	assert.True(t, p.Selected)

	assert.True(t, a.ContinueDrag(175, 200))
	assert.Equal(t, 165, p.X)
	assert.Equal(t, 190, p.Y)

	a.EndDrag()
	assert.Equal(t, 175, p.X, "release snaps to the nearest column")
	assert.Nil(t, a.Dragging())
	assert.False(t, p.Selected)
}

func TestArenaSnapBlockedKeepsDraggedPosition(t *testing.T) {
	a := core.NewArena(core.DefaultTuning(), 1)
	p := tile(130, 190, core.ColorBlue, core.AxisNone)
	a.AddPiece(p)
	a.AddPiece(core.NewWall(262, 190, 10, 90, cell))

	require.True(t, a.BeginDrag(140, 200))
	a.ContinueDrag(175, 200)
	a.EndDrag()

	assert.Equal(t, 165, p.X)
}

func TestArenaAxisRestriction(t *testing.T) {
	a := core.NewArena(core.DefaultTuning(), 1)
	p := tile(130, 190, core.ColorBlue, core.AxisVertical)
	a.AddPiece(p)

	require.True(t, a.BeginDrag(140, 200))
	a.ContinueDrag(400, 300)
	assert.Equal(t, 130, p.X)
	assert.Equal(t, 290, p.Y)
}

func TestArenaBeginDragPicksTopmostMovable(t *testing.T) {
	a := core.NewArena(core.DefaultTuning(), 1)
	a.AddPiece(core.NewWall(100, 100, 90, 90, cell))
	assert.False(t, a.BeginDrag(120, 120), "walls are never picked")

	under := tile(100, 100, core.ColorRed, core.AxisNone)
	over := tile(100, 100, core.ColorBlue, core.AxisNone)
	a.AddPiece(under)
	a.AddPiece(over)

	require.True(t, a.BeginDrag(120, 120))
	assert.Same(t, over, a.Dragging())

	a.EndDrag()
	over.Exiting = true
	require.True(t, a.BeginDrag(120, 120))
	assert.Same(t, under, a.Dragging(), "exiting pieces are skipped")
}

func TestArenaGateExit(t *testing.T) {
	a := core.NewArena(core.DefaultTuning(), 7)
	gate := core.NewGate(0, 100, 40, 90, core.ColorBlue, core.SideLeft)
	a.AddGate(gate)
	p := tile(40, 100, core.ColorBlue, core.AxisNone)
	a.AddPiece(p)

	var exits []core.Color
	a.OnExit(func(x, y int, c core.Color) {
		exits = append(exits, c)
	})

	require.True(t, a.BeginDrag(60, 120))
	require.True(t, a.ContinueDrag(30, 120))

	assert.True(t, p.Exiting)
	assert.Same(t, gate, p.Target)
	assert.False(t, p.Selected)
	assert.Nil(t, a.Dragging(), "the drag ends when the piece commits to the gate")

	x, y := p.X, p.Y
	assert.False(t, a.ContinueDrag(200, 300), "exiting pieces ignore drag input")
	assert.Equal(t, x, p.X)
	assert.Equal(t, y, p.Y)

	assert.Equal(t, 1, a.LivePieceCount(), "exiting pieces still count")
	assert.False(t, a.Cleared())

	removed := 0
	for i := 0; i < 30 && removed == 0; i++ {
		removed = a.Tick()
	}
	assert.Equal(t, 1, removed)
	assert.Equal(t, []core.Color{core.ColorBlue}, exits)
	assert.True(t, a.Cleared())

	_, ok := a.Piece(p.ID)
	assert.False(t, ok)
}

func TestArenaForeignGateBlocks(t *testing.T) {
	a := core.NewArena(core.DefaultTuning(), 1)
	a.AddGate(core.NewGate(0, 100, 40, 90, core.ColorBlue, core.SideLeft))
	p := tile(40, 100, core.ColorRed, core.AxisNone)
	a.AddPiece(p)

	require.True(t, a.BeginDrag(60, 120))
	assert.False(t, a.ContinueDrag(30, 120))
	assert.Equal(t, 40, p.X)
	assert.False(t, p.Exiting)
}

func TestArenaObstacles(t *testing.T) {
	a := core.NewArena(core.DefaultTuning(), 1)
	mover := tile(130, 190, core.ColorBlue, core.AxisNone)
	other := tile(310, 190, core.ColorRed, core.AxisNone)
	leaving := tile(500, 190, core.ColorGreen, core.AxisNone)
	leaving.Exiting = true
	a.AddPiece(mover)
	a.AddPiece(other)
	a.AddPiece(leaving)
	a.AddGate(core.NewGate(0, 100, 40, 90, core.ColorBlue, core.SideLeft))
	a.AddGate(core.NewGate(0, 300, 40, 90, core.ColorRed, core.SideLeft))

	obs := a.Obstacles(mover)
	require.Len(t, obs, 2)
	assert.Same(t, other, obs[0])
	assert.True(t, obs[1].IsWall(), "foreign gate becomes a wall proxy")
	assert.Equal(t, 300, obs[1].Y)
	assert.Equal(t, 1, obs[1].Shape.Cols())
	assert.Equal(t, 2, obs[1].Shape.Rows())

	assert.NotSame(t, obs[1], a.Obstacles(mover)[1], "obstacles are rebuilt on each call")
}

func TestArenaPieceIndex(t *testing.T) {
	a := core.NewArena(core.DefaultTuning(), 1)
	first := a.AddPiece(tile(130, 190, core.ColorBlue, core.AxisNone))
	second := a.AddPiece(tile(310, 190, core.ColorRed, core.AxisNone))
	assert.NotEqual(t, first, second)

	p, ok := a.Piece(second)
	require.True(t, ok)
	assert.Equal(t, core.ColorRed, p.Color)

	assert.True(t, a.RemovePiece(first))
	assert.False(t, a.RemovePiece(first))
	assert.Len(t, a.Pieces(), 1)
}

func TestArenaKeyboardNudge(t *testing.T) {
	a := core.NewArena(core.DefaultTuning(), 1)
	a.AddPiece(core.NewWall(40, 100, 45, 45, cell))
	p := tile(130, 190, core.ColorBlue, core.AxisHorizontal)
	a.AddPiece(p)

	assert.False(t, a.Nudge(45, 0), "nothing selected")

	require.Same(t, p, a.SelectNext(), "walls are skipped")
	assert.True(t, a.Nudge(45, 0))
	assert.Equal(t, 175, p.X)

	assert.False(t, a.Nudge(0, 45), "vertical nudge on a horizontal piece")
	assert.Equal(t, 190, p.Y)
}

func TestArenaSnapshotRestore(t *testing.T) {
	a := core.NewArena(core.DefaultTuning(), 1)
	a.AddPiece(tile(130, 190, core.ColorBlue, core.AxisNone))
	a.AddGate(core.NewGate(0, 100, 40, 90, core.ColorBlue, core.SideLeft))

	snap := a.Snapshot()
	a.Pieces()[0].MoveTo(400, 400)
	a.AddPiece(tile(310, 190, core.ColorRed, core.AxisNone))

	a.Restore(snap)
	require.Len(t, a.Pieces(), 1)
	assert.Equal(t, 130, a.Pieces()[0].X)
	assert.Len(t, a.Gates(), 1)

	a.Pieces()[0].MoveTo(500, 500)
	assert.Equal(t, 130, snap.Pieces()[0].X, "snapshots are not aliased by live pieces")
}
