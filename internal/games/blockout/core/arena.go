package core

import (
	"math/rand"

	"github.com/kamstrup/intmap"
)

// ExitFunc is notified when an exiting piece leaves the arena, with the
// piece's last center and color.
type ExitFunc func(x, y int, c Color)

// dragState tracks the piece held by the pointer.
type dragState struct {
	piece          *Piece
	offX, offY     int // Pointer offset from the piece corner
	startX, startY int // Piece position when the drag began
}

// Arena owns the pieces and gates of one level and applies moves to them.
type Arena struct {
	tuning   Tuning
	oracle   Oracle
	resolver Resolver
	detector GateDetector
	animator ExitAnimator
	rng      *rand.Rand

	pieces []*Piece // Insertion order; later pieces are drawn on top
	byID   *intmap.Map[PieceID, *Piece]
	gates  []*Gate
	nextID PieceID

	drag     dragState
	selected *Piece
	onExit   ExitFunc
}

// NewArena creates an empty arena.
func NewArena(t Tuning, seed int64) *Arena {
	return &Arena{
		tuning:   t,
		oracle:   NewOracle(t),
		resolver: NewResolver(t),
		detector: GateDetector{Tolerance: t.AlignTolerance},
		animator: ExitAnimator{Speed: t.ExitSpeed, Jitter: t.ExitJitter, Threshold: t.ExitThreshold},
		rng:      rand.New(rand.NewSource(seed)),
		byID:     intmap.New[PieceID, *Piece](64),
		nextID:   1,
	}
}

// Tuning returns the arena constants.
func (a *Arena) Tuning() Tuning { return a.tuning }

// Oracle returns the collision oracle used by the arena.
func (a *Arena) Oracle() Oracle { return a.oracle }

// OnExit registers the exit notification.
func (a *Arena) OnExit(fn ExitFunc) { a.onExit = fn }

// AddPiece adds p on top of the existing pieces and assigns its ID.
func (a *Arena) AddPiece(p *Piece) PieceID {
	p.ID = a.nextID
	a.nextID++
	a.pieces = append(a.pieces, p)
	a.byID.Put(p.ID, p)
	return p.ID
}

// AddGate appends a gate. Gates are matched in insertion order.
func (a *Arena) AddGate(g *Gate) {
	a.gates = append(a.gates, g)
}

// RemovePiece deletes a piece. It reports whether the piece existed.
func (a *Arena) RemovePiece(id PieceID) bool {
	p, ok := a.byID.Get(id)
	if !ok {
		return false
	}
	a.byID.Del(id)
	for i, q := range a.pieces {
		if q == p {
			a.pieces = append(a.pieces[:i], a.pieces[i+1:]...)
			break
		}
	}
	if a.drag.piece == p {
		a.drag = dragState{}
	}
	if a.selected == p {
		a.selected = nil
	}
	return true
}

// RemoveGate deletes a gate. It reports whether the gate existed.
func (a *Arena) RemoveGate(g *Gate) bool {
	for i, q := range a.gates {
		if q == g {
			a.gates = append(a.gates[:i], a.gates[i+1:]...)
			return true
		}
	}
	return false
}

// Piece returns the piece with the given ID.
func (a *Arena) Piece(id PieceID) (*Piece, bool) {
	return a.byID.Get(id)
}

// Pieces returns the live pieces in draw order. The slice must not be
// modified.
func (a *Arena) Pieces() []*Piece { return a.pieces }

// Gates returns the gates in insertion order. The slice must not be
// modified.
func (a *Arena) Gates() []*Gate { return a.gates }

// PieceAt returns the topmost movable piece whose shape covers (x, y).
// Walls and exiting pieces are never returned.
func (a *Arena) PieceAt(x, y int) *Piece {
	for i := len(a.pieces) - 1; i >= 0; i-- {
		p := a.pieces[i]
		if p.IsWall() || p.Exiting {
			continue
		}
		if p.ContainsPoint(x, y, a.tuning.CellSize) {
			return p
		}
	}
	return nil
}

// Obstacles builds the obstacle list for mover: every other non-exiting
// piece plus a wall proxy for each gate of a different color.
// The list is rebuilt on every call.
func (a *Arena) Obstacles(mover *Piece) []*Piece {
	out := make([]*Piece, 0, len(a.pieces)+len(a.gates))
	for _, p := range a.pieces {
		if p == mover || p.Exiting {
			continue
		}
		out = append(out, p)
	}
	for _, g := range a.gates {
		if g.Color != mover.Color {
			out = append(out, g.Proxy(a.tuning.CellSize))
		}
	}
	return out
}

// Selected returns the piece picked by the pointer or keyboard, if any.
func (a *Arena) Selected() *Piece { return a.selected }

func (a *Arena) setSelected(p *Piece) {
	if a.selected != nil {
		a.selected.Selected = false
	}
	a.selected = p
	if p != nil {
		p.Selected = true
	}
}

// SelectNext moves the keyboard selection to the next movable piece in
// draw order, wrapping around. It returns the new selection.
func (a *Arena) SelectNext() *Piece {
	start := -1
	for i, p := range a.pieces {
		if p == a.selected {
			start = i
			break
		}
	}
	n := len(a.pieces)
	for k := 1; k <= n; k++ {
		p := a.pieces[(start+k+n)%n]
		if !p.IsWall() && !p.Exiting {
			a.setSelected(p)
			return p
		}
	}
	a.setSelected(nil)
	return nil
}

// BeginDrag picks up the topmost piece under (x, y). It reports whether a
// piece was picked.
func (a *Arena) BeginDrag(x, y int) bool {
	p := a.PieceAt(x, y)
	if p == nil {
		return false
	}
	a.setSelected(p)
	a.drag = dragState{
		piece:  p,
		offX:   x - p.X,
		offY:   y - p.Y,
		startX: p.X,
		startY: p.Y,
	}
	return true
}

// Dragging returns the piece currently held by the pointer.
func (a *Arena) Dragging() *Piece { return a.drag.piece }

// ContinueDrag moves the held piece toward the pointer at (x, y) as far as
// the path is clear. It reports whether the piece moved.
func (a *Arena) ContinueDrag(x, y int) bool {
	p := a.drag.piece
	if p == nil || p.Exiting {
		return false
	}
	tx, ty := p.Axis.Constrain(a.drag.startX, a.drag.startY, x-a.drag.offX, y-a.drag.offY)
	return a.moveToward(p, tx, ty)
}

// EndDrag drops the held piece, snapping it to the grid when the snapped
// spot is free.
func (a *Arena) EndDrag() {
	p := a.drag.piece
	a.drag = dragState{}
	if p == nil {
		return
	}
	if !p.Exiting {
		a.oracle.Snap(p, a.Obstacles(p))
	}
	if a.selected == p {
		a.setSelected(nil)
	}
}

// Nudge moves the selected piece by (dx, dy) through the resolver and
// snaps it. It reports whether the piece moved.
func (a *Arena) Nudge(dx, dy int) bool {
	p := a.selected
	if p == nil || p.Exiting || a.drag.piece != nil {
		return false
	}
	tx, ty := p.Axis.Constrain(p.X, p.Y, p.X+dx, p.Y+dy)
	moved := a.moveToward(p, tx, ty)
	if !p.Exiting {
		if a.oracle.Snap(p, a.Obstacles(p)) {
			moved = true
		}
	}
	return moved
}

// moveToward resolves and commits a move, then checks gate alignment.
func (a *Arena) moveToward(p *Piece, tx, ty int) bool {
	nx, ny, moved := a.resolver.Resolve(p, tx, ty, a.Obstacles(p))
	if !moved {
		return false
	}
	p.MoveTo(nx, ny)
	if g := a.detector.Detect(p, a.gates); g != nil {
		p.BeginExit(g)
		if a.drag.piece == p {
			a.drag = dragState{}
		}
		if a.selected == p {
			a.selected = nil
		}
	}
	return true
}

// Tick advances exit animations and removes pieces that have left.
// It returns the number of pieces removed.
func (a *Arena) Tick() int {
	removed := 0
	for i := len(a.pieces) - 1; i >= 0; i-- {
		p := a.pieces[i]
		if !p.Exiting {
			continue
		}
		a.animator.Step(p, a.rng)
		if !a.animator.Done(p) {
			continue
		}
		a.pieces = append(a.pieces[:i], a.pieces[i+1:]...)
		a.byID.Del(p.ID)
		removed++
		if a.onExit != nil {
			cx, cy := p.Center()
			a.onExit(cx, cy, p.Color)
		}
	}
	return removed
}

// LivePieceCount returns the number of non-wall pieces still in the arena,
// including pieces that are on their way out.
func (a *Arena) LivePieceCount() int {
	n := 0
	for _, p := range a.pieces {
		if !p.IsWall() {
			n++
		}
	}
	return n
}

// Cleared reports whether every non-wall piece has left.
func (a *Arena) Cleared() bool {
	return a.LivePieceCount() == 0
}

// Snapshot captures the current pieces and gates.
func (a *Arena) Snapshot() Snapshot {
	pieces := make([]Piece, len(a.pieces))
	for i, p := range a.pieces {
		pieces[i] = *p
	}
	gates := make([]Gate, len(a.gates))
	for i, g := range a.gates {
		gates[i] = *g
	}
	return NewSnapshot(pieces, gates)
}

// Restore replaces the arena contents with the snapshot. Piece IDs are
// reassigned and any drag or selection is dropped.
func (a *Arena) Restore(s Snapshot) {
	a.pieces = a.pieces[:0]
	a.gates = a.gates[:0]
	a.byID.Clear()
	a.drag = dragState{}
	a.selected = nil
	a.nextID = 1

	for _, p := range s.Pieces() {
		a.AddPiece(&p)
	}
	for _, g := range s.Gates() {
		a.AddGate(&g)
	}
}
