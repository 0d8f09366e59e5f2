package core

// ShapeExpand is the number of collision cells per tile edge for shapes
// spawned or cycled in the editor.
const ShapeExpand = 2

// Editor places and edits pieces and gates in an arena. Every change is
// recorded so it can be undone.
type Editor struct {
	arena   *Arena
	history *History

	piece *Piece
	gate  *Gate

	dragging       bool
	offX, offY     int
	startX, startY int
	before         Snapshot // State captured when the drag began
}

// NewEditor creates an editor over a.
func NewEditor(a *Arena) *Editor {
	return &Editor{arena: a, history: NewHistory(100)}
}

// Arena returns the edited arena.
func (e *Editor) Arena() *Arena { return e.arena }

// History returns the undo history.
func (e *Editor) History() *History { return e.history }

// Selection returns the selected piece or gate. At most one is non-nil.
func (e *Editor) Selection() (*Piece, *Gate) { return e.piece, e.gate }

// Load replaces the arena contents and clears history and selection.
func (e *Editor) Load(s Snapshot) {
	e.arena.Restore(s)
	e.history.Clear()
	e.clearSelection()
}

func (e *Editor) clearSelection() {
	if e.piece != nil {
		e.piece.Selected = false
	}
	e.piece, e.gate = nil, nil
	e.dragging = false
}

func (e *Editor) selectPiece(p *Piece) {
	e.clearSelection()
	e.piece = p
	p.Selected = true
}

func (e *Editor) selectGate(g *Gate) {
	e.clearSelection()
	e.gate = g
}

func (e *Editor) save() {
	e.history.Push(e.arena.Snapshot())
}

// Press selects the topmost piece whose bounds contain (x, y), or failing
// that the first such gate, and starts dragging it. Walls can be picked.
func (e *Editor) Press(x, y int) bool {
	e.clearSelection()

	pieces := e.arena.Pieces()
	for i := len(pieces) - 1; i >= 0; i-- {
		if p := pieces[i]; p.Bounds().Contains(x, y) {
			e.selectPiece(p)
			e.beginDrag(x, y, p.X, p.Y)
			return true
		}
	}
	for _, g := range e.arena.Gates() {
		if g.ContainsPoint(x, y) {
			e.selectGate(g)
			e.beginDrag(x, y, g.X, g.Y)
			return true
		}
	}
	return false
}

func (e *Editor) beginDrag(x, y, ox, oy int) {
	e.before = e.arena.Snapshot()
	e.dragging = true
	e.offX, e.offY = x-ox, y-oy
	e.startX, e.startY = ox, oy
}

// Drag moves the selection freely with the pointer. No collision applies.
func (e *Editor) Drag(x, y int) {
	if !e.dragging {
		return
	}
	nx, ny := x-e.offX, y-e.offY
	switch {
	case e.piece != nil:
		e.piece.MoveTo(nx, ny)
	case e.gate != nil:
		e.gate.X, e.gate.Y = nx, ny
	}
}

// Release ends a drag. Pieces snap to the grid when the snapped spot does
// not overlap another piece; gates snap unconditionally. A drag that moved
// the selection is recorded in history.
func (e *Editor) Release() {
	if !e.dragging {
		return
	}
	e.dragging = false

	t := e.arena.Tuning()
	var x, y int
	switch {
	case e.piece != nil:
		e.arena.Oracle().Snap(e.piece, e.otherPieces(e.piece))
		x, y = e.piece.X, e.piece.Y
	case e.gate != nil:
		e.gate.X, e.gate.Y = SnapToGrid(e.gate.X, e.gate.Y, t.CellSize, t.GridOffsetX, t.GridOffsetY)
		x, y = e.gate.X, e.gate.Y
	default:
		return
	}
	if x != e.startX || y != e.startY {
		e.history.Push(e.before)
	}
}

func (e *Editor) otherPieces(p *Piece) []*Piece {
	var out []*Piece
	for _, q := range e.arena.Pieces() {
		if q != p {
			out = append(out, q)
		}
	}
	return out
}

// Nudge moves the selection by (dx, dy) without collision checks.
func (e *Editor) Nudge(dx, dy int) bool {
	if e.piece == nil && e.gate == nil {
		return false
	}
	e.save()
	if e.piece != nil {
		e.piece.MoveTo(e.piece.X+dx, e.piece.Y+dy)
	} else {
		e.gate.X += dx
		e.gate.Y += dy
	}
	return true
}

// SelectNext cycles the selection through pieces and then gates.
func (e *Editor) SelectNext() {
	pieces, gates := e.arena.Pieces(), e.arena.Gates()
	total := len(pieces) + len(gates)
	if total == 0 {
		e.clearSelection()
		return
	}

	cur := -1
	for i, p := range pieces {
		if p == e.piece {
			cur = i
		}
	}
	for i, g := range gates {
		if g == e.gate {
			cur = len(pieces) + i
		}
	}

	next := (cur + 1) % total
	if next < len(pieces) {
		e.selectPiece(pieces[next])
	} else {
		e.selectGate(gates[next-len(pieces)])
	}
}

// SpawnWall adds a one-cell wall at (x, y) and selects it.
func (e *Editor) SpawnWall(x, y int) *Piece {
	e.save()
	cell := e.arena.Tuning().CellSize
	w := NewWall(x, y, cell, cell, cell)
	e.arena.AddPiece(w)
	e.selectPiece(w)
	return w
}

// SpawnGate adds a blue top gate two cells wide at (x, y) and selects it.
func (e *Editor) SpawnGate(x, y int) *Gate {
	e.save()
	cell := e.arena.Tuning().CellSize
	g := NewGate(x, y, 2*cell, cell, ColorBlue, SideTop)
	e.arena.AddGate(g)
	e.selectGate(g)
	return g
}

// SpawnPiece adds a blue single-tile piece at (x, y) and selects it.
func (e *Editor) SpawnPiece(x, y int) *Piece {
	e.save()
	shape, _ := ShapeByName("S_1x1")
	p := NewPiece(x, y, shape.Expand(ShapeExpand), e.arena.Tuning().CellSize, ColorBlue, AxisNone)
	e.arena.AddPiece(p)
	e.selectPiece(p)
	return p
}

// Delete removes the selection.
func (e *Editor) Delete() bool {
	switch {
	case e.piece != nil:
		e.save()
		e.arena.RemovePiece(e.piece.ID)
	case e.gate != nil:
		e.save()
		e.arena.RemoveGate(e.gate)
	default:
		return false
	}
	e.clearSelection()
	return true
}

// CycleColor advances the color of the selected piece or gate. Walls keep
// their color.
func (e *Editor) CycleColor() bool {
	switch {
	case e.piece != nil && !e.piece.IsWall():
		e.save()
		e.piece.Color = e.piece.Color.Next()
	case e.gate != nil:
		e.save()
		e.gate.Color = e.gate.Color.Next()
	default:
		return false
	}
	return true
}

// CycleShape replaces the selected piece's shape with the next catalog
// shape. Shapes outside the catalog restart at the first entry.
func (e *Editor) CycleShape() bool {
	if e.piece == nil || e.piece.IsWall() {
		return false
	}
	e.save()
	next := NextCatalogShape(e.piece.Shape, ShapeExpand)
	e.piece.SetShape(next.Shape, e.arena.Tuning().CellSize)
	return true
}

// CycleAxis advances the selected piece's axis restriction.
func (e *Editor) CycleAxis() bool {
	if e.piece == nil || e.piece.IsWall() {
		return false
	}
	e.save()
	e.piece.Axis = e.piece.Axis.Next()
	return true
}

// CycleSide turns the selected gate to the next side and swaps its width
// and height.
func (e *Editor) CycleSide() bool {
	if e.gate == nil {
		return false
	}
	e.save()
	e.gate.Side = e.gate.Side.Next()
	e.gate.W, e.gate.H = e.gate.H, e.gate.W
	return true
}

// Resize grows or shrinks the selected wall or gate by whole cells.
// Neither dimension drops below one cell.
func (e *Editor) Resize(dCols, dRows int) bool {
	cell := e.arena.Tuning().CellSize
	switch {
	case e.piece != nil && e.piece.IsWall():
		w := max(e.piece.W+dCols*cell, cell)
		h := max(e.piece.H+dRows*cell, cell)
		if w == e.piece.W && h == e.piece.H {
			return false
		}
		e.save()
		wall := NewWall(e.piece.X, e.piece.Y, w, h, cell)
		e.piece.W, e.piece.H, e.piece.Shape = wall.W, wall.H, wall.Shape
	case e.gate != nil:
		w := max(e.gate.W+dCols*cell, cell)
		h := max(e.gate.H+dRows*cell, cell)
		if w == e.gate.W && h == e.gate.H {
			return false
		}
		e.save()
		e.gate.W, e.gate.H = w, h
	default:
		return false
	}
	return true
}

// Undo restores the previous state.
func (e *Editor) Undo() bool {
	prev, ok := e.history.Undo(e.arena.Snapshot())
	if !ok {
		return false
	}
	e.arena.Restore(prev)
	e.clearSelection()
	return true
}

// Redo reapplies the last undone change.
func (e *Editor) Redo() bool {
	next, ok := e.history.Redo(e.arena.Snapshot())
	if !ok {
		return false
	}
	e.arena.Restore(next)
	e.clearSelection()
	return true
}
