package core

// Snapshot is an immutable copy of an arena's pieces and gates.
// Exiting pieces are left out.
type Snapshot struct {
	pieces []Piece
	gates  []Gate
}

// NewSnapshot copies the given pieces and gates into a snapshot.
func NewSnapshot(pieces []Piece, gates []Gate) Snapshot {
	s := Snapshot{
		pieces: make([]Piece, 0, len(pieces)),
		gates:  make([]Gate, len(gates)),
	}
	for _, p := range pieces {
		if p.Exiting {
			continue
		}
		p.Selected = false
		p.Target = nil
		s.pieces = append(s.pieces, p)
	}
	copy(s.gates, gates)
	return s
}

// Pieces returns a copy of the pieces in insertion order.
func (s Snapshot) Pieces() []Piece {
	out := make([]Piece, len(s.pieces))
	copy(out, s.pieces)
	return out
}

// Gates returns a copy of the gates in insertion order.
func (s Snapshot) Gates() []Gate {
	out := make([]Gate, len(s.gates))
	copy(out, s.gates)
	return out
}

// Empty reports whether the snapshot holds nothing.
func (s Snapshot) Empty() bool {
	return len(s.pieces) == 0 && len(s.gates) == 0
}

// History keeps undo and redo stacks of snapshots.
type History struct {
	undo  []Snapshot
	redo  []Snapshot
	limit int
}

// NewHistory creates a history that keeps at most limit undo steps.
// A limit of zero or less means unbounded.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Push records a state to return to and clears the redo stack.
func (h *History) Push(s Snapshot) {
	h.undo = append(h.undo, s)
	if h.limit > 0 && len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
	h.redo = h.redo[:0]
}

// Undo returns the previous state and stores current for Redo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	return prev, true
}

// Redo returns the state undone last and stores current for Undo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current)
	return next, true
}

// CanUndo reports whether Undo has a state to return.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// Len returns the number of undo steps.
func (h *History) Len() int { return len(h.undo) }

// CanRedo reports whether Redo has a state to return.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Clear drops both stacks.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
