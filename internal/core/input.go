package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - nudge selection up
	ActionDown           // S, Down arrow - nudge selection down
	ActionLeft           // A, Left arrow - nudge selection left
	ActionRight          // D, Right arrow - nudge selection right
	ActionNext           // Tab - select the next piece
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart level
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionUndo           // U, Ctrl+Z - editor undo
	ActionRedo           // Ctrl+Y - editor redo
	ActionSave           // Ctrl+S - editor save
	ActionSpawnWall      // 1 - editor: new wall
	ActionSpawnGate      // 2 - editor: new gate
	ActionSpawnPiece     // 3 - editor: new piece
	ActionDelete         // X, Delete - editor: remove selection
	ActionCycleColor     // C - editor: next color
	ActionCycleShape     // F - editor: next shape
	ActionCycleAxis      // A - editor: next axis restriction
	ActionCycleSide      // O - editor: next gate side
	ActionGrowW          // ] - editor: widen selection
	ActionShrinkW        // [ - editor: narrow selection
	ActionGrowH          // } - editor: heighten selection
	ActionShrinkH        // { - editor: shorten selection
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionNext:
		return "Next"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionUndo:
		return "Undo"
	case ActionRedo:
		return "Redo"
	case ActionSave:
		return "Save"
	case ActionSpawnWall:
		return "SpawnWall"
	case ActionSpawnGate:
		return "SpawnGate"
	case ActionSpawnPiece:
		return "SpawnPiece"
	case ActionDelete:
		return "Delete"
	case ActionCycleColor:
		return "CycleColor"
	case ActionCycleShape:
		return "CycleShape"
	case ActionCycleAxis:
		return "CycleAxis"
	case ActionCycleSide:
		return "CycleSide"
	case ActionGrowW:
		return "GrowW"
	case ActionShrinkW:
		return "ShrinkW"
	case ActionGrowH:
		return "GrowH"
	case ActionShrinkH:
		return "ShrinkH"
	default:
		return "Unknown"
	}
}

// Pointer is the mouse state gathered during one tick, in screen cells.
// A single tick may carry a press, motion and a release; games apply them
// in that order.
type Pointer struct {
	Pressed  bool // Button went down this tick at (PressX, PressY)
	Moved    bool // Pointer moved while held; (X, Y) is the latest position
	Released bool // Button went up this tick at (X, Y)
	PressX   int
	PressY   int
	X        int
	Y        int
}

// Active reports whether any pointer event happened this tick.
func (p Pointer) Active() bool {
	return p.Pressed || p.Moved || p.Released
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Press records a button press at the given screen cell.
func (f *InputFrame) Press(x, y int) {
	f.Pointer.Pressed = true
	f.Pointer.PressX, f.Pointer.PressY = x, y
	f.Pointer.X, f.Pointer.Y = x, y
}

// Move records pointer motion while the button is held.
func (f *InputFrame) Move(x, y int) {
	f.Pointer.Moved = true
	f.Pointer.X, f.Pointer.Y = x, y
}

// Release records a button release at the given screen cell.
func (f *InputFrame) Release(x, y int) {
	f.Pointer.Released = true
	f.Pointer.X, f.Pointer.Y = x, y
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = Pointer{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
