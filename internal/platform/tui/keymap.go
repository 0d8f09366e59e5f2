package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockout/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	editor bool // Letters drive editor commands instead of WASD movement
}

// NewKeyMapper creates a key mapper with the play bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// NewEditorKeyMapper creates a key mapper with the editor bindings.
func NewEditorKeyMapper() *KeyMapper {
	return &KeyMapper{editor: true}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "up":
		return core.ActionUp, false
	case "down":
		return core.ActionDown, false
	case "left":
		return core.ActionLeft, false
	case "right":
		return core.ActionRight, false
	case "esc":
		return core.ActionBack, false
	}

	if km.editor {
		return km.mapEditorKey(key), false
	}

	switch key {
	case "w":
		return core.ActionUp, false
	case "s":
		return core.ActionDown, false
	case "a":
		return core.ActionLeft, false
	case "d":
		return core.ActionRight, false
	case "tab":
		return core.ActionNext, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

func (km *KeyMapper) mapEditorKey(key string) core.Action {
	switch key {
	case "1":
		return core.ActionSpawnWall
	case "2":
		return core.ActionSpawnGate
	case "3":
		return core.ActionSpawnPiece
	case "x", "delete", "backspace":
		return core.ActionDelete
	case "c":
		return core.ActionCycleColor
	case "f":
		return core.ActionCycleShape
	case "a":
		return core.ActionCycleAxis
	case "o":
		return core.ActionCycleSide
	case "]":
		return core.ActionGrowW
	case "[":
		return core.ActionShrinkW
	case "}":
		return core.ActionGrowH
	case "{":
		return core.ActionShrinkH
	case "u", "ctrl+z":
		return core.ActionUndo
	case "y", "ctrl+y":
		return core.ActionRedo
	case "ctrl+s":
		return core.ActionSave
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records left-button presses, drags and releases in the
// input frame. Other buttons and wheel events are ignored.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			frame.Press(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			frame.Move(msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		frame.Release(msg.X, msg.Y)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionRecords
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionRecords
	}

	return MenuActionNone
}
