package blockout

import (
	"fmt"

	platformcore "github.com/vovakirdan/blockout/internal/core"
	"github.com/vovakirdan/blockout/internal/games/blockout/core"
	"github.com/vovakirdan/blockout/internal/games/blockout/levels"
)

const statusDuration = 120 // Ticks a status message stays visible

func (g *Game) stepEditor(in platformcore.InputFrame) {
	e := g.editor
	p := in.Pointer

	if p.Pressed {
		g.cursorX, g.cursorY = g.view.ToWorld(p.PressX, p.PressY)
		e.Press(g.cursorX, g.cursorY)
	}
	if p.Moved || p.Released {
		g.cursorX, g.cursorY = g.view.ToWorld(p.X, p.Y)
		e.Drag(g.cursorX, g.cursorY)
	}
	if p.Released {
		e.Release()
	}

	cell := g.tuning.CellSize
	switch {
	case in.Has(platformcore.ActionUp):
		e.Nudge(0, -cell)
	case in.Has(platformcore.ActionDown):
		e.Nudge(0, cell)
	case in.Has(platformcore.ActionLeft):
		e.Nudge(-cell, 0)
	case in.Has(platformcore.ActionRight):
		e.Nudge(cell, 0)
	}

	sx, sy := core.SnapToGrid(g.cursorX, g.cursorY, cell, g.tuning.GridOffsetX, g.tuning.GridOffsetY)
	for _, a := range editorActions {
		if !in.Has(a.action) {
			continue
		}
		switch a.action {
		case platformcore.ActionSpawnWall:
			e.SpawnWall(sx, sy)
		case platformcore.ActionSpawnGate:
			e.SpawnGate(sx, sy)
		case platformcore.ActionSpawnPiece:
			e.SpawnPiece(sx, sy)
		case platformcore.ActionSave:
			g.saveDesign()
		default:
			a.apply(e)
		}
	}
}

// editorActions lists the editor commands in the order they apply when
// several arrive in one tick.
var editorActions = []struct {
	action platformcore.Action
	apply  func(e *core.Editor)
}{
	{platformcore.ActionNext, func(e *core.Editor) { e.SelectNext() }},
	{platformcore.ActionSpawnWall, nil},
	{platformcore.ActionSpawnGate, nil},
	{platformcore.ActionSpawnPiece, nil},
	{platformcore.ActionDelete, func(e *core.Editor) { e.Delete() }},
	{platformcore.ActionCycleColor, func(e *core.Editor) { e.CycleColor() }},
	{platformcore.ActionCycleShape, func(e *core.Editor) { e.CycleShape() }},
	{platformcore.ActionCycleAxis, func(e *core.Editor) { e.CycleAxis() }},
	{platformcore.ActionCycleSide, func(e *core.Editor) { e.CycleSide() }},
	{platformcore.ActionGrowW, func(e *core.Editor) { e.Resize(1, 0) }},
	{platformcore.ActionShrinkW, func(e *core.Editor) { e.Resize(-1, 0) }},
	{platformcore.ActionGrowH, func(e *core.Editor) { e.Resize(0, 1) }},
	{platformcore.ActionShrinkH, func(e *core.Editor) { e.Resize(0, -1) }},
	{platformcore.ActionUndo, func(e *core.Editor) { e.Undo() }},
	{platformcore.ActionRedo, func(e *core.Editor) { e.Redo() }},
	{platformcore.ActionSave, nil},
}

// saveDesign writes the arena to the custom store. Designs that would not
// load for play are saved anyway, with a warning.
func (g *Game) saveDesign() {
	name := g.opts.CustomName
	if g.opts.Custom == nil || name == "" {
		g.setStatus("no level name to save under")
		return
	}
	lvl := levels.FromSnapshot(name, name, g.arena.Snapshot())
	data := levels.EncodeText(lvl)
	if err := g.opts.Custom.SaveCustomLevel(name, data); err != nil {
		g.log.Warn("saving custom level", "name", name, "err", err)
		g.setStatus("save failed: " + err.Error())
		return
	}
	if _, err := levels.ParseText(name, data); err != nil {
		g.setStatus(fmt.Sprintf("saved %s, not playable yet: %v", name, err))
		return
	}
	g.log.Info("custom level saved", "name", name)
	g.setStatus("saved " + name)
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTicks = statusDuration
}

// Editor exposes the level editor, nil outside editor mode.
func (g *Game) Editor() *core.Editor { return g.editor }

// Status returns the transient status message, if any.
func (g *Game) Status() string {
	if g.statusTicks == 0 {
		return ""
	}
	return g.status
}
