package blockout

import (
	"fmt"

	platformcore "github.com/vovakirdan/blockout/internal/core"
	"github.com/vovakirdan/blockout/internal/games/blockout/core"
)

// Glyphs
const (
	GlyphPiece    = '█'
	GlyphSelected = '▓'
	GlyphExiting  = '▒'
	GlyphGate     = '░'
	GlyphGrid     = '·'
	GlyphSpark    = '*'
	GlyphEmber    = '.'
)

// Minimum terminal size for play.
const (
	MinScreenW = 40
	MinScreenH = 14
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.state == StateError {
		g.renderHUD(dst, " Blockout")
		msg := "Nothing to play"
		if g.loadErr != nil {
			msg = g.loadErr.Error()
		}
		g.renderOverlay(dst, "Cannot start", msg)
		return
	}

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH || !g.view.Valid() {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	if g.mode == ModeEditor {
		g.renderEditor(dst)
		return
	}

	g.renderHUD(dst, g.hudText())
	g.renderField(dst)
	g.renderParticles(dst)
	g.renderFooter(dst, " Drag a block with the mouse | Tab: select | Arrows: move | R: restart | P: pause | Q: quit")

	switch {
	case g.state == StateFinished:
		g.renderOverlay(dst, "All levels cleared!", g.rewardText()+"R to play again")
	case g.state == StateCleared && g.mode == ModeCampaign:
		g.renderOverlay(dst, "Level complete!", g.rewardText()+"Enter for the next level")
	case g.state == StateCleared:
		g.renderOverlay(dst, "Custom level complete!", "Enter to play again")
	case g.state == StateTimeout:
		g.renderOverlay(dst, "Time's up", "Press R to retry")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) hudText() string {
	secs := g.SecondsLeft()
	clock := fmt.Sprintf("%d:%02d", secs/60, secs%60)
	if !g.timerOn {
		clock += " (starts on first move)"
	}
	if g.mode == ModeCampaign {
		return fmt.Sprintf(" Blockout | Level %d/%d %s | Coins: %d | Time %s | Blocks: %d",
			g.levelIndex+1, len(g.campaign), g.level.Title(), g.progress.Coins, clock, g.arena.LivePieceCount())
	}
	return fmt.Sprintf(" Blockout | %s | Time %s | Blocks: %d", g.level.Title(), clock, g.arena.LivePieceCount())
}

func (g *Game) rewardText() string {
	if g.rewarded {
		return fmt.Sprintf("+%d coins! ", g.cfg.Session.FirstClearReward)
	}
	return ""
}

func (g *Game) renderHUD(dst *platformcore.Screen, text string) {
	dst.DrawTextWithColor(0, 0, text, platformcore.ColorCyan)
	dst.DrawHLine(0, 1, dst.Width(), '─', platformcore.ColorGray)
}

func (g *Game) renderFooter(dst *platformcore.Screen, text string) {
	if s := g.Status(); s != "" {
		dst.DrawTextWithColor(0, dst.Height()-1, " "+s, platformcore.ColorBrightYellow)
		return
	}
	dst.DrawTextWithColor(0, dst.Height()-1, text, platformcore.ColorGray)
}

// renderField samples the arena at the center of every field cell.
// Later pieces are drawn on top.
func (g *Game) renderField(dst *platformcore.Screen) {
	pieces := g.arena.Pieces()
	gates := g.arena.Gates()
	cell := g.tuning.CellSize
	held := g.arena.Dragging()
	selected := g.arena.Selected()
	var selGate *core.Gate
	if g.editor != nil {
		selected, selGate = g.editor.Selection()
	}

	r := g.view.Screen
	for row := r.Y; row < r.Bottom(); row++ {
		for col := r.X; col < r.Right(); col++ {
			x, y := g.view.ToWorld(col, row)

			var hit *core.Piece
			for i := len(pieces) - 1; i >= 0; i-- {
				if pieces[i].ContainsPoint(x, y, cell) {
					hit = pieces[i]
					break
				}
			}
			if hit != nil {
				glyph := GlyphPiece
				switch {
				case hit.Exiting:
					glyph = GlyphExiting
				case hit == held || hit == selected:
					glyph = GlyphSelected
				}
				dst.SetWithColor(col, row, glyph, paletteColor(hit.Color))
				continue
			}

			gateHit := false
			for _, gt := range gates {
				if gt.ContainsPoint(x, y) {
					glyph := GlyphGate
					if gt == selGate {
						glyph = GlyphSelected
					}
					dst.SetWithColor(col, row, glyph, paletteColor(gt.Color))
					gateHit = true
					break
				}
			}
			if gateHit {
				continue
			}

			if g.mode == ModeEditor && onGridCorner(x, y, g.view, g.tuning) {
				dst.SetWithColor(col, row, GlyphGrid, platformcore.ColorDarkGray)
			}
		}
	}
}

// onGridCorner reports whether a grid intersection falls inside the cell
// sampled at (x, y).
func onGridCorner(x, y int, v Viewport, t core.Tuning) bool {
	halfW := int(v.colPx / 2)
	halfH := int(v.rowPx / 2)
	return nearMultiple(x-t.GridOffsetX, t.CellSize, halfW) && nearMultiple(y-t.GridOffsetY, t.CellSize, halfH)
}

func nearMultiple(v, step, within int) bool {
	m := ((v % step) + step) % step
	return m <= within || step-m < within
}

func (g *Game) renderParticles(dst *platformcore.Screen) {
	for _, p := range g.particles.All() {
		col, row := g.view.ToScreen(int(p.X), int(p.Y))
		if !g.view.Screen.Contains(col, row) {
			continue
		}
		glyph := GlyphSpark
		if p.Alpha < 0.5 {
			glyph = GlyphEmber
		}
		dst.SetWithColor(col, row, glyph, paletteColor(p.Color))
	}
}

func (g *Game) renderEditor(dst *platformcore.Screen) {
	sel := "nothing selected"
	piece, gate := g.editor.Selection()
	switch {
	case piece != nil && piece.IsWall():
		sel = fmt.Sprintf("wall %dx%d", piece.W, piece.H)
	case piece != nil:
		sel = fmt.Sprintf("%s block %dx%d cells, axis %s", piece.Color, piece.Shape.Cols(), piece.Shape.Rows(), piece.Axis)
	case gate != nil:
		sel = fmt.Sprintf("%s gate on %s, %dx%d", gate.Color, gate.Side, gate.W, gate.H)
	}
	name := g.opts.CustomName
	if name == "" {
		name = "(unsaved)"
	}
	g.renderHUD(dst, fmt.Sprintf(" Blockout Editor | %s | %s | undo %d", name, sel, g.editor.History().Len()))
	g.renderField(dst)
	g.renderFooter(dst, " 1 wall 2 gate 3 block | C color F shape A axis O side | [ ] { } size | X delete | U undo Y redo | Ctrl+S save")
}

// paletteColor maps block colors to terminal colors.
func paletteColor(c core.Color) platformcore.Color {
	switch c {
	case core.ColorRed:
		return platformcore.ColorRed
	case core.ColorBlue:
		return platformcore.ColorBlue
	case core.ColorGreen:
		return platformcore.ColorGreen
	case core.ColorOrange:
		return platformcore.ColorOrange
	case core.ColorYellow:
		return platformcore.ColorYellow
	case core.ColorCyan:
		return platformcore.ColorCyan
	case core.ColorPurple:
		return platformcore.ColorPurple
	case core.ColorPink:
		return platformcore.ColorPink
	case core.ColorWall:
		return platformcore.ColorDarkGray
	default:
		return platformcore.ColorWhite
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := platformcore.NewRect((dst.Width()-w)/2, (dst.Height()-5)/2, w, 5)
	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, platformcore.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, platformcore.ColorGray)
}
