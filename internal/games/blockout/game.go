// Package blockout provides the Blockout sliding-block puzzle for the
// platform: the campaign, custom level play and the level editor.
package blockout

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockout/internal/config"
	platformcore "github.com/vovakirdan/blockout/internal/core"
	"github.com/vovakirdan/blockout/internal/games/blockout/core"
	"github.com/vovakirdan/blockout/internal/games/blockout/levels"
	"github.com/vovakirdan/blockout/internal/registry"
)

// Mode selects what a game instance plays.
type Mode int

const (
	ModeCampaign Mode = iota // Built-in levels with progression and rewards
	ModeCustom               // A single saved editor design
	ModeEditor               // Level editor
)

// Session states
const (
	StatePlaying  = "playing"
	StateCleared  = "cleared"  // Level done, waiting for confirmation
	StateFinished = "finished" // Last campaign level done
	StateTimeout  = "timeout"  // Timer ran out
	StateEditing  = "editing"
	StateError    = "error" // Nothing could be loaded
)

// Layout rows reserved outside the field.
const (
	hudHeight    = 2
	footerHeight = 1
)

// editorWorld is the logical region shown by the editor.
var editorWorld = platformcore.NewRect(0, 60, 800, 860)

func init() {
	for _, m := range []Mode{ModeCampaign, ModeCustom, ModeEditor} {
		registry.Register(m.ID(), func(opts Options) registry.Game { return NewWithOptions(m, opts) })
	}
}

// Game implements the Blockout puzzle.
type Game struct {
	mode Mode
	opts Options
	log  *log.Logger

	cfg      config.BlockoutConfig
	tuning   core.Tuning
	rng      *rand.Rand
	tickRate int

	screenW int
	screenH int
	view    Viewport

	// Campaign
	campaign   []levels.Level
	levelIndex int
	store      ProgressStore
	progress   platformcore.Progress
	rewarded   bool // The last clear paid the first-clear reward

	level     levels.Level
	arena     *core.Arena
	editor    *core.Editor
	particles Particles

	state     string
	paused    bool
	ticks     int // Ticks spent on the current level
	timerOn   bool
	remaining int // Ticks left on the timer
	loadErr   error

	// Editor pointer in logical pixels, used as the spawn position
	cursorX, cursorY int
	status           string
	statusTicks      int
}

// NewWithOptions creates a game with explicit options.
func NewWithOptions(mode Mode, opts Options) *Game {
	return &Game{mode: mode, opts: opts, log: loggerOf(opts)}
}

// ID returns the registry identifier of the mode.
func (m Mode) ID() string {
	switch m {
	case ModeCustom:
		return "blockout_custom"
	case ModeEditor:
		return "blockout_editor"
	default:
		return "blockout"
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.mode.ID()
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeCustom:
		return "Blockout (Custom)"
	case ModeEditor:
		return "Blockout Editor"
	default:
		return "Blockout"
	}
}

// Reset initializes or restarts the session.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	bc, err := config.LoadBlockout(g.opts.ConfigPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		bc = config.DefaultBlockoutConfig()
	}
	g.cfg = bc
	g.tuning = TuningFromConfig(bc)

	g.paused = false
	g.loadErr = nil
	g.particles.Clear()

	switch g.mode {
	case ModeCampaign:
		g.resetCampaign()
	case ModeCustom:
		g.resetCustom()
	case ModeEditor:
		g.resetEditor()
	}
}

func (g *Game) resetCampaign() {
	g.store = g.opts.Progress
	if g.store == nil {
		g.store = newMemoryProgress()
	}
	p, err := g.store.LoadProgress()
	if err != nil {
		g.log.Warn("loading progress", "err", err)
		p = platformcore.NewProgress()
	}
	g.progress = p

	loader := levels.NewLoader(g.opts.LevelsDir, g.log)
	all, err := loader.LoadAll()
	if err == nil && len(all) == 0 {
		err = fmt.Errorf("no levels found")
	}
	if err != nil {
		g.fail(err)
		return
	}
	g.campaign = all

	start := g.progress.LastPlayed
	if g.opts.StartLevel > 0 {
		start = g.opts.StartLevel
		g.opts.StartLevel = 0 // Only the first reset honors it
	}
	g.levelIndex = platformcore.Clamp(start, 1, len(all)) - 1
	g.startLevel(g.campaign[g.levelIndex])
}

func (g *Game) resetCustom() {
	lvl, err := g.loadCustom(true)
	if err != nil {
		g.fail(err)
		return
	}
	g.startLevel(lvl)
}

func (g *Game) resetEditor() {
	g.arena = core.NewArena(g.tuning, g.rng.Int63())
	g.editor = core.NewEditor(g.arena)
	g.state = StateEditing
	g.cursorX, g.cursorY = g.tuning.GridOffsetX, g.tuning.GridOffsetY

	if g.opts.Custom != nil && g.opts.CustomName != "" {
		if lvl, err := g.loadCustom(false); err == nil {
			g.editor.Load(lvl.Snapshot())
		} else {
			g.log.Debug("starting empty design", "name", g.opts.CustomName, "err", err)
		}
	}
	g.view = NewViewport(editorWorld, g.fieldArea())
}

// loadCustom reads the named design from the custom store.
func (g *Game) loadCustom(validate bool) (levels.Level, error) {
	name := g.opts.CustomName
	if g.opts.Custom == nil || name == "" {
		return levels.Level{}, fmt.Errorf("no custom level selected")
	}
	data, err := g.opts.Custom.CustomLevel(name)
	if err != nil {
		return levels.Level{}, fmt.Errorf("loading custom level %s: %w", name, err)
	}
	if validate {
		return levels.ParseText(name, data)
	}
	return levels.DecodeText(name, data)
}

func (g *Game) fail(err error) {
	g.log.Error("cannot start", "mode", g.ID(), "err", err)
	g.loadErr = err
	g.state = StateError
	g.arena = nil
}

// startLevel builds a fresh arena for lvl and resets the timer.
func (g *Game) startLevel(lvl levels.Level) {
	g.level = lvl
	g.arena = lvl.NewArena(g.tuning, g.rng.Int63())
	g.arena.OnExit(g.handleExit)
	g.state = StatePlaying
	g.paused = false
	g.ticks = 0
	g.timerOn = false
	g.rewarded = false
	g.particles.Clear()

	limit := lvl.TimeLimit
	if limit <= 0 {
		limit = g.cfg.Session.TimeLimitSecs
	}
	g.remaining = limit * g.tickRate

	g.view = NewViewport(g.levelWorld(), g.fieldArea())
	g.log.Debug("level started", "id", lvl.ID, "pieces", g.arena.LivePieceCount())
}

// levelWorld returns the region covering every piece and gate of the
// current level plus a small margin.
func (g *Game) levelWorld() platformcore.Rect {
	var r platformcore.Rect
	for _, p := range g.arena.Pieces() {
		r = r.Union(p.Bounds())
	}
	for _, gt := range g.arena.Gates() {
		r = r.Union(gt.Bounds())
	}
	if r.Empty() {
		return editorWorld
	}
	return r.Inset(-g.tuning.CellSize / 3)
}

func (g *Game) fieldArea() platformcore.Rect {
	return platformcore.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight-footerHeight)
}

// Resize adapts the layout to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	switch {
	case g.mode == ModeEditor:
		g.view = NewViewport(editorWorld, g.fieldArea())
	case g.arena != nil:
		g.view = NewViewport(g.view.World, g.fieldArea())
	}
}

func (g *Game) handleExit(x, y int, c core.Color) {
	g.particles.Spawn(g.rng, x, y, c, g.cfg.Session.ParticlesPerExit)
	g.log.Debug("piece exited", "level", g.level.ID, "color", c, "left", g.arena.LivePieceCount())
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	if g.statusTicks > 0 {
		g.statusTicks--
	}

	if input.Has(platformcore.ActionRestart) && g.mode != ModeEditor {
		g.restart()
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) && g.state == StatePlaying {
		g.paused = !g.paused
	}

	switch g.state {
	case StateEditing:
		g.stepEditor(input)
	case StatePlaying:
		if !g.paused {
			g.stepPlay(input)
		}
	case StateCleared:
		g.particles.Update()
		if input.Has(platformcore.ActionConfirm) || input.Pointer.Pressed {
			g.advance()
		}
	case StateFinished, StateTimeout:
		g.particles.Update()
	}

	return platformcore.StepResult{State: g.State()}
}

// restart replays the current level. A finished campaign starts over.
func (g *Game) restart() {
	switch {
	case g.state == StateError:
		return
	case g.mode == ModeCampaign && g.state == StateFinished:
		g.levelIndex = 0
		g.startLevel(g.campaign[0])
	default:
		g.startLevel(g.level)
	}
}

func (g *Game) stepPlay(in platformcore.InputFrame) {
	g.applyPointer(in.Pointer)
	g.applyKeys(in)

	g.arena.Tick()
	g.particles.Update()

	if g.timerOn {
		g.ticks++
		g.remaining--
		if g.remaining <= 0 {
			g.remaining = 0
			g.state = StateTimeout
			g.arena.EndDrag()
			g.log.Info("time is up", "level", g.level.ID)
			return
		}
	}

	if g.arena.Cleared() {
		g.levelCleared()
	}
}

func (g *Game) applyPointer(p platformcore.Pointer) {
	if p.Pressed {
		x, y := g.view.ToWorld(p.PressX, p.PressY)
		if g.arena.BeginDrag(x, y) {
			g.timerOn = true
		}
	}
	if p.Moved || p.Released {
		x, y := g.view.ToWorld(p.X, p.Y)
		g.arena.ContinueDrag(x, y)
	}
	if p.Released {
		g.arena.EndDrag()
	}
}

func (g *Game) applyKeys(in platformcore.InputFrame) {
	if in.Has(platformcore.ActionNext) {
		g.arena.SelectNext()
	}
	cell := g.tuning.CellSize
	dx, dy := 0, 0
	switch {
	case in.Has(platformcore.ActionUp):
		dy = -cell
	case in.Has(platformcore.ActionDown):
		dy = cell
	case in.Has(platformcore.ActionLeft):
		dx = -cell
	case in.Has(platformcore.ActionRight):
		dx = cell
	}
	if (dx != 0 || dy != 0) && g.arena.Nudge(dx, dy) {
		g.timerOn = true
	}
}

// levelCleared settles rewards and progress once every piece has left.
func (g *Game) levelCleared() {
	g.state = StateCleared
	g.log.Info("level cleared", "level", g.level.ID, "ticks", g.ticks)

	if g.mode != ModeCampaign {
		return
	}

	n := g.levelIndex + 1
	if n >= g.progress.MaxUnlocked {
		g.progress.Coins += g.cfg.Session.FirstClearReward
		g.rewarded = true
		g.progress.MaxUnlocked = n + 1
	}
	finished := n == len(g.campaign)
	if finished {
		g.state = StateFinished
		g.progress.LastPlayed = 1
	} else {
		g.progress.LastPlayed = n + 1
	}

	if err := g.store.RecordClear(g.level.ID, g.ticks); err != nil {
		g.log.Warn("recording clear", "level", g.level.ID, "err", err)
	}
	if err := g.store.SaveProgress(g.progress); err != nil {
		g.log.Warn("saving progress", "err", err)
	}
}

// advance moves past a cleared level: the next campaign level, or a
// replay of a custom level.
func (g *Game) advance() {
	if g.mode == ModeCampaign && g.levelIndex+1 < len(g.campaign) {
		g.levelIndex++
		g.startLevel(g.campaign[g.levelIndex])
		return
	}
	g.startLevel(g.level)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	level := 0
	if g.mode == ModeCampaign && g.state != StateError {
		level = g.levelIndex + 1
	}
	return platformcore.GameState{
		Score:    g.progress.Coins,
		Level:    level,
		GameOver: g.state == StateTimeout || g.state == StateFinished || g.state == StateError,
		Won:      g.state == StateFinished,
		Paused:   g.paused,
	}
}

// Arena exposes the live arena, nil when nothing is loaded.
func (g *Game) Arena() *core.Arena { return g.arena }

// Phase returns the session state name.
func (g *Game) Phase() string { return g.state }

// Viewport returns the current logical-to-screen mapping.
func (g *Game) Viewport() Viewport { return g.view }

// SecondsLeft returns the timer in whole seconds, rounded up.
func (g *Game) SecondsLeft() int {
	return platformcore.CeilDiv(g.remaining, g.tickRate)
}

// Progress returns the campaign progress as last saved.
func (g *Game) Progress() platformcore.Progress { return g.progress }

// EditorMode reports whether the game runs the level editor.
func (g *Game) EditorMode() bool { return g.mode == ModeEditor }
