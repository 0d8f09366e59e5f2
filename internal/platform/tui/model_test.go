package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockout/internal/core"
)

// fakeGame records what the model asks of it.
type fakeGame struct {
	resets  int
	resized [2]int
	steps   []core.InputFrame
	state   core.GameState
	editor  bool
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState   { return g.state }
func (g *fakeGame) Resize(w, h int)         { g.resized = [2]int{w, h} }
func (g *fakeGame) EditorMode() bool        { return g.editor }

var testConfig = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, TickMsg{ID: m.id})
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig, nil)
	assert.NotNil(t, m.Init())
	assert.Equal(t, 1, g.resets)
}

func TestModelPassesInputToGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m)

	require.Len(t, g.steps, 1)
	assert.True(t, g.steps[0].Has(core.ActionNext))
	assert.True(t, g.steps[0].Pointer.Pressed)

	m = tick(t, m)
	require.Len(t, g.steps, 2)
	assert.False(t, g.steps[1].Has(core.ActionNext), "input is cleared after each tick")
	assert.False(t, g.steps[1].Pointer.Active())
}

func TestModelDropsStaleTicks(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig, nil)

	m = update(t, m, TickMsg{ID: m.id + 1000})
	assert.Empty(t, g.steps)

	_ = tick(t, m)
	assert.Len(t, g.steps, 1)
}

func TestModelResizeDoesNotRestart(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig, nil)
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, [2]int{100, 30}, g.resized)
	assert.Equal(t, 1, g.resets)
	assert.Equal(t, 100, m.screen.Width())
}

func TestModelBackNeedsPauseOrGameOver(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu(), "esc while playing does nothing")

	m = tick(t, m)
	m = update(t, m, runeKey("p"))
	m = tick(t, m)
	require.True(t, g.state.Paused)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
	assert.Empty(t, m.View())
}

func TestModelEditorBindings(t *testing.T) {
	g := &fakeGame{editor: true}
	m := NewModel(g, testConfig, nil)

	m = update(t, m, runeKey("3"))
	m = tick(t, m)
	require.Len(t, g.steps, 1)
	assert.True(t, g.steps[0].Has(core.ActionSpawnPiece))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu(), "esc leaves the editor at any time")
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, testConfig, nil)
	next, cmd := m.Update(runeKey("q"))
	assert.True(t, next.(Model).IsQuitting())
	assert.NotNil(t, cmd)
}

func TestModelView(t *testing.T) {
	m := NewModel(&fakeGame{}, testConfig, nil)
	assert.Contains(t, m.View(), "fake")
}
