package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockout/internal/core"
	"github.com/vovakirdan/blockout/internal/games/blockout"
	"github.com/vovakirdan/blockout/internal/games/blockout/levels"
	"github.com/vovakirdan/blockout/internal/registry"
	"github.com/vovakirdan/blockout/internal/storage"
)

// NewGame creates the game a menu selection asks for through the registry.
// A nil store leaves the game on in-memory progress.
func NewGame(sel MenuResult, base blockout.Options, store *storage.Store) (registry.Game, error) {
	opts := base
	if store != nil {
		opts.Progress = store
		opts.Custom = store
	}
	opts.StartLevel = sel.StartLevel
	opts.CustomName = sel.CustomName
	return registry.Create(sel.Mode.ID(), opts)
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenRecords
)

// SessionModel manages the full flow inside one program: menu -> game or
// records -> menu. It is the top-level model of SSH sessions, where every
// screen must live in a single Bubble Tea program.
type SessionModel struct {
	store    *storage.Store
	campaign []levels.Level
	opts     blockout.Options
	config   core.RuntimeConfig
	screen   sessionScreen
	menu     MenuModel
	game     Model
	records  RecordsModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, campaign []levels.Level, opts blockout.Options, cfg core.RuntimeConfig) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return SessionModel{
		store:    store,
		campaign: campaign,
		opts:     opts,
		config:   cfg,
		menu:     NewMenuModel(store, campaign, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenRecords:
		return m.updateRecords(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if !m.menu.Done() {
		return m, cmd
	}

	sel := m.menu.Result()
	if sel.WantsRecords {
		m.records = NewRecordsModel(m.store, m.campaign, m.config)
		m.screen = screenRecords
		return m, m.records.Init()
	}

	game, err := NewGame(sel, m.opts, m.store)
	if err != nil {
		m.opts.Logger.Error("cannot create game", "error", err)
		m.menu = NewMenuModel(m.store, m.campaign, m.config)
		return m, m.menu.Init()
	}
	m.game = NewModel(game, m.config, m.opts.Logger)
	m.screen = screenGame
	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
	}

	if m.game.BackToMenu() {
		return m.backToMenu()
	}
	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateRecords handles updates when showing records.
func (m SessionModel) updateRecords(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.records.Update(msg)
	if recordsModel, ok := newModel.(RecordsModel); ok {
		m.records = recordsModel
	}

	if m.records.IsGoingBack() {
		return m.backToMenu()
	}
	if m.records.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// backToMenu rebuilds the menu so it shows fresh progress.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.campaign, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenRecords:
		return m.records.View()
	default:
		return m.menu.View()
	}
}
