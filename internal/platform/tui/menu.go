package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockout/internal/core"
	"github.com/vovakirdan/blockout/internal/games/blockout"
	"github.com/vovakirdan/blockout/internal/games/blockout/levels"
	"github.com/vovakirdan/blockout/internal/storage"
)

type menuPage int

const (
	pageMain menuPage = iota
	pageLevels
	pageCustom
	pageNewDesign
)

// Main menu entries
const (
	itemContinue = iota
	itemSelectLevel
	itemCustom
	itemNewDesign
	itemRecords
	itemQuit
	mainItemCount
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuLockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Mode         blockout.Mode
	StartLevel   int    // 1-based campaign level, 0 resumes
	CustomName   string // Design to play or edit
	Config       core.RuntimeConfig
	WantsRecords bool
	Quit         bool
}

// MenuModel is the Bubble Tea model for the main menu and level pickers.
type MenuModel struct {
	page      menuPage
	cursor    int
	width     int
	height    int
	store     *storage.Store
	campaign  []levels.Level
	progress  core.Progress
	customs   []storage.CustomLevelInfo
	nameInput textinput.Model
	message   string
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	done      bool
	result    MenuResult
}

// NewMenuModel creates a new menu model. store may be nil, in which case
// progress starts fresh and custom levels are unavailable.
func NewMenuModel(store *storage.Store, campaign []levels.Level, cfg core.RuntimeConfig) MenuModel {
	ti := textinput.New()
	ti.Placeholder = "design name"
	ti.CharLimit = 32
	ti.Width = 32

	m := MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		campaign:  campaign,
		progress:  core.NewProgress(),
		nameInput: ti,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	m.reload()
	return m
}

// reload refreshes progress and the custom level list from the store.
func (m *MenuModel) reload() {
	if m.store == nil {
		return
	}
	if p, err := m.store.LoadProgress(); err == nil {
		m.progress = p
	} else {
		m.message = err.Error()
	}
	if customs, err := m.store.CustomLevels(); err == nil {
		m.customs = customs
	} else {
		m.message = err.Error()
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.page == pageNewDesign {
			return m.handleNameKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	if m.page == pageNewDesign {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < m.itemCount()-1 {
			m.cursor++
		}

	case MenuActionBack:
		if m.page != pageMain {
			m.openPage(pageMain)
		}

	case MenuActionRecords:
		return m.finish(MenuResult{WantsRecords: true})

	case MenuActionSelect:
		return m.selectItem()
	}

	if m.page == pageCustom && len(m.customs) > 0 {
		switch msg.String() {
		case "e":
			return m.finish(MenuResult{Mode: blockout.ModeEditor, CustomName: m.customs[m.cursor].Name})
		case "x":
			m.deleteCustom(m.customs[m.cursor].Name)
		}
	}

	return m, nil
}

func (m MenuModel) selectItem() (tea.Model, tea.Cmd) {
	switch m.page {
	case pageMain:
		switch m.cursor {
		case itemContinue:
			return m.finish(MenuResult{Mode: blockout.ModeCampaign})
		case itemSelectLevel:
			m.openPage(pageLevels)
		case itemCustom:
			m.openPage(pageCustom)
		case itemNewDesign:
			m.openPage(pageNewDesign)
			m.nameInput.SetValue("")
			cmd := m.nameInput.Focus()
			return m, cmd
		case itemRecords:
			return m.finish(MenuResult{WantsRecords: true})
		case itemQuit:
			m.quitting = true
			return m, tea.Quit
		}

	case pageLevels:
		level := m.cursor + 1
		if level > m.progress.MaxUnlocked {
			m.message = fmt.Sprintf("Level %d is locked", level)
			return m, nil
		}
		return m.finish(MenuResult{Mode: blockout.ModeCampaign, StartLevel: level})

	case pageCustom:
		if len(m.customs) > 0 {
			return m.finish(MenuResult{Mode: blockout.ModeCustom, CustomName: m.customs[m.cursor].Name})
		}
	}

	return m, nil
}

// handleNameKey edits the name of a new design.
func (m MenuModel) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.nameInput.Blur()
		m.openPage(pageMain)
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			m.message = "Enter a name for the design"
			return m, nil
		}
		return m.finish(MenuResult{Mode: blockout.ModeEditor, CustomName: name})
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *MenuModel) deleteCustom(name string) {
	if m.store == nil {
		return
	}
	if err := m.store.DeleteCustomLevel(name); err != nil {
		m.message = err.Error()
		return
	}
	m.message = fmt.Sprintf("Deleted %s", name)
	m.reload()
	if m.cursor >= len(m.customs) {
		m.cursor = max(len(m.customs)-1, 0)
	}
}

func (m *MenuModel) openPage(p menuPage) {
	m.page = p
	m.cursor = 0
	m.message = ""
	if p == pageLevels && m.progress.LastPlayed > 0 {
		m.cursor = min(m.progress.LastPlayed, len(m.campaign)) - 1
		m.cursor = max(m.cursor, 0)
	}
}

func (m MenuModel) finish(r MenuResult) (tea.Model, tea.Cmd) {
	r.Config = m.config
	m.result = r
	m.done = true
	return m, tea.Quit
}

func (m MenuModel) itemCount() int {
	switch m.page {
	case pageLevels:
		return len(m.campaign)
	case pageCustom:
		return len(m.customs)
	case pageNewDesign:
		return 0
	default:
		return mainItemCount
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle.Render("B L O C K O U T"), m.width))
	b.WriteString("\n\n")

	switch m.page {
	case pageLevels:
		m.viewLevels(&b)
	case pageCustom:
		m.viewCustom(&b)
	case pageNewDesign:
		b.WriteString(centerText("Name the new design:", m.width))
		b.WriteString("\n\n")
		b.WriteString(centerStyled(m.nameInput.View(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerStyled(menuHintStyle.Render("Enter: Open editor  |  Esc: Back"), m.width))
	default:
		m.viewMain(&b)
	}

	if m.message != "" {
		b.WriteString("\n\n")
		b.WriteString(centerStyled(menuErrorStyle.Render(m.message), m.width))
	}
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewMain(b *strings.Builder) {
	b.WriteString(centerText(fmt.Sprintf("Coins: %d  |  Unlocked: %d/%d", m.progress.Coins, min(m.progress.MaxUnlocked, len(m.campaign)), len(m.campaign)), m.width))
	b.WriteString("\n\n")

	cont := "Play"
	if n := m.progress.LastPlayed; n >= 1 && n <= len(m.campaign) {
		cont = fmt.Sprintf("Continue: Level %d %s", n, m.campaign[n-1].Title())
	}
	items := []string{cont, "Select level...", "Custom levels...", "New design...", "Records", "Quit"}
	m.writeItems(b, items, nil)

	b.WriteString("\n")
	b.WriteString(centerStyled(menuHintStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Records  |  Q: Quit"), m.width))
}

func (m MenuModel) viewLevels(b *strings.Builder) {
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	items := make([]string, len(m.campaign))
	locked := make([]bool, len(m.campaign))
	for i, lvl := range m.campaign {
		items[i] = fmt.Sprintf("%2d. %s", i+1, lvl.Title())
		if i+1 > m.progress.MaxUnlocked {
			items[i] += "  (locked)"
			locked[i] = true
		}
	}
	m.writeItems(b, items, locked)

	b.WriteString("\n")
	b.WriteString(centerStyled(menuHintStyle.Render("Enter: Play  |  Esc: Back  |  Q: Quit"), m.width))
}

func (m MenuModel) viewCustom(b *strings.Builder) {
	b.WriteString(centerText("CUSTOM LEVELS", m.width))
	b.WriteString("\n\n")

	if m.store == nil {
		b.WriteString(centerStyled(menuLockedStyle.Render("No database: custom levels are unavailable"), m.width))
		b.WriteString("\n")
	} else if len(m.customs) == 0 {
		b.WriteString(centerStyled(menuLockedStyle.Render("No designs yet. Pick \"New design...\" to make one."), m.width))
		b.WriteString("\n")
	}

	items := make([]string, len(m.customs))
	for i, c := range m.customs {
		items[i] = fmt.Sprintf("%-20s %s", c.Name, c.UpdatedAt.Format("Jan 02 15:04"))
	}
	m.writeItems(b, items, nil)

	b.WriteString("\n")
	b.WriteString(centerStyled(menuHintStyle.Render("Enter: Play  |  E: Edit  |  X: Delete  |  Esc: Back"), m.width))
}

func (m MenuModel) writeItems(b *strings.Builder, items []string, locked []bool) {
	for i, item := range items {
		line := "  " + item
		switch {
		case i == m.cursor:
			line = menuCursorStyle.Render("> " + item)
		case locked != nil && locked[i]:
			line = menuLockedStyle.Render(line)
		}
		b.WriteString(centerStyled(line, m.width))
		b.WriteString("\n")
	}
}

// Result returns what the user picked.
func (m MenuModel) Result() MenuResult {
	if m.quitting {
		return MenuResult{Config: m.config, Quit: true}
	}
	return m.result
}

// Done reports whether the user made a choice.
func (m MenuModel) Done() bool {
	return m.done
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// centerStyled centers text that may carry ANSI styling.
func centerStyled(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, campaign []levels.Level, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, campaign, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	if !m.Done() {
		return MenuResult{Config: m.config, Quit: true}, nil
	}
	return m.Result(), nil
}
