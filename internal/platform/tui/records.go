package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockout/internal/core"
	"github.com/vovakirdan/blockout/internal/games/blockout/levels"
	"github.com/vovakirdan/blockout/internal/storage"
)

// Records views
const (
	viewCampaign = iota
	viewDesigns
	viewCount
)

var viewTitles = [viewCount]string{"Campaign", "Designs"}

// RecordsKeyMap defines the key bindings for the records screen.
type RecordsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Back, k.Quit},
	}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordsModel is the Bubble Tea model showing campaign progress, best
// clear times and saved designs.
type RecordsModel struct {
	store     *storage.Store
	campaign  []levels.Level
	tickRate  int
	view      int
	progress  core.Progress
	clears    map[string]storage.ClearRecord
	customs   []storage.CustomLevelInfo
	loadErr   error
	table     table.Model
	help      help.Model
	keys      RecordsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewRecordsModel creates a new records model.
func NewRecordsModel(store *storage.Store, campaign []levels.Level, cfg core.RuntimeConfig) RecordsModel {
	h := help.New()
	h.ShowAll = false

	m := RecordsModel{
		store:    store,
		campaign: campaign,
		tickRate: max(cfg.TickRate, 1),
		progress: core.NewProgress(),
		clears:   make(map[string]storage.ClearRecord),
		keys:     DefaultRecordsKeyMap(),
		help:     h,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load reads everything the screen shows from the store.
func (m *RecordsModel) load() {
	if m.store == nil {
		return
	}
	p, err := m.store.LoadProgress()
	if err != nil {
		m.loadErr = err
		return
	}
	m.progress = p

	records, err := m.store.BestClears()
	if err != nil {
		m.loadErr = err
		return
	}
	for _, r := range records {
		m.clears[r.LevelID] = r
	}

	m.customs, err = m.store.CustomLevels()
	if err != nil {
		m.loadErr = err
	}
}

// createTable creates a table with the columns of the current view.
func (m *RecordsModel) createTable() table.Model {
	var columns []table.Column
	if m.view == viewDesigns {
		columns = []table.Column{
			{Title: "Name", Width: 24},
			{Title: "Size", Width: 8},
			{Title: "Saved", Width: 16},
		}
	} else {
		columns = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Level", Width: 16},
			{Title: "Status", Width: 10},
			{Title: "Best", Width: 7},
			{Title: "Clears", Width: 7},
			{Title: "Last", Width: 14},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table for the current view.
func (m *RecordsModel) updateTableRows() {
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

func (m RecordsModel) rows() []table.Row {
	if m.view == viewDesigns {
		rows := make([]table.Row, len(m.customs))
		for i, c := range m.customs {
			rows[i] = table.Row{c.Name, fmt.Sprintf("%dB", c.Size), c.UpdatedAt.Format("Jan 02 15:04")}
		}
		return rows
	}

	rows := make([]table.Row, len(m.campaign))
	for i, lvl := range m.campaign {
		best, count, last := "-", "0", "-"
		status := "open"
		if i+1 > m.progress.MaxUnlocked {
			status = "locked"
		}
		if r, ok := m.clears[lvl.ID]; ok {
			status = "cleared"
			best = m.formatTicks(r.BestTicks)
			count = strconv.Itoa(r.Clears)
			if !r.LastCleared.IsZero() {
				last = r.LastCleared.Format("Jan 02 15:04")
			}
		}
		rows[i] = table.Row{strconv.Itoa(i + 1), lvl.Title(), status, best, count, last}
	}
	return rows
}

// formatTicks renders a clear time as m:ss.
func (m RecordsModel) formatTicks(ticks int) string {
	secs := core.CeilDiv(ticks, m.tickRate)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records screen.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.switchView(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.switchView(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *RecordsModel) switchView(d int) {
	m.view = (m.view + d + viewCount) % viewCount
	m.table = m.createTable()
	m.updateTableRows()
}

// View renders the records screen.
func (m RecordsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle.Render("RECORDS - "+viewTitles[m.view]), m.width))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("Coins: %d  |  Unlocked: %d/%d  |  Designs: %d",
		m.progress.Coins, min(m.progress.MaxUnlocked, len(m.campaign)), len(m.campaign), len(m.customs))
	b.WriteString(centerText(summary, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerStyled(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an explanation when it is empty.
func (m RecordsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("No database open.\nProgress is not being saved.")
	case m.loadErr != nil:
		return emptyStyle.Render("Cannot read records:\n" + m.loadErr.Error())
	case len(m.table.Rows()) == 0 && m.view == viewDesigns:
		return emptyStyle.Render("No designs saved yet.\nOpen the editor to make one!")
	case len(m.table.Rows()) == 0:
		return emptyStyle.Render("No campaign levels found.")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RecordsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RecordsModel) IsQuitting() bool {
	return m.quitting
}

// RunRecords runs the records screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunRecords(store *storage.Store, campaign []levels.Level, cfg core.RuntimeConfig) (goBack bool, err error) {
	p := tea.NewProgram(
		NewRecordsModel(store, campaign, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RecordsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
