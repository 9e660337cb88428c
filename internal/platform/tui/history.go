package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/discs/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the scenario sidebar
	sidebarWidth       = 22  // Width of scenario sidebar
	maxHistoryRuns     = 200 // Max runs to load per view
	allScenarios       = ""  // Filter value that shows every scenario
)

// HistorySource is the run store read by the history view.
// *storage.Store satisfies it.
type HistorySource interface {
	ScenarioIDs() ([]string, error)
	RecentRuns(limit int) ([]storage.Run, error)
	RunsForScenario(scenarioID string, limit int) ([]storage.Run, error)
}

// HistoryKeyMap defines the key bindings for the history view.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Next, k.Prev, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next scenario"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev scenario"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing recorded runs.
type HistoryModel struct {
	source      HistorySource
	filters     []string // allScenarios followed by every scenario ID
	cursor      int
	runs        []storage.Run
	loadErr     error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	theme       Theme
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewHistoryModel creates a history view. When scenarioID is set the view
// starts filtered to that scenario.
func NewHistoryModel(source HistorySource, scenarioID string, width, height int) HistoryModel {
	m := HistoryModel{
		source:      source,
		filters:     []string{allScenarios},
		keys:        DefaultHistoryKeyMap(),
		help:        help.New(),
		theme:       DefaultTheme(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	ids, err := source.ScenarioIDs()
	if err != nil {
		m.loadErr = err
	}
	m.filters = append(m.filters, ids...)
	for i, id := range m.filters {
		if id == scenarioID {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 8},
		{Title: "Scenario", Width: 14},
		{Title: "Disks", Width: 5},
		{Title: "Common point", Width: 22},
		{Title: "Eps", Width: 7},
		{Title: "Time", Width: 9},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	// Scenario column absorbs spare width
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := tableWidth - used; spare > 0 {
		columns[1].Width += min(spare, 16)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
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

// loadRuns loads runs for the current filter.
func (m *HistoryModel) loadRuns() {
	var (
		runs []storage.Run
		err  error
	)
	if filter := m.filters[m.cursor]; filter == allScenarios {
		runs, err = m.source.RecentRuns(maxHistoryRuns)
	} else {
		runs, err = m.source.RunsForScenario(filter, maxHistoryRuns)
	}
	m.runs, m.loadErr = runs, err
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = HistoryRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// HistoryRow formats a run as a table row.
func HistoryRow(r storage.Run) table.Row {
	witness := "none"
	if r.Found {
		witness = fmt.Sprintf("[%.4g;%.4g]", r.X, r.Y)
	}
	date := ""
	if !r.CreatedAt.IsZero() {
		date = r.CreatedAt.Format("Jan 02 15:04")
	}
	return table.Row{
		shortID(r.ID),
		r.ScenarioID,
		fmt.Sprintf("%d", r.DiskCount),
		witness,
		fmt.Sprintf("%.0e", r.Epsilon),
		r.Duration.String(),
		date,
	}
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.cursor = (m.cursor + 1) % len(m.filters)
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.cursor = (m.cursor - 1 + len(m.filters)) % len(m.filters)
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history view.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "RUN HISTORY"
	if f := m.Filter(); f != allScenarios {
		title = "RUN HISTORY - " + f
	}
	b.WriteString(m.theme.MenuTitle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableBox := m.theme.PanelBorder.Render(m.renderTableContent())
	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableBox))
	} else {
		b.WriteString(centerText(fmt.Sprintf("< %s >", filterTitle(m.Filter())), m.width))
		b.WriteString("\n\n")
		b.WriteString(tableBox)
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the scenario filter list.
func (m HistoryModel) renderSidebar() string {
	var sidebar strings.Builder
	sidebar.WriteString("Scenarios\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, f := range m.filters {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = m.theme.Selected
		}
		sidebar.WriteString(style.Render(cursor + truncate(filterTitle(f), sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	return m.theme.PanelBorder.Width(sidebarWidth).Render(sidebar.String())
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	if m.loadErr != nil {
		return m.theme.Error.Render(m.loadErr.Error())
	}
	if len(m.runs) == 0 {
		return m.theme.Dim.Padding(2, 4).Render("No runs recorded yet.\nSave one from the viewer or run a batch.")
	}
	return m.table.View()
}

// Filter returns the scenario ID being shown, or "" for all scenarios.
func (m HistoryModel) Filter() string {
	return m.filters[m.cursor]
}

// Runs returns the runs currently listed.
func (m HistoryModel) Runs() []storage.Run {
	return m.runs
}

func filterTitle(f string) string {
	if f == allScenarios {
		return "all"
	}
	return f
}

// RunHistory runs the history screen.
func RunHistory(source HistorySource, scenarioID string, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(source, scenarioID, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
