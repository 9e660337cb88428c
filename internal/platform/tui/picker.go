package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/discs/internal/core"
	"github.com/vovakirdan/discs/internal/scenario"
)

// PickerModel is the Bubble Tea model for choosing a scenario to view.
type PickerModel struct {
	items    []scenario.Scenario
	cursor   int
	width    int
	height   int
	keys     PickerKeyMap
	help     help.Model
	theme    Theme
	quitting bool
	selected *scenario.Scenario // Set when user picks a scenario
}

// NewPickerModel creates a picker over the given scenarios.
func NewPickerModel(items []scenario.Scenario, width, height int) PickerModel {
	h := help.New()
	h.Width = width
	return PickerModel{
		items:  items,
		width:  width,
		height: height,
		keys:   DefaultPickerKeyMap(),
		help:   h,
		theme:  DefaultTheme(),
	}
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for list navigation.
func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}
	}

	return m, nil
}

// View renders the scenario list.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.theme.MenuTitle.Render(centerText("D I S C S", m.width)))
	b.WriteString("\n")
	b.WriteString(m.theme.MenuDescription.Render(centerText("Select a scenario", m.width)))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(m.theme.Dim.Render(centerText("No scenarios found.", m.width)))
		b.WriteString("\n")
	}

	// Keep the cursor visible on short terminals
	visible := core.Max(m.height-8, 1)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.items) {
		end = len(m.items)
	}

	for i := start; i < end; i++ {
		item := m.items[i]
		line := fmt.Sprintf("%-16s %-34s %3d disks", truncate(item.ID, 16), truncate(item.Title(), 34), len(item.Disks))
		style := m.theme.MenuItemNormal
		cursor := "  "
		if i == m.cursor {
			style = m.theme.MenuItemActive
			cursor = "> "
		}
		b.WriteString(centerText(cursor+style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the picked scenario, or nil if none was picked.
func (m PickerModel) Selected() *scenario.Scenario {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// Size returns the last known terminal size.
func (m PickerModel) Size() (int, int) {
	return m.width, m.height
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}
