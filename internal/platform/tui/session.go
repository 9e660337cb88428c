package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/discs/internal/scenario"
)

// SessionModel manages the full flow: picker -> viewer -> picker.
// It is the top-level model for `discs view` without arguments and for SSH
// sessions.
type SessionModel struct {
	scenarios []scenario.Scenario
	opts      ViewerOptions
	picker    PickerModel
	viewer    *ViewerModel
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(scenarios []scenario.Scenario, opts ViewerOptions) SessionModel {
	return SessionModel{
		scenarios: scenarios,
		opts:      opts,
		picker:    NewPickerModel(scenarios, opts.Width, opts.Height),
	}
}

// NewSessionModelAt creates a session that starts in the viewer.
// Going back from the viewer shows the picker.
func NewSessionModelAt(scenarios []scenario.Scenario, sc scenario.Scenario, opts ViewerOptions) SessionModel {
	m := NewSessionModel(scenarios, opts)
	viewer := NewViewerModel(sc, opts)
	m.viewer = &viewer
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
		newPicker, _ := m.picker.Update(msg)
		m.picker = newPicker.(PickerModel)
	}

	if m.viewer != nil {
		return m.updateViewer(msg)
	}
	return m.updatePicker(msg)
}

// updatePicker handles updates while choosing a scenario.
func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPicker, cmd := m.picker.Update(msg)
	if picker, ok := newPicker.(PickerModel); ok {
		m.picker = picker
	}

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.picker.Selected(); selected != nil {
		viewer := NewViewerModel(*selected, m.opts)
		m.viewer = &viewer
		m.picker.selected = nil
		return m, m.viewer.Init()
	}

	return m, cmd
}

// updateViewer handles updates while a scenario is open.
func (m SessionModel) updateViewer(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.viewer.Update(msg)
	if viewer, ok := newModel.(ViewerModel); ok {
		m.viewer = &viewer
	}

	if m.viewer.BackToPicker() {
		m.viewer = nil
		return m, nil
	}

	if m.viewer.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.viewer != nil {
		return m.viewer.View()
	}
	return m.picker.View()
}

// InViewer reports whether a scenario is open.
func (m SessionModel) InViewer() bool {
	return m.viewer != nil
}

// RunSession starts the picker over the given scenarios.
func RunSession(scenarios []scenario.Scenario, opts ViewerOptions) error {
	p := tea.NewProgram(
		NewSessionModel(scenarios, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
