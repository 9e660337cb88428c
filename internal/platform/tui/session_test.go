package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/discs/internal/scenario"
)

func builtinScenarios(t *testing.T) []scenario.Scenario {
	t.Helper()
	scenarios, err := scenario.Builtin()
	if err != nil {
		t.Fatalf("Builtin() failed: %v", err)
	}
	return scenarios
}

func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return sm, cmd
}

func TestPickerNavigation(t *testing.T) {
	scenarios := builtinScenarios(t)
	m := NewPickerModel(scenarios, 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(PickerModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected to stay at 0", m.cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = next.(PickerModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(PickerModel)

	if m.Selected() == nil || m.Selected().ID != scenarios[1].ID {
		t.Errorf("Selected() = %v, expected %s", m.Selected(), scenarios[1].ID)
	}
	if !strings.Contains(m.View(), scenarios[0].ID) {
		t.Error("View() should list scenarios")
	}
}

func TestSessionFlow(t *testing.T) {
	scenarios := builtinScenarios(t)
	m := NewSessionModel(scenarios, ViewerOptions{Width: 100, Height: 30})

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.InViewer() {
		t.Fatal("enter should open the viewer")
	}
	if !strings.Contains(m.View(), "pairs") {
		t.Error("viewer should show the side panel")
	}

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.InViewer() {
		t.Fatal("esc should return to the picker")
	}

	m, cmd := sessionStep(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil || m.View() != "" {
		t.Error("q in the picker should quit the session")
	}
}

func TestSessionStartsInViewer(t *testing.T) {
	scenarios := builtinScenarios(t)
	m := NewSessionModelAt(scenarios, scenarios[2], ViewerOptions{Width: 100, Height: 30})
	if !m.InViewer() {
		t.Fatal("session should start in the viewer")
	}

	m, _ = sessionStep(t, m, tea.WindowSizeMsg{Width: 90, Height: 25})
	m, cmd := sessionStep(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil || m.View() != "" {
		t.Error("q in the viewer should quit the session")
	}
}
