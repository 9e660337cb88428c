package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/discs/internal/storage"
)

type fakeHistory struct {
	runs []storage.Run
	err  error
}

func (f *fakeHistory) ScenarioIDs() ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := map[string]bool{}
	var ids []string
	for _, r := range f.runs {
		if !seen[r.ScenarioID] {
			seen[r.ScenarioID] = true
			ids = append(ids, r.ScenarioID)
		}
	}
	return ids, nil
}

func (f *fakeHistory) RecentRuns(limit int) ([]storage.Run, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.runs, nil
}

func (f *fakeHistory) RunsForScenario(id string, limit int) ([]storage.Run, error) {
	var out []storage.Run
	for _, r := range f.runs {
		if r.ScenarioID == id {
			out = append(out, r)
		}
	}
	return out, nil
}

func historyFixture() *fakeHistory {
	return &fakeHistory{runs: []storage.Run{
		{ID: "aaaaaaaa-1", ScenarioID: "nested", DiskCount: 2, Found: true, X: 2, Y: 0, Epsilon: 1e-9},
		{ID: "bbbbbbbb-2", ScenarioID: "triple", DiskCount: 3, Found: true, X: 1.2, Epsilon: 1e-9},
		{ID: "cccccccc-3", ScenarioID: "nested", DiskCount: 2, Epsilon: 1e-6},
	}}
}

func TestHistoryFilters(t *testing.T) {
	m := NewHistoryModel(historyFixture(), "", 120, 30)

	if m.Filter() != "" || len(m.Runs()) != 3 {
		t.Fatalf("initial filter = %q with %d runs", m.Filter(), len(m.Runs()))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.Filter() != "nested" || len(m.Runs()) != 2 {
		t.Errorf("after tab: filter = %q with %d runs", m.Filter(), len(m.Runs()))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(HistoryModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(HistoryModel)
	if m.Filter() != "triple" || len(m.Runs()) != 1 {
		t.Errorf("after wrapping back: filter = %q with %d runs", m.Filter(), len(m.Runs()))
	}
}

func TestHistoryStartsAtScenario(t *testing.T) {
	m := NewHistoryModel(historyFixture(), "triple", 120, 30)
	if m.Filter() != "triple" {
		t.Errorf("Filter() = %q, expected triple", m.Filter())
	}

	view := m.View()
	for _, want := range []string{"RUN HISTORY - triple", "bbbbbbbb", "[1.2;0]"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() should contain %q", want)
		}
	}
}

func TestHistoryEmptyAndError(t *testing.T) {
	m := NewHistoryModel(&fakeHistory{}, "", 60, 20)
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("empty history should show a placeholder")
	}

	m = NewHistoryModel(&fakeHistory{err: errors.New("database is locked")}, "", 60, 20)
	if !strings.Contains(m.View(), "database is locked") {
		t.Error("load errors should be shown")
	}
}

func TestHistoryRow(t *testing.T) {
	row := HistoryRow(storage.Run{
		ID:         "0123456789",
		ScenarioID: "s",
		DiskCount:  4,
		Epsilon:    1e-9,
		Duration:   15 * time.Microsecond,
	})
	want := []string{"01234567", "s", "4", "none", "1e-09", "15µs", ""}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("column %d = %q, expected %q", i, row[i], want[i])
		}
	}
}

func TestHistoryQuit(t *testing.T) {
	m := NewHistoryModel(historyFixture(), "", 120, 30)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if next.(HistoryModel).View() != "" {
		t.Error("view should be blank after quitting")
	}
}
