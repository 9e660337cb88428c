// Package tui provides the Bubble Tea front end: the interactive disk
// viewer, the scenario picker, the run history and the SSH server that
// exposes them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status line stays visible.
const statusTimeout = 3 * time.Second

// statusExpiredMsg is sent when the status line with the given sequence
// number should be cleared.
type statusExpiredMsg struct {
	seq int
}

// expireStatusCmd returns a command that expires status seq after the timeout.
func expireStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}
