// Package tui provides the Bubble Tea integration for Blockout.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	ID   int64 // Model the tick loop belongs to
	Time time.Time
}

var lastModelID atomic.Int64

// newModelID returns a fresh tick loop identifier.
func newModelID() int64 {
	return lastModelID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id int64, tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
