// Package tui provides the Bubble Tea integration for qsnake. It handles
// the terminal UI loop, input mapping, tick scheduling, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that fires one tick after the given
// interval. The model reschedules after every tick with the game's current
// interval, so runtime speed changes take effect on the next tick.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
