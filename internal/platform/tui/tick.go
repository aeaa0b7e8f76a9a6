// Package tui runs a simulation in the terminal with Bubble Tea: it owns the
// fixed-rate clock, maps keys to actions and turns the screen buffer into
// styled output. It also serves the same model over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a command that sends one TickMsg after a tick interval.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickInterval converts a rate in ticks per second to the tick period.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 1
	}
	return time.Second / time.Duration(tickRate)
}
