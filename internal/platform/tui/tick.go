// Package tui provides the Bubble Tea integration for Ceon Town.
// It handles the terminal UI loop, input mapping, and session flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is the rate the town's tick-counted tuning assumes:
// the first wave after 2s, one every 10s, a 3s notification.
const defaultTickRate = 60

// TickMsg asks the model to advance the world by one tick.
type TickMsg time.Time

// tickInterval converts a tick rate to a frame duration. Rates below one
// fall back to defaultTickRate.
func tickInterval(tickRate int) time.Duration {
	if tickRate < 1 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next TickMsg.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
