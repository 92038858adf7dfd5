// Package tui provides the Bubble Tea preview of the LED matrix, locally
// and over SSH, and the match history browser.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a session step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after delay.
// The game changes tempo, so each step schedules the next one.
func tickCmd(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		delay = time.Millisecond
	}
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
