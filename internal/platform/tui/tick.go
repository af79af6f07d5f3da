// Package tui provides the Bubble Tea integration for the brain-training
// platform. It renders challenges, maps keys to answers, and drives the
// engine's clocks from a fixed tick.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the engine by one frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
