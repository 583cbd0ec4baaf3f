// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Owner identifies the
// game model that scheduled it; ticks from an earlier game are dropped.
type TickMsg struct {
	Owner string
	At    time.Time
}

// tickCmd schedules the next tick after the game's current delay.
func tickCmd(owner string, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		// tea.Tick needs a positive interval; zero delay still yields to
		// the event loop between ticks.
		delay = time.Millisecond
	}
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{Owner: owner, At: t}
	})
}
