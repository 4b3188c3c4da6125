// Package tui provides the Bubble Tea integration for the snake engine.
// It handles the terminal UI loop, input mapping and the SSH front end.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Gen identifies the run the
// tick was scheduled for; ticks from a replaced run are ignored.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// generation hands out tick generations. They are unique per process, so a
// tick scheduled by any earlier run can never match a later one.
var generation atomic.Uint64

func nextGen() uint64 {
	return generation.Add(1)
}
