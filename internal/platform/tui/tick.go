// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and frame pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// endMsg is sent once the final frame has been on screen long enough.
type endMsg struct{}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// holdCmd keeps the final frame visible for d and then ends the session.
func holdCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return endMsg{}
	})
}

// frameClock turns tick timestamps into elapsed durations.
// The first tick reports zero; a timestamp earlier than the previous one
// also reports zero so gravity never runs backwards.
type frameClock struct {
	last time.Time
}

// Elapsed returns the time since the previous call and remembers now.
func (c *frameClock) Elapsed(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	return d
}
