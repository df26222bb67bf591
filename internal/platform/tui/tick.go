// Package tui presents games through Bubble Tea. Bubble Tea owns the event
// loop, so frames are driven by tick messages instead of engine.Driver.Run.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger the next frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after d.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
