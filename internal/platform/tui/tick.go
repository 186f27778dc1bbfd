// Package tui provides the Bubble Tea host for the games. It runs the
// frame loop, maps keys to actions and draws the screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per host frame.
type FrameMsg time.Time

// frameCmd returns a command that sends the next frame message after one
// frame interval.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
