// Package tui provides the Bubble Tea integration: it owns the terminal,
// translates keys into intents and paces frames for the snake loop.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per frame to run input polling and the simulation gate.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message at the specified rate.
func frameCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(frameRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
