// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, rendering and the SSH front-end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation tick of the stream identified by Epoch.
type TickMsg struct {
	Epoch uint64
	Time  time.Time
}

// tickCmd schedules the next tick of a stream. Only one tick is ever in
// flight per stream: the handler re-arms after the tick has been processed.
func tickCmd(interval time.Duration, epoch uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Epoch: epoch, Time: t}
	})
}
