// Package tui runs the game in a terminal with Bubble Tea, locally or over
// SSH. It maps keys to actions, drives frames and paints the screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// FrameMsg triggers one simulation frame.
type FrameMsg time.Time

// frameCmd schedules the next frame at fps frames per second.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = core.DefaultConfig().TickRate
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
