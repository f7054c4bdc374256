// Package screens holds the full-screen states of the game (menu, play,
// win, game over) and the Director that switches between them.
package screens

import "github.com/vovakirdan/tui-2048/internal/core"

// ID identifies a screen.
type ID int

const (
	IDNone ID = iota
	IDMenu
	IDGameplay
	IDWin
	IDGameOver
)

func (id ID) String() string {
	switch id {
	case IDNone:
		return "none"
	case IDMenu:
		return "menu"
	case IDGameplay:
		return "gameplay"
	case IDWin:
		return "win"
	case IDGameOver:
		return "game_over"
	}
	return "unknown"
}

// Request asks the host program for something a screen cannot do itself.
type Request int

const (
	RequestNone Request = iota
	RequestQuit
	RequestScoreboard
)

// Transition is what a screen wants after an update.
type Transition struct {
	Next    ID
	Request Request
}

// Stay keeps the current screen.
func Stay() Transition { return Transition{} }

// GoTo switches to another screen.
func GoTo(id ID) Transition { return Transition{Next: id} }

// Ask passes a request to the host.
func Ask(r Request) Transition { return Transition{Request: r} }

// Screen is one full-screen state.
type Screen interface {
	ID() ID
	// Enter is called when the screen becomes current.
	Enter()
	// Update runs one frame with the actions pressed during it.
	Update(in core.InputFrame) Transition
	Render(dst *core.Screen)
	// Exit is called when another screen takes over.
	Exit()
}
