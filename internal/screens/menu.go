package screens

import (
	"github.com/vovakirdan/tui-2048/internal/audio"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/session"
)

const (
	itemContinue = "Continue"
	itemNewGame  = "New Game"
	itemScores   = "Scores"
	itemQuit     = "Quit"
)

// Menu is the title screen.
type Menu struct {
	session *session.Session
	list    choice
}

// NewMenu creates the title screen. Its items are built on Enter.
func NewMenu(s *session.Session) *Menu {
	return &Menu{session: s}
}

func (m *Menu) ID() ID { return IDMenu }

// Enter rebuilds the items; Continue is only offered for a live game.
func (m *Menu) Enter() {
	if m.session.CanContinue() {
		m.list.reset(itemContinue, itemNewGame, itemScores, itemQuit)
		return
	}
	m.list.reset(itemNewGame, itemScores, itemQuit)
}

func (m *Menu) Exit() {}

// Items returns the options currently shown.
func (m *Menu) Items() []string {
	return m.list.items
}

func (m *Menu) Update(in core.InputFrame) Transition {
	if in.Has(core.ActionScores) {
		return Ask(RequestScoreboard)
	}
	if !m.list.update(in) {
		return Stay()
	}

	m.session.Cue(audio.CueUI)
	switch m.list.selected() {
	case itemContinue:
		return GoTo(IDGameplay)
	case itemNewGame:
		m.session.NewGame()
		return GoTo(IDGameplay)
	case itemScores:
		return Ask(RequestScoreboard)
	case itemQuit:
		return Ask(RequestQuit)
	}
	return Stay()
}

func (m *Menu) Render(dst *core.Screen) {
	dst.FillRect(dst.Bounds(), styleScreen)

	h := 3 + 2 + len(m.list.items)
	top := max((dst.Height()-h)/2, 0)

	title := core.NewRect((dst.Width()-12)/2, top, 12, 3)
	dst.FillRect(title, styleTitle)
	dst.DrawTextIn(title, title.Y+1, "2048", styleTitle)

	m.list.draw(dst, dst.Bounds(), title.Bottom()+2)
}
