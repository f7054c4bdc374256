package screens

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/audio"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/session"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

const (
	itemKeepGoing = "Keep going"
	itemTryAgain  = "Try again"
	itemMenu      = "Menu"
)

// Win is shown once when the winning tile appears. The board stays visible
// behind the dialog.
type Win struct {
	session *session.Session
	board   *Gameplay
	list    choice
}

// NewWin creates the win screen.
func NewWin(s *session.Session, board *Gameplay) *Win {
	return &Win{session: s, board: board, list: newChoice(itemKeepGoing, itemNewGame)}
}

func (w *Win) ID() ID { return IDWin }
func (w *Win) Enter() { w.list.cursor = 0 }
func (w *Win) Exit()  {}

func (w *Win) Update(in core.InputFrame) Transition {
	if in.Has(core.ActionCancel) {
		return GoTo(IDMenu)
	}
	if !w.list.update(in) {
		return Stay()
	}

	w.session.Cue(audio.CueUI)
	if w.list.selected() == itemNewGame {
		w.session.NewGame()
	} else {
		w.session.Continue()
	}
	return GoTo(IDGameplay)
}

func (w *Win) Render(dst *core.Screen) {
	w.board.Render(dst)
	sum := w.session.Round().Summary()
	lines := []string{
		fmt.Sprintf("You made %d!", sum.MaxTile()),
		fmt.Sprintf("score %d in %d moves", sum.Score, sum.Moves),
	}
	renderOutcome(dst, lines, &w.list)
}

// GameOver is shown when no move is left.
type GameOver struct {
	session *session.Session
	board   *Gameplay
	list    choice
}

// NewGameOver creates the game over screen.
func NewGameOver(s *session.Session, board *Gameplay) *GameOver {
	return &GameOver{session: s, board: board, list: newChoice(itemTryAgain, itemMenu)}
}

func (g *GameOver) ID() ID { return IDGameOver }
func (g *GameOver) Enter() { g.list.cursor = 0 }
func (g *GameOver) Exit()  {}

func (g *GameOver) Update(in core.InputFrame) Transition {
	switch {
	case in.Has(core.ActionRestart):
		g.session.NewGame()
		return GoTo(IDGameplay)
	case in.Has(core.ActionCancel):
		return GoTo(IDMenu)
	}
	if !g.list.update(in) {
		return Stay()
	}

	g.session.Cue(audio.CueUI)
	if g.list.selected() == itemMenu {
		return GoTo(IDMenu)
	}
	g.session.NewGame()
	return GoTo(IDGameplay)
}

func (g *GameOver) Render(dst *core.Screen) {
	g.board.Render(dst)
	sum := g.session.Round().Summary()
	lines := []string{
		"Game over",
		fmt.Sprintf("score %d  best %d", sum.Score, sum.Best),
		fmt.Sprintf("moves %d  max tile %d", sum.Moves, t2048.Number(sum.MaxRank)),
	}
	renderOutcome(dst, lines, &g.list)
}

func renderOutcome(dst *core.Screen, lines []string, list *choice) {
	w := list.width(dst)
	for _, l := range lines {
		w = max(w, dst.TextWidth(l))
	}
	h := len(lines) + 1 + len(list.items)

	inner := dialog(dst, w, h)
	for i, l := range lines {
		st := styleDialog
		if i == 0 {
			st.Bold = true
		}
		dst.DrawTextIn(inner, inner.Y+i, l, st)
	}
	list.draw(dst, inner, inner.Y+len(lines)+1)
}
