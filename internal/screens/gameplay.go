package screens

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/audio"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/session"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

var moveActions = [...]struct {
	action core.Action
	dir    t2048.Direction
}{
	{core.ActionUp, t2048.DirUp},
	{core.ActionDown, t2048.DirDown},
	{core.ActionLeft, t2048.DirLeft},
	{core.ActionRight, t2048.DirRight},
}

// Gameplay is the play screen: HUD, board and animated tiles.
type Gameplay struct {
	session *session.Session
}

// NewGameplay creates the play screen for a session.
func NewGameplay(s *session.Session) *Gameplay {
	return &Gameplay{session: s}
}

func (g *Gameplay) ID() ID { return IDGameplay }
func (g *Gameplay) Enter() {}
func (g *Gameplay) Exit()  {}

// Update feeds one frame of input to the round and steps its animation.
func (g *Gameplay) Update(in core.InputFrame) Transition {
	s := g.session

	switch {
	case in.Has(core.ActionCancel):
		//nolint:errcheck // logged by the session
		s.Save()
		s.Cue(audio.CueUI)
		return GoTo(IDMenu)
	case in.Has(core.ActionScores):
		return Ask(RequestScoreboard)
	case in.Has(core.ActionRestart):
		s.Cue(audio.CueUI)
		s.NewGame()
	}

	for _, m := range moveActions {
		if in.Has(m.action) {
			s.Move(m.dir)
			break
		}
	}
	s.Step()

	r := s.Round()
	if r.Busy() {
		return Stay()
	}
	switch r.Status() {
	case t2048.StatusWon:
		return GoTo(IDWin)
	case t2048.StatusGameOver:
		return GoTo(IDGameOver)
	}
	return Stay()
}

// Render draws the play screen, or a notice when the terminal is too small.
func (g *Gameplay) Render(dst *core.Screen) {
	dst.FillRect(dst.Bounds(), styleScreen)

	l := t2048.NewLayout(dst.Width(), dst.Height())
	if !l.Fits() {
		renderTooSmall(dst)
		return
	}

	r := g.session.Round()
	sum := r.Summary()

	dst.FillRect(l.Title, styleTitle)
	dst.DrawTextIn(l.Title, l.Title.Y+l.Title.H/2, "2048", styleTitle)
	drawCounter(dst, l.Score, "SCORE", sum.Score)
	drawCounter(dst, l.Best, "BEST", sum.Best)
	drawCounter(dst, l.Moves, "MOVES", sum.Moves)

	dst.FillRect(l.Board, core.Style{BG: ColorBoard})
	for i := range t2048.GridSize {
		dst.FillRect(l.TileRect(t2048.CellAt(i)), core.Style{BG: ColorCell})
	}
	for _, v := range r.Views(l) {
		drawTile(dst, v)
	}

	footer := fmt.Sprintf("max tile %d", sum.MaxTile())
	if sum.Won {
		footer += "  *  2048 reached"
	}
	dst.DrawTextIn(l.Footer, l.Footer.Y, footer, styleHint)
}

func drawCounter(dst *core.Screen, r core.Rect, label string, value int) {
	dst.FillRect(r, styleValue)
	dst.DrawTextIn(r, r.Y, label, styleLabel)
	dst.DrawTextIn(r, r.Y+1, strconv.Itoa(value), styleValue)
}

func drawTile(dst *core.Screen, v t2048.TileView) {
	st := TileStyle(v.Rank)
	dst.FillRect(v.Rect, st)
	dst.DrawTextIn(v.Rect, v.Rect.Y+v.Rect.H/2, TileLabel(v.Rank), st)
}

func renderTooSmall(dst *core.Screen) {
	w, h := t2048.MinSize()
	_, y := dst.Bounds().Center()
	dst.DrawTextIn(dst.Bounds(), y-1, "Terminal too small", styleScreen)
	dst.DrawTextIn(dst.Bounds(), y, fmt.Sprintf("need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()), styleHint)
}
