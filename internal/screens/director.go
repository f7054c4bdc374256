package screens

import (
	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/session"
)

// fade is a running screen transition: the old screen darkens, the screens
// are swapped at full dark, then the new screen brightens.
type fade struct {
	tween *gween.Tween
	out   bool
	next  ID
	alpha float32
}

// Director owns the screens and dispatches frames to the current one.
// Input is ignored while a fade runs.
type Director struct {
	screens    map[ID]Screen
	current    Screen
	fadeFrames int
	fade       *fade
	logger     *log.Logger
}

// NewDirector creates a director. fadeFrames is the length of each half of
// a transition; zero switches screens instantly.
func NewDirector(fadeFrames int, logger *log.Logger, screens ...Screen) *Director {
	if logger == nil {
		logger = logging.Discard()
	}
	d := &Director{
		screens:    make(map[ID]Screen, len(screens)),
		fadeFrames: max(fadeFrames, 0),
		logger:     logger,
	}
	for _, s := range screens {
		d.screens[s.ID()] = s
	}
	return d
}

// ForSession builds a director with every game screen, starting on the menu.
func ForSession(s *session.Session, fadeFrames int, logger *log.Logger) *Director {
	play := NewGameplay(s)
	d := NewDirector(fadeFrames, logger,
		NewMenu(s),
		play,
		NewWin(s, play),
		NewGameOver(s, play),
	)
	d.Start(IDMenu)
	return d
}

// Current returns the ID of the current screen.
func (d *Director) Current() ID {
	if d.current == nil {
		return IDNone
	}
	return d.current.ID()
}

// Fading reports whether a transition is running.
func (d *Director) Fading() bool {
	return d.fade != nil
}

// Alpha returns the darkness of the running transition, in [0, 1].
func (d *Director) Alpha() float32 {
	if d.fade == nil {
		return 0
	}
	return d.fade.alpha
}

// Start makes id the current screen without a transition.
func (d *Director) Start(id ID) {
	d.fade = nil
	d.switchTo(id)
}

// Update runs one frame and returns the request raised by the screen, if any.
func (d *Director) Update(in core.InputFrame) Request {
	if d.fade != nil {
		d.stepFade()
		return RequestNone
	}
	if d.current == nil {
		return RequestNone
	}

	t := d.current.Update(in)
	if t.Next != IDNone && t.Next != d.current.ID() {
		d.transitionTo(t.Next)
	}
	return t.Request
}

// Render draws the current screen, dimmed by the running transition.
func (d *Director) Render(dst *core.Screen) {
	dst.Clear()
	if d.current != nil {
		d.current.Render(dst)
	}
	if d.fade != nil {
		dst.Fade(float64(d.fade.alpha))
	}
}

func (d *Director) transitionTo(id ID) {
	if _, ok := d.screens[id]; !ok {
		d.logger.Error("unknown screen", "screen", id)
		return
	}
	if d.fadeFrames == 0 {
		d.switchTo(id)
		return
	}
	d.fade = &fade{
		tween: gween.New(0, 1, float32(d.fadeFrames), ease.InOutQuad),
		out:   true,
		next:  id,
	}
}

func (d *Director) stepFade() {
	f := d.fade
	v, done := f.tween.Update(1)
	f.alpha = v
	if !done {
		return
	}

	if f.out {
		d.switchTo(f.next)
		f.out = false
		f.alpha = 1
		f.tween = gween.New(1, 0, float32(d.fadeFrames), ease.InOutQuad)
		return
	}
	d.fade = nil
}

func (d *Director) switchTo(id ID) {
	next, ok := d.screens[id]
	if !ok {
		d.logger.Error("unknown screen", "screen", id)
		return
	}
	from := d.Current()
	if d.current != nil {
		d.current.Exit()
	}
	d.current = next
	next.Enter()
	d.logger.Debug("screen changed", "from", from, "to", id)
}
