package screens

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

type stubScreen struct {
	id      ID
	glyph   rune
	next    Transition
	enters  int
	exits   int
	updates int
}

func (s *stubScreen) ID() ID { return s.id }
func (s *stubScreen) Enter() { s.enters++ }
func (s *stubScreen) Exit()  { s.exits++ }

func (s *stubScreen) Update(core.InputFrame) Transition {
	s.updates++
	return s.next
}

func (s *stubScreen) Render(dst *core.Screen) {
	dst.DrawRect(dst.Bounds(), s.glyph)
}

func TestDirectorInstantSwitch(t *testing.T) {
	menu := &stubScreen{id: IDMenu, glyph: 'm', next: GoTo(IDGameplay)}
	play := &stubScreen{id: IDGameplay, glyph: 'p'}
	d := NewDirector(0, nil, menu, play)

	d.Start(IDMenu)
	if d.Current() != IDMenu || menu.enters != 1 {
		t.Fatalf("current = %s, enters = %d", d.Current(), menu.enters)
	}

	d.Update(core.NewInputFrame())

	if d.Current() != IDGameplay {
		t.Errorf("current = %s, want gameplay", d.Current())
	}
	if menu.exits != 1 || play.enters != 1 {
		t.Errorf("menu exits = %d, play enters = %d", menu.exits, play.enters)
	}
	if d.Fading() {
		t.Error("zero fade frames should not fade")
	}
}

func TestDirectorFade(t *testing.T) {
	menu := &stubScreen{id: IDMenu, glyph: 'm', next: GoTo(IDGameplay)}
	play := &stubScreen{id: IDGameplay, glyph: 'p'}
	d := NewDirector(2, nil, menu, play)
	d.Start(IDMenu)

	d.Update(core.NewInputFrame())
	if !d.Fading() || d.Current() != IDMenu {
		t.Fatalf("fading = %v, current = %s", d.Fading(), d.Current())
	}

	// fade out
	d.Update(core.InputOf(core.ActionConfirm))
	d.Update(core.InputOf(core.ActionConfirm))
	if d.Current() != IDGameplay {
		t.Fatalf("current = %s after fade out, want gameplay", d.Current())
	}
	if d.Alpha() != 1 {
		t.Errorf("alpha = %v at the swap, want 1", d.Alpha())
	}
	if menu.updates != 1 || play.updates != 0 {
		t.Errorf("input reached screens during fade: menu %d, play %d", menu.updates, play.updates)
	}

	scr := core.NewScreen(6, 2)
	d.Render(scr)
	if strings.ContainsRune(scr.String(), 'p') {
		t.Errorf("screen should be dark at the swap: %q", scr.String())
	}

	// fade in
	d.Update(core.NewInputFrame())
	d.Update(core.NewInputFrame())
	if d.Fading() {
		t.Fatal("fade should be over")
	}
	d.Render(scr)
	if scr.Row(0) != "pppppp" {
		t.Errorf("row = %q after fade, want full screen", scr.Row(0))
	}

	d.Update(core.NewInputFrame())
	if play.updates != 1 {
		t.Errorf("play updates = %d, want 1", play.updates)
	}
}

func TestDirectorRequests(t *testing.T) {
	menu := &stubScreen{id: IDMenu, next: Ask(RequestScoreboard)}
	d := NewDirector(5, nil, menu)
	d.Start(IDMenu)

	if got := d.Update(core.NewInputFrame()); got != RequestScoreboard {
		t.Errorf("request = %v, want scoreboard", got)
	}
	if d.Fading() {
		t.Error("a request must not start a transition")
	}
}

func TestDirectorIgnoresUnknownScreen(t *testing.T) {
	menu := &stubScreen{id: IDMenu, next: GoTo(IDWin)}
	d := NewDirector(0, nil, menu)
	d.Start(IDMenu)

	d.Update(core.NewInputFrame())

	if d.Current() != IDMenu {
		t.Errorf("current = %s, want menu", d.Current())
	}
	if menu.exits != 0 {
		t.Error("menu should not be left for a missing screen")
	}
}
