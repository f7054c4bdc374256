package screens

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

func TestMenuItems(t *testing.T) {
	s, _ := sessionWith(t, []int{1, 0, 0, 0})
	m := NewMenu(s)
	m.Enter()

	want := []string{itemContinue, itemNewGame, itemScores, itemQuit}
	if !slices.Equal(m.Items(), want) {
		t.Errorf("items = %v, want %v", m.Items(), want)
	}
}

func TestMenuHidesContinueForFinishedGame(t *testing.T) {
	// Only the top pair can merge; the spawned tile then ends the game.
	s, _ := sessionWith(t, []int{1, 1, 3, 4}, []int{5, 6, 7, 8}, []int{1, 2, 3, 4}, []int{5, 6, 7, 8})
	g := NewGameplay(s)
	if tr := play(t, g, core.InputOf(core.ActionLeft)); tr != GoTo(IDGameOver) {
		t.Fatalf("transition = %+v, want game over", tr)
	}

	m := NewMenu(s)
	m.Enter()
	if slices.Contains(m.Items(), itemContinue) {
		t.Errorf("items = %v, continue should be hidden", m.Items())
	}
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		name  string
		moves []core.Action
		want  Transition
	}{
		{"continue", nil, GoTo(IDGameplay)},
		{"new game", []core.Action{core.ActionDown}, GoTo(IDGameplay)},
		{"scores", []core.Action{core.ActionDown, core.ActionDown}, Ask(RequestScoreboard)},
		{"quit wraps", []core.Action{core.ActionUp}, Ask(RequestQuit)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := sessionWith(t, []int{1, 0, 0, 0})
			m := NewMenu(s)
			m.Enter()

			for _, a := range tt.moves {
				if tr := m.Update(core.InputOf(a)); tr != Stay() {
					t.Fatalf("cursor move returned %+v", tr)
				}
			}
			if got := m.Update(core.InputOf(core.ActionConfirm)); got != tt.want {
				t.Errorf("confirm = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMenuNewGameResets(t *testing.T) {
	s, _ := sessionWith(t, []int{3, 3, 0, 0})
	m := NewMenu(s)
	m.Enter()

	m.Update(core.InputOf(core.ActionDown))
	m.Update(core.InputOf(core.ActionConfirm))

	if got := s.Round().Grid().Occupied(); got != 2 {
		t.Errorf("occupied = %d after new game, want 2", got)
	}
}

func TestMenuRender(t *testing.T) {
	s, _ := sessionWith(t)
	m := NewMenu(s)
	m.Enter()

	scr := core.NewScreen(40, 16)
	m.Render(scr)
	out := scr.String()
	for _, want := range []string{"2048", itemNewGame, itemQuit} {
		if !strings.Contains(out, want) {
			t.Errorf("menu missing %q:\n%s", want, out)
		}
	}
}

func TestWinScreen(t *testing.T) {
	s, _ := sessionWith(t, []int{10, 10, 0, 0})
	g := NewGameplay(s)
	play(t, g, core.InputOf(core.ActionLeft))

	w := NewWin(s, g)
	w.Enter()

	scr := core.NewScreen(80, 24)
	w.Render(scr)
	if !strings.Contains(scr.String(), "You made 2048!") {
		t.Errorf("win dialog missing:\n%s", scr.String())
	}

	if tr := w.Update(core.InputOf(core.ActionConfirm)); tr != GoTo(IDGameplay) {
		t.Errorf("keep going = %+v", tr)
	}
	if s.Round().Status() != t2048.StatusPlaying {
		t.Errorf("status = %s, want playing", s.Round().Status())
	}
}

func TestGameOverScreen(t *testing.T) {
	s, _ := sessionWith(t,
		[]int{1, 1, 3, 4}, []int{5, 6, 7, 8}, []int{1, 2, 3, 4}, []int{5, 6, 7, 8})
	g := NewGameplay(s)
	play(t, g, core.InputOf(core.ActionLeft))

	over := NewGameOver(s, g)
	over.Enter()

	scr := core.NewScreen(80, 24)
	over.Render(scr)
	if !strings.Contains(scr.String(), "Game over") {
		t.Errorf("game over dialog missing:\n%s", scr.String())
	}

	if tr := over.Update(core.InputOf(core.ActionDown)); tr != Stay() {
		t.Fatalf("cursor move = %+v", tr)
	}
	if tr := over.Update(core.InputOf(core.ActionConfirm)); tr != GoTo(IDMenu) {
		t.Errorf("menu item = %+v", tr)
	}

	if tr := over.Update(core.InputOf(core.ActionRestart)); tr != GoTo(IDGameplay) {
		t.Errorf("restart = %+v", tr)
	}
	if s.Round().Status() != t2048.StatusPlaying {
		t.Errorf("status = %s after restart", s.Round().Status())
	}
}
