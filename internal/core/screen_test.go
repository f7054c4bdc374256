package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetKeepsStyle(t *testing.T) {
	s := NewScreen(5, 1)
	st := Style{BG: "#EEE4DA"}
	s.FillRect(NewRect(0, 0, 5, 1), st)
	s.Set(2, 0, '7')

	c := s.GetCell(2, 0)
	if c.Rune != '7' || c.Style != st {
		t.Errorf("Set should keep the background, got %+v", c)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(0, 0, 10, 10), Style{BG: "1"})
	s.DrawRect(NewRect(0, 0, 10, 10), 'X')

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("After Clear, expected unstyled space at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextWide(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "日本x")

	if got := s.TextWidth("日本x"); got != 5 {
		t.Errorf("TextWidth = %d, expected 5", got)
	}
	if s.Get(4, 0) != 'x' {
		t.Errorf("wide runes should take two columns, got %q at 4", s.Get(4, 0))
	}
	if row := s.Row(0); !strings.HasPrefix(row, "日本x") {
		t.Errorf("Row(0) = %q", row)
	}
}

func TestScreenDrawTextIn(t *testing.T) {
	s := NewScreen(20, 3)
	r := NewRect(4, 0, 8, 3)
	st := Style{FG: "229", Bold: true}
	s.DrawTextIn(r, 1, "2048", st)

	// (8 - 4) / 2 = 2 columns of padding inside the rect
	if s.Get(6, 1) != '2' || s.Get(9, 1) != '8' {
		t.Errorf("DrawTextIn placed text wrong: %q", s.Row(1))
	}
	if s.GetCell(6, 1).Style != st {
		t.Errorf("DrawTextIn should apply style, got %+v", s.GetCell(6, 1).Style)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(2, 2, 3, 3)
	s.DrawRect(r, '#')

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}

	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawRoundedBox(t *testing.T) {
	s := NewScreen(6, 3)
	st := Style{FG: "240"}
	s.DrawRoundedBox(NewRect(0, 0, 6, 3), st)

	if s.Get(0, 0) != '╭' || s.Get(5, 0) != '╮' || s.Get(0, 2) != '╰' || s.Get(5, 2) != '╯' {
		t.Errorf("rounded corners missing:\n%s", s.String())
	}
	if s.GetCell(2, 0).Style != st {
		t.Error("rounded box should carry its style")
	}
}

func TestScreenFade(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")

	s.Fade(0.1)
	if s.GetCell(0, 0).Style.Faint {
		t.Error("small alpha should leave the buffer untouched")
	}

	s.Fade(0.5)
	if !s.GetCell(0, 0).Style.Faint || s.Get(0, 0) != 'a' {
		t.Error("mid alpha should dim without erasing")
	}

	s.Fade(1)
	if s.String() != "    \n    " {
		t.Errorf("full alpha should clear the buffer, got %q", s.String())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if outOfBounds := s.Row(-1); outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}
