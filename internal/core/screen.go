package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Screen is a 2D character buffer for rendering game graphics.
// It decouples drawing from the terminal: screens draw with simple rune and
// rectangle operations while the platform turns the buffer into styled output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the whole screen as a rectangle.
func (s *Screen) Bounds() Rect {
	return Rect{W: s.width, H: s.height}
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with unstyled spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a rune at the given position, keeping the cell's style.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x].Rune = r
}

// SetCell replaces the rune and style at the given position.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if !s.inBounds(x, y) {
		return ' '
	}
	return s.cells[y][x].Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

func (s *Screen) inBounds(x, y int) bool {
	return s.Bounds().Contains(x, y)
}

// TextWidth returns the number of terminal columns text occupies.
func (s *Screen) TextWidth(text string) int {
	return runewidth.StringWidth(text)
}

// DrawText writes a string horizontally starting at (x, y), keeping the
// style already present under each character.
func (s *Screen) DrawText(x, y int, text string) {
	s.drawText(x, y, text, nil)
}

// DrawTextStyled writes a string with the given style.
func (s *Screen) DrawTextStyled(x, y int, text string, st Style) {
	s.drawText(x, y, text, &st)
}

func (s *Screen) drawText(x, y int, text string, st *Style) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if st != nil {
			s.SetCell(x, y, Cell{Rune: r, Style: *st})
		} else {
			s.Set(x, y, r)
		}
		// Wide runes own the next column too.
		if w == 2 {
			if st != nil {
				s.SetCell(x+1, y, Cell{Rune: 0, Style: *st})
			} else {
				s.Set(x+1, y, 0)
			}
		}
		x += w
	}
}

// DrawTextIn draws text centered horizontally inside r on row y.
func (s *Screen) DrawTextIn(r Rect, y int, text string, st Style) {
	x := r.X + (r.W-s.TextWidth(text))/2
	s.DrawTextStyled(x, y, text, st)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

// FillRect paints a rectangular area with spaces in the given style.
func (s *Screen) FillRect(r Rect, st Style) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, Cell{Rune: ' ', Style: st})
		}
	}
}

// DrawRoundedBox draws a box outline with rounded corners in the given style.
func (s *Screen) DrawRoundedBox(r Rect, st Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	put := func(x, y int, ch rune) {
		s.SetCell(x, y, Cell{Rune: ch, Style: st})
	}

	put(r.X, r.Y, '╭')
	put(r.Right()-1, r.Y, '╮')
	put(r.X, r.Bottom()-1, '╰')
	put(r.Right()-1, r.Bottom()-1, '╯')

	for x := r.X + 1; x < r.Right()-1; x++ {
		put(x, r.Y, '─')
		put(x, r.Bottom()-1, '─')
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		put(r.X, y, '│')
		put(r.Right()-1, y, '│')
	}
}

// Fade darkens the whole buffer towards an empty screen.
// alpha 0 leaves the buffer untouched, alpha 1 clears it.
func (s *Screen) Fade(alpha float64) {
	switch {
	case alpha <= 0.25:
		return
	case alpha >= 0.95:
		s.Clear()
		return
	}

	for y := range s.cells {
		for x := range s.cells[y] {
			c := &s.cells[y][x]
			c.Style.Faint = true
			c.Style.Bold = false
			// Checkerboard dithering for the second half of the fade.
			if alpha > 0.6 && (x+y)%2 == 0 {
				*c = Cell{Rune: ' '}
			}
		}
	}
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		if c.Rune == 0 {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
