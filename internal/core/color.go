package core

// Color is a terminal color understood by lipgloss: either an ANSI 256 code
// ("245") or a hex value ("#EEE4DA"). The empty string is the terminal default.
type Color string

// ColorDefault leaves the terminal's own color in place.
const ColorDefault Color = ""

// Style describes how a single screen cell is drawn.
type Style struct {
	FG    Color
	BG    Color
	Bold  bool
	Faint bool
}

// Cell is one character position of a Screen.
// A zero Rune marks the trailing half of a double-width character.
type Cell struct {
	Rune  rune
	Style Style
}
