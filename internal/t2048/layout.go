package t2048

import (
	"math"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// tilePreset describes one tile size the board can be drawn at.
type tilePreset struct {
	tileW, tileH int
	gapX, gapY   int
}

var (
	presetRegular = tilePreset{tileW: 8, tileH: 3, gapX: 2, gapY: 1}
	presetCompact = tilePreset{tileW: 6, tileH: 1, gapX: 1, gapY: 1}
)

func (p tilePreset) boardSize() (w, h int) {
	return Size*p.tileW + (Size+1)*p.gapX, Size*p.tileH + (Size+1)*p.gapY
}

const (
	hudHeight  = 2 // label row + value row
	titleWidth = 8
)

// footprint is the full height and width the play screen needs.
func (p tilePreset) footprint() (w, h int) {
	bw, bh := p.boardSize()
	return bw, hudHeight + 1 + bh + 1
}

// Layout is the geometry of the play screen in terminal cells.
type Layout struct {
	Screen core.Rect

	Title core.Rect
	Score core.Rect
	Best  core.Rect
	Moves core.Rect

	Board  core.Rect
	Footer core.Rect

	TileW, TileH int
	GapX, GapY   int
	Compact      bool

	fits bool
}

// NewLayout computes the play screen for a w x h terminal. The regular tile
// size is used when it fits, the compact one otherwise.
func NewLayout(w, h int) Layout {
	p := presetRegular
	if fw, fh := p.footprint(); w < fw || h < fh {
		p = presetCompact
	}
	fw, fh := p.footprint()
	bw, bh := p.boardSize()

	l := Layout{
		Screen:  core.NewRect(0, 0, w, h),
		TileW:   p.tileW,
		TileH:   p.tileH,
		GapX:    p.gapX,
		GapY:    p.gapY,
		Compact: p == presetCompact,
		fits:    w >= fw && h >= fh,
	}

	x := max((w-fw)/2, 0)
	y := max((h-fh)/2, 0)

	l.Title = core.NewRect(x, y, titleWidth, hudHeight)
	boxW := (bw - titleWidth - 3) / 3
	bx := l.Title.Right() + 1
	l.Score = core.NewRect(bx, y, boxW, hudHeight)
	l.Best = core.NewRect(l.Score.Right()+1, y, boxW, hudHeight)
	l.Moves = core.NewRect(l.Best.Right()+1, y, x+bw-l.Best.Right()-1, hudHeight)

	l.Board = core.NewRect(x, y+hudHeight+1, bw, bh)
	l.Footer = core.NewRect(x, l.Board.Bottom(), bw, 1)
	return l
}

// Fits reports whether the terminal is big enough for the board.
func (l Layout) Fits() bool {
	return l.fits
}

// MinSize returns the smallest terminal the board can be drawn in.
func MinSize() (w, h int) {
	return presetCompact.footprint()
}

// TileRect returns the rectangle of the tile in slot c.
func (l Layout) TileRect(c Cell) core.Rect {
	return l.TileRectAt(float32(c.X), float32(c.Y))
}

// TileRectAt returns the tile rectangle at a fractional grid coordinate,
// used while tiles travel between slots.
func (l Layout) TileRectAt(fx, fy float32) core.Rect {
	stepX := float64(l.TileW + l.GapX)
	stepY := float64(l.TileH + l.GapY)
	x := l.Board.X + l.GapX + int(math.Round(float64(fx)*stepX))
	y := l.Board.Y + l.GapY + int(math.Round(float64(fy)*stepY))
	return core.NewRect(x, y, l.TileW, l.TileH)
}

// Grow enlarges a tile rectangle for the pop effect. amount is in [0, 1];
// at 1 the tile covers half the gap on each side.
func (l Layout) Grow(r core.Rect, amount float32) core.Rect {
	dx := int(math.Round(float64(amount) * float64(l.GapX) / 2))
	return r.Inset(-dx, 0)
}
