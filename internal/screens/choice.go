package screens

import "github.com/vovakirdan/tui-2048/internal/core"

// choice is a vertical list of options with a wrapping cursor.
type choice struct {
	items  []string
	cursor int
}

func newChoice(items ...string) choice {
	return choice{items: items}
}

func (c *choice) reset(items ...string) {
	c.items = items
	c.cursor = 0
}

func (c *choice) selected() string {
	if len(c.items) == 0 {
		return ""
	}
	return c.items[c.cursor]
}

// update moves the cursor and reports whether an item was confirmed.
func (c *choice) update(in core.InputFrame) bool {
	n := len(c.items)
	if n == 0 {
		return false
	}
	switch {
	case in.Has(core.ActionUp):
		c.cursor = (c.cursor - 1 + n) % n
	case in.Has(core.ActionDown):
		c.cursor = (c.cursor + 1) % n
	case in.Has(core.ActionConfirm):
		return true
	}
	return false
}

// width is the widest rendered item.
func (c *choice) width(dst *core.Screen) int {
	w := 0
	for _, it := range c.items {
		w = max(w, dst.TextWidth(it)+4)
	}
	return w
}

// draw renders the items centred in r, one per row from y.
func (c *choice) draw(dst *core.Screen, r core.Rect, y int) {
	w := c.width(dst)
	x := r.X + (r.W-w)/2
	for i, it := range c.items {
		row := core.NewRect(x, y+i, w, 1)
		st := styleItem
		if i == c.cursor {
			st = styleSelected
			dst.FillRect(row, st)
		}
		dst.DrawTextIn(row, row.Y, it, st)
	}
}

// dialog draws a framed box of the given inner size centred on the screen
// and returns its inner area.
func dialog(dst *core.Screen, w, h int) core.Rect {
	outer := core.NewRect((dst.Width()-w-4)/2, (dst.Height()-h-2)/2, w+4, h+2)
	dst.FillRect(outer, styleDialog)
	dst.DrawRoundedBox(outer, styleBorder)
	return outer.Inset(2, 1)
}
