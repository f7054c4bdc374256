package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Painter converts Screen buffers to styled strings for one renderer.
// Over SSH every session has its own renderer, so colour support follows
// the client's terminal.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[core.Style]lipgloss.Style
}

// NewPainter creates a painter. A nil renderer uses the process default.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{renderer: r, styles: make(map[core.Style]lipgloss.Style)}
}

func (p *Painter) style(st core.Style) lipgloss.Style {
	if s, ok := p.styles[st]; ok {
		return s
	}
	s := p.renderer.NewStyle()
	if st.FG != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(st.FG))
	}
	if st.BG != core.ColorDefault {
		s = s.Background(lipgloss.Color(st.BG))
	}
	if st.Bold {
		s = s.Bold(true)
	}
	if st.Faint {
		s = s.Faint(true)
	}
	p.styles[st] = s
	return s
}

// Render groups adjacent cells with the same style to minimize ANSI escape
// sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				// Trailing half of a wide rune.
				if cell.Rune != 0 {
					run.WriteRune(cell.Rune)
				}
				x++
			}
			if start == (core.Style{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen paints s with the default renderer.
func RenderScreen(s *core.Screen) string {
	return NewPainter(nil).Render(s)
}
