package t2048

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// TileView is one tile as it should be drawn this frame.
type TileView struct {
	Rank int
	Rect core.Rect
	Pop  bool // merged or freshly spawned tile during the settle phase
}

// Views returns the tiles to draw for the current frame, interpolating
// slides and growing popping tiles. Moving and popping tiles come last so
// they are drawn on top.
func (r *Round) Views(l Layout) []TileView {
	var still, front []TileView

	switch r.phase {
	case PhaseSliding:
		t := ease01(ease.OutQuad, r.frames, r.timing.SlideFrames)
		for _, tile := range r.grid.tiles {
			if tile.OldValue == 0 {
				continue
			}
			from, to := tile.OldPosition, tile.Position
			if from == to {
				still = append(still, TileView{Rank: tile.OldValue, Rect: l.TileRect(from)})
				continue
			}
			fx := float32(from.X) + float32(to.X-from.X)*t
			fy := float32(from.Y) + float32(to.Y-from.Y)*t
			front = append(front, TileView{Rank: tile.OldValue, Rect: l.TileRectAt(fx, fy)})
		}

	case PhaseSettling:
		// Grow during the first half of the phase, shrink back in the second.
		t := ease01(ease.Linear, r.frames, r.timing.AppearFrames)
		grow := 1 - abs32(2*t-1)
		for _, tile := range r.grid.tiles {
			if tile.Value == 0 {
				continue
			}
			rect := l.TileRect(tile.OldPosition)
			if tile.MergeSource == NoSource {
				still = append(still, TileView{Rank: tile.Value, Rect: rect})
				continue
			}
			front = append(front, TileView{Rank: tile.Value, Rect: l.Grow(rect, grow), Pop: true})
		}

	default:
		for _, tile := range r.grid.tiles {
			if tile.Value != 0 {
				still = append(still, TileView{Rank: tile.Value, Rect: l.TileRect(tile.OldPosition)})
			}
		}
	}

	return append(still, front...)
}

// ease01 maps frame out of total frames through fn onto [0, 1].
func ease01(fn ease.TweenFunc, frame, total int) float32 {
	if total <= 0 {
		return 1
	}
	tw := gween.New(0, 1, float32(total), fn)
	v, _ := tw.Update(float32(min(frame, total)))
	return v
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
