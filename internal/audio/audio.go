// Package audio plays fire-and-forget sound cues. In a terminal the only
// sound available is the bell, so the Bell player rings it for the cues
// worth hearing and rate-limits it by frame.
package audio

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Cue identifies a sound.
type Cue int

const (
	CueMove Cue = iota
	CueMerge
	CueAppear
	CueUI
)

func (c Cue) String() string {
	switch c {
	case CueMove:
		return "move"
	case CueMerge:
		return "merge"
	case CueAppear:
		return "appear"
	case CueUI:
		return "ui"
	}
	return "unknown"
}

// ParseCue converts a cue name.
func ParseCue(s string) (Cue, error) {
	switch strings.ToLower(s) {
	case "move":
		return CueMove, nil
	case "merge":
		return CueMerge, nil
	case "appear":
		return CueAppear, nil
	case "ui":
		return CueUI, nil
	}
	return 0, fmt.Errorf("audio: unknown cue %q", s)
}

// Player plays cues without blocking the caller.
type Player interface {
	Play(Cue)
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Play(Cue) {}

// Bell rings the terminal bell for merges and UI actions.
// Moves and appears are too frequent to be pleasant and stay silent.
type Bell struct {
	mu          sync.Mutex
	w           io.Writer
	logger      *log.Logger
	minInterval int
	frame       int
	lastRing    int
	rang        bool
	disabled    bool
}

// NewBell creates a bell writing BEL to w, ringing at most once every
// minInterval frames.
func NewBell(w io.Writer, minInterval int, logger *log.Logger) *Bell {
	return &Bell{
		w:           w,
		logger:      logger,
		minInterval: max(minInterval, 0),
	}
}

// Tick advances the bell's frame clock.
func (b *Bell) Tick() {
	b.mu.Lock()
	b.frame++
	b.mu.Unlock()
}

// Play rings the bell if the cue is audible and the rate limit allows it.
func (b *Bell) Play(c Cue) {
	if c != CueMerge && c != CueUI {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.disabled {
		return
	}
	if b.rang && b.frame-b.lastRing < b.minInterval {
		return
	}

	if _, err := io.WriteString(b.w, "\a"); err != nil {
		// A broken writer will not recover; stop trying.
		b.disabled = true
		if b.logger != nil {
			b.logger.Warn("audio disabled", "cue", c, "error", err)
		}
		return
	}
	b.rang = true
	b.lastRing = b.frame
}

// Disabled reports whether the bell gave up after a write failure.
func (b *Bell) Disabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.disabled
}

var (
	_ Player = Nop{}
	_ Player = (*Bell)(nil)
)
