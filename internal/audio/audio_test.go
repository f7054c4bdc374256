package audio

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

type failingWriter struct{ calls int }

func (w *failingWriter) Write([]byte) (int, error) {
	w.calls++
	return 0, errors.New("closed")
}

func TestBellRingsOnlyAudibleCues(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf, 0, nil)

	b.Play(CueMove)
	b.Play(CueAppear)
	if buf.Len() != 0 {
		t.Errorf("move/appear should be silent, wrote %q", buf.String())
	}

	b.Play(CueMerge)
	b.Play(CueUI)
	if buf.String() != "\a\a" {
		t.Errorf("merge and ui should ring, wrote %q", buf.String())
	}
}

func TestBellRateLimit(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf, 3, nil)

	b.Play(CueMerge)
	b.Tick()
	b.Play(CueMerge) // 1 frame later: suppressed
	b.Tick()
	b.Tick()
	b.Play(CueMerge) // 3 frames later: rings

	if got := buf.Len(); got != 2 {
		t.Errorf("rings = %d, want 2", got)
	}
}

func TestBellDisablesOnWriteError(t *testing.T) {
	w := &failingWriter{}
	b := NewBell(w, 0, log.New(io.Discard))

	b.Play(CueMerge)
	b.Play(CueMerge)

	if !b.Disabled() {
		t.Error("bell should disable itself after a failed write")
	}
	if w.calls != 1 {
		t.Errorf("writes = %d, want 1", w.calls)
	}
}

func TestParseCue(t *testing.T) {
	for _, c := range []Cue{CueMove, CueMerge, CueAppear, CueUI} {
		got, err := ParseCue(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCue(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseCue("boom"); err == nil {
		t.Error("unknown cue should fail")
	}
}
