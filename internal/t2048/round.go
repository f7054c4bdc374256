package t2048

import "math/rand"

// Phase is the animation phase of a round.
type Phase int

const (
	PhaseIdle     Phase = iota // waiting for input
	PhaseSliding               // tiles are travelling to their new slots
	PhaseSettling              // new tile and merged tiles pop in
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSliding:
		return "sliding"
	case PhaseSettling:
		return "settling"
	}
	return "unknown"
}

// Status is the outcome state of a round.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusGameOver:
		return "game_over"
	}
	return "unknown"
}

// Timing sets how many frames each animation phase lasts.
type Timing struct {
	SlideFrames  int
	AppearFrames int
}

// DefaultTiming returns the stock animation lengths (at 60 fps).
func DefaultTiming() Timing {
	return Timing{SlideFrames: 5, AppearFrames: 5}
}

// Round sequences moves on a Grid through the slide and settle phases.
// It is driven by Step, once per frame.
type Round struct {
	grid   *Grid
	timing Timing

	phase  Phase
	status Status
	frames int
	// counting is false while the opening tiles of a new game settle.
	counting bool
	lastDir  Direction

	events bus
}

// NewRound creates a round with an empty grid. Call Reset or Restore before
// playing.
func NewRound(rules Rules, timing Timing, rng *rand.Rand) *Round {
	return &Round{
		grid:   NewGrid(rules, rng),
		timing: Timing{SlideFrames: max(timing.SlideFrames, 0), AppearFrames: max(timing.AppearFrames, 0)},
	}
}

func (r *Round) Grid() *Grid        { return r.grid }
func (r *Round) Phase() Phase       { return r.phase }
func (r *Round) Status() Status     { return r.status }
func (r *Round) Timing() Timing     { return r.timing }
func (r *Round) Frames() int        { return r.frames }
func (r *Round) LastDir() Direction { return r.lastDir }

// Busy reports whether an animation is running.
func (r *Round) Busy() bool {
	return r.phase != PhaseIdle
}

// Attach subscribes an observer. The returned func detaches it.
func (r *Round) Attach(o Observer) func() {
	return r.events.attach(o)
}

// Summary returns the current counters.
func (r *Round) Summary() Summary {
	g := r.grid
	return Summary{
		Score:   g.Score(),
		Best:    g.Best(),
		Moves:   g.Moves(),
		MaxRank: g.MaxRank(),
		Won:     g.Won(),
	}
}

// Reset starts a new game: the board is cleared, two tiles spawn and the
// round settles without counting a move. The best score is kept.
func (r *Round) Reset() {
	r.grid.Clear()
	r.grid.SpawnRandomTile()
	r.grid.SpawnRandomTile()

	r.status = StatusPlaying
	r.phase = PhaseSettling
	r.frames = 0
	r.counting = false

	r.events.notify(Event{Kind: EventNewGame, Summary: r.Summary()})
}

// Input applies a move. It is accepted only while idle and playing, and
// only when the slide changes the board; otherwise it is ignored.
func (r *Round) Input(d Direction) bool {
	if r.phase != PhaseIdle || r.status != StatusPlaying {
		return false
	}
	if !r.grid.Slide(d) {
		return false
	}

	r.lastDir = d
	r.phase = PhaseSliding
	r.frames = 0
	r.counting = true

	r.events.notify(Event{
		Kind:    EventMoved,
		Dir:     d,
		Merges:  r.grid.LastMerges(),
		Summary: r.Summary(),
	})
	return true
}

// Step advances the running animation by one frame.
func (r *Round) Step() {
	switch r.phase {
	case PhaseSliding:
		r.frames++
		if r.frames <= r.timing.SlideFrames {
			return
		}
		r.frames = 0
		r.grid.finishSlide()

		cell, ok := r.grid.SpawnRandomTile()
		r.phase = PhaseSettling
		if ok {
			r.events.notify(Event{Kind: EventTileAdded, Cell: cell, Summary: r.Summary()})
		}

	case PhaseSettling:
		r.frames++
		if r.frames <= r.timing.AppearFrames {
			return
		}
		r.settle()
	}
}

func (r *Round) settle() {
	r.frames = 0
	r.phase = PhaseIdle
	r.grid.finishSettle()
	if r.counting {
		r.grid.moves++
	}
	r.counting = false

	terminal := EventSettled
	switch {
	case r.grid.IsGridFull() && !r.grid.HasAnyLegalMove():
		r.status = StatusGameOver
		terminal = EventGameOver
	case r.grid.CheckWin():
		r.status = StatusWon
		terminal = EventWon
	}

	sum := r.Summary()
	r.events.notify(Event{Kind: EventSettled, Summary: sum})
	if terminal != EventSettled {
		r.events.notify(Event{Kind: terminal, Summary: sum})
	}
}

// Continue resumes play after the win screen. The win is not reported again.
func (r *Round) Continue() bool {
	if r.status != StatusWon {
		return false
	}
	r.status = StatusPlaying
	return true
}

// Progress returns how far the current phase has run, in [0, 1].
func (r *Round) Progress() float32 {
	var total int
	switch r.phase {
	case PhaseSliding:
		total = r.timing.SlideFrames
	case PhaseSettling:
		total = r.timing.AppearFrames
	default:
		return 0
	}
	if total <= 0 {
		return 1
	}
	return min(float32(r.frames)/float32(total), 1)
}
