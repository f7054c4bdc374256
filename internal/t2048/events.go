package t2048

// EventKind identifies what happened in a round.
type EventKind int

const (
	EventNewGame   EventKind = iota // board reset with two fresh tiles
	EventMoved                      // a slide changed the board
	EventTileAdded                  // a tile spawned after the slide animation
	EventSettled                    // the move is complete and the state is stable
	EventWon                        // the win rank was reached for the first time
	EventGameOver                   // no legal move remains
)

func (k EventKind) String() string {
	switch k {
	case EventNewGame:
		return "new_game"
	case EventMoved:
		return "moved"
	case EventTileAdded:
		return "tile_added"
	case EventSettled:
		return "settled"
	case EventWon:
		return "won"
	case EventGameOver:
		return "game_over"
	}
	return "unknown"
}

// Event is delivered to observers attached to a Round.
type Event struct {
	Kind    EventKind
	Dir     Direction // EventMoved
	Merges  int       // EventMoved: number of pairs merged
	Cell    Cell      // EventTileAdded: where the tile spawned
	Summary Summary
}

// Observer receives round events synchronously on the simulation goroutine.
type Observer func(Event)

// Summary is the scoreboard view of a round.
type Summary struct {
	Score   int
	Best    int
	Moves   int
	MaxRank int
	Won     bool
}

// MaxTile returns the displayed value of the highest tile.
func (s Summary) MaxTile() int {
	return Number(s.MaxRank)
}

type observerEntry struct {
	id int
	fn Observer
}

// bus is a small synchronous publish list.
type bus struct {
	entries []observerEntry
	nextID  int
}

func (b *bus) attach(fn Observer) func() {
	b.nextID++
	id := b.nextID
	b.entries = append(b.entries, observerEntry{id: id, fn: fn})
	return func() { b.detach(id) }
}

func (b *bus) detach(id int) {
	for i, e := range b.entries {
		if e.id == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}

func (b *bus) notify(ev Event) {
	// Observers may detach themselves while being notified.
	entries := append([]observerEntry(nil), b.entries...)
	for _, e := range entries {
		e.fn(ev)
	}
}
