package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/audio"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

type memStore struct {
	snap    *t2048.Snapshot
	loadErr error
	saveErr error
	saves   int

	games []storage.Outcome
	sums  []t2048.Summary
	best  int
}

func (m *memStore) SaveState(s t2048.Snapshot) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.snap = &s
	return nil
}

func (m *memStore) LoadState() (t2048.Snapshot, error) {
	if m.loadErr != nil {
		return t2048.Snapshot{}, m.loadErr
	}
	if m.snap == nil {
		return t2048.Snapshot{}, t2048.ErrNoSave
	}
	return *m.snap, nil
}

func (m *memStore) RecordGame(sum t2048.Summary, outcome storage.Outcome) error {
	m.games = append(m.games, outcome)
	m.sums = append(m.sums, sum)
	return nil
}

func (m *memStore) BestScore() (int, error) { return m.best, nil }

type cueLog []audio.Cue

func (c *cueLog) Play(cue audio.Cue) { *c = append(*c, cue) }

func snapshotFrom(rows ...[t2048.Size]int) t2048.Snapshot {
	var s t2048.Snapshot
	for y, row := range rows {
		for x, rank := range row {
			i := y*t2048.Size + x
			s.Cells[i].Rank = rank
			s.MaxRank = max(s.MaxRank, rank)
		}
	}
	for i := range s.Cells {
		s.Cells[i].Pos = t2048.CellAt(i)
	}
	return s
}

func newTestSession(store *memStore, player audio.Player) *Session {
	return New(Options{
		Rules:     t2048.Rules{SpawnFourChance: 0},
		Timing:    t2048.Timing{SlideFrames: 1, AppearFrames: 1},
		Seed:      7,
		Persister: store,
		Recorder:  store,
		Player:    player,
	})
}

func settle(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; s.Round().Busy(); i++ {
		if i > 100 {
			t.Fatal("round never settled")
		}
		s.Step()
	}
}

func moveAny(t *testing.T, s *Session) {
	t.Helper()
	for _, d := range t2048.Directions {
		if s.Move(d) {
			settle(t, s)
			return
		}
	}
	t.Fatal("no legal move")
}

func TestStartWithoutSaveBeginsNewGame(t *testing.T) {
	store := &memStore{best: 512}
	s := newTestSession(store, nil)

	s.Start()
	settle(t, s)

	if s.Resumed() {
		t.Error("nothing to resume")
	}
	if got := s.Round().Grid().Occupied(); got != 2 {
		t.Errorf("occupied = %d, want 2", got)
	}
	if got := s.Round().Grid().Best(); got != 512 {
		t.Errorf("best = %d, want 512 from history", got)
	}
	if store.saves != 1 || store.snap == nil {
		t.Fatalf("new game should be saved once, saves = %d", store.saves)
	}
	if store.snap.Best != 512 {
		t.Errorf("saved best = %d, want 512", store.snap.Best)
	}
}

func TestStartResumesSave(t *testing.T) {
	snap := snapshotFrom([t2048.Size]int{1, 1, 0, 0}, [t2048.Size]int{0, 3, 0, 0})
	snap.Score, snap.Best, snap.Moves = 40, 40, 12
	store := &memStore{snap: &snap, best: 100}
	s := newTestSession(store, nil)

	s.Start()

	if !s.Resumed() {
		t.Fatal("save should be resumed")
	}
	if s.Round().Busy() {
		t.Error("resumed round should be idle")
	}
	sum := s.Round().Summary()
	if sum.Score != 40 || sum.Moves != 12 || sum.Best != 100 {
		t.Errorf("summary = %+v", sum)
	}
	if store.saves != 0 {
		t.Errorf("resume should not save, saves = %d", store.saves)
	}
}

func TestStartFallsBackToNewGame(t *testing.T) {
	full := snapshotFrom(
		[t2048.Size]int{1, 2, 3, 4},
		[t2048.Size]int{5, 6, 7, 8},
		[t2048.Size]int{1, 2, 3, 4},
		[t2048.Size]int{5, 6, 7, 8},
	)
	full.Score, full.Best = 900, 900

	bad := snapshotFrom([t2048.Size]int{1, 0, 0, 0})
	bad.Cells[3].Rank = 40

	tests := []struct {
		name     string
		store    *memStore
		wantBest int
	}{
		{"corrupt", &memStore{loadErr: fmt.Errorf("%w: checksum", t2048.ErrCorruptSave)}, 0},
		{"unreadable", &memStore{loadErr: errors.New("disk gone")}, 0},
		{"invalid", &memStore{snap: &bad}, 0},
		{"finished", &memStore{snap: &full}, 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(tt.store, nil)
			s.Start()
			settle(t, s)

			if s.Resumed() {
				t.Error("should not resume")
			}
			if got := s.Round().Grid().Occupied(); got != 2 {
				t.Errorf("occupied = %d, want 2", got)
			}
			if got := s.Round().Grid().Best(); got != tt.wantBest {
				t.Errorf("best = %d, want %d", got, tt.wantBest)
			}
		})
	}
}

func TestSaveFailureIsRetried(t *testing.T) {
	store := &memStore{saveErr: errors.New("read-only")}
	s := newTestSession(store, nil)

	s.Start()
	settle(t, s)

	if s.SaveFailures() != 1 {
		t.Fatalf("failures = %d, want 1", s.SaveFailures())
	}
	if s.Round().Status() != t2048.StatusPlaying {
		t.Error("a failed save must not stop the game")
	}

	store.saveErr = nil
	moveAny(t, s)

	if store.saves != 1 {
		t.Fatalf("saves = %d, want 1 after retry", store.saves)
	}
	if store.snap.Moves != 1 {
		t.Errorf("saved moves = %d, want 1", store.snap.Moves)
	}
}

func TestNewGameRecordsAbandonedGame(t *testing.T) {
	store := &memStore{}
	s := newTestSession(store, nil)
	s.Start()
	settle(t, s)

	// Nothing played yet: no history entry.
	s.NewGame()
	settle(t, s)
	if len(store.games) != 0 {
		t.Fatalf("untouched game recorded: %v", store.games)
	}

	moveAny(t, s)
	s.NewGame()
	settle(t, s)

	if len(store.games) != 1 || store.games[0] != storage.OutcomeAbandoned {
		t.Fatalf("games = %v, want one abandoned", store.games)
	}
	if store.sums[0].Moves != 1 {
		t.Errorf("recorded moves = %d, want 1", store.sums[0].Moves)
	}
	if got := s.Round().Grid().Moves(); got != 0 {
		t.Errorf("moves = %d after new game", got)
	}
}

func TestGameOverRecordedOnce(t *testing.T) {
	snap := snapshotFrom(
		[t2048.Size]int{1, 1, 3, 4},
		[t2048.Size]int{5, 6, 7, 8},
		[t2048.Size]int{1, 2, 3, 4},
		[t2048.Size]int{5, 6, 7, 8},
	)
	store := &memStore{snap: &snap}
	var cues cueLog
	s := newTestSession(store, &cues)
	s.Start()

	if !s.Move(t2048.DirLeft) {
		t.Fatal("left should merge the top pair")
	}
	settle(t, s)

	if s.Round().Status() != t2048.StatusGameOver {
		t.Fatalf("status = %s, want game over", s.Round().Status())
	}
	if len(store.games) != 1 || store.games[0] != storage.OutcomeGameOver {
		t.Fatalf("games = %v, want one game_over", store.games)
	}
	if s.CanContinue() {
		t.Error("a finished game cannot be continued")
	}

	// Starting over after a recorded game must not add an abandoned entry.
	s.NewGame()
	settle(t, s)
	if len(store.games) != 1 {
		t.Errorf("games = %v, want still one", store.games)
	}

	want := []audio.Cue{audio.CueMerge, audio.CueAppear, audio.CueUI}
	if len(cues) < len(want) {
		t.Fatalf("cues = %v, want prefix %v", cues, want)
	}
	for i := range want {
		if cues[i] != want[i] {
			t.Errorf("cue %d = %s, want %s", i, cues[i], want[i])
		}
	}
}

func TestCloseFinishesAnimationAndSaves(t *testing.T) {
	store := &memStore{}
	s := newTestSession(store, nil)
	s.Start()
	settle(t, s)
	saves := store.saves

	for _, d := range t2048.Directions {
		if s.Move(d) {
			break
		}
	}
	if !s.Round().Busy() {
		t.Fatal("move should start an animation")
	}

	s.Close()

	if s.Round().Busy() {
		t.Error("close should finish the animation")
	}
	if store.saves != saves+1 {
		t.Errorf("saves = %d, want %d", store.saves, saves+1)
	}
	if store.snap.Moves != 1 {
		t.Errorf("saved moves = %d, want 1", store.snap.Moves)
	}
}

func TestSessionWithoutCollaborators(t *testing.T) {
	s := New(Options{Rules: t2048.DefaultRules(), Timing: t2048.DefaultTiming()})
	s.Start()
	settle(t, s)
	moveAny(t, s)
	if err := s.Save(); err != nil {
		t.Errorf("Save() without a store = %v", err)
	}
	s.Close()
}
