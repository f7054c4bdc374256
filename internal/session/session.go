// Package session wires a 2048 round to its collaborators: the save store,
// the finished-game history and the audio player. It owns the observers that
// react to round events.
package session

import (
	"errors"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/audio"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Recorder stores finished games.
type Recorder interface {
	RecordGame(t2048.Summary, storage.Outcome) error
}

// BestScorer knows the best score reached so far.
type BestScorer interface {
	BestScore() (int, error)
}

// Options configures a Session. Nil collaborators are replaced by no-ops.
type Options struct {
	Rules     t2048.Rules
	Timing    t2048.Timing
	Seed      int64
	Persister t2048.Persister
	Recorder  Recorder
	Player    audio.Player
	Logger    *log.Logger
}

// Session is one player's game: a round plus everything that observes it.
type Session struct {
	round     *t2048.Round
	persister t2048.Persister
	recorder  Recorder
	player    audio.Player
	logger    *log.Logger

	resumed      bool
	recorded     bool // current game already in the history
	saveFailures int

	detach []func()
}

// New creates a session. Call Start before use.
func New(opts Options) *Session {
	s := &Session{
		round:     t2048.NewRound(opts.Rules, opts.Timing, rand.New(rand.NewSource(opts.Seed))),
		persister: opts.Persister,
		recorder:  opts.Recorder,
		player:    opts.Player,
		logger:    opts.Logger,
	}
	if s.player == nil {
		s.player = audio.Nop{}
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}

	s.detach = append(s.detach,
		s.round.Attach(s.savingObserver),
		s.round.Attach(s.historyObserver),
		s.round.Attach(s.audioObserver),
	)
	return s
}

// Round returns the underlying round.
func (s *Session) Round() *t2048.Round { return s.round }

// Resumed reports whether Start continued a saved game.
func (s *Session) Resumed() bool { return s.resumed }

// SaveFailures counts saves that failed since the session started.
func (s *Session) SaveFailures() int { return s.saveFailures }

// Start resumes the saved game, or starts a new one when there is no save,
// the save is damaged, or the saved board has no legal move.
func (s *Session) Start() {
	best := s.bestScore()

	if s.tryResume() {
		s.round.Grid().SetBest(best)
		s.resumed = true
		sum := s.round.Summary()
		s.logger.Info("game resumed", "score", sum.Score, "moves", sum.Moves, "best", sum.Best)
		return
	}

	s.round.Grid().SetBest(best)
	s.startNew()
}

func (s *Session) tryResume() bool {
	if s.persister == nil {
		return false
	}

	snap, err := s.persister.LoadState()
	switch {
	case errors.Is(err, t2048.ErrNoSave):
		s.logger.Info("no saved game")
		return false
	case errors.Is(err, t2048.ErrCorruptSave):
		s.logger.Warn("saved game is corrupt, starting over", "error", err)
		return false
	case err != nil:
		s.logger.Warn("cannot load saved game", "error", err)
		return false
	}

	if err := s.round.Restore(snap); err != nil {
		s.logger.Warn("saved game rejected", "error", err)
		return false
	}
	if !s.round.Grid().HasAnyLegalMove() {
		// The restored best score survives the reset.
		s.logger.Info("saved game is over, starting over")
		return false
	}
	return true
}

func (s *Session) bestScore() int {
	bs, ok := s.recorder.(BestScorer)
	if !ok {
		return 0
	}
	best, err := bs.BestScore()
	if err != nil {
		s.logger.Warn("cannot read best score", "error", err)
		return 0
	}
	return best
}

// NewGame abandons the current game (recording it if it was played) and
// starts a fresh one.
func (s *Session) NewGame() {
	s.finishAnimation()
	sum := s.round.Summary()
	if !s.recorded && sum.Moves > 0 {
		s.record(sum, storage.OutcomeAbandoned)
	}
	s.startNew()
}

func (s *Session) startNew() {
	s.resumed = false
	s.round.Reset()
	s.logger.Debug("new game", "best", s.round.Grid().Best())
}

// Move feeds a direction to the round.
func (s *Session) Move(d t2048.Direction) bool {
	return s.round.Input(d)
}

// Step advances the round by one frame.
func (s *Session) Step() {
	s.round.Step()
	if t, ok := s.player.(interface{ Tick() }); ok {
		t.Tick()
	}
}

// Continue resumes play after the win screen.
func (s *Session) Continue() bool {
	return s.round.Continue()
}

// CanContinue reports whether there is a game worth continuing.
func (s *Session) CanContinue() bool {
	r := s.round
	return r.Status() != t2048.StatusGameOver && r.Grid().Occupied() > 0 && r.Grid().HasAnyLegalMove()
}

// Cue plays a UI sound.
func (s *Session) Cue(c audio.Cue) {
	s.player.Play(c)
}

// Save persists the round. A running animation is finished first, which
// saves through the settle event; otherwise the round is saved directly.
func (s *Session) Save() error {
	if s.round.Busy() {
		s.finishAnimation()
		return nil
	}
	return s.save()
}

func (s *Session) save() error {
	if s.persister == nil {
		return nil
	}
	if err := s.persister.SaveState(s.round.Snapshot()); err != nil {
		s.saveFailures++
		s.logger.Warn("save failed, will retry after the next move", "error", err, "failures", s.saveFailures)
		return err
	}
	s.logger.Debug("game saved", "score", s.round.Grid().Score(), "moves", s.round.Grid().Moves())
	return nil
}

// Close saves and detaches all observers.
func (s *Session) Close() {
	//nolint:errcheck // logged by save
	s.Save()
	for _, d := range s.detach {
		d()
	}
	s.detach = nil
}

func (s *Session) finishAnimation() {
	for guard := 0; s.round.Busy() && guard < 1000; guard++ {
		s.round.Step()
	}
}

func (s *Session) record(sum t2048.Summary, outcome storage.Outcome) {
	s.recorded = true
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordGame(sum, outcome); err != nil {
		s.logger.Warn("cannot record game", "outcome", outcome, "error", err)
		return
	}
	s.logger.Info("game recorded", "outcome", outcome, "score", sum.Score, "max_tile", sum.MaxTile())
}

func (s *Session) savingObserver(ev t2048.Event) {
	if ev.Kind == t2048.EventSettled {
		//nolint:errcheck // logged by save
		s.save()
	}
}

func (s *Session) historyObserver(ev t2048.Event) {
	switch ev.Kind {
	case t2048.EventNewGame:
		s.recorded = false
	case t2048.EventGameOver:
		s.record(ev.Summary, storage.OutcomeGameOver)
	case t2048.EventWon:
		s.logger.Info("2048 reached", "score", ev.Summary.Score, "moves", ev.Summary.Moves)
	}
}

func (s *Session) audioObserver(ev t2048.Event) {
	switch ev.Kind {
	case t2048.EventMoved:
		if ev.Merges > 0 {
			s.player.Play(audio.CueMerge)
		} else {
			s.player.Play(audio.CueMove)
		}
	case t2048.EventTileAdded:
		s.player.Play(audio.CueAppear)
	case t2048.EventWon, t2048.EventGameOver:
		s.player.Play(audio.CueUI)
	}
}
