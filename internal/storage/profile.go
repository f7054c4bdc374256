package storage

import "github.com/vovakirdan/tui-2048/internal/t2048"

// Profile binds a Store to one player. Over SSH every user gets their own.
type Profile struct {
	store *Store
	name  string
}

// Profile returns a handle for the named player.
func (s *Store) Profile(name string) *Profile {
	return &Profile{store: s, name: name}
}

// Name returns the profile name.
func (p *Profile) Name() string { return p.name }

// SaveState implements t2048.Persister.
func (p *Profile) SaveState(snap t2048.Snapshot) error {
	return p.store.SaveState(p.name, snap)
}

// LoadState implements t2048.Persister.
func (p *Profile) LoadState() (t2048.Snapshot, error) {
	return p.store.LoadState(p.name)
}

// RecordGame stores a finished game for this profile.
func (p *Profile) RecordGame(sum t2048.Summary, outcome Outcome) error {
	_, err := p.store.RecordGame(GameRecord{
		Profile: p.name,
		Score:   sum.Score,
		MaxRank: sum.MaxRank,
		Moves:   sum.Moves,
		Won:     sum.Won,
		Outcome: outcome,
	})
	return err
}

// BestScore returns the profile's best score.
func (p *Profile) BestScore() (int, error) {
	return p.store.BestScore(p.name)
}

var _ t2048.Persister = (*Profile)(nil)
