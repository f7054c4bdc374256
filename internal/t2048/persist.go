package t2048

import "errors"

var (
	// ErrNoSave is returned by LoadState when nothing has been saved yet.
	ErrNoSave = errors.New("t2048: no saved game")
	// ErrCorruptSave reports a save that cannot be decoded.
	ErrCorruptSave = errors.New("t2048: corrupt save")
)

// Persister stores the round between runs.
type Persister interface {
	SaveState(Snapshot) error
	LoadState() (Snapshot, error)
}
