package t2048

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

// SavedCell is one persisted grid slot.
type SavedCell struct {
	Rank int
	Pos  Cell
}

// Snapshot captures everything needed to resume a round.
type Snapshot struct {
	Score   int
	Best    int
	Moves   int
	MaxRank int
	Won     bool
	Cells   [GridSize]SavedCell
}

// Ranks returns the rank of every slot in row-major order.
func (s Snapshot) Ranks() [GridSize]int {
	var r [GridSize]int
	for i, c := range s.Cells {
		r[i] = c.Rank
	}
	return r
}

// Summary returns the scoreboard fields of the snapshot.
func (s Snapshot) Summary() Summary {
	return Summary{Score: s.Score, Best: s.Best, Moves: s.Moves, MaxRank: s.MaxRank, Won: s.Won}
}

// Snapshot layout, big endian:
//
//	magic   [4]byte "T2K1"
//	version uint8
//	won     uint8
//	score   uint32
//	best    uint32
//	moves   uint32
//	maxRank uint8
//	cells   [16]{rank, x, y uint8}
//	crc     uint32 (IEEE, over everything before it)
const (
	snapshotVersion = 1
	snapshotHeader  = 4 + 1 + 1 + 4*3 + 1
	snapshotSize    = snapshotHeader + GridSize*3 + 4
)

var snapshotMagic = [4]byte{'T', '2', 'K', '1'}

// MarshalBinary encodes the snapshot in its fixed layout.
func (s Snapshot) MarshalBinary() ([]byte, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	buf := make([]byte, 0, snapshotSize)
	buf = append(buf, snapshotMagic[:]...)
	buf = append(buf, snapshotVersion)
	if s.Won {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = binary.BigEndian.AppendUint32(buf, uint32(s.Score))
	buf = binary.BigEndian.AppendUint32(buf, uint32(s.Best))
	buf = binary.BigEndian.AppendUint32(buf, uint32(s.Moves))
	buf = append(buf, uint8(s.MaxRank))
	for _, c := range s.Cells {
		buf = append(buf, uint8(c.Rank), uint8(c.Pos.X), uint8(c.Pos.Y))
	}
	buf = binary.BigEndian.AppendUint32(buf, crc32.ChecksumIEEE(buf))
	return buf, nil
}

// UnmarshalBinary decodes a snapshot. Any damage yields ErrCorruptSave.
func (s *Snapshot) UnmarshalBinary(data []byte) error {
	if len(data) != snapshotSize {
		return fmt.Errorf("%w: size %d, want %d", ErrCorruptSave, len(data), snapshotSize)
	}
	if [4]byte(data[:4]) != snapshotMagic {
		return fmt.Errorf("%w: bad magic", ErrCorruptSave)
	}
	if data[4] != snapshotVersion {
		return fmt.Errorf("%w: unknown version %d", ErrCorruptSave, data[4])
	}
	body, sum := data[:snapshotSize-4], binary.BigEndian.Uint32(data[snapshotSize-4:])
	if crc32.ChecksumIEEE(body) != sum {
		return fmt.Errorf("%w: checksum mismatch", ErrCorruptSave)
	}

	var out Snapshot
	switch data[5] {
	case 0:
	case 1:
		out.Won = true
	default:
		return fmt.Errorf("%w: bad win flag %d", ErrCorruptSave, data[5])
	}
	out.Score = int(binary.BigEndian.Uint32(data[6:]))
	out.Best = int(binary.BigEndian.Uint32(data[10:]))
	out.Moves = int(binary.BigEndian.Uint32(data[14:]))
	out.MaxRank = int(data[18])

	p := snapshotHeader
	for i := range out.Cells {
		out.Cells[i] = SavedCell{
			Rank: int(data[p]),
			Pos:  Cell{X: int(data[p+1]), Y: int(data[p+2])},
		}
		p += 3
	}

	if err := out.validate(); err != nil {
		return err
	}
	*s = out
	return nil
}

func (s Snapshot) validate() error {
	if s.Score < 0 || s.Best < 0 || s.Moves < 0 {
		return fmt.Errorf("%w: negative counter", ErrCorruptSave)
	}
	if s.MaxRank < 0 || s.MaxRank > MaxRank {
		return fmt.Errorf("%w: max rank %d out of range", ErrCorruptSave, s.MaxRank)
	}
	for i, c := range s.Cells {
		if c.Rank < 0 || c.Rank > MaxRank {
			return fmt.Errorf("%w: slot %d rank %d out of range", ErrCorruptSave, i, c.Rank)
		}
		if c.Pos != CellAt(i) {
			return fmt.Errorf("%w: slot %d at %s", ErrCorruptSave, i, c.Pos)
		}
	}
	return nil
}

// Snapshot captures the round. Take it while idle; mid-animation the grid
// holds positions that are still travelling.
func (r *Round) Snapshot() Snapshot {
	g := r.grid
	s := Snapshot{
		Score:   g.score,
		Best:    g.best,
		Moves:   g.moves,
		MaxRank: g.maxRank,
		Won:     g.won,
	}
	for i, t := range g.tiles {
		s.Cells[i] = SavedCell{Rank: t.Value, Pos: t.OldPosition}
	}
	return s
}

// Restore replaces the round with a saved one. The round is left idle and
// playing; the caller decides what to do with a board that has no move.
func (r *Round) Restore(s Snapshot) error {
	if err := s.validate(); err != nil {
		return err
	}

	g := r.grid
	g.Clear()
	g.Load(s.Ranks())
	g.score = s.Score
	g.best = max(s.Best, s.Score)
	g.moves = s.Moves
	g.maxRank = max(g.maxRank, s.MaxRank)
	g.won = s.Won

	r.phase = PhaseIdle
	r.status = StatusPlaying
	r.frames = 0
	r.counting = false
	return nil
}
