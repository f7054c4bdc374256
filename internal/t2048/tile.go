// Package t2048 implements the 2048 grid engine and the round state machine
// that sequences a move through its slide, spawn and settle phases.
// It has no terminal dependencies; the platform drives it one frame at a time.
package t2048

import "fmt"

const (
	// Size is the board dimension.
	Size = 4
	// GridSize is the number of slots on the board.
	GridSize = Size * Size

	// MaxRank is the highest rank a tile can reach on a 4x4 board (131072).
	MaxRank = 17
	// DefaultWinRank is the rank of the 2048 tile.
	DefaultWinRank = 11

	// NoSource marks a tile that received no merge this move.
	NoSource = -1
)

// Cell is a grid coordinate, both axes in [0, Size).
type Cell struct {
	X, Y int
}

// CellAt returns the coordinate of slot i (row-major).
func CellAt(i int) Cell {
	return Cell{X: i % Size, Y: i / Size}
}

// Index returns the slot index of the cell.
func (c Cell) Index() int {
	return c.Y*Size + c.X
}

// Valid reports whether the cell lies on the board.
func (c Cell) Valid() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Tile is the content of one grid slot.
//
// Value is the rank (0 empty, displayed number 2^rank). OldValue is what the
// renderer shows until the running move animation ends. OldPosition is the
// slot's own coordinate; Position is where the slot's old content is sliding
// to during the slide phase and equals OldPosition otherwise.
type Tile struct {
	Value       int
	OldValue    int
	Position    Cell
	OldPosition Cell
	MergeSource int // slot index merged into this tile, or NoSource
}

// Empty reports whether the slot holds no tile.
func (t Tile) Empty() bool {
	return t.Value == 0
}

// Number converts a rank into the number shown on the tile.
func Number(rank int) int {
	if rank <= 0 {
		return 0
	}
	return 1 << rank
}

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every move direction.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Vector returns the unit step for the direction.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}
