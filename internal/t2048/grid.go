package t2048

import "math/rand"

// Rules holds the tunable parameters of the grid engine.
type Rules struct {
	SpawnFourChance float64 // probability that a spawned tile is a 4
	WinRank         int     // rank that wins the game (11 = 2048)
}

// DefaultRules returns the classic 2048 rules.
func DefaultRules() Rules {
	return Rules{
		SpawnFourChance: 0.1,
		WinRank:         DefaultWinRank,
	}
}

// Grid is the 4x4 tile arena plus the counters that belong with it.
type Grid struct {
	tiles [GridSize]Tile

	score   int
	best    int
	moves   int
	maxRank int
	won     bool

	lastMerges int

	rules Rules
	rng   *rand.Rand
}

// NewGrid creates an empty grid. rng drives tile spawning.
func NewGrid(rules Rules, rng *rand.Rand) *Grid {
	if rules.WinRank <= 0 {
		rules.WinRank = DefaultWinRank
	}
	g := &Grid{rules: rules, rng: rng}
	g.Clear()
	return g
}

// Clear empties the board and zeroes the per-game counters.
// The best score survives.
func (g *Grid) Clear() {
	for i := range g.tiles {
		home := CellAt(i)
		g.tiles[i] = Tile{Position: home, OldPosition: home, MergeSource: NoSource}
	}
	g.score = 0
	g.moves = 0
	g.maxRank = 0
	g.won = false
	g.lastMerges = 0
}

// Tiles returns a copy of all slots in row-major order.
func (g *Grid) Tiles() [GridSize]Tile {
	return g.tiles
}

// At returns the tile in slot c.
func (g *Grid) At(c Cell) Tile {
	if !c.Valid() {
		return Tile{MergeSource: NoSource}
	}
	return g.tiles[c.Index()]
}

// Ranks returns the rank of every slot in row-major order.
func (g *Grid) Ranks() [GridSize]int {
	var r [GridSize]int
	for i, t := range g.tiles {
		r[i] = t.Value
	}
	return r
}

func (g *Grid) Score() int      { return g.score }
func (g *Grid) Best() int       { return g.best }
func (g *Grid) Moves() int      { return g.moves }
func (g *Grid) MaxRank() int    { return g.maxRank }
func (g *Grid) Won() bool       { return g.won }
func (g *Grid) Rules() Rules    { return g.rules }
func (g *Grid) LastMerges() int { return g.lastMerges }

// SetBest raises the best score if it is below b.
func (g *Grid) SetBest(b int) {
	if b > g.best {
		g.best = b
	}
}

// Occupied counts non-empty slots.
func (g *Grid) Occupied() int {
	n := 0
	for _, t := range g.tiles {
		if !t.Empty() {
			n++
		}
	}
	return n
}

// IsGridFull reports whether no slot is empty.
func (g *Grid) IsGridFull() bool {
	for _, t := range g.tiles {
		if t.Empty() {
			return false
		}
	}
	return true
}

// HasAnyLegalMove reports whether some direction would change the grid:
// either a slot is empty or two orthogonal neighbours share a rank.
func (g *Grid) HasAnyLegalMove() bool {
	if !g.IsGridFull() {
		return true
	}
	for y := range Size {
		for x := range Size {
			v := g.tiles[y*Size+x].Value
			if x < Size-1 && g.tiles[y*Size+x+1].Value == v {
				return true
			}
			if y < Size-1 && g.tiles[(y+1)*Size+x].Value == v {
				return true
			}
		}
	}
	return false
}

// Slide moves every tile as far as it goes in direction d, merging equal
// pairs. It reports whether anything moved. A slide that changes nothing
// leaves the grid untouched.
func (g *Grid) Slide(d Direction) bool {
	dx, dy := d.Vector()
	if dx == 0 && dy == 0 {
		return false
	}
	return g.slide(dx, dy)
}

func (g *Grid) slide(dx, dy int) bool {
	// Work on a copy so a blocked move does not touch animation fields.
	next := *g
	tiles := &next.tiles

	for i := range tiles {
		t := &tiles[i]
		t.Position = t.OldPosition
		t.MergeSource = NoSource
		t.OldValue = t.Value
	}

	changed := false
	merges := 0
	for _, src := range traversal(dx, dy) {
		if tiles[src].Empty() {
			continue
		}

		cur := CellAt(src)
		farthest, hit, found := findFarthest(tiles, cur, dx, dy)

		if found {
			dst := hit.Index()
			if tiles[dst].Value == tiles[src].Value && tiles[dst].MergeSource == NoSource {
				tiles[dst].Value++
				tiles[dst].MergeSource = src
				tiles[src].Value = 0
				tiles[src].Position = tiles[dst].OldPosition

				rank := tiles[dst].Value
				next.score += Number(rank)
				next.best = max(next.best, next.score)
				next.maxRank = max(next.maxRank, rank)

				merges++
				changed = true
				continue
			}
		}

		if farthest != cur {
			dst := farthest.Index()
			tiles[dst].Value = tiles[src].Value
			tiles[src].Value = 0
			tiles[src].Position = tiles[dst].OldPosition
			changed = true
		}
	}

	if !changed {
		return false
	}
	next.lastMerges = merges
	*g = next
	return true
}

// findFarthest walks from c along (dx, dy). It returns the last empty cell
// reached (or c itself) and the first occupied cell hit, if any.
func findFarthest(tiles *[GridSize]Tile, c Cell, dx, dy int) (farthest, hit Cell, found bool) {
	farthest = c
	for {
		n := Cell{X: farthest.X + dx, Y: farthest.Y + dy}
		if !n.Valid() {
			return farthest, Cell{}, false
		}
		if !tiles[n.Index()].Empty() {
			return farthest, n, true
		}
		farthest = n
	}
}

// traversal lists slot indices starting at the edge tiles travel towards.
func traversal(dx, dy int) []int {
	xs := [Size]int{0, 1, 2, 3}
	ys := [Size]int{0, 1, 2, 3}
	if dx == 1 {
		xs = [Size]int{3, 2, 1, 0}
	}
	if dy == 1 {
		ys = [Size]int{3, 2, 1, 0}
	}

	order := make([]int, 0, GridSize)
	for _, y := range ys {
		for _, x := range xs {
			order = append(order, y*Size+x)
		}
	}
	return order
}

// SpawnRandomTile places a 2 (or, with SpawnFourChance, a 4) in a random
// empty slot. The new tile is its own merge source so it pops in.
// It returns false when the grid is full.
func (g *Grid) SpawnRandomTile() (Cell, bool) {
	empty := make([]int, 0, GridSize)
	for i, t := range g.tiles {
		if t.Empty() {
			empty = append(empty, i)
		}
	}
	if len(empty) == 0 {
		return Cell{}, false
	}

	i := empty[g.rng.Intn(len(empty))]
	rank := 1
	if g.rng.Float64() < g.rules.SpawnFourChance {
		rank = 2
	}

	t := &g.tiles[i]
	t.Value = rank
	t.OldValue = rank
	t.MergeSource = i
	g.maxRank = max(g.maxRank, rank)

	return CellAt(i), true
}

// CheckWin trips the win flag the first time the win rank is reached.
// It returns true only on that first call.
func (g *Grid) CheckWin() bool {
	if g.won || g.maxRank < g.rules.WinRank {
		return false
	}
	g.won = true
	return true
}

// finishSlide ends the slide animation: every slot shows its new rank and
// snaps back to its own coordinate.
func (g *Grid) finishSlide() {
	for i := range g.tiles {
		t := &g.tiles[i]
		t.OldValue = t.Value
		t.Position = t.OldPosition
	}
}

// finishSettle drops the merge markers once the pop animation is over.
func (g *Grid) finishSettle() {
	for i := range g.tiles {
		g.tiles[i].MergeSource = NoSource
	}
}

// Place puts a tile of the given rank directly in slot c, without animation.
// Rank 0 empties the slot.
func (g *Grid) Place(c Cell, rank int) {
	if !c.Valid() {
		return
	}
	home := c
	g.tiles[c.Index()] = Tile{
		Value:       rank,
		OldValue:    rank,
		Position:    home,
		OldPosition: home,
		MergeSource: NoSource,
	}
	g.maxRank = max(g.maxRank, rank)
}

// Load replaces the board with ranks in row-major order.
func (g *Grid) Load(ranks [GridSize]int) {
	for i, r := range ranks {
		g.Place(CellAt(i), r)
	}
}
