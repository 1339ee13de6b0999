package core

// ActiveSet tracks the coordinates that may change state in the next
// generation: every alive cell and its Moore neighbourhood. Membership is kept
// in a bitmap over the owning grid's arena, so insertion is idempotent and the
// flattened order is deterministic.
type ActiveSet struct {
	grid   *Grid
	member []bool
	coords []Coord
}

// NewActiveSet returns an empty set bound to the grid's dimensions.
func NewActiveSet(g *Grid) *ActiveSet {
	return &ActiveSet{grid: g, member: make([]bool, g.Len())}
}

// Mark inserts (row, col) and its eight toroidal neighbours if absent.
func (a *ActiveSet) Mark(row, col int) {
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			r, c := a.grid.Wrap(row+di, col+dj)
			idx := a.grid.Index(r, c)
			if a.member[idx] {
				continue
			}
			a.member[idx] = true
			a.coords = append(a.coords, Coord{Row: r, Col: c})
		}
	}
}

// Contains reports whether the (wrapped) coordinate is a member.
func (a *ActiveSet) Contains(row, col int) bool {
	r, c := a.grid.Wrap(row, col)
	return a.member[a.grid.Index(r, c)]
}

// Len returns the number of members.
func (a *ActiveSet) Len() int { return len(a.coords) }

// Coords returns the members in insertion order. The slice is owned by the set
// and is only valid until the next Mark or Reset.
func (a *ActiveSet) Coords() []Coord { return a.coords }

// Reset empties the set.
func (a *ActiveSet) Reset() {
	for _, c := range a.coords {
		a.member[a.grid.Index(c.Row, c.Col)] = false
	}
	a.coords = a.coords[:0]
}

// Seed marks every alive cell of the grid.
func (a *ActiveSet) Seed() {
	for i := range a.grid.cells {
		cell := &a.grid.cells[i]
		if cell.alive {
			a.Mark(cell.Row, cell.Col)
		}
	}
}
