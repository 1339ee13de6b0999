package core

// Cell is a single grid unit. Row and Col are fixed for the lifetime of the
// grid allocation that owns the cell.
type Cell struct {
	Row, Col int

	alive bool
	// previousAlive is the state committed before the current paint gesture.
	previousAlive bool
}

// Alive reports whether the cell is alive.
func (c *Cell) Alive() bool { return c.alive }

// PreviousAlive reports the state snapshotted before the current paint gesture.
func (c *Cell) PreviousAlive() bool { return c.previousAlive }

// Snapshot records the current state as the pre-gesture state.
func (c *Cell) Snapshot() { c.previousAlive = c.alive }

// Grid stores rows*cols cells in a flat row-major arena with toroidal
// addressing. Every cell that becomes alive is marked in Active.
type Grid struct {
	rows, cols int
	cells      []Cell

	Active *ActiveSet
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := &g.cells[r*cols+c]
			cell.Row, cell.Col = r, c
		}
	}
	g.Active = NewActiveSet(g)
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.cols, H: g.rows} }

// Len returns the number of cells, always rows*cols.
func (g *Grid) Len() int { return len(g.cells) }

// Index returns the arena index for in-bounds coordinates.
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// InBounds reports whether (row, col) addresses a cell without wrapping.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Wrap applies toroidal wrapping to the provided coordinates. Offsets of one
// past an edge are corrected by a single add or subtract of the bound; larger
// offsets fall back to modular reduction so every integer maps to a cell.
func (g *Grid) Wrap(row, col int) (int, int) {
	return wrapAxis(row, g.rows), wrapAxis(col, g.cols)
}

func wrapAxis(v, bound int) int {
	switch {
	case v >= 0 && v < bound:
		return v
	case v == bound:
		return 0
	case v == -1:
		return bound - 1
	}
	return (v%bound + bound) % bound
}

// Get returns the cell at (row, col) after wrapping. It never fails.
func (g *Grid) Get(row, col int) *Cell {
	row, col = g.Wrap(row, col)
	return &g.cells[row*g.cols+col]
}

// At returns the cell stored at arena index i.
func (g *Grid) At(i int) *Cell { return &g.cells[i] }

// Alive reports whether the (wrapped) cell is alive.
func (g *Grid) Alive(row, col int) bool { return g.Get(row, col).alive }

// SetAlive updates the (wrapped) cell. A cell becoming alive marks itself and
// its neighbourhood active.
func (g *Grid) SetAlive(row, col int, alive bool) {
	cell := g.Get(row, col)
	cell.alive = alive
	if alive {
		g.Active.Mark(cell.Row, cell.Col)
	}
}

// Toggle flips the (wrapped) cell.
func (g *Grid) Toggle(row, col int) {
	g.SetAlive(row, col, !g.Alive(row, col))
}

// NeighborCount returns the number of alive cells in the Moore neighbourhood
// of (row, col), wrapping each axis independently.
func (g *Grid) NeighborCount(row, col int) int {
	count := 0
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if di == 0 && dj == 0 {
				continue
			}
			r, c := g.Wrap(row+di, col+dj)
			if g.cells[r*g.cols+c].alive {
				count++
			}
		}
	}
	return count
}

// Population counts alive cells.
func (g *Grid) Population() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].alive {
			n++
		}
	}
	return n
}

// AliveCoords lists alive cells in row-major order.
func (g *Grid) AliveCoords() []Coord {
	var out []Coord
	for i := range g.cells {
		if g.cells[i].alive {
			out = append(out, Coord{Row: g.cells[i].Row, Col: g.cells[i].Col})
		}
	}
	return out
}

// Clear kills every cell. The active set is left as is; dead members are
// harmless and get dropped on the next generation.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].alive = false
	}
}

// SnapshotAll records the current state of every cell as its pre-gesture state.
func (g *Grid) SnapshotAll() {
	for i := range g.cells {
		g.cells[i].previousAlive = g.cells[i].alive
	}
}

// Resized returns a grid of the new dimensions. Cells inside both rectangles
// are carried over with keep deciding whether their state survives; the
// callbacks report which old cells were dropped and which new cells were
// created. The returned grid has an empty active set.
func (g *Grid) Resized(rows, cols int, keep bool, dropped, created func(Coord)) *Grid {
	next := NewGrid(rows, cols)
	for i := range next.cells {
		cell := &next.cells[i]
		if cell.Row < g.rows && cell.Col < g.cols {
			old := &g.cells[cell.Row*g.cols+cell.Col]
			if keep {
				cell.alive = old.alive
				cell.previousAlive = old.previousAlive
			}
			continue
		}
		if created != nil {
			created(Coord{Row: cell.Row, Col: cell.Col})
		}
	}
	if dropped != nil {
		for i := range g.cells {
			old := &g.cells[i]
			if old.Row >= next.rows || old.Col >= next.cols {
				dropped(Coord{Row: old.Row, Col: old.Col})
			}
		}
	}
	return next
}
