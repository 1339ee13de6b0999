package core

import "testing"

func TestWrapCorrectsSingleStepOffsets(t *testing.T) {
	g := NewGrid(4, 5)
	cases := []struct{ row, col, wantRow, wantCol int }{
		{-1, -1, 3, 4},
		{4, 5, 0, 0},
		{2, 3, 2, 3},
		{-1, 5, 3, 0},
		{9, -6, 1, 4},
	}
	for _, tc := range cases {
		r, c := g.Wrap(tc.row, tc.col)
		if r != tc.wantRow || c != tc.wantCol {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", tc.row, tc.col, r, c, tc.wantRow, tc.wantCol)
		}
	}
}

func TestGetNeverFails(t *testing.T) {
	g := NewGrid(3, 3)
	for r := -7; r <= 7; r++ {
		for c := -7; c <= 7; c++ {
			cell := g.Get(r, c)
			if !g.InBounds(cell.Row, cell.Col) {
				t.Fatalf("Get(%d,%d) returned out of bounds cell (%d,%d)", r, c, cell.Row, cell.Col)
			}
		}
	}
}

func TestNeighborCountExcludesSelfAndWraps(t *testing.T) {
	g := NewGrid(5, 5)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			g.SetAlive(r, c, true)
		}
	}
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			if n := g.NeighborCount(r, c); n != 8 {
				t.Fatalf("full board cell (%d,%d) has %d neighbours, expected 8", r, c, n)
			}
		}
	}

	g = NewGrid(5, 5)
	g.SetAlive(0, 0, true)
	if n := g.NeighborCount(0, 0); n != 0 {
		t.Fatalf("lone cell counted itself: %d", n)
	}
	for _, pos := range [][2]int{{4, 4}, {4, 0}, {4, 1}, {0, 4}, {0, 1}, {1, 4}, {1, 0}, {1, 1}} {
		if n := g.NeighborCount(pos[0], pos[1]); n != 1 {
			t.Fatalf("cell (%d,%d) should see the corner cell across the edge, got %d", pos[0], pos[1], n)
		}
	}
	if n := g.NeighborCount(2, 2); n != 0 {
		t.Fatalf("distant cell (2,2) should have no neighbours, got %d", n)
	}
}

func TestSetAliveMarksNeighbourhood(t *testing.T) {
	g := NewGrid(6, 6)
	g.SetAlive(0, 5, true)
	if g.Active.Len() != 9 {
		t.Fatalf("expected 9 active coordinates, got %d", g.Active.Len())
	}
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if !g.Active.Contains(0+di, 5+dj) {
				t.Fatalf("neighbour offset (%d,%d) missing from active set", di, dj)
			}
		}
	}

	g.SetAlive(0, 5, true)
	g.SetAlive(0, 0, true)
	if g.Active.Len() != 12 {
		t.Fatalf("expected de-duplicated active set of 12, got %d", g.Active.Len())
	}
	seen := map[Coord]bool{}
	for _, c := range g.Active.Coords() {
		if seen[c] {
			t.Fatalf("duplicate active coordinate %+v", c)
		}
		seen[c] = true
	}
}

func TestActiveSetResetAndSeed(t *testing.T) {
	g := NewGrid(8, 8)
	g.SetAlive(3, 3, true)
	g.SetAlive(6, 1, true)
	g.Active.Reset()
	if g.Active.Len() != 0 || g.Active.Contains(3, 3) {
		t.Fatal("reset should empty the active set")
	}
	g.Active.Seed()
	if g.Active.Len() != 18 {
		t.Fatalf("expected 18 coordinates after seeding two isolated cells, got %d", g.Active.Len())
	}
}

func TestResizedCarriesStateWhenAsked(t *testing.T) {
	g := NewGrid(4, 4)
	g.SetAlive(1, 1, true)
	g.SetAlive(3, 3, true)

	var dropped []Coord
	small := g.Resized(2, 2, true, func(c Coord) { dropped = append(dropped, c) }, nil)
	if !small.Alive(1, 1) {
		t.Fatal("surviving cell lost its state")
	}
	if len(dropped) != 12 {
		t.Fatalf("expected 12 dropped cells, got %d", len(dropped))
	}
	if small.Active.Len() != 0 {
		t.Fatal("resized grid should start with an empty active set")
	}

	var created int
	big := g.Resized(5, 6, false, nil, func(Coord) { created++ })
	if big.Population() != 0 {
		t.Fatal("unkept cells should be dead")
	}
	if created != 30-16 {
		t.Fatalf("expected %d created cells, got %d", 30-16, created)
	}
}
