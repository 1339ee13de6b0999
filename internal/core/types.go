package core

// Size describes the dimensions of a simulation grid. W counts columns and H
// counts rows.
type Size struct {
	W int
	H int
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row int
	Col int
}

// Sim defines the minimal contract a cellular automaton must implement to be
// driven and drawn by the front end.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Display is the capability the simulation needs from whatever draws it. The
// session attaches every cell it creates and detaches every cell it discards,
// and asks for a layout pass after structural changes.
type Display interface {
	Attach(c Coord)
	Detach(c Coord)
	RequestLayout()
}

// NopDisplay ignores every notification. Headless sessions use it.
type NopDisplay struct{}

// Attach is a no-op.
func (NopDisplay) Attach(Coord) {}

// Detach is a no-op.
func (NopDisplay) Detach(Coord) {}

// RequestLayout is a no-op.
func (NopDisplay) RequestLayout() {}
