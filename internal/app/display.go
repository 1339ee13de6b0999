package app

import "toruslife/internal/core"

// Display tracks the cells the board has attached and whether the board asked
// for a new layout since the last frame.
type Display struct {
	cells   int
	layouts int
	dirty   bool
}

// NewDisplay returns an empty Display.
func NewDisplay() *Display { return &Display{} }

// Attach records a cell joining the board.
func (d *Display) Attach(core.Coord) { d.cells++ }

// Detach records a cell leaving the board.
func (d *Display) Detach(core.Coord) { d.cells-- }

// RequestLayout marks the layout stale.
func (d *Display) RequestLayout() {
	d.layouts++
	d.dirty = true
}

// Cells returns the number of attached cells.
func (d *Display) Cells() int { return d.cells }

// Layouts returns how many layouts were requested in total.
func (d *Display) Layouts() int { return d.layouts }

// TakeLayout reports and clears a pending layout request.
func (d *Display) TakeLayout() bool {
	dirty := d.dirty
	d.dirty = false
	return dirty
}
