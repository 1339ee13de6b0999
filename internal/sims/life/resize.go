package life

import "toruslife/internal/core"

// SetDimension changes the board size. Growing keeps the existing cells but
// clears them; shrinking keeps the state of the cells that remain; growing one
// axis while shrinking the other rebuilds an empty board.
func (s *Session) SetDimension(rows, cols int) {
	rows, cols = max(rows, 1), max(cols, 1)
	old := s.grid
	if rows == old.Rows() && cols == old.Cols() {
		return
	}
	switch {
	case rows >= old.Rows() && cols >= old.Cols():
		s.allocate(old.Resized(rows, cols, false, nil, s.display.Attach))
	case rows <= old.Rows() && cols <= old.Cols():
		s.allocate(old.Resized(rows, cols, true, s.display.Detach, nil))
		// The resized grid starts with an empty active set.
		s.grid.Active.Seed()
	default:
		for i := 0; i < old.Len(); i++ {
			c := old.At(i)
			s.display.Detach(core.Coord{Row: c.Row, Col: c.Col})
		}
		s.allocate(core.NewGrid(rows, cols))
		for i := 0; i < s.grid.Len(); i++ {
			c := s.grid.At(i)
			s.display.Attach(core.Coord{Row: c.Row, Col: c.Col})
		}
	}
	s.resetSelection()
	s.gesture = gestureNone
	s.clearPreview()
	s.display.RequestLayout()
}
