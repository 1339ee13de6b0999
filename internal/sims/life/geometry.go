package life

import "toruslife/internal/core"

// frame is the pixel rectangle the board is drawn into.
type frame struct {
	x, y, w, h float64
}

// Rect is a pixel rectangle.
type Rect struct {
	X, Y, W, H float64
}

const geomEpsilon = 1e-6

// Contains reports whether o lies fully inside r, allowing for rounding.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X-geomEpsilon && o.Y >= r.Y-geomEpsilon &&
		o.X+o.W <= r.X+r.W+geomEpsilon && o.Y+o.H <= r.Y+r.H+geomEpsilon
}

// Resize sets the pixel size available to the board.
func (s *Session) Resize(w, h float64) {
	s.frame.w, s.frame.h = w, h
}

// Relocate sets the pixel position of the board's frame.
func (s *Session) Relocate(x, y float64) {
	s.frame.x, s.frame.y = x, y
}

// CellSize returns the side of a square cell so the whole board fits the
// frame, or 0 before the frame is sized.
func (s *Session) CellSize() float64 {
	if s.frame.w <= 0 || s.frame.h <= 0 {
		return 0
	}
	return min(s.frame.w/float64(s.grid.Cols()), s.frame.h/float64(s.grid.Rows()))
}

// origin centres the board along the axis with slack.
func (s *Session) origin() (float64, float64) {
	size := s.CellSize()
	bw := size * float64(s.grid.Cols())
	bh := size * float64(s.grid.Rows())
	return s.frame.x + (s.frame.w-bw)/2, s.frame.y + (s.frame.h-bh)/2
}

// CellBounds returns the pixel rectangle of the (wrapped) cell.
func (s *Session) CellBounds(row, col int) Rect {
	r, c := s.grid.Wrap(row, col)
	size := s.CellSize()
	ox, oy := s.origin()
	return Rect{X: ox + float64(c)*size, Y: oy + float64(r)*size, W: size, H: size}
}

// CellAt maps a pixel position to a cell. ok is false outside the board.
func (s *Session) CellAt(px, py float64) (row, col int, ok bool) {
	size := s.CellSize()
	if size <= 0 {
		return 0, 0, false
	}
	ox, oy := s.origin()
	if px < ox || py < oy {
		return 0, 0, false
	}
	col = int((px - ox) / size)
	row = int((py - oy) / size)
	if !s.grid.InBounds(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

// selectionRect spans the cells at both selection corners.
func (s *Session) selectionRect() Rect {
	a := s.CellBounds(s.sel.origin.Row, s.sel.origin.Col)
	b := s.CellBounds(s.sel.corner.Row, s.sel.corner.Col)
	x, y := min(a.X, b.X), min(a.Y, b.Y)
	return Rect{X: x, Y: y, W: max(a.X, b.X) - x + a.W, H: max(a.Y, b.Y) - y + a.H}
}

// insideSelection tests the cell against the selection rectangle in pixel
// space once the frame is known, and in grid space before that.
func (s *Session) insideSelection(at core.Coord) bool {
	if s.CellSize() > 0 {
		return s.selectionRect().Contains(s.CellBounds(at.Row, at.Col))
	}
	lo, hi := s.sel.bounds()
	return at.Row >= lo.Row && at.Row <= hi.Row && at.Col >= lo.Col && at.Col <= hi.Col
}

// SelectionRect returns the pixel rectangle of the selection while one is
// being dragged or waiting to be used.
func (s *Session) SelectionRect() (Rect, bool) {
	if s.sel.state == selectionIdle || s.CellSize() <= 0 {
		return Rect{}, false
	}
	return s.selectionRect(), true
}
