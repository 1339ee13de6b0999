package life

import (
	"toruslife/internal/core"
	"toruslife/internal/pattern"
)

type gesture int

const (
	gestureNone gesture = iota
	gesturePaint
	gestureSelect
)

type selectionState int

const (
	selectionIdle selectionState = iota
	selectionActive
	selectionCommitted
)

// selection is the rectangular buffer behind delete, copy and cut.
type selection struct {
	state    selectionState
	origin   core.Coord
	corner   core.Coord
	captured []core.Coord
	members  map[int]struct{}
}

// bounds returns the inclusive rectangle normalized per axis.
func (sel *selection) bounds() (lo, hi core.Coord) {
	lo = core.Coord{Row: min(sel.origin.Row, sel.corner.Row), Col: min(sel.origin.Col, sel.corner.Col)}
	hi = core.Coord{Row: max(sel.origin.Row, sel.corner.Row), Col: max(sel.origin.Col, sel.corner.Col)}
	return lo, hi
}

func (s *Session) wrapped(row, col int) core.Coord {
	r, c := s.grid.Wrap(row, col)
	return core.Coord{Row: r, Col: c}
}

// Press starts a gesture at (row, col). In insertion mode the current pattern
// is stamped there. Otherwise modifier selects a paint gesture, which toggles
// cells directly, and no modifier starts a new rectangular selection.
func (s *Session) Press(row, col int, modifier bool) {
	at := s.wrapped(row, col)
	switch {
	case s.inserting && s.current != nil:
		s.gesture = gestureNone
		s.CommitConfig(at.Row, at.Col)
	case modifier:
		s.gesture = gesturePaint
		s.grid.SnapshotAll()
		s.paint(at)
	default:
		s.gesture = gestureSelect
		s.resetSelection()
		s.sel.state = selectionActive
		s.sel.origin, s.sel.corner = at, at
	}
}

// Drag continues the current gesture over (row, col).
func (s *Session) Drag(row, col int) {
	at := s.wrapped(row, col)
	switch s.gesture {
	case gesturePaint:
		s.paint(at)
	case gestureSelect:
		s.sel.corner = at
	}
}

// Release ends the current gesture at (row, col). The gesture kind was fixed
// at Press, so the modifier state at release does not matter.
func (s *Session) Release(row, col int) {
	switch s.gesture {
	case gesturePaint:
		s.grid.SnapshotAll()
	case gestureSelect:
		s.sel.corner = s.wrapped(row, col)
		s.captureSelection()
	}
	s.gesture = gestureNone
}

// paint sets the cell to the opposite of its pre-gesture state, so a drag
// toggles each cell at most once however often it re-enters it.
func (s *Session) paint(at core.Coord) {
	cell := s.grid.Get(at.Row, at.Col)
	s.grid.SetAlive(at.Row, at.Col, !cell.PreviousAlive())
}

func (s *Session) captureSelection() {
	lo, hi := s.sel.bounds()
	s.sel.captured = s.sel.captured[:0]
	s.sel.members = map[int]struct{}{}
	for r := lo.Row; r <= hi.Row; r++ {
		for c := lo.Col; c <= hi.Col; c++ {
			if s.grid.Alive(r, c) {
				s.sel.captured = append(s.sel.captured, core.Coord{Row: r, Col: c})
				s.sel.members[s.grid.Index(r, c)] = struct{}{}
			}
		}
	}
	s.sel.state = selectionCommitted
}

func (s *Session) resetSelection() {
	s.sel = selection{}
}

// Selecting reports whether a selection drag is in progress.
func (s *Session) Selecting() bool { return s.sel.state == selectionActive }

// HasSelection reports whether a released selection is waiting for delete,
// copy or cut.
func (s *Session) HasSelection() bool { return s.sel.state == selectionCommitted }

// Selected returns the captured cells of a committed selection.
func (s *Session) Selected() []core.Coord {
	if s.sel.state != selectionCommitted {
		return nil
	}
	return append([]core.Coord(nil), s.sel.captured...)
}

// SelectionBounds returns the normalized selection rectangle while one is
// being dragged or waiting to be used.
func (s *Session) SelectionBounds() (lo, hi core.Coord, ok bool) {
	if s.sel.state == selectionIdle {
		return core.Coord{}, core.Coord{}, false
	}
	lo, hi = s.sel.bounds()
	return lo, hi, true
}

// Highlighted reports whether the cell is marked by the selection: while
// dragging, alive cells lying fully inside the rectangle; once released, the
// captured cells.
func (s *Session) Highlighted(row, col int) bool {
	switch s.sel.state {
	case selectionActive:
		if !s.grid.Alive(row, col) {
			return false
		}
		return s.insideSelection(s.wrapped(row, col))
	case selectionCommitted:
		r, c := s.grid.Wrap(row, col)
		_, ok := s.sel.members[s.grid.Index(r, c)]
		return ok
	}
	return false
}

// Delete kills every captured cell and drops the selection.
func (s *Session) Delete() bool {
	if s.sel.state != selectionCommitted {
		return false
	}
	s.deleteSelection()
	s.resetSelection()
	return true
}

// Copy registers the captured cells as the "current" pattern, relative to the
// rectangle's top-left corner, and switches to insertion mode.
func (s *Session) Copy() bool {
	if s.sel.state != selectionCommitted {
		return false
	}
	s.copySelection()
	s.resetSelection()
	return true
}

// Cut is Copy followed by Delete.
func (s *Session) Cut() bool {
	if s.sel.state != selectionCommitted {
		return false
	}
	s.copySelection()
	s.deleteSelection()
	s.resetSelection()
	return true
}

func (s *Session) deleteSelection() {
	for _, c := range s.sel.captured {
		s.grid.SetAlive(c.Row, c.Col, false)
	}
}

func (s *Session) copySelection() {
	lo, _ := s.sel.bounds()
	rows := abs(s.sel.origin.Row - s.sel.corner.Row)
	cols := abs(s.sel.origin.Col - s.sel.corner.Col)
	cfg := pattern.NewConfig(pattern.CurrentName, rows, cols)
	for _, c := range s.sel.captured {
		cfg.Add(c.Row-lo.Row, c.Col-lo.Col)
	}
	s.library.Register(cfg)
	s.current = cfg
	s.SetInsertingConfig(true)
}

// SetCurrentConfig selects the pattern used by insertion mode. It reports
// false, leaving no current pattern, when the name is not registered.
func (s *Session) SetCurrentConfig(name string) bool {
	cfg, ok := s.library.Lookup(name)
	if !ok {
		s.current = nil
		s.clearPreview()
		return false
	}
	s.current = cfg
	s.logger.Printf("current config: %s", name)
	return true
}

// PatternNames lists registered patterns whose name matches query, prefix
// matches first, at most limit of them.
func (s *Session) PatternNames(query string, limit int) []string {
	return s.library.Filter(query, limit)
}

// CurrentConfig returns the pattern used by insertion mode, or nil.
func (s *Session) CurrentConfig() *pattern.Config { return s.current }

// SetInsertingConfig turns insertion mode on or off.
func (s *Session) SetInsertingConfig(on bool) {
	s.inserting = on
	if !on {
		s.clearPreview()
	}
}

// InsertingConfig reports whether insertion mode is on.
func (s *Session) InsertingConfig() bool { return s.inserting }

// PreviewConfig anchors the current pattern at (row, col) for preview drawing
// and returns the wrapped cells it covers.
func (s *Session) PreviewConfig(row, col int) []core.Coord {
	s.clearPreview()
	if s.current == nil {
		return nil
	}
	s.hover, s.hovering = s.wrapped(row, col), true
	covered := s.current.Translated(s.hover.Row, s.hover.Col)
	for i, c := range covered {
		covered[i] = s.wrapped(c.Row, c.Col)
		s.preview[s.grid.Index(covered[i].Row, covered[i].Col)] = struct{}{}
	}
	return covered
}

// Previewed reports whether the cell is covered by the current preview.
func (s *Session) Previewed(row, col int) bool {
	r, c := s.grid.Wrap(row, col)
	return s.isPreviewed(s.grid.Index(r, c))
}

func (s *Session) isPreviewed(idx int) bool {
	_, ok := s.preview[idx]
	return ok
}

func (s *Session) clearPreview() {
	clear(s.preview)
	s.hovering = false
}

// CommitConfig toggles every cell the current pattern covers when anchored at
// (row, col). Cells past an edge wrap around.
func (s *Session) CommitConfig(row, col int) {
	if s.current == nil {
		return
	}
	for _, c := range s.current.Translated(row, col) {
		s.grid.Toggle(c.Row, c.Col)
	}
}

// Flip transforms the current pattern and refreshes the preview.
func (s *Session) Flip(dir pattern.Dir) {
	if s.current == nil {
		return
	}
	s.current.Flip(dir)
	if s.hovering {
		s.PreviewConfig(s.hover.Row, s.hover.Col)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
