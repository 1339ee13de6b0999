package life

import (
	"testing"

	"toruslife/internal/core"
)

type recordingDisplay struct {
	attached int
	detached int
	layouts  int
}

func (d *recordingDisplay) Attach(core.Coord) { d.attached++ }
func (d *recordingDisplay) Detach(core.Coord) { d.detached++ }
func (d *recordingDisplay) RequestLayout()    { d.layouts++ }

func TestNewAttachesEveryCell(t *testing.T) {
	d := &recordingDisplay{}
	quietSession(4, 5, WithDisplay(d))
	if d.attached != 20 {
		t.Fatalf("expected 20 attached cells, got %d", d.attached)
	}
}

func TestGrowClearsAndAttachesNewCells(t *testing.T) {
	d := &recordingDisplay{}
	s := quietSession(4, 4, WithDisplay(d))
	seed(s, [2]int{1, 1}, [2]int{3, 3})
	*d = recordingDisplay{}

	s.SetDimension(6, 5)
	if s.Grid().Rows() != 6 || s.Grid().Cols() != 5 {
		t.Fatalf("unexpected size %v", s.Size())
	}
	if d.attached != 30-16 || d.detached != 0 || d.layouts != 1 {
		t.Fatalf("unexpected display calls %+v", *d)
	}
	if s.Grid().Population() != 0 {
		t.Fatal("growing clears carried cells")
	}
}

func TestShrinkKeepsSurvivors(t *testing.T) {
	d := &recordingDisplay{}
	s := quietSession(6, 6, WithDisplay(d))
	seed(s, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2}, [2]int{5, 5})
	*d = recordingDisplay{}

	s.SetDimension(4, 4)
	if d.detached != 36-16 || d.attached != 0 || d.layouts != 1 {
		t.Fatalf("unexpected display calls %+v", *d)
	}
	expectAlive(t, s, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2})

	// The block is a still life; it must survive because it is still active.
	for i := 0; i < 3; i++ {
		s.Iterate()
	}
	expectAlive(t, s, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2})
	if !s.Grid().Active.Contains(1, 1) {
		t.Fatal("survivors should be active after a shrink")
	}
}

func TestMixedResizeRebuildsBoard(t *testing.T) {
	d := &recordingDisplay{}
	s := quietSession(4, 6, WithDisplay(d))
	seed(s, [2]int{0, 0})
	*d = recordingDisplay{}

	s.SetDimension(6, 3)
	if d.detached != 24 || d.attached != 18 || d.layouts != 1 {
		t.Fatalf("unexpected display calls %+v", *d)
	}
	if s.Grid().Population() != 0 || s.Grid().Active.Len() != 0 {
		t.Fatal("mixed resize starts from an empty board")
	}
}

func TestResizeNoopAndClamp(t *testing.T) {
	d := &recordingDisplay{}
	s := quietSession(4, 4, WithDisplay(d))
	seed(s, [2]int{2, 2})
	*d = recordingDisplay{}

	s.SetDimension(4, 4)
	if *d != (recordingDisplay{}) {
		t.Fatal("same size should not touch the display")
	}
	expectAlive(t, s, [2]int{2, 2})

	s.SetDimension(0, -3)
	if s.Grid().Rows() != 1 || s.Grid().Cols() != 1 {
		t.Fatalf("dimensions should clamp to 1, got %v", s.Size())
	}
}

func TestResizeDropsSelectionAndPreview(t *testing.T) {
	s := quietSession(6, 6)
	seed(s, [2]int{1, 1})
	s.Press(0, 0, false)
	s.Release(2, 2)
	s.SetDimension(8, 8)
	if s.HasSelection() || s.Selecting() {
		t.Fatal("resize should drop the selection")
	}
}
