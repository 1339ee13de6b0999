package pattern

import (
	"slices"
	"sort"
	"testing"

	"toruslife/internal/core"
)

func sortedOffsets(c *Config) []core.Coord {
	out := c.Offsets()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func glider() *Config {
	c := NewConfig("glider", 2, 2)
	c.Add(0, 1)
	c.Add(1, 2)
	c.Add(2, 0)
	c.Add(2, 1)
	c.Add(2, 2)
	return c
}

func TestTranslatedAddsAnchor(t *testing.T) {
	c := glider()
	got := c.Translated(10, -1)
	want := []core.Coord{{Row: 10, Col: 0}, {Row: 11, Col: 1}, {Row: 12, Col: -1}, {Row: 12, Col: 0}, {Row: 12, Col: 1}}
	if !slices.Equal(got, want) {
		t.Fatalf("Translated = %v, expected %v", got, want)
	}
}

func TestFlipFormulas(t *testing.T) {
	c := NewConfig("l", 2, 1)
	c.Add(0, 0)
	c.Add(2, 1)

	c.Flip(Horizontal)
	if got := c.Offsets(); !slices.Equal(got, []core.Coord{{Row: 1, Col: 0}, {Row: 0, Col: 2}}) {
		t.Fatalf("horizontal offsets = %v", got)
	}
	if c.Rows != 1 || c.Cols != 2 {
		t.Fatalf("horizontal should swap the box, got %dx%d", c.Rows, c.Cols)
	}

	c.Flip(Vertical)
	if got := c.Offsets(); !slices.Equal(got, []core.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 2}}) {
		t.Fatalf("vertical offsets = %v", got)
	}
	if c.Rows != 1 || c.Cols != 2 {
		t.Fatalf("vertical must keep the box, got %dx%d", c.Rows, c.Cols)
	}

	c.Flip(Rotate)
	if got := c.Offsets(); !slices.Equal(got, []core.Coord{{Row: 0, Col: 0}, {Row: 2, Col: 1}}) {
		t.Fatalf("rotate offsets = %v", got)
	}
	if c.Rows != 2 || c.Cols != 1 {
		t.Fatalf("rotate should swap the box, got %dx%d", c.Rows, c.Cols)
	}
}

func TestRotateFourTimesRestores(t *testing.T) {
	c := glider()
	want := c.Offsets()
	for i := 0; i < 4; i++ {
		c.Flip(Rotate)
	}
	if !slices.Equal(c.Offsets(), want) || c.Rows != 2 || c.Cols != 2 {
		t.Fatalf("rotate x4 changed the pattern: %v %dx%d", c.Offsets(), c.Rows, c.Cols)
	}
}

func TestHorizontalInvolutionOnSymmetricBox(t *testing.T) {
	block := NewConfig("block", 1, 1)
	block.Add(0, 0)
	block.Add(0, 1)
	block.Add(1, 0)
	block.Add(1, 1)
	want := sortedOffsets(block)
	block.Flip(Horizontal)
	block.Flip(Horizontal)
	if !slices.Equal(sortedOffsets(block), want) || block.Rows != 1 || block.Cols != 1 {
		t.Fatalf("horizontal x2 changed the block: %v", sortedOffsets(block))
	}

	c := glider()
	want = sortedOffsets(c)
	for i := 0; i < 4; i++ {
		c.Flip(Horizontal)
	}
	if !slices.Equal(sortedOffsets(c), want) || c.Rows != 2 || c.Cols != 2 {
		t.Fatalf("horizontal x4 changed the glider: %v", sortedOffsets(c))
	}
}

func TestHorizontalTwiceIsHalfTurn(t *testing.T) {
	c := NewConfig("bar", 0, 2)
	c.Add(0, 0)
	c.Add(0, 1)
	c.Flip(Horizontal)
	c.Flip(Horizontal)
	if got := c.Offsets(); !slices.Equal(got, []core.Coord{{Row: 0, Col: 2}, {Row: 0, Col: 1}}) {
		t.Fatalf("horizontal x2 = %v", got)
	}
}
