// Package pattern holds reusable named live-cell patterns and the registry
// they are kept in.
package pattern

import "toruslife/internal/core"

// Dir selects a transform applied by Config.Flip.
type Dir int

const (
	// Horizontal maps (r, c) to (cols-c, r) and swaps the bounding box.
	Horizontal Dir = iota
	// Vertical maps (r, c) to (rows-r, c).
	Vertical
	// Rotate maps (r, c) to (c, r) and swaps the bounding box.
	Rotate
)

func (d Dir) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Rotate:
		return "rotate"
	}
	return "unknown"
}

// Config is a named pattern: offsets relative to an anchor at (0, 0) plus the
// bounding box the offsets were captured in.
type Config struct {
	Name string
	Rows int
	Cols int

	offsets []core.Coord
}

// NewConfig returns an empty pattern with the given bounding box.
func NewConfig(name string, rows, cols int) *Config {
	return &Config{Name: name, Rows: rows, Cols: cols}
}

// Add appends an offset.
func (c *Config) Add(row, col int) {
	c.offsets = append(c.offsets, core.Coord{Row: row, Col: col})
}

// Len returns the number of offsets.
func (c *Config) Len() int { return len(c.offsets) }

// Offsets returns a copy of the stored offsets in insertion order.
func (c *Config) Offsets() []core.Coord {
	return append([]core.Coord(nil), c.offsets...)
}

// Translated returns every offset shifted by the anchor. The result is not
// wrapped; callers index a toroidal grid with it.
func (c *Config) Translated(anchorRow, anchorCol int) []core.Coord {
	out := make([]core.Coord, len(c.offsets))
	for i, o := range c.offsets {
		out[i] = core.Coord{Row: anchorRow + o.Row, Col: anchorCol + o.Col}
	}
	return out
}

// Flip rewrites the offsets in place.
func (c *Config) Flip(dir Dir) {
	switch dir {
	case Horizontal:
		for i, o := range c.offsets {
			c.offsets[i] = core.Coord{Row: c.Cols - o.Col, Col: o.Row}
		}
		c.Rows, c.Cols = c.Cols, c.Rows
	case Vertical:
		for i, o := range c.offsets {
			c.offsets[i] = core.Coord{Row: c.Rows - o.Row, Col: o.Col}
		}
	case Rotate:
		for i, o := range c.offsets {
			c.offsets[i] = core.Coord{Row: o.Col, Col: o.Row}
		}
		c.Rows, c.Cols = c.Cols, c.Rows
	}
}

// Clone returns an independent copy under a new name.
func (c *Config) Clone(name string) *Config {
	return &Config{Name: name, Rows: c.Rows, Cols: c.Cols, offsets: c.Offsets()}
}
