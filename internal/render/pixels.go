package render

import (
	"image/color"

	"toruslife/internal/sims/life"
)

// LifePalette maps the life.Cell* display codes to colours.
func LifePalette() []color.RGBA {
	p := make([]color.RGBA, life.CellMoved+1)
	p[life.CellDead] = color.RGBA{R: 12, G: 12, B: 16, A: 255}
	p[life.CellAlive] = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	p[life.CellHighlighted] = color.RGBA{R: 250, G: 190, B: 60, A: 255}
	p[life.CellPreview] = color.RGBA{R: 90, G: 170, B: 255, A: 255}
	p[life.CellMoved] = color.RGBA{R: 120, G: 230, B: 120, A: 255}
	return p
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values past
// the end of the palette use its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
