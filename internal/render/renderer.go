//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter keeps one pixel per cell in an image and scales it onto the
// screen.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewGridPainter allocates a painter for a board of w columns and h rows.
func NewGridPainter(w, h int, palette []color.RGBA) *GridPainter {
	gp := &GridPainter{palette: palette}
	gp.ensure(w, h)
	return gp
}

func (gp *GridPainter) ensure(w, h int) {
	if gp.img != nil && gp.w == w && gp.h == h {
		return
	}
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.w, gp.h = w, h
	gp.img = ebiten.NewImage(w, h)
	gp.buf = make([]byte, 4*w*h)
}

// Blit uploads the cells of a w by h board and draws them with the top-left
// corner at (x, y), each cell scale pixels wide.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, w, h int, x, y, scale float64) {
	if len(cells) != w*h || w <= 0 || h <= 0 {
		return
	}
	gp.ensure(w, h)
	fillPaletteRGBA(gp.buf, cells, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// Outline strokes a rectangle, used for the selection frame.
func Outline(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, clr, false)
}
