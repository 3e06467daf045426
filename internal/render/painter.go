//go:build ebiten

package render

import (
	"image/color"

	"cgol/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads cell states into a cell-resolution image and scales it to
// the screen, one texel per cell.
type Painter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	pixel *ebiten.Image
}

// NewPainter allocates a painter for a w*h cell grid.
func NewPainter(w, h int) *Painter {
	p := &Painter{w: w, h: h, buf: make([]byte, 4*w*h)}
	p.img = ebiten.NewImage(w, h)
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// Blit draws the cells onto dst with the palette, scaled by cellSize pixels
// per cell.
func (p *Painter) Blit(dst *ebiten.Image, cells []core.State, pal Palette, cellSize int) {
	if len(cells) != p.w*p.h {
		return
	}
	fillRGBA(p.buf, cells, pal)
	p.img.ReplacePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(p.img, op)
}

// GridDots marks the interior cell corners, the edit-mode overlay.
func (p *Painter) GridDots(dst *ebiten.Image, pal Palette, cellSize int) {
	col := pal.Cell
	for y := 1; y < p.h; y++ {
		for x := 1; x < p.w; x++ {
			p.drawDot(dst, float64(x*cellSize), float64(y*cellSize), col)
		}
	}
}

func (p *Painter) drawDot(dst *ebiten.Image, x, y float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	dst.DrawImage(p.pixel, op)
}

// Size returns the painter's grid dimensions.
func (p *Painter) Size() (int, int) { return p.w, p.h }
