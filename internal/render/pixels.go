package render

import "cgol/internal/core"

// fillRGBA converts cell states into RGBA pixels in buf, one pixel per cell.
func fillRGBA(buf []byte, cells []core.State, p Palette) {
	for i, c := range cells {
		base := i * 4
		col := p.Background
		if c == core.Alive {
			col = p.Cell
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
