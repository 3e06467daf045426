package render

import "image/color"

// Palette is the pair of colors a theme renders with.
type Palette struct {
	Background color.RGBA
	Cell       color.RGBA
}

// The 2bit-demichrome pair. Light is the inversion of Dark.
var (
	inkDark  = color.RGBA{R: 0x22, G: 0x22, B: 0x23, A: 0xFF}
	inkLight = color.RGBA{R: 0xF0, G: 0xF6, B: 0xF0, A: 0xFF}

	// Dark draws light cells on a dark background.
	Dark = Palette{Background: inkDark, Cell: inkLight}
	// Light draws dark cells on a light background.
	Light = Palette{Background: inkLight, Cell: inkDark}
)
