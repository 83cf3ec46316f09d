package core

// Color is an index into the 16-entry EGA palette the game draws
// with. Particles and single-pixel draw commands carry one of these.
type Color uint8

// EGA palette indices.
const (
	ColorBlack Color = iota
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorBrown
	ColorLightGray
	ColorDarkGray
	ColorLightBlue
	ColorLightGreen
	ColorLightCyan
	ColorLightRed
	ColorLightMagenta
	ColorYellow
	ColorWhite
)

// PaletteSize is the number of palette entries.
const PaletteSize = 16

// Valid reports whether c is inside the palette.
func (c Color) Valid() bool {
	return c < PaletteSize
}
