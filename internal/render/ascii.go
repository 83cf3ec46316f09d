package render

import (
	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/world"
)

// TileSource is what the rasteriser reads from the tile world.
type TileSource interface {
	Tile(x, y int) uint16
	Attrs(x, y int) world.Attr
}

// TileGlyph picks the character and colour for a tile from its attributes.
func TileGlyph(tile uint16, a world.Attr) (rune, core.Color) {
	switch {
	case tile == 0:
		return ' ', core.ColorBlack
	case a.Has(world.ConveyorLeft):
		return '<', core.ColorLightGray
	case a.Has(world.ConveyorRight):
		return '>', core.ColorLightGray
	case a.Has(world.Ladder) || a.Has(world.Climbable):
		return 'H', core.ColorBrown
	case a.Has(world.Solid):
		if a.Has(world.Flammable) {
			return '#', core.ColorRed
		}
		return '#', core.ColorDarkGray
	case a.Has(world.SolidTop):
		return '=', core.ColorLightGray
	case a.Any(world.Solid):
		return '+', core.ColorDarkGray
	case a.Has(world.Foreground):
		return ':', core.ColorDarkGray
	}
	return '.', core.ColorDarkGray
}

// Rasterize draws the viewport part of tiles and the frame's queues into
// scr, one cell per tile, starting at the screen origin. Cells outside scr
// are clipped.
func Rasterize(scr *core.Screen, f *Frame, tiles TileSource) {
	cam := f.Camera
	for y := 0; y < ViewHeight; y++ {
		for x := 0; x < ViewWidth; x++ {
			tx, ty := cam.X+x, cam.Y+y
			r, c := TileGlyph(tiles.Tile(tx, ty), tiles.Attrs(tx, ty))
			scr.Set(x, y, r, c)
		}
	}

	for _, w := range f.Water {
		for y := w.Area.Y; y < w.Area.Bottom(); y++ {
			for x := w.Area.X; x < w.Area.Right(); x++ {
				r := rune('░')
				if w.Surface && y == w.Area.Y {
					r = '~'
				}
				put(scr, cam, x, y, r, core.ColorBlue)
			}
		}
	}

	for _, d := range f.Debris {
		put(scr, cam, d.X, d.Y, '%', core.ColorBrown)
	}

	// In-front sprites go last.
	for pass := 0; pass < 2; pass++ {
		for _, s := range f.Sprites {
			if (s.Style == StyleInFront) != (pass == 1) {
				continue
			}
			drawSprite(scr, cam, s)
		}
	}

	for _, p := range f.Pixels {
		put(scr, cam, floorDiv(p.X, PixelsPerTile), floorDiv(p.Y, PixelsPerTile), '.', p.Color)
	}
}

func drawSprite(scr *core.Screen, cam core.Point, s Sprite) {
	info := s.Kind.Info()
	fi := kinds.Frame(s.Kind, s.Frame)
	color := info.Color
	switch s.Style {
	case StyleWhiteFlash:
		color = core.ColorWhite
	case StyleTranslucent:
		color = core.ColorDarkGray
	}
	left := s.X + fi.XOffset
	bottom := s.Y + fi.YOffset
	for y := bottom - fi.Height + 1; y <= bottom; y++ {
		for x := left; x < left+fi.Width; x++ {
			put(scr, cam, x, y, info.Glyph, color)
		}
	}
}

func put(scr *core.Screen, cam core.Point, wx, wy int, r rune, c core.Color) {
	x, y := wx-cam.X, wy-cam.Y
	if x < 0 || y < 0 || x >= ViewWidth || y >= ViewHeight {
		return
	}
	scr.Set(x, y, r, c)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
