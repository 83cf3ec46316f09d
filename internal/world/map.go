package world

import (
	"fmt"

	"github.com/vovakirdan/dn2sim/internal/core"
)

// Map is a level's tile-index grid plus its tile attribute table.
// Coordinates are in tiles; reads outside the grid return tile 0, which is
// always empty, and writes outside the grid are ignored.
type Map struct {
	Width  int
	Height int
	tiles  []uint16
	attrs  []Attr
}

// NewMap creates an empty width x height map with the given attribute table.
// attrs is indexed by tile index; tiles beyond its end have no attributes.
func NewMap(width, height int, attrs []Attr) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("world: invalid map size %dx%d", width, height)
	}
	a := make([]Attr, len(attrs))
	copy(a, attrs)
	return &Map{
		Width:  width,
		Height: height,
		tiles:  make([]uint16, width*height),
		attrs:  a,
	}, nil
}

// InBounds reports whether (x, y) is a cell of the grid.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// Tile returns the tile index at (x, y).
func (m *Map) Tile(x, y int) uint16 {
	if !m.InBounds(x, y) {
		return 0
	}
	return m.tiles[y*m.Width+x]
}

// SetTile writes a tile index at (x, y).
func (m *Map) SetTile(index uint16, x, y int) {
	if !m.InBounds(x, y) {
		return
	}
	m.tiles[y*m.Width+x] = index
}

// AttrOf returns the attributes of a tile index.
func (m *Map) AttrOf(index uint16) Attr {
	if index == 0 || int(index) >= len(m.attrs) {
		return 0
	}
	return m.attrs[index]
}

// Attrs returns the attributes of the tile at (x, y).
func (m *Map) Attrs(x, y int) Attr {
	return m.AttrOf(m.Tile(x, y))
}

// AttrTable returns a copy of the attribute table.
func (m *Map) AttrTable() []Attr {
	out := make([]Attr, len(m.attrs))
	copy(out, m.attrs)
	return out
}

// Tiles returns a copy of the tile grid, row-major.
func (m *Map) Tiles() []uint16 {
	out := make([]uint16, len(m.tiles))
	copy(out, m.tiles)
	return out
}

// LoadTiles replaces the grid with a row-major copy of tiles.
func (m *Map) LoadTiles(tiles []uint16) error {
	if len(tiles) != m.Width*m.Height {
		return fmt.Errorf("world: %d tiles for a %dx%d map", len(tiles), m.Width, m.Height)
	}
	copy(m.tiles, tiles)
	return nil
}

// Fill writes index over a rectangle.
func (m *Map) Fill(r core.Rect, index uint16) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			m.SetTile(index, x, y)
		}
	}
}

// ByteSize is the memory the grid occupies as 16-bit tile words, used to
// charge the level arena.
func (m *Map) ByteSize() int {
	return len(m.tiles) * 2
}

// Clone returns a deep copy.
func (m *Map) Clone() *Map {
	c := &Map{Width: m.Width, Height: m.Height}
	c.tiles = m.Tiles()
	c.attrs = m.AttrTable()
	return c
}
