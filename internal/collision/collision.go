// Package collision implements the two collision primitives the simulation
// is built on: actor boxes against solid tile edges, and sprite boxes
// against each other.
package collision

import (
	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/world"
)

// Direction is a movement direction.
type Direction uint8

const (
	DirNone Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return DirNone
}

// Delta returns the unit step of d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// TileView is the read side of the tile world.
type TileView interface {
	Attrs(x, y int) world.Attr
}

// Box is an actor's bounding box in tiles, bottom-anchored.
type Box struct {
	Left   int
	Bottom int
	Width  int
	Height int
}

// Top returns the topmost row.
func (b Box) Top() int {
	return b.Bottom - b.Height + 1
}

// Right returns the rightmost column.
func (b Box) Right() int {
	return b.Left + b.Width - 1
}

// BoxOf returns the box of a kind's frame placed at (x, y).
func BoxOf(k kinds.Kind, frame, x, y int) Box {
	f := kinds.Frame(k, frame)
	return Box{Left: x + f.XOffset, Bottom: y + f.YOffset, Width: f.Width, Height: f.Height}
}

// World reports whether the box of kind/frame at (x, y) touches a tile edge
// that is solid for movement in dir. Down tests the bottom row for solid
// tops, Up the top row for solid bottoms, Left the left column for solid
// right edges and Right the right column for solid left edges.
// Negative y is above the map and never collides.
func World(tiles TileView, dir Direction, k kinds.Kind, frame, x, y int) bool {
	if y < 0 {
		return false
	}
	return BoxHitsWorld(tiles, dir, BoxOf(k, frame, x, y))
}

// BoxHitsWorld is World for an explicit box.
func BoxHitsWorld(tiles TileView, dir Direction, b Box) bool {
	if b.Bottom < 0 {
		return false
	}
	switch dir {
	case Down:
		return rowHas(tiles, b.Left, b.Right(), b.Bottom, world.SolidTop)
	case Up:
		return rowHas(tiles, b.Left, b.Right(), b.Top(), world.SolidBottom)
	case Left:
		return colHas(tiles, b.Left, b.Top(), b.Bottom, world.SolidRight)
	case Right:
		return colHas(tiles, b.Right(), b.Top(), b.Bottom, world.SolidLeft)
	}
	return false
}

func rowHas(tiles TileView, x0, x1, y int, f world.Attr) bool {
	for x := x0; x <= x1; x++ {
		if tiles.Attrs(x, y).Has(f) {
			return true
		}
	}
	return false
}

func colHas(tiles TileView, x, y0, y1 int, f world.Attr) bool {
	for y := y0; y <= y1; y++ {
		if tiles.Attrs(x, y).Has(f) {
			return true
		}
	}
	return false
}
