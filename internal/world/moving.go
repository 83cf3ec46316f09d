package world

import "github.com/vovakirdan/dn2sim/internal/core"

// MovingPartType says how a MovingMapPart animates.
type MovingPartType uint8

const (
	PartDoorOpening MovingPartType = iota + 1
	PartDoorClosing
	PartFalling
	PartCrumbling
)

// MovingMapPart is a rectangle of tiles currently animated as moving
// geometry (doors, collapsing floors). The tiles inside are drawn as tile
// debris while the part moves.
type MovingMapPart struct {
	Area core.Rect      `msgpack:"area"`
	Type MovingPartType `msgpack:"type"`
	Step int            `msgpack:"step"`

	// Tile is the index drawn as debris while a door part animates.
	Tile uint16 `msgpack:"tile"`
}

// Active reports whether the slot holds a part.
func (p MovingMapPart) Active() bool {
	return p.Type != 0
}
