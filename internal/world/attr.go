// Package world holds the level tile grid and the per-tile attribute table
// the collision code consults.
package world

import "strings"

// Attr is the attribute bit set of one tile index.
type Attr uint16

const (
	SolidTop Attr = 1 << iota
	SolidBottom
	SolidLeft
	SolidRight
	Animated
	Foreground
	Flammable
	Climbable
	ConveyorLeft
	ConveyorRight
	SlowAnimation
	Ladder
)

// Solid is every solid edge.
const Solid = SolidTop | SolidBottom | SolidLeft | SolidRight

// Has reports whether all bits of f are set.
func (a Attr) Has(f Attr) bool {
	return a&f == f
}

// Any reports whether at least one bit of f is set.
func (a Attr) Any(f Attr) bool {
	return a&f != 0
}

var attrNames = []struct {
	flag Attr
	name string
}{
	{SolidTop, "solid_top"},
	{SolidBottom, "solid_bottom"},
	{SolidLeft, "solid_left"},
	{SolidRight, "solid_right"},
	{Animated, "animated"},
	{Foreground, "foreground"},
	{Flammable, "flammable"},
	{Climbable, "climbable"},
	{ConveyorLeft, "conveyor_left"},
	{ConveyorRight, "conveyor_right"},
	{SlowAnimation, "slow_animation"},
	{Ladder, "ladder"},
}

// String lists the set flags, e.g. "solid_top|ladder".
func (a Attr) String() string {
	var parts []string
	for _, n := range attrNames {
		if a.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// ParseAttr parses names as produced by String. "solid" sets all four edges.
// Unknown names are reported through ok.
func ParseAttr(names []string) (a Attr, ok bool) {
	ok = true
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" || name == "none" {
			continue
		}
		if name == "solid" {
			a |= Solid
			continue
		}
		found := false
		for _, n := range attrNames {
			if n.name == name {
				a |= n.flag
				found = true
				break
			}
		}
		if !found {
			ok = false
		}
	}
	return a, ok
}
