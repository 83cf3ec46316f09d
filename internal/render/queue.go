// Package render holds the outward, push-only queues the simulation fills
// once per frame and a character rasteriser that turns them into a
// core.Screen for the terminal viewer.
package render

import (
	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/kinds"
)

// Viewport size in tiles.
const (
	ViewWidth  = 32
	ViewHeight = 20
)

// PixelsPerTile converts tile to pixel coordinates.
const PixelsPerTile = 8

// DrawStyle is the render mode of an actor. Invisible actors also skip the
// automatic collision passes.
type DrawStyle uint8

const (
	StyleNormal DrawStyle = iota
	StyleInvisible
	StyleWhiteFlash
	StyleInFront
	StyleTranslucent
)

func (s DrawStyle) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleInvisible:
		return "invisible"
	case StyleWhiteFlash:
		return "white_flash"
	case StyleInFront:
		return "in_front"
	case StyleTranslucent:
		return "translucent"
	}
	return "unknown"
}

// Sprite is a sprite draw command in world tile coordinates.
type Sprite struct {
	Kind  kinds.Kind
	Frame int
	X, Y  int
	Style DrawStyle
}

// Pixel is a single-pixel draw command in world pixel coordinates.
type Pixel struct {
	X, Y  int
	Color core.Color
}

// TileDebris draws a loose map tile at a world tile position.
type TileDebris struct {
	Tile uint16
	X, Y int
}

// WaterArea is a rectangle of water in world tiles.
type WaterArea struct {
	Area    core.Rect
	Surface bool // top row animates
}

// RadarBlip is a radar dot relative to the player.
type RadarBlip struct {
	DX, DY int
}

// Frame is everything the simulation pushed outward during one frame.
// The simulation clears it at frame start and never reads it back.
type Frame struct {
	Number    uint64
	Camera    core.Point
	Sprites   []Sprite
	Pixels    []Pixel
	Debris    []TileDebris
	Water     []WaterArea
	Radar     []RadarBlip
	Sounds    []Sound
	Messages  []Message
	Tutorials []Tutorial
	StopMusic bool
	Fatal     string
}

// NewFrame returns an empty frame.
func NewFrame() *Frame {
	return &Frame{}
}

// Reset empties every queue and keeps the backing arrays.
func (f *Frame) Reset() {
	f.Number = 0
	f.Camera = core.Point{}
	f.Sprites = f.Sprites[:0]
	f.Pixels = f.Pixels[:0]
	f.Debris = f.Debris[:0]
	f.Water = f.Water[:0]
	f.Radar = f.Radar[:0]
	f.Sounds = f.Sounds[:0]
	f.Messages = f.Messages[:0]
	f.Tutorials = f.Tutorials[:0]
	f.StopMusic = false
	f.Fatal = ""
}

// DrawSprite queues a sprite. Invisible sprites are not queued.
func (f *Frame) DrawSprite(k kinds.Kind, frame, x, y int, style DrawStyle) {
	if style == StyleInvisible {
		return
	}
	f.Sprites = append(f.Sprites, Sprite{Kind: k, Frame: frame, X: x, Y: y, Style: style})
}

// DrawPixel queues a pixel.
func (f *Frame) DrawPixel(x, y int, c core.Color) {
	f.Pixels = append(f.Pixels, Pixel{X: x, Y: y, Color: c})
}

// DrawDebris queues a tile debris command.
func (f *Frame) DrawDebris(tile uint16, x, y int) {
	f.Debris = append(f.Debris, TileDebris{Tile: tile, X: x, Y: y})
}

// DrawWater queues a water area.
func (f *Frame) DrawWater(area core.Rect, surface bool) {
	f.Water = append(f.Water, WaterArea{Area: area, Surface: surface})
}

// AddBlip queues a radar blip.
func (f *Frame) AddBlip(dx, dy int) {
	f.Radar = append(f.Radar, RadarBlip{DX: dx, DY: dy})
}

// PlaySound queues a sound trigger.
func (f *Frame) PlaySound(s Sound) {
	f.Sounds = append(f.Sounds, s)
}

// ShowMessage queues a HUD message.
func (f *Frame) ShowMessage(m Message) {
	f.Messages = append(f.Messages, m)
}

// ShowTutorial queues a tutorial message. Once-only filtering is done by
// the simulation's HUD state.
func (f *Frame) ShowTutorial(t Tutorial) {
	f.Tutorials = append(f.Tutorials, t)
}

// Clone returns a deep copy, for hosts that keep frames around.
func (f *Frame) Clone() *Frame {
	c := *f
	c.Sprites = append([]Sprite(nil), f.Sprites...)
	c.Pixels = append([]Pixel(nil), f.Pixels...)
	c.Debris = append([]TileDebris(nil), f.Debris...)
	c.Water = append([]WaterArea(nil), f.Water...)
	c.Radar = append([]RadarBlip(nil), f.Radar...)
	c.Sounds = append([]Sound(nil), f.Sounds...)
	c.Messages = append([]Message(nil), f.Messages...)
	c.Tutorials = append([]Tutorial(nil), f.Tutorials...)
	return &c
}
