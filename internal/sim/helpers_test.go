package sim

import (
	"testing"

	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/levels"
	"github.com/vovakirdan/dn2sim/internal/world"
)

const (
	tileEmpty uint16 = iota
	tileSolid
	tilePlatform
	tileBeltLeft
	tileBeltRight
)

const (
	testWidth  = 40
	testHeight = 20
)

// testLevel is a closed box: solid ceiling, floor and side walls. The
// player starts on the floor near the right wall.
func testLevel(actors ...levels.ActorPlacement) *levels.Level {
	tiles := make([]uint16, testWidth*testHeight)
	for x := 0; x < testWidth; x++ {
		tiles[x] = tileSolid
		tiles[(testHeight-1)*testWidth+x] = tileSolid
	}
	for y := 0; y < testHeight; y++ {
		tiles[y*testWidth] = tileSolid
		tiles[y*testWidth+testWidth-1] = tileSolid
	}

	placements := append([]levels.ActorPlacement{{Kind: kinds.KindPlayer, X: 30, Y: 18}}, actors...)
	return &levels.Level{
		ID:     "test",
		Name:   "Test Box",
		Width:  testWidth,
		Height: testHeight,
		Tiles:  tiles,
		Attrs:  []world.Attr{0, world.Solid, world.SolidTop, world.Solid | world.ConveyorLeft, world.Solid | world.ConveyorRight},
		Actors: placements,
	}
}

func newTestContext(t *testing.T, actors ...levels.ActorPlacement) *Context {
	t.Helper()
	c, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := c.LoadLevel(testLevel(actors...)); err != nil {
		t.Fatalf("LoadLevel() failed: %v", err)
	}
	return c
}

func spawn(t *testing.T, c *Context, k kinds.Kind, x, y int) *Actor {
	t.Helper()
	ref, ok := c.SpawnActor(k, x, y)
	if !ok {
		t.Fatalf("SpawnActor(%s) failed", k)
	}
	return c.Resolve(ref)
}
