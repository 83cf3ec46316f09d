package sim

import (
	"testing"

	"github.com/vovakirdan/dn2sim/internal/collision"
	"github.com/vovakirdan/dn2sim/internal/kinds"
)

func TestApplyWorldCollisionUndoesBlockedMove(t *testing.T) {
	tests := []struct {
		name    string
		x, y    int
		dir     collision.Direction
		blocked bool
	}{
		{"into right wall", 36, 10, collision.Right, true},
		{"into left wall", 1, 10, collision.Left, true},
		{"into ceiling", 10, 3, collision.Up, true},
		{"into floor", 10, 18, collision.Down, true},
		{"open space", 10, 10, collision.Right, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t)
			a := spawn(t, c, kinds.KindHoverBot, tt.x, tt.y)

			got := c.moveActor(a, tt.dir)
			if got != tt.blocked {
				t.Errorf("moveActor(%s) = %v, expected %v", tt.dir, got, tt.blocked)
			}

			dx, dy := tt.dir.Delta()
			wantX, wantY := tt.x+dx, tt.y+dy
			if tt.blocked {
				wantX, wantY = tt.x, tt.y
			}
			if a.X != wantX || a.Y != wantY {
				t.Errorf("position = (%d, %d), expected (%d, %d)", a.X, a.Y, wantX, wantY)
			}
		})
	}
}

func TestWalkerRefusesLedge(t *testing.T) {
	c := newTestContext(t)
	// A three tile platform floating over the floor.
	for x := 10; x < 13; x++ {
		c.tiles.SetTile(tilePlatform, x, 10)
	}
	a := spawn(t, c, kinds.KindSkeleton, 10, 9)

	if !c.moveActor(a, collision.Left) {
		t.Error("moveActor(left) off the platform edge was not blocked")
	}
	if a.X != 10 {
		t.Errorf("X = %d, expected 10", a.X)
	}

	a.AllowStairStepping = true
	if c.moveActor(a, collision.Left) {
		t.Error("moveActor(left) with stair stepping was blocked")
	}
	if a.X != 9 {
		t.Errorf("X = %d, expected 9", a.X)
	}
}

func TestGravityQuantisedFall(t *testing.T) {
	c := newTestContext(t)
	a := spawn(t, c, kinds.KindHealthMolecule, 10, 5)

	// Falls 0, 0, 1, 1, then 2 tiles per frame.
	want := []int{5, 5, 6, 7, 9, 11}
	for i, y := range want {
		c.applyGravity(a)
		if a.Y != y {
			t.Fatalf("Y after %d gravity steps = %d, expected %d", i+1, a.Y, y)
		}
	}

	for iter := 0; iter < 10; iter++ {
		c.applyGravity(a)
	}
	if a.Y != testHeight-2 {
		t.Errorf("landed Y = %d, expected %d", a.Y, testHeight-2)
	}
	if a.GravityState != GravityGrounded {
		t.Errorf("GravityState = %d, expected %d", a.GravityState, GravityGrounded)
	}
}

func TestGravityIgnoresUnaffectedActors(t *testing.T) {
	c := newTestContext(t)
	a := spawn(t, c, kinds.KindHoverBot, 10, 5)

	for iter := 0; iter < 5; iter++ {
		c.applyGravity(a)
	}
	if a.Y != 5 {
		t.Errorf("Y = %d, expected 5", a.Y)
	}
}

func TestConveyorDrift(t *testing.T) {
	tests := []struct {
		name  string
		belt  map[int]uint16 // floor tiles at row 19 by column
		wall  bool           // solid tile left of the actor
		y     int
		wantX int
	}{
		{"left belt", map[int]uint16{10: tileBeltLeft, 11: tileBeltLeft}, false, 18, 9},
		{"right belt", map[int]uint16{10: tileBeltRight, 11: tileBeltRight}, false, 18, 11},
		{"belt under one corner", map[int]uint16{11: tileBeltLeft}, false, 18, 9},
		{"plain floor", nil, false, 18, 10},
		{"airborne over belt", map[int]uint16{10: tileBeltLeft, 11: tileBeltLeft}, false, 10, 10},
		{"belt into wall", map[int]uint16{10: tileBeltLeft, 11: tileBeltLeft}, true, 18, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t)
			for x, tile := range tt.belt {
				c.tiles.SetTile(tile, x, testHeight-1)
			}
			if tt.wall {
				c.tiles.SetTile(tileSolid, 9, 18)
			}
			a := spawn(t, c, kinds.KindHealthMolecule, 10, tt.y)

			c.applyGravity(a)
			if a.X != tt.wantX {
				t.Errorf("X after gravity step = %d, expected %d", a.X, tt.wantX)
			}
		})
	}
}

func TestGroundedOverlapNudgesUp(t *testing.T) {
	tests := []struct {
		name      string
		state     int
		wantY     int
		wantState int
	}{
		{"sunk while grounded", GravityGrounded, 17, GravityGrounded},
		{"landing overlap waits a frame", 3, 18, GravityGrounded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t)
			c.tiles.SetTile(tileSolid, 10, 18)
			a := spawn(t, c, kinds.KindHealthMolecule, 10, 18)
			a.GravityState = tt.state

			c.applyGravity(a)
			if a.Y != tt.wantY || a.GravityState != tt.wantState {
				t.Errorf("after gravity step Y = %d, GravityState = %d, expected %d, %d",
					a.Y, a.GravityState, tt.wantY, tt.wantState)
			}

			c.applyGravity(a)
			if a.Y != 17 {
				t.Errorf("Y after second step = %d, expected 17", a.Y)
			}
		})
	}
}

func TestStairStepping(t *testing.T) {
	tests := []struct {
		name    string
		kind    kinds.Kind
		step    int // height of the wall in front, in tiles
		blocked bool
		wantY   int // after the following gravity step
	}{
		{"walker climbs one tile", kinds.KindSkeleton, 1, false, 17},
		{"walker stopped by two tiles", kinds.KindSkeleton, 2, true, 18},
		{"flyer stopped by one tile", kinds.KindHoverBot, 1, true, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t)
			for i := 0; i < tt.step; i++ {
				c.tiles.SetTile(tileSolid, 13, 18-i)
			}
			a := spawn(t, c, tt.kind, 10, 18)

			if got := c.moveActor(a, collision.Right); got != tt.blocked {
				t.Errorf("moveActor(right) = %v, expected %v", got, tt.blocked)
			}
			wantX := 11
			if tt.blocked {
				wantX = 10
			}
			if a.X != wantX {
				t.Errorf("X = %d, expected %d", a.X, wantX)
			}

			c.applyGravity(a)
			if a.Y != tt.wantY {
				t.Errorf("Y after gravity step = %d, expected %d", a.Y, tt.wantY)
			}
		})
	}
}

func TestLedgeRefusalOverGap(t *testing.T) {
	tests := []struct {
		name    string
		x       int
		dir     collision.Direction
		stairs  bool
		blocked bool
	}{
		{"leading corner over gap", 10, collision.Right, false, true},
		{"straddling walks on", 12, collision.Right, false, false},
		{"leading corner over gap leftwards", 14, collision.Left, false, true},
		{"stair stepper crosses", 10, collision.Right, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t)
			// A platform with a one tile gap at column 13.
			for x := 10; x <= 16; x++ {
				if x != 13 {
					c.tiles.SetTile(tilePlatform, x, 10)
				}
			}
			a := spawn(t, c, kinds.KindSkeleton, tt.x, 9)
			a.AllowStairStepping = tt.stairs

			if got := c.moveActor(a, tt.dir); got != tt.blocked {
				t.Errorf("moveActor(%s) from x=%d = %v, expected %v", tt.dir, tt.x, got, tt.blocked)
			}
		})
	}
}
