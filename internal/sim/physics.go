package sim

import (
	"github.com/vovakirdan/dn2sim/internal/collision"
	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/world"
)

// Gravity states.
const (
	GravityGrounded = 0
	GravityMaxState = 4
)

// applyGravity runs the quantised fall step for one actor. Falling speed is
// 0 tiles per frame in states 0 and 1, 1 tile in states 2 and 3, and 2
// tiles in state 4, the second tile gated by its own floor check.
func (c *Context) applyGravity(a *Actor) {
	if !a.GravityAffected {
		return
	}

	if a.GravityState == GravityGrounded && c.worldHit(a, collision.Down) {
		// Sunk into the floor, e.g. after stepping onto a stair.
		a.Y--
		a.GravityState = GravityGrounded
		return
	}

	if !c.onGround(a) {
		if a.GravityState > 1 {
			a.Y++
			if a.GravityState == GravityMaxState && !c.onGround(a) {
				a.Y++
			}
		}
		if a.GravityState < GravityMaxState {
			a.GravityState++
		}
		return
	}

	a.GravityState = GravityGrounded
	c.applyConveyor(a)
}

// applyConveyor drifts a grounded actor one tile along a conveyor belt
// under either of its bottom corners.
func (c *Context) applyConveyor(a *Actor) {
	b := collision.BoxOf(a.Kind, a.Frame, a.X, a.Y)
	under := c.tiles.Attrs(b.Left, b.Bottom+1) | c.tiles.Attrs(b.Right(), b.Bottom+1)

	switch {
	case under.Has(world.ConveyorLeft):
		if !c.worldHitAt(a, collision.Left, a.X-1, a.Y) {
			a.X--
		}
	case under.Has(world.ConveyorRight):
		if !c.worldHitAt(a, collision.Right, a.X+1, a.Y) {
			a.X++
		}
	}
}

// ApplyWorldCollision is called after an actor has been moved one tile in
// dir. If the new position collides, the move is undone and true returned.
//
// Horizontal moves of gravity-affected actors are tested one tile higher so
// that they can climb single-tile steps (gravity pushes them back up out of
// the step on the next frame). Unless AllowStairStepping is set they also
// refuse to walk off a ledge.
func (c *Context) ApplyWorldCollision(a *Actor, dir collision.Direction) bool {
	switch dir {
	case collision.Up:
		if c.worldHit(a, collision.Up) {
			a.Y++
			return true
		}
	case collision.Down:
		if c.worldHit(a, collision.Down) {
			a.Y--
			return true
		}
	case collision.Left, collision.Right:
		undo := 1
		if dir == collision.Right {
			undo = -1
		}

		testY := a.Y
		if a.GravityAffected {
			testY--
		}
		if c.worldHitAt(a, dir, a.X, testY) {
			a.X += undo
			return true
		}

		if a.GravityAffected && !a.AllowStairStepping && !c.floorAhead(a, dir) {
			a.X += undo
			return true
		}
	}
	return false
}

// floorAhead reports whether the leading bottom corner has floor below it.
func (c *Context) floorAhead(a *Actor, dir collision.Direction) bool {
	b := collision.BoxOf(a.Kind, a.Frame, a.X, a.Y)
	x := b.Left
	if dir == collision.Right {
		x = b.Right()
	}
	return c.tiles.Attrs(x, b.Bottom+1).Has(world.SolidTop)
}

// moveActor moves one tile in dir and applies world collision. It reports
// whether the move was blocked.
func (c *Context) moveActor(a *Actor, dir collision.Direction) bool {
	dx, dy := dir.Delta()
	a.X += dx
	a.Y += dy
	return c.ApplyWorldCollision(a, dir)
}

// stepToward returns the horizontal direction from the actor towards x.
func stepToward(a *Actor, x int) collision.Direction {
	if x < centerX(a) {
		return collision.Left
	}
	return collision.Right
}

// dirFromSign maps -1/1 to Left/Right.
func dirFromSign(s int) collision.Direction {
	if s < 0 {
		return collision.Left
	}
	return collision.Right
}

// playerBoxHits tests the player's standing box at (x, y).
func (c *Context) playerBoxHits(dir collision.Direction, x, y int) bool {
	return collision.World(c.tiles, dir, kinds.KindPlayer, kinds.PlayerStand, x, y)
}
