package sim

import (
	"github.com/vovakirdan/dn2sim/internal/arena"
	"github.com/vovakirdan/dn2sim/internal/collision"
	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/render"
)

// Actor is one slot of the actor table. Var1..Var5 are scratch fields whose
// meaning depends on the kind.
type Actor struct {
	Kind  kinds.Kind `msgpack:"k"`
	Frame int        `msgpack:"f"`
	X     int        `msgpack:"x"`
	Y     int        `msgpack:"y"`

	Var1 int `msgpack:"v1"`
	Var2 int `msgpack:"v2"`
	Var3 int `msgpack:"v3"`
	Var4 int `msgpack:"v4"`
	Var5 int `msgpack:"v5"`

	Health       int `msgpack:"hp"`
	ScoreGiven   int `msgpack:"score"`
	GravityState int `msgpack:"grav"`

	AlwaysUpdate       bool `msgpack:"always"`
	RemainActive       bool `msgpack:"remain"`
	AllowStairStepping bool `msgpack:"stairs"`
	GravityAffected    bool `msgpack:"gravity"`
	Deleted            bool `msgpack:"deleted"`

	Style render.DrawStyle `msgpack:"style"`

	// Buffer is scratch memory borrowed from the arena, e.g. a door's
	// cached tiles.
	Buffer arena.Handle `msgpack:"buf"`

	// Gen counts how often the slot was (re)used.
	Gen uint32 `msgpack:"gen"`
}

// SlotRef is a stored reference to an actor slot. It stops resolving once
// the slot is deleted or reused.
type SlotRef struct {
	Index int    `msgpack:"i"`
	Gen   uint32 `msgpack:"g"`
}

// Valid reports whether the reference was ever set.
func (r SlotRef) Valid() bool {
	return r.Gen != 0
}

// Ref returns a reference to slot i.
func (c *Context) Ref(i int) SlotRef {
	if i < 0 || i >= len(c.actors) {
		return SlotRef{}
	}
	return SlotRef{Index: i, Gen: c.actors[i].Gen}
}

func (c *Context) refOf(a *Actor) SlotRef {
	return c.Ref(c.indexOf(a))
}

// indexOf returns the slot index of an actor pointer into the table.
func (c *Context) indexOf(a *Actor) int {
	for i := range c.actors {
		if &c.actors[i] == a {
			return i
		}
	}
	return -1
}

// Resolve returns the referenced actor, or nil if it has been deleted or
// its slot reused since the reference was taken.
func (c *Context) Resolve(r SlotRef) *Actor {
	if !r.Valid() || r.Index < 0 || r.Index >= len(c.actors) {
		return nil
	}
	a := &c.actors[r.Index]
	if a.Deleted || a.Gen != r.Gen {
		return nil
	}
	return a
}

// SpawnActor places a new actor in the first deleted slot, or appends one.
// When the table is full, or kind cannot be spawned, the spawn is dropped
// and ok is false.
func (c *Context) SpawnActor(k kinds.Kind, x, y int) (ref SlotRef, ok bool) {
	if !k.Info().Spawnable {
		c.log.Debug("spawn of non-spawnable kind dropped", "kind", k)
		return SlotRef{}, false
	}

	slot := -1
	for i := range c.actors {
		if c.actors[i].Deleted {
			slot = i
			break
		}
	}
	if slot < 0 {
		if len(c.actors) >= MaxActors {
			c.log.Debug("actor table full, spawn dropped", "kind", k, "x", x, "y", y)
			return SlotRef{}, false
		}
		// Capacity is reserved up front so actor pointers held during the
		// update loop stay valid across appends.
		c.actors = append(c.actors, Actor{Deleted: true})
		slot = len(c.actors) - 1
	}

	if err := c.initActor(slot, k, x, y); err != nil {
		c.fail(err)
		return SlotRef{}, false
	}
	return c.Ref(slot), true
}

// SpawnActorInSlot initialises slot with a fresh actor, growing the table
// if needed. Level loading uses it to lay actors out in draw order.
func (c *Context) SpawnActorInSlot(slot int, k kinds.Kind, x, y int) error {
	if slot < 0 || slot >= MaxActors {
		return errorf("spawn in slot %d: %w", slot, ErrResourceExhausted)
	}
	if !k.Info().Spawnable {
		return errorf("spawn in slot %d: kind %s cannot be spawned", slot, k)
	}
	for len(c.actors) <= slot {
		c.actors = append(c.actors, Actor{Deleted: true})
	}
	return c.initActor(slot, k, x, y)
}

func (c *Context) initActor(slot int, k kinds.Kind, x, y int) error {
	a := &c.actors[slot]
	gen := a.Gen + 1
	*a = Actor{Kind: k, X: x, Y: y, Gen: gen}
	return kindTable[k].apply(c, a)
}

// deleteActor marks an actor deleted. Its slot is reused by a later spawn.
func (c *Context) deleteActor(a *Actor) {
	a.Deleted = true
}

// isOnScreen reports whether any part of the actor's box is in the viewport.
func (c *Context) isOnScreen(a *Actor) bool {
	b := collision.BoxOf(a.Kind, a.Frame, a.X, a.Y)
	return core.NewRect(b.Left, b.Top(), b.Width, b.Height).Intersects(c.viewRect())
}

// worldHit tests the actor's current box against the tiles.
func (c *Context) worldHit(a *Actor, dir collision.Direction) bool {
	return collision.World(c.tiles, dir, a.Kind, a.Frame, a.X, a.Y)
}

// worldHitAt tests the actor's box at another position.
func (c *Context) worldHitAt(a *Actor, dir collision.Direction, x, y int) bool {
	return collision.World(c.tiles, dir, a.Kind, a.Frame, x, y)
}

// onGround reports whether a floor is directly below the actor.
func (c *Context) onGround(a *Actor) bool {
	return c.worldHitAt(a, collision.Down, a.X, a.Y+1)
}

// touchingPlayer tests the actor against the player's current sprite.
func (c *Context) touchingPlayer(a *Actor) bool {
	p := &c.player
	switch {
	case !p.Visible():
		return false
	case p.State == PlayerInShip:
		return collision.Touching(a.Kind, a.Frame, a.X, a.Y, kinds.KindPlayerShip, c.shipFrame(), p.X, p.Y)
	}
	return collision.Touching(a.Kind, a.Frame, a.X, a.Y, kinds.KindPlayer, p.Frame, p.X, p.Y)
}

// centerX returns the middle column of the actor's box.
func centerX(a *Actor) int {
	f := kinds.Frame(a.Kind, a.Frame)
	return a.X + f.XOffset + f.Width/2
}
