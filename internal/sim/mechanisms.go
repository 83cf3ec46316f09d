package sim

import (
	"encoding/binary"

	"github.com/vovakirdan/dn2sim/internal/arena"
	"github.com/vovakirdan/dn2sim/internal/collision"
	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/render"
	"github.com/vovakirdan/dn2sim/internal/world"
)

const (
	doorReach        = 3
	doorCloseDelay   = 20
	doorPartFrames   = 4
	fanReach         = 10
	radarBonus       = 50000
	shipBoardingWait = 30
)

// actorArea returns the tiles covered by the actor's box.
func actorArea(a *Actor) core.Rect {
	b := collision.BoxOf(a.Kind, a.Frame, a.X, a.Y)
	return core.NewRect(b.Left, b.Top(), b.Width, b.Height)
}

func (c *Context) playerRect() core.Rect {
	p := &c.player
	return core.NewRect(p.X, p.Y-kinds.PlayerHeight+1, kinds.PlayerWidth, kinds.PlayerHeight)
}

// findActor returns the first live actor of kind k in slot order.
func (c *Context) findActor(k kinds.Kind) *Actor {
	for i := range c.actors {
		if a := &c.actors[i]; !a.Deleted && a.Kind == k {
			return a
		}
	}
	return nil
}

// takeItem removes an inventory item. A miss is not an error.
func (c *Context) takeItem(k kinds.Kind) bool {
	if c.player.Inventory.Remove(k) {
		return true
	}
	c.log.Debug("inventory item missing", "item", k)
	return false
}

// Door states, kept in Var1. Var2 counts frames without the player near.
const (
	doorClosed = iota
	doorOpen
)

// firstSolidTile returns the lowest tile index that is solid on every
// edge.
func (c *Context) firstSolidTile() (uint16, bool) {
	for i, attr := range c.tiles.AttrTable() {
		if i > 0 && attr.Has(world.Solid) {
			return uint16(i), true //#nosec G115 -- attr table is indexed by uint16 tile ids
		}
	}
	return 0, false
}

// setupDoor caches the tiles under a door in an arena chunk. Empty cells
// are filled with a solid tile first, so the closed door blocks.
func setupDoor(c *Context, a *Actor) error {
	area := actorArea(a)
	h, err := c.arena.PushChunk(area.W*area.H*2, arena.ChunkDoorCache)
	if err != nil {
		return errorf("%s tile cache: %w", a.Kind, err)
	}
	a.Buffer = h

	solid, hasSolid := c.firstSolidTile()
	buf := c.arena.Bytes(h)
	i := 0
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			t := c.tiles.Tile(x, y)
			if t == 0 && hasSolid && c.tiles.InBounds(x, y) {
				t = solid
				c.tiles.SetTile(t, x, y)
			}
			binary.LittleEndian.PutUint16(buf[i:], t)
			i += 2
		}
	}
	return nil
}

// openDoor clears the door's tiles and animates them away.
func (c *Context) openDoor(a *Actor, part world.MovingPartType) {
	area := actorArea(a)
	var tile uint16
	if buf := c.arena.Bytes(a.Buffer); len(buf) >= 2 {
		tile = binary.LittleEndian.Uint16(buf)
	}
	c.tiles.Fill(area, 0)
	c.addMovingPart(area, part, tile)
	c.playSound(render.SoundDoor)
}

// closeDoor puts the cached tiles back.
func (c *Context) closeDoor(a *Actor) {
	area := actorArea(a)
	buf := c.arena.Bytes(a.Buffer)
	if len(buf) < area.W*area.H*2 {
		return
	}
	i := 0
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			c.tiles.SetTile(binary.LittleEndian.Uint16(buf[i:]), x, y)
			i += 2
		}
	}
	c.addMovingPart(area, world.PartDoorClosing, binary.LittleEndian.Uint16(buf))
	c.playSound(render.SoundDoor)
}

func updateSlidingDoor(c *Context, a *Actor) {
	area := actorArea(a)
	p := c.playerRect()
	near := c.player.Visible() && core.NewRect(area.X-doorReach, area.Y-doorReach, area.W+2*doorReach, area.H+2*doorReach).Intersects(p)

	switch a.Var1 {
	case doorClosed:
		if near {
			c.openDoor(a, world.PartDoorOpening)
			a.Var1 = doorOpen
			a.Var2 = 0
		}
	case doorOpen:
		a.Style = render.StyleInvisible
		if near || area.Intersects(p) {
			a.Var2 = 0
			return
		}
		a.Var2++
		if a.Var2 >= doorCloseDelay {
			c.closeDoor(a)
			a.Var1 = doorClosed
		}
	}
}

func updateForceField(c *Context, a *Actor) {
	animate(a)
	if c.frameNum%8 == 0 {
		c.playSound(render.SoundForceField)
	}
}

// touchCardReader switches off the level's force field when the player
// presses up with a keycard.
func touchCardReader(c *Context, a *Actor) {
	if !c.pressed(core.ActionUp) {
		return
	}
	if !c.takeItem(kinds.KindKeycard) {
		c.showMessage(render.MessageNeedKeycard)
		return
	}
	c.showMessage(render.MessageAccessGranted)
	if field := c.findActor(kinds.KindForceField); field != nil {
		c.openDoor(field, world.PartCrumbling)
		c.deleteActor(field)
		c.showMessage(render.MessageForceFieldDown)
	}
}

func touchKeyHole(c *Context, a *Actor) {
	if !c.pressed(core.ActionUp) {
		return
	}
	if !c.takeItem(kinds.KindKey) {
		c.showMessage(render.MessageNeedKey)
		return
	}
	if door := c.findActor(kinds.KindKeyDoor); door != nil {
		c.openDoor(door, world.PartCrumbling)
		c.deleteActor(door)
		c.showMessage(render.MessageDoorOpened)
	}
}

// Elevator states, kept in Var1.
const (
	elevatorIdle = iota
	elevatorUp
	elevatorDown
)

// elevatorTransition picks the next elevator state from the rider's input.
func elevatorTransition(in core.InputFrame) int {
	switch {
	case in.Has(core.ActionUp) && !in.Has(core.ActionDown):
		return elevatorUp
	case in.Has(core.ActionDown) && !in.Has(core.ActionUp):
		return elevatorDown
	}
	return elevatorIdle
}

func (c *Context) elevatorRider(a *Actor) bool {
	p := &c.player
	if p.State != PlayerNormal || p.JumpStep > 0 {
		return false
	}
	w := kinds.Frame(a.Kind, a.Frame).Width
	if p.X >= a.X+w || p.X+kinds.PlayerWidth <= a.X {
		return false
	}
	return p.Y >= a.Y-1 && p.Y <= a.Y
}

func updateElevator(c *Context, a *Actor) {
	p := &c.player
	if !c.elevatorRider(a) {
		if c.Resolve(p.Elevator) == a {
			p.Elevator = SlotRef{}
		}
		a.Var1 = elevatorIdle
		return
	}
	p.Elevator = c.refOf(a)
	p.Y = a.Y - 1
	p.FallStep = 0
	c.showTutorial(render.TutorialElevator)

	a.Var1 = elevatorTransition(c.input)
	switch a.Var1 {
	case elevatorUp:
		if c.playerBoxHits(collision.Up, p.X, p.Y-1) || c.worldHitAt(a, collision.Up, a.X, a.Y-1) {
			a.Var1 = elevatorIdle
			return
		}
		a.Y--
		p.Y--
	case elevatorDown:
		if c.worldHitAt(a, collision.Down, a.X, a.Y+1) {
			a.Var1 = elevatorIdle
			return
		}
		a.Y++
		p.Y++
	}
	if a.Var1 != elevatorIdle && c.frameNum%4 == 0 {
		c.playSound(render.SoundElevator)
	}
}

// touchTeleporter moves the player to the first other teleporter of the
// paired kind. Without a counterpart the teleporter leaves the level.
func touchTeleporter(c *Context, a *Actor) {
	c.showTutorial(render.TutorialTeleporter)
	if !c.pressed(core.ActionUp) || c.player.State != PlayerNormal {
		return
	}
	target := kinds.KindTeleporter2
	if a.Kind == kinds.KindTeleporter2 {
		target = kinds.KindTeleporter1
	}
	dest := c.findActor(target)
	if dest == nil {
		c.log.Debug("teleporter destination missing, leaving level", "kind", a.Kind)
		c.exitLevel()
		return
	}
	p := &c.player
	p.X, p.Y = dest.X, dest.Y
	p.JumpStep, p.FallStep = 0, 0
	c.playSound(render.SoundTeleport)
	c.spawnParticles(p.X+1, p.Y-2, 0, core.ColorLightMagenta)
}

// Var1 is the boarding cooldown after leaving the ship.
func updatePlayerShip(c *Context, a *Actor) {
	if a.Var1 > 0 {
		a.Var1--
	}
	a.Frame = 0
}

func touchPlayerShip(c *Context, a *Actor) {
	p := &c.player
	if a.Var1 > 0 || p.State != PlayerNormal {
		return
	}
	p.State = PlayerInShip
	p.X, p.Y = a.X, a.Y
	p.JumpStep, p.FallStep = 0, 0
	p.Elevator = SlotRef{}
	c.showTutorial(render.TutorialShip)
	c.deleteActor(a)
}

func touchLevelExit(c *Context, a *Actor) {
	c.exitLevel()
}

func (c *Context) exitLevel() {
	c.player.State = PlayerExited
	c.out.StopMusic = true
	c.log.Debug("level exited", "level", c.levelID, "frame", c.frameNum)
}

// Var1 is set once the beacon is active.
func updateRespawnBeacon(c *Context, a *Actor) {
	if a.Var1 == 0 {
		a.Frame = 0
		return
	}
	animate(a)
}

func touchRespawnBeacon(c *Context, a *Actor) {
	if a.Var1 != 0 {
		return
	}
	a.Var1 = 1
	c.player.RespawnX, c.player.RespawnY = a.X-1, a.Y
	c.showMessage(render.MessageBeaconActivated)
	c.showTutorial(render.TutorialBeacon)
	c.playSound(render.SoundBeacon)
}

// updateBlowingFan lifts the player while standing in the air column
// above the fan.
func updateBlowingFan(c *Context, a *Actor) {
	animate(a)
	p := &c.player
	if p.State != PlayerNormal {
		return
	}
	w := kinds.Frame(a.Kind, a.Frame).Width
	if p.X >= a.X+w || p.X+kinds.PlayerWidth <= a.X {
		return
	}
	if p.Y >= a.Y || a.Y-p.Y > fanReach {
		return
	}
	if !c.playerBoxHits(collision.Up, p.X, p.Y-1) {
		p.Y--
	}
	p.JumpStep, p.FallStep = 0, 0
}

func shotRadarDish(c *Context, a *Actor, damage int) {
	if !c.DamageActor(damage, a) {
		return
	}
	c.destroyActor(a, debrisLarge, core.ColorLightGray)
	h := &c.hud
	h.RadarDishes--
	if h.RadarDishes == 0 && h.RadarDishesTotal > 0 {
		c.addScore(radarBonus)
		c.showMessage(render.MessageAllRadarsDestroyed)
	}
}

func shotReactor(c *Context, a *Actor, damage int) {
	if !c.DamageActor(damage, a) {
		return
	}
	c.destroyActor(a, debrisLarge, core.ColorLightCyan)
	for i := range c.actors {
		if g := &c.actors[i]; !g.Deleted && g.Kind == kinds.KindFallingGeometry {
			g.Var1 = 1
			g.AlwaysUpdate = true
		}
	}
	c.showMessage(render.MessageReactorDestroyed)
}

// Var1 is set when the section should start falling. The tiles are the
// visual, the actor itself is never drawn.
func updateFallingGeometry(c *Context, a *Actor) {
	a.Style = render.StyleInvisible
	if a.Var1 == 0 {
		return
	}
	c.addMovingPart(actorArea(a), world.PartFalling, 0)
	c.deleteActor(a)
}

// updateWaterArea draws the water and marks the player as swimming.
// Water is invisible to the sprite queue, so the contact test is manual.
func updateWaterArea(c *Context, a *Actor) {
	a.Style = render.StyleInvisible
	area := actorArea(a)
	c.out.DrawWater(area, !c.waterAt(area.X, area.Y-1))
	if c.touchingPlayer(a) {
		c.player.InWater = true
		c.showTutorial(render.TutorialWater)
	}
}

func (c *Context) waterAt(x, y int) bool {
	for i := range c.actors {
		a := &c.actors[i]
		if !a.Deleted && a.Kind == kinds.KindWaterArea && actorArea(a).Contains(x, y) {
			return true
		}
	}
	return false
}

// addMovingPart claims a moving part slot; a full table drops the part.
func (c *Context) addMovingPart(area core.Rect, t world.MovingPartType, tile uint16) bool {
	for i := range c.parts {
		if c.parts[i].Active() {
			continue
		}
		c.parts[i] = world.MovingMapPart{Area: area, Type: t, Tile: tile}
		return true
	}
	c.log.Debug("moving part table full, part dropped", "type", t)
	return false
}

func (c *Context) updateMovingParts() {
	for i := range c.parts {
		mp := &c.parts[i]
		if !mp.Active() {
			continue
		}
		switch mp.Type {
		case world.PartFalling:
			if !c.fallPart(mp) {
				*mp = world.MovingMapPart{}
			}
			continue
		default:
			c.drawPartDebris(mp)
		}
		mp.Step++
		if mp.Step >= doorPartFrames {
			*mp = world.MovingMapPart{}
		}
	}
}

// drawPartDebris draws a door's tiles sliding away, sliding back in or
// crumbling downwards.
func (c *Context) drawPartDebris(mp *world.MovingMapPart) {
	area := mp.Area
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			switch mp.Type {
			case world.PartDoorOpening:
				c.out.DrawDebris(mp.Tile, x, y-mp.Step-1)
			case world.PartDoorClosing:
				c.out.DrawDebris(mp.Tile, x, y-(doorPartFrames-mp.Step-1))
			case world.PartCrumbling:
				if y-area.Y >= mp.Step {
					c.out.DrawDebris(mp.Tile, x, y+mp.Step)
				}
			}
		}
	}
}

// fallPart moves a falling section down one row. It reports false once
// the section has landed.
func (c *Context) fallPart(mp *world.MovingMapPart) bool {
	area := mp.Area
	below := area.Bottom()
	if below >= c.tiles.Height {
		return false
	}
	for x := area.X; x < area.Right(); x++ {
		if c.tiles.Tile(x, below) != 0 {
			return false
		}
	}
	for y := below - 1; y >= area.Y; y-- {
		for x := area.X; x < area.Right(); x++ {
			c.tiles.SetTile(c.tiles.Tile(x, y), x, y+1)
		}
	}
	for x := area.X; x < area.Right(); x++ {
		c.tiles.SetTile(0, x, area.Y)
	}
	mp.Area = area.Translate(0, 1)
	mp.Step++
	if mp.Area.Intersects(c.playerRect()) {
		c.damagePlayer(1)
	}
	return true
}
