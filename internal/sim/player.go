package sim

import (
	"github.com/vovakirdan/dn2sim/internal/collision"
	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/render"
	"github.com/vovakirdan/dn2sim/internal/world"
)

// Player tuning.
const (
	MaxHealth     = 9
	InventorySize = 6

	mercyFrames    = 20
	deathFrames    = 30
	powerUpFrames  = 700
	weaponAmmo     = 32
	flameAmmo      = 64
	radarRange     = 16
	shipShotPeriod = 3
)

// jumpTable is the upward movement per frame of a jump.
var jumpTable = [...]int{-2, -2, -1, -1, -1, -1, 0, 0}

// PlayerState is the player's top-level mode.
type PlayerState uint8

const (
	PlayerNormal PlayerState = iota
	PlayerClimbing
	PlayerInShip
	// PlayerEaten covers being swallowed by a snake and held by a
	// ceiling sucker; EatenBy names the actor.
	PlayerEaten
	PlayerDying
	PlayerExited
)

func (s PlayerState) String() string {
	switch s {
	case PlayerClimbing:
		return "climbing"
	case PlayerInShip:
		return "in_ship"
	case PlayerEaten:
		return "eaten"
	case PlayerDying:
		return "dying"
	case PlayerExited:
		return "exited"
	}
	return "normal"
}

// Inventory holds up to InventorySize items in pickup order.
type Inventory struct {
	Items [InventorySize]kinds.Kind `msgpack:"items"`
}

// Add stores an item. It reports false when the inventory is full.
func (inv *Inventory) Add(k kinds.Kind) bool {
	for i := range inv.Items {
		if inv.Items[i] == kinds.KindNone {
			inv.Items[i] = k
			return true
		}
	}
	return false
}

// Remove takes out one item of kind k, keeping the rest in order. It
// reports false when there is none.
func (inv *Inventory) Remove(k kinds.Kind) bool {
	for i := range inv.Items {
		if inv.Items[i] != k {
			continue
		}
		copy(inv.Items[i:], inv.Items[i+1:])
		inv.Items[InventorySize-1] = kinds.KindNone
		return true
	}
	return false
}

// Has reports whether the inventory holds k.
func (inv *Inventory) Has(k kinds.Kind) bool {
	for _, it := range inv.Items {
		if it == k {
			return true
		}
	}
	return false
}

// Count returns the number of stored items.
func (inv *Inventory) Count() int {
	n := 0
	for _, it := range inv.Items {
		if it != kinds.KindNone {
			n++
		}
	}
	return n
}

// Player is the player model. Attachments to actors are stored as slot
// references and cleared by the actor that owns the relationship.
type Player struct {
	X           int         `msgpack:"x"`
	Y           int         `msgpack:"y"`
	FacingRight bool        `msgpack:"right"`
	Frame       int         `msgpack:"frame"`
	State       PlayerState `msgpack:"state"`

	JumpStep  int  `msgpack:"jump"`
	FallStep  int  `msgpack:"fall"`
	WalkStep  int  `msgpack:"walk"`
	ClimbStep int  `msgpack:"climb"`
	DeathStep int  `msgpack:"death"`
	InWater   bool `msgpack:"water"`
	FireHeld  bool `msgpack:"fire"`

	Health      int    `msgpack:"hp"`
	MercyFrames int    `msgpack:"mercy"`
	Weapon      Weapon `msgpack:"weapon"`
	Ammo        int    `msgpack:"ammo"`
	RapidFire   int    `msgpack:"rapid"`
	Cloak       int    `msgpack:"cloak"`
	Score       int    `msgpack:"score"`
	Deaths      int    `msgpack:"deaths"`

	Inventory Inventory    `msgpack:"inv"`
	Letters   []kinds.Kind `msgpack:"letters"`

	Clinging SlotRef `msgpack:"cling"`
	EatenBy  SlotRef `msgpack:"eaten"`
	Elevator SlotRef `msgpack:"elevator"`

	RespawnX int `msgpack:"rx"`
	RespawnY int `msgpack:"ry"`
}

// Visible reports whether the player takes part in sprite collisions.
func (p *Player) Visible() bool {
	return p.State != PlayerEaten && p.State != PlayerExited
}

// Exited reports whether the player has left the level.
func (p *Player) Exited() bool {
	return p.State == PlayerExited
}

// Dead reports whether the death sequence is running.
func (p *Player) Dead() bool {
	return p.State == PlayerDying
}

func (c *Context) resetPlayer(x, y int) {
	c.player = Player{
		X:           x,
		Y:           y,
		FacingRight: true,
		Frame:       kinds.PlayerFrame(kinds.PlayerStand, true),
		Health:      MaxHealth,
		RespawnX:    x,
		RespawnY:    y,
	}
}

func (c *Context) updatePlayer() {
	p := &c.player
	if p.MercyFrames > 0 {
		p.MercyFrames--
	}
	c.tickPowerUps()

	wasInWater := p.InWater
	p.InWater = false

	switch p.State {
	case PlayerExited:
		return
	case PlayerDying:
		c.updateDying()
	case PlayerEaten:
		c.updateEaten()
	case PlayerInShip:
		c.updateShip()
	case PlayerClimbing:
		c.updateClimbing()
	default:
		c.updateWalking(wasInWater)
	}
}

func (c *Context) tickPowerUps() {
	p := &c.player
	if p.Cloak > 0 {
		p.Cloak--
		if p.Cloak == 0 {
			p.Inventory.Remove(kinds.KindCloak)
			c.showMessage(render.MessageCloakOff)
		}
	}
	if p.RapidFire > 0 {
		p.RapidFire--
		if p.RapidFire == 0 {
			p.Inventory.Remove(kinds.KindRapidFire)
			c.showMessage(render.MessageRapidFireOff)
		}
	}
}

func (c *Context) onLadder(x, y int) bool {
	return c.tiles.Attrs(x+kinds.PlayerWidth/2, y).Has(world.Ladder)
}

func (c *Context) playerGrounded() bool {
	p := &c.player
	if c.Resolve(p.Elevator) != nil {
		return true
	}
	return c.playerBoxHits(collision.Down, p.X, p.Y+1)
}

func (c *Context) updateWalking(inWater bool) {
	p := &c.player
	in := c.input
	riding := c.Resolve(p.Elevator) != nil
	grounded := c.playerGrounded()
	airborne := p.JumpStep > 0 || !grounded

	if !riding && !airborne {
		if (in.Has(core.ActionUp) && c.onLadder(p.X, p.Y)) ||
			(in.Has(core.ActionDown) && c.onLadder(p.X, p.Y+1)) {
			p.State = PlayerClimbing
			p.FallStep = 0
			p.Frame = kinds.PlayerFrame(kinds.PlayerClimb1, p.FacingRight)
			return
		}
	}

	crouch := !airborne && !riding && in.Has(core.ActionDown)
	lookUp := !airborne && !riding && in.Has(core.ActionUp)

	dx := 0
	switch {
	case in.Has(core.ActionLeft) && !in.Has(core.ActionRight):
		dx = -1
	case in.Has(core.ActionRight) && !in.Has(core.ActionLeft):
		dx = 1
	}
	moved := false
	if dx != 0 {
		c.turnPlayer(dx > 0)
		if !crouch && !lookUp && !c.playerBoxHits(dirFromSign(dx), p.X+dx, p.Y) {
			p.X += dx
			p.WalkStep++
			moved = true
		}
	}

	if grounded && p.JumpStep == 0 && c.pressed(core.ActionJump) {
		p.JumpStep = 1
		p.Elevator = SlotRef{}
		c.playSound(render.SoundJump)
	}

	switch {
	case p.JumpStep > 0:
		blocked := false
		for i := 0; i < -jumpTable[p.JumpStep-1]; i++ {
			if c.playerBoxHits(collision.Up, p.X, p.Y-1) {
				blocked = true
				break
			}
			p.Y--
		}
		p.JumpStep++
		if blocked || p.JumpStep > len(jumpTable) {
			p.JumpStep = 0
			p.FallStep = 0
		}
	case !grounded:
		p.FallStep++
		units := 1
		if p.FallStep > 2 && !inWater {
			units = 2
		}
		for i := 0; i < units && !c.playerBoxHits(collision.Down, p.X, p.Y+1); i++ {
			p.Y++
		}
		if c.playerBoxHits(collision.Down, p.X, p.Y+1) {
			p.FallStep = 0
			c.playSound(render.SoundLand)
		}
	default:
		p.FallStep = 0
		if !riding {
			c.playerConveyor()
		}
	}

	fired := c.playerFire(lookUp, crouch)

	base := kinds.PlayerStand
	switch {
	case inWater && airborne:
		base = kinds.PlayerSwim
	case p.JumpStep > 0:
		base = kinds.PlayerJump
	case !c.playerGrounded():
		base = kinds.PlayerFall
	case crouch && fired:
		base = kinds.PlayerCrouchShoot
	case crouch:
		base = kinds.PlayerCrouch
	case lookUp && fired:
		base = kinds.PlayerShootUp
	case lookUp:
		base = kinds.PlayerLookUp
	case moved:
		base = kinds.PlayerWalk1 + p.WalkStep%4
	}
	p.Frame = kinds.PlayerFrame(base, p.FacingRight)
}

// turnPlayer sets the facing. Each turn counts towards shaking off a
// clinging spider.
func (c *Context) turnPlayer(right bool) {
	p := &c.player
	if p.FacingRight == right {
		return
	}
	p.FacingRight = right
	if spider := c.Resolve(p.Clinging); spider != nil {
		spider.Var4++
	}
}

func (c *Context) playerConveyor() {
	p := &c.player
	under := c.tiles.Attrs(p.X, p.Y+1) | c.tiles.Attrs(p.X+kinds.PlayerWidth-1, p.Y+1)
	switch {
	case under.Has(world.ConveyorLeft):
		if !c.playerBoxHits(collision.Left, p.X-1, p.Y) {
			p.X--
		}
	case under.Has(world.ConveyorRight):
		if !c.playerBoxHits(collision.Right, p.X+1, p.Y) {
			p.X++
		}
	}
}

func (c *Context) updateClimbing() {
	p := &c.player
	in := c.input

	switch {
	case in.Has(core.ActionUp):
		if c.onLadder(p.X, p.Y) && !c.playerBoxHits(collision.Up, p.X, p.Y-1) {
			p.Y--
			p.ClimbStep++
		}
	case in.Has(core.ActionDown):
		if !c.playerBoxHits(collision.Down, p.X, p.Y+1) {
			p.Y++
			p.ClimbStep++
		}
	}

	leave := false
	switch {
	case c.pressed(core.ActionJump):
		leave = true
		p.JumpStep = 1
	case in.Has(core.ActionLeft) != in.Has(core.ActionRight):
		c.turnPlayer(in.Has(core.ActionRight))
		leave = true
	case !c.onLadder(p.X, p.Y) && !c.onLadder(p.X, p.Y+1):
		leave = true
	}
	if leave {
		p.State = PlayerNormal
		p.Frame = kinds.PlayerFrame(kinds.PlayerStand, p.FacingRight)
		return
	}
	p.Frame = kinds.PlayerFrame(kinds.PlayerClimb1+p.ClimbStep%2, p.FacingRight)
}

// playerFire spawns a shot when fire is pressed, or every other frame
// while held with rapid fire. It reports whether a shot was fired.
func (c *Context) playerFire(up, crouch bool) bool {
	p := &c.player
	firing := c.input.Has(core.ActionFire)
	held := p.FireHeld
	p.FireHeld = firing
	if !firing {
		return false
	}
	if held && (p.RapidFire == 0 || c.frameNum%2 != 0) {
		return false
	}
	if c.spiderBlocksFire() {
		return false
	}

	k := p.Weapon.shotKind()
	w := kinds.Frame(k, 0).Width
	dir := dirFromSign(boolSign(p.FacingRight))
	x, y := p.X+kinds.PlayerWidth, p.Y-2
	switch {
	case up:
		dir = collision.Up
		x, y = p.X+kinds.PlayerWidth/2, p.Y-kinds.PlayerHeight
	case !p.FacingRight:
		x = p.X - w
	}
	if crouch {
		y++
	}

	if !c.spawnShot(k, dir, x, y) {
		return false
	}
	if p.Weapon != WeaponRegular {
		p.Ammo--
		if p.Ammo <= 0 {
			p.Weapon = WeaponRegular
			p.Ammo = 0
		}
	}
	return true
}

func (c *Context) spiderBlocksFire() bool {
	spider := c.Resolve(c.player.Clinging)
	if spider == nil {
		return false
	}
	return spider.Var3 == boolSign(c.player.FacingRight)
}

func (c *Context) updateEaten() {
	p := &c.player
	if c.Resolve(p.EatenBy) == nil {
		c.releasePlayer()
		return
	}
	// Shots fired from inside land in the eater.
	if c.input.Has(core.ActionFire) && !p.FireHeld {
		c.spawnShot(p.Weapon.shotKind(), dirFromSign(boolSign(p.FacingRight)), p.X+1, p.Y-1)
	}
	p.FireHeld = c.input.Has(core.ActionFire)
}

// releasePlayer ends an eaten/grabbed state.
func (c *Context) releasePlayer() {
	p := &c.player
	if p.State == PlayerEaten {
		p.State = PlayerNormal
	}
	p.EatenBy = SlotRef{}
	p.MercyFrames = mercyFrames
	p.Frame = kinds.PlayerFrame(kinds.PlayerStand, p.FacingRight)
}

func (c *Context) updateShip() {
	p := &c.player
	in := c.input

	if c.pressed(core.ActionJump) {
		if ref, ok := c.SpawnActor(kinds.KindPlayerShip, p.X, p.Y); ok {
			// Short delay before the ship can be boarded again.
			c.Resolve(ref).Var1 = 30
		}
		p.State = PlayerNormal
		p.Frame = kinds.PlayerFrame(kinds.PlayerStand, p.FacingRight)
		return
	}

	shipFrame := c.shipFrame()
	move := func(a core.Action, dir collision.Direction) {
		if !in.Has(a) {
			return
		}
		dx, dy := dir.Delta()
		if !collision.World(c.tiles, dir, kinds.KindPlayerShip, shipFrame, p.X+dx, p.Y+dy) {
			p.X += dx
			p.Y += dy
		}
	}
	if in.Has(core.ActionLeft) != in.Has(core.ActionRight) {
		p.FacingRight = in.Has(core.ActionRight)
	}
	move(core.ActionLeft, collision.Left)
	move(core.ActionRight, collision.Right)
	move(core.ActionUp, collision.Up)
	move(core.ActionDown, collision.Down)

	if in.Has(core.ActionFire) && (!p.FireHeld || c.frameNum%shipShotPeriod == 0) {
		x := p.X + kinds.Frame(kinds.KindPlayerShip, 0).Width
		if !p.FacingRight {
			x = p.X - kinds.Frame(kinds.KindShotShipLaser, 0).Width
		}
		c.spawnShot(kinds.KindShotShipLaser, dirFromSign(boolSign(p.FacingRight)), x, p.Y-1)
	}
	p.FireHeld = in.Has(core.ActionFire)
}

func (c *Context) shipFrame() int {
	if c.player.FacingRight {
		return 1
	}
	return 0
}

func (c *Context) updateDying() {
	p := &c.player
	p.DeathStep++
	if p.DeathStep == 1 {
		c.spawnParticles(p.X+1, p.Y-2, 0, core.ColorWhite)
		c.playSound(render.SoundPlayerDeath)
	}
	p.Frame = kinds.PlayerFrame(kinds.PlayerDying1+min(p.DeathStep/10, 2), p.FacingRight)
	if p.DeathStep >= deathFrames {
		c.respawnPlayer()
	}
}

func (c *Context) respawnPlayer() {
	p := &c.player
	p.X, p.Y = p.RespawnX, p.RespawnY
	p.Health = MaxHealth
	p.State = PlayerNormal
	p.MercyFrames = mercyFrames
	p.JumpStep, p.FallStep, p.DeathStep = 0, 0, 0
	p.Clinging, p.EatenBy, p.Elevator = SlotRef{}, SlotRef{}, SlotRef{}
	p.Deaths++
	p.Frame = kinds.PlayerFrame(kinds.PlayerStand, p.FacingRight)
}

// damagePlayer applies contact damage unless the player is protected by
// mercy frames or the cloak.
func (c *Context) damagePlayer(n int) {
	p := &c.player
	if p.State == PlayerDying || p.State == PlayerExited || p.Cloak > 0 || p.MercyFrames > 0 {
		return
	}
	c.hurtPlayer(n)
	p.MercyFrames = mercyFrames
}

// hurtPlayer removes health without looking at or setting mercy frames.
func (c *Context) hurtPlayer(n int) {
	p := &c.player
	if p.State == PlayerDying || p.State == PlayerExited || p.Cloak > 0 {
		return
	}
	p.Health -= n
	c.playSound(render.SoundPlayerHurt)
	if p.Health <= 0 {
		c.killPlayer()
	}
}

func (c *Context) killPlayer() {
	p := &c.player
	p.Health = 0
	p.State = PlayerDying
	p.DeathStep = 0
	p.Clinging, p.EatenBy, p.Elevator = SlotRef{}, SlotRef{}, SlotRef{}
	p.JumpStep, p.FallStep = 0, 0
}

func (c *Context) healPlayer(n int) {
	p := &c.player
	if p.Health >= MaxHealth {
		c.showMessage(render.MessageHealthFull)
		return
	}
	p.Health = min(p.Health+n, MaxHealth)
}

func (c *Context) addScore(value int) {
	c.player.Score += value
}

func (c *Context) updateCamera() {
	p := &c.player
	maxX := max(0, c.tiles.Width-render.ViewWidth)
	maxY := max(0, c.tiles.Height-render.ViewHeight)
	c.camera.X = core.Clamp(p.X-render.ViewWidth/2+1, 0, maxX)
	c.camera.Y = core.Clamp(p.Y-render.ViewHeight/2-1, 0, maxY)
}

func (c *Context) drawPlayer() {
	p := &c.player
	switch p.State {
	case PlayerEaten, PlayerExited:
		return
	case PlayerInShip:
		c.out.DrawSprite(kinds.KindPlayerShip, c.shipFrame(), p.X, p.Y, render.StyleNormal)
		return
	}
	if p.MercyFrames > 0 && p.State != PlayerDying && c.frameNum%2 == 1 {
		return
	}
	style := render.StyleNormal
	if p.Cloak > 0 {
		style = render.StyleTranslucent
	}
	c.out.DrawSprite(kinds.KindPlayer, p.Frame, p.X, p.Y, style)
}

func boolSign(b bool) int {
	if b {
		return 1
	}
	return -1
}
