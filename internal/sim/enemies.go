package sim

import (
	"github.com/vovakirdan/dn2sim/internal/collision"
	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/render"
)

// sightRange is how far walking enemies notice the player.
const sightRange = 12

func (c *Context) playerCenterX() int {
	return c.player.X + kinds.PlayerWidth/2
}

// playerInSight reports whether the player stands on roughly the same
// row within reach, on the dir side of the actor.
func (c *Context) playerInSight(a *Actor, dir, reach int) bool {
	p := &c.player
	if !p.Visible() || p.State == PlayerDying || p.Cloak > 0 {
		return false
	}
	if p.Y < a.Y-1 || p.Y > a.Y+1 {
		return false
	}
	dx := c.playerCenterX() - centerX(a)
	return core.Sign(dx) == dir && core.Abs(dx) <= reach
}

func (c *Context) fireEnemyLaser(a *Actor, dir, y int) {
	x := a.X + kinds.Frame(a.Kind, a.Frame).Width
	if dir < 0 {
		x = a.X - 1
	}
	ref, ok := c.SpawnActor(kinds.KindEnemyLaserShot, x, y)
	if !ok {
		return
	}
	c.Resolve(ref).Var1 = dir
	c.playSound(render.SoundEnemyShot)
}

// Var1 is the walking direction.
func updateSkeleton(c *Context, a *Actor) {
	if c.frameNum%2 != 0 {
		return
	}
	animate(a)
	if c.moveActor(a, dirFromSign(a.Var1)) {
		a.Var1 = -a.Var1
	}
}

// Blue guard states, kept in Var1. Var2 is the facing, Var3 a countdown
// and Var4 the walk cycle.
const (
	guardWalking = iota
	guardTurning
	guardAiming
	guardShooting
)

const (
	guardTurnFrames  = 2
	guardAimFrames   = 4
	guardShootFrames = 6
)

func updateBlueGuard(c *Context, a *Actor) {
	guardTransition(c, a)
	switch a.Var1 {
	case guardAiming:
		a.Frame = 4
	case guardShooting:
		a.Frame = 5
	default:
		a.Frame = a.Var4
	}
}

// guardTransition runs one step of the guard state machine.
func guardTransition(c *Context, a *Actor) {
	switch a.Var1 {
	case guardWalking:
		if c.playerInSight(a, a.Var2, sightRange) {
			a.Var1 = guardAiming
			a.Var3 = guardAimFrames
			return
		}
		if c.frameNum%2 != 0 {
			return
		}
		a.Var4 = (a.Var4 + 1) % 4
		if c.moveActor(a, dirFromSign(a.Var2)) {
			a.Var1 = guardTurning
			a.Var3 = guardTurnFrames
		}
	case guardTurning:
		a.Var3--
		if a.Var3 <= 0 {
			a.Var2 = -a.Var2
			a.Var1 = guardWalking
		}
	case guardAiming:
		a.Var3--
		if a.Var3 <= 0 {
			a.Var1 = guardShooting
			a.Var3 = guardShootFrames
		}
	case guardShooting:
		if a.Var3 == guardShootFrames {
			c.fireEnemyLaser(a, a.Var2, a.Y-3)
		}
		a.Var3--
		if a.Var3 <= 0 {
			a.Var1 = guardWalking
		}
	}
}

func updateHoverBot(c *Context, a *Actor) {
	animate(a)
	if c.frameNum%2 != 0 {
		return
	}
	if c.moveActor(a, dirFromSign(a.Var1)) {
		a.Var1 = -a.Var1
	}
}

// Var1 is the facing, Var2 a frame counter.
func updateRigelatin(c *Context, a *Actor) {
	a.Var1 = core.Sign(c.playerCenterX() - centerX(a))
	if a.Var1 == 0 {
		a.Var1 = 1
	}
	a.Var2++

	switch {
	case a.Var2%40 == 0:
		if c.playerInSight(a, a.Var1, sightRange+4) {
			c.fireEnemyLaser(a, a.Var1, a.Y-3)
		}
	case a.Var2%4 == 0:
		c.moveActor(a, dirFromSign(a.Var1))
	}

	a.Frame = (a.Var2 / 4) % 2
	if a.Var1 > 0 {
		a.Frame += 2
	}
}

// Var1 is the vertical direction.
func updateWallWalker(c *Context, a *Actor) {
	if c.frameNum%2 != 0 {
		return
	}
	animate(a)
	dir := collision.Down
	if a.Var1 < 0 {
		dir = collision.Up
	}
	if c.moveActor(a, dir) {
		a.Var1 = -a.Var1
	}
}

// Spider states, kept in Var1. Var3 is the side of the player a clinging
// spider sits on and Var4 counts the player's turns since it grabbed on.
const (
	spiderCeiling = iota
	spiderDropping
	spiderWalking
	spiderClinging
)

const (
	spiderShakeTurns  = 4
	spiderBiteFrames  = 16
	spiderDropColumns = 2
)

func updateSpider(c *Context, a *Actor) {
	p := &c.player
	switch a.Var1 {
	case spiderCeiling:
		if p.Visible() && p.Y > a.Y && core.Abs(c.playerCenterX()-centerX(a)) <= spiderDropColumns {
			a.Var1 = spiderDropping
			a.GravityAffected = true
		}
	case spiderDropping:
		if c.onGround(a) {
			a.Var1 = spiderWalking
		}
	case spiderWalking:
		if c.frameNum%2 == 0 {
			animate(a)
			c.moveActor(a, stepToward(a, c.playerCenterX()))
		}
	case spiderClinging:
		if c.Resolve(p.Clinging) != a {
			a.Var1 = spiderWalking
			a.GravityAffected = true
			return
		}
		if a.Var4 >= spiderShakeTurns {
			c.shakeOffSpider(a)
			return
		}
		a.X = p.X - 1
		if a.Var3 > 0 {
			a.X = p.X + kinds.PlayerWidth - 1
		}
		a.Y = p.Y - 2
		animate(a)
		if c.frameNum%spiderBiteFrames == 0 {
			c.damagePlayer(1)
		}
	}
}

func (c *Context) shakeOffSpider(a *Actor) {
	c.player.Clinging = SlotRef{}
	a.Var1 = spiderWalking
	a.Var4 = 0
	a.GravityAffected = true
	a.X += 2 * a.Var3
}

func touchSpider(c *Context, a *Actor) {
	p := &c.player
	if a.Var1 == spiderClinging {
		return
	}
	if p.State != PlayerNormal || c.Resolve(p.Clinging) != nil {
		c.damagePlayer(1)
		return
	}
	a.Var1 = spiderClinging
	a.Var3 = 1
	if centerX(a) < c.playerCenterX() {
		a.Var3 = -1
	}
	a.Var4 = 0
	a.GravityAffected = false
	a.GravityState = GravityGrounded
	p.Clinging = c.refOf(a)
	c.showTutorial(render.TutorialSpider)
}

func shotSpider(c *Context, a *Actor, damage int) {
	if !c.DamageActor(damage, a) {
		return
	}
	if c.Resolve(c.player.Clinging) == a {
		c.player.Clinging = SlotRef{}
	}
	c.destroyActor(a, debrisSmall, core.ColorDarkGray)
}

// Snake states, kept in Var2. Var1 is the crawling direction and Var3
// counts frames while eating.
const (
	snakeCrawling = iota
	snakeEating
)

const snakeBiteFrames = 16

func updateSnake(c *Context, a *Actor) {
	p := &c.player
	if a.Var2 == snakeEating {
		if c.Resolve(p.EatenBy) != a {
			a.Var2 = snakeCrawling
			a.Var3 = 0
			return
		}
		p.X, p.Y = a.X, a.Y
		a.Var3++
		a.Frame = 2 + (a.Var3/4)%2
		if a.Var3%snakeBiteFrames == 0 {
			c.hurtPlayer(1)
		}
		return
	}

	if c.frameNum%2 != 0 {
		return
	}
	a.Frame = (a.Frame + 1) % 2
	if c.moveActor(a, dirFromSign(a.Var1)) {
		a.Var1 = -a.Var1
	}
}

func touchSnake(c *Context, a *Actor) {
	p := &c.player
	if a.Var2 == snakeEating {
		return
	}
	if p.State != PlayerNormal {
		c.damagePlayer(1)
		return
	}
	p.State = PlayerEaten
	p.EatenBy = c.refOf(a)
	p.JumpStep, p.FallStep = 0, 0
	p.Elevator = SlotRef{}
	a.Var2 = snakeEating
	a.Var3 = 0
	c.playSound(render.SoundSwallow)
}

func shotSnake(c *Context, a *Actor, damage int) {
	if !c.DamageActor(damage, a) {
		return
	}
	if a.Var2 == snakeEating && c.Resolve(c.player.EatenBy) == a {
		c.releasePlayer()
	}
	c.destroyActor(a, debrisMedium, core.ColorGreen)
}

// Ceiling sucker states, kept in Var1. Var2 is a countdown.
const (
	suckerWaiting = iota
	suckerHolding
	suckerResting
)

const (
	suckerHoldFrames = 30
	suckerRestFrames = 60
)

func updateCeilingSucker(c *Context, a *Actor) {
	p := &c.player
	switch a.Var1 {
	case suckerHolding:
		if c.Resolve(p.EatenBy) != a {
			a.Var1 = suckerResting
			a.Var2 = suckerRestFrames
			return
		}
		p.X, p.Y = a.X, a.Y
		a.Frame = 1 + (a.Var2/2)%2
		a.Var2--
		if a.Var2 <= 0 {
			c.hurtPlayer(1)
			c.releasePlayer()
			p.Y = a.Y + kinds.PlayerHeight
			a.Var1 = suckerResting
			a.Var2 = suckerRestFrames
		}
	case suckerResting:
		a.Frame = 0
		a.Var2--
		if a.Var2 <= 0 {
			a.Var1 = suckerWaiting
		}
	}
}

func touchCeilingSucker(c *Context, a *Actor) {
	p := &c.player
	if a.Var1 != suckerWaiting || p.State != PlayerNormal {
		return
	}
	p.State = PlayerEaten
	p.EatenBy = c.refOf(a)
	p.JumpStep, p.FallStep = 0, 0
	a.Var1 = suckerHolding
	a.Var2 = suckerHoldFrames
	c.playSound(render.SoundSwallow)
}

func shotCeilingSucker(c *Context, a *Actor, damage int) {
	if !c.DamageActor(damage, a) {
		return
	}
	if a.Var1 == suckerHolding && c.Resolve(c.player.EatenBy) == a {
		c.releasePlayer()
	}
	c.destroyActor(a, debrisMedium, core.ColorMagenta)
}

func updateSlimeBlob(c *Context, a *Actor) {
	if c.frameNum%3 != 0 {
		return
	}
	animate(a)
	c.moveActor(a, stepToward(a, c.playerCenterX()))
}

// Var1 is the flying direction.
func updateRedBird(c *Context, a *Actor) {
	animate(a)
	if c.moveActor(a, dirFromSign(a.Var1)) {
		a.Var1 = -a.Var1
	}
	if c.frameNum%2 != 0 {
		return
	}
	switch target := c.player.Y - 2; {
	case a.Y < target:
		c.moveActor(a, collision.Down)
	case a.Y > target:
		c.moveActor(a, collision.Up)
	}
}

// Var1 is the direction, Var2 the bomb cooldown.
func updateBomberPlane(c *Context, a *Actor) {
	animate(a)
	if c.moveActor(a, dirFromSign(a.Var1)) {
		a.Var1 = -a.Var1
	}
	if a.Var2 > 0 {
		a.Var2--
		return
	}
	if c.player.Y > a.Y && core.Abs(c.playerCenterX()-centerX(a)) <= 1 {
		c.SpawnActor(kinds.KindBomb, centerX(a), a.Y+1)
		a.Var2 = 20
	}
}

func updateBomb(c *Context, a *Actor) {
	if c.onGround(a) {
		c.explode(a)
	}
}

func touchBomb(c *Context, a *Actor) {
	c.damagePlayer(1)
	c.explode(a)
}

// Var1 is the facing, Var2 a frame counter.
func updateEyeballThrower(c *Context, a *Actor) {
	a.Var1 = core.Sign(c.playerCenterX() - centerX(a))
	if a.Var1 == 0 {
		a.Var1 = -1
	}
	a.Var2++
	phase := a.Var2 % 25
	switch {
	case phase == 0 && core.Abs(c.playerCenterX()-centerX(a)) <= sightRange+4:
		x := a.X + kinds.Frame(a.Kind, 0).Width
		if a.Var1 < 0 {
			x = a.X - 1
		}
		if ref, ok := c.SpawnActor(kinds.KindEyeball, x, a.Y-3); ok {
			c.Resolve(ref).Var1 = a.Var1
		}
		a.Frame = 2
	case phase < 4 && a.Var2 >= 25:
		a.Frame = 2
	default:
		a.Frame = (a.Var2 / 8) % 2
	}
}

var eyeballArc = [...]int{-1, -1, -1, 0, 0, 1, 1, 1, 1, 2}

// Var1 is the direction, Var2 the arc step.
func updateEyeball(c *Context, a *Actor) {
	a.X += a.Var1
	a.Y += eyeballArc[min(a.Var2, len(eyeballArc)-1)]
	a.Var2++
	if c.worldHit(a, dirFromSign(a.Var1)) || c.worldHit(a, collision.Down) {
		c.spawnEffect(kinds.KindShotImpact, a.X, a.Y, PatternStatic, 0)
		c.deleteActor(a)
		return
	}
	if !c.isOnScreen(a) {
		c.deleteActor(a)
	}
}

// Watch bot: Var1 is the hop cooldown, Var2 the rising frames left and
// Var3 the hop direction.
func updateWatchBot(c *Context, a *Actor) {
	if a.Var2 > 0 {
		a.Var2--
		a.GravityState = GravityGrounded
		c.moveActor(a, collision.Up)
		c.moveActor(a, dirFromSign(a.Var3))
		animate(a)
		return
	}
	if !c.onGround(a) {
		return
	}
	if a.Var1 > 0 {
		a.Var1--
		return
	}
	r := int(c.rng.Next())
	a.Var3 = 1
	if r&1 == 0 {
		a.Var3 = -1
	}
	a.Var2 = 3
	a.Var1 = 10 + r%20
}

// Var1 is the flying direction, fixed when the fighter is first seen.
func updateSmallFighter(c *Context, a *Actor) {
	if a.Var1 == 0 {
		a.Var1 = core.Sign(c.playerCenterX() - centerX(a))
		if a.Var1 == 0 {
			a.Var1 = -1
		}
	}
	for iter := 0; iter < 2; iter++ {
		if c.moveActor(a, dirFromSign(a.Var1)) {
			c.explode(a)
			return
		}
	}
	if !c.isOnScreen(a) {
		c.deleteActor(a)
	}
}

func updateEnemyLaserShot(c *Context, a *Actor) {
	for iter := 0; iter < 2; iter++ {
		a.X += a.Var1
		if c.worldHit(a, dirFromSign(a.Var1)) {
			c.spawnEffect(kinds.KindShotImpact, a.X, a.Y, PatternStatic, 0)
			c.deleteActor(a)
			return
		}
	}
	if !c.isOnScreen(a) {
		c.deleteActor(a)
	}
}
