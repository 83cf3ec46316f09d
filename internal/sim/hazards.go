package sim

import (
	"github.com/vovakirdan/dn2sim/internal/collision"
	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/render"
)

const (
	turretLaserPeriod  = 30
	turretRocketPeriod = 40
	flameJetPeriod     = 60
	flameJetIdle       = 40
	hammerRestFrames   = 30
)

// Var1 is a frame counter.
func updateLaserTurret(c *Context, a *Actor) {
	dir := core.Sign(c.playerCenterX() - centerX(a))
	if dir == 0 {
		dir = 1
	}
	a.Var1++
	a.Frame = (a.Var1 / 4) % 2
	if dir > 0 {
		a.Frame += 2
	}
	if a.Var1%turretLaserPeriod == 0 && c.playerInSight(a, dir, sightRange) {
		c.fireEnemyLaser(a, dir, a.Y-1)
	}
}

// Var1 is a frame counter. The turret aims at the player along the
// dominant axis.
func updateRocketTurret(c *Context, a *Actor) {
	p := &c.player
	dx := c.playerCenterX() - centerX(a)
	dy := p.Y - a.Y

	var (
		k    kinds.Kind
		x, y int
	)
	switch {
	case dy < -3 && core.Abs(dx) <= 3:
		a.Frame = 1
		k, x, y = kinds.KindEnemyRocketUp, a.X, a.Y-2
	case dy > 3 && core.Abs(dx) <= 3:
		a.Frame = 1
		k, x, y = kinds.KindEnemyRocketDown, a.X, a.Y+2
	case dx < 0:
		a.Frame = 0
		k, x, y = kinds.KindEnemyRocketLeft, a.X-2, a.Y-1
	default:
		a.Frame = 2
		k, x, y = kinds.KindEnemyRocketRight, a.X+2, a.Y-1
	}

	a.Var1++
	if a.Var1%turretRocketPeriod == 0 && p.Visible() {
		if _, ok := c.SpawnActor(k, x, y); ok {
			c.playSound(render.SoundRocket)
		}
	}
}

var rocketDirections = map[kinds.Kind]collision.Direction{
	kinds.KindEnemyRocketLeft:  collision.Left,
	kinds.KindEnemyRocketRight: collision.Right,
	kinds.KindEnemyRocketUp:    collision.Up,
	kinds.KindEnemyRocketDown:  collision.Down,
}

func updateEnemyRocket(c *Context, a *Actor) {
	dir := rocketDirections[a.Kind]
	dx, dy := dir.Delta()
	a.X += dx
	a.Y += dy

	check := dir
	if a.Kind == kinds.KindEnemyRocketDown {
		// The downward rocket tests its top edge, so it passes through
		// floors that are only solid from above.
		check = collision.Up
	}
	if c.worldHit(a, check) {
		c.explode(a)
		return
	}
	if !c.isOnScreen(a) {
		c.deleteActor(a)
	}
}

// Var1 is a frame counter. Between bursts the jet is invisible and so
// takes no part in collisions.
func updateFlameJet(c *Context, a *Actor) {
	a.Var1++
	if a.Var1%flameJetPeriod < flameJetIdle {
		a.Frame = 0
		a.Style = render.StyleInvisible
		return
	}
	a.Frame = (a.Var1 / 2) % 3
}

// Var1 is the vertical direction, Var2 is set on the frame the ball
// bounces.
func updateSpikeBall(c *Context, a *Actor) {
	a.Var2 = 0
	dir := collision.Down
	if a.Var1 < 0 {
		dir = collision.Up
	}
	if c.moveActor(a, dir) {
		a.Var1 = -a.Var1
		a.Var2 = 1
		c.playSound(render.SoundBounce)
	}
}

func touchSpikeBall(c *Context, a *Actor) {
	if a.Var2 == 1 {
		// Bounce hit. Ignores mercy frames and continues into the
		// regular contact damage, so the player loses two units.
		c.hurtPlayer(1)
	}
	c.damagePlayer(1)
}

// Var1 is 0 while hanging and 1 once falling.
func updateCeilingSpike(c *Context, a *Actor) {
	p := &c.player
	if a.Var1 == 0 {
		if p.Visible() && p.Y > a.Y && core.Abs(c.playerCenterX()-a.X) <= 1 {
			a.Var1 = 1
			a.GravityAffected = true
		}
		return
	}
	if c.onGround(a) {
		c.destroyActor(a, debrisSpark, core.ColorLightGray)
	}
}

// Smash hammer states, kept in Var1. Var2 is a countdown and Var3 the
// resting row.
const (
	hammerRaised = iota
	hammerSmashing
	hammerRising
)

func setupSmashHammer(c *Context, a *Actor) error {
	a.Var3 = a.Y
	return nil
}

func updateSmashHammer(c *Context, a *Actor) {
	switch a.Var1 {
	case hammerRaised:
		a.Var2++
		if a.Var2 >= hammerRestFrames {
			a.Var1 = hammerSmashing
			a.Var2 = 0
		}
	case hammerSmashing:
		for iter := 0; iter < 2; iter++ {
			if c.moveActor(a, collision.Down) {
				a.Var1 = hammerRising
				c.playSound(render.SoundBounce)
				break
			}
		}
	case hammerRising:
		if a.Y > a.Var3 {
			a.Y--
			return
		}
		a.Var1 = hammerRaised
	}
}

func shotSlimeContainer(c *Context, a *Actor, damage int) {
	if !c.DamageActor(damage, a) {
		return
	}
	c.SpawnActor(kinds.KindSlimeBlob, a.X, a.Y)
	c.destroyActor(a, debrisSmall, core.ColorLightGreen)
}

func shotNuclearWasteBarrel(c *Context, a *Actor, damage int) {
	if !c.DamageActor(damage, a) {
		return
	}
	c.destroyActor(a, debrisLarge, core.ColorGreen)
	c.SpawnActor(kinds.KindSlimeBlob, a.X, a.Y)
}
