package sim

import (
	"github.com/vovakirdan/dn2sim/internal/collision"
	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/render"
)

// TestShotCollision returns the damage the actor takes from fire bombs or
// player shots this frame, or 0. Only the first hit counts. Shots that do
// not pass through targets are used up, and rockets explode on impact.
func (c *Context) TestShotCollision(a *Actor) int {
	if a.Health <= 0 {
		return 0
	}

	for i := range c.effects {
		e := &c.effects[i]
		if !e.Active || e.Kind != kinds.KindFireBomb || e.SpawnDelay > 0 {
			continue
		}
		if collision.Touching(a.Kind, a.Frame, a.X, a.Y, e.Kind, e.Frame, e.X, e.Y) {
			c.hitDirection = collision.DirNone
			return DamageFireBomb
		}
	}

	for i := range c.shots {
		s := &c.shots[i]
		if !s.Active || !collision.Touching(a.Kind, a.Frame, a.X, a.Y, s.Kind, s.Frame(), s.X, s.Y) {
			continue
		}
		c.hitDirection = s.Direction
		if !passesThrough(s.Kind) {
			s.Active = false
		}
		if s.Kind == kinds.KindShotRocket {
			c.spawnEffect(kinds.KindExplosion, s.X, s.Y, PatternStatic, 0)
			c.playSound(render.SoundExplosion)
		}
		return shotDamage(s.Kind)
	}
	return 0
}

// HitDirection is the direction of the shot matched by the last
// TestShotCollision.
func (c *Context) HitDirection() collision.Direction {
	return c.hitDirection
}

// HandleShotCollision applies the kind's reaction to damage.
func (c *Context) HandleShotCollision(damage int, a *Actor) {
	if damage <= 0 {
		return
	}
	if react := kindTable[a.Kind].shot; react != nil {
		react(c, a, damage)
		return
	}
	if c.DamageActor(damage, a) {
		c.destroyActor(a, debrisMedium, a.Kind.Info().Color)
	}
}

// DamageActor subtracts damage from the actor's health. It reports true
// when the actor is killed, after granting its score; otherwise the actor
// flashes white for this frame.
func (c *Context) DamageActor(damage int, a *Actor) bool {
	a.Health -= damage
	if a.Health <= 0 {
		c.addScore(a.ScoreGiven)
		c.spawnScore(a.ScoreGiven, a.X, a.Y-1)
		c.hud.Kills++
		return true
	}
	a.Style = render.StyleWhiteFlash
	c.playSound(render.SoundEnemyHit)
	return false
}

// destroyActor spawns the destruction pattern and deletes the actor.
func (c *Context) destroyActor(a *Actor, pattern []DebrisSpawn, color core.Color) {
	c.spawnDestruction(a, pattern, color)
	c.playSound(render.SoundExplosion)
	c.deleteActor(a)
}

// explode replaces the actor with a single explosion.
func (c *Context) explode(a *Actor) {
	c.spawnEffect(kinds.KindExplosion, a.X-1, a.Y, PatternStatic, 0)
	c.playSound(render.SoundExplosion)
	c.deleteActor(a)
}

func shotExplodes(c *Context, a *Actor, damage int) {
	if c.DamageActor(damage, a) {
		c.explode(a)
	}
}
