package sim

import (
	"github.com/vovakirdan/dn2sim/internal/collision"
	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/render"
)

// Pattern selects an effect's per-frame movement table.
type Pattern uint8

const (
	PatternStatic Pattern = iota
	PatternRise
	PatternDebrisLeft
	PatternDebrisRight
	PatternDebrisUp
	PatternFlyLeft
	PatternFlyRight
)

var patternMoves = [...][]core.Point{
	PatternStatic:      nil,
	PatternRise:        {{Y: -1}, {Y: -1}, {}, {Y: -1}, {}, {Y: -1}, {}, {}, {Y: -1}},
	PatternDebrisLeft:  {{X: -1, Y: -2}, {X: -1, Y: -1}, {X: -1, Y: -1}, {X: -1}, {X: -1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 2}, {X: -1, Y: 2}},
	PatternDebrisRight: {{X: 1, Y: -2}, {X: 1, Y: -1}, {X: 1, Y: -1}, {X: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 2}},
	PatternDebrisUp:    {{Y: -2}, {Y: -2}, {Y: -1}, {Y: -1}, {}, {Y: 1}, {Y: 1}, {Y: 2}},
	PatternFlyLeft:     {{X: -2}, {X: -2}, {X: -2}, {X: -2}, {X: -2}, {X: -2}},
	PatternFlyRight:    {{X: 2}, {X: 2}, {X: 2}, {X: 2}, {X: 2}, {X: 2}},
}

// Effect is a transient object: explosions, debris, floating scores and
// the fire of a napalm bomb. Fire bombs also damage actors.
type Effect struct {
	Active       bool       `msgpack:"active"`
	Kind         kinds.Kind `msgpack:"k"`
	Frame        int        `msgpack:"f"`
	X            int        `msgpack:"x"`
	Y            int        `msgpack:"y"`
	SpawnDelay   int        `msgpack:"delay"`
	MovementStep int        `msgpack:"step"`
	Pattern      Pattern    `msgpack:"pattern"`
	Lifetime     int        `msgpack:"life"`
}

// DebrisSpawn is one entry of a destruction pattern.
type DebrisSpawn struct {
	DX, DY  int
	Delay   int
	Effect  kinds.Kind
	Pattern Pattern
}

// Destruction patterns.
var (
	debrisSmall = []DebrisSpawn{
		{Effect: kinds.KindExplosion},
	}
	debrisMedium = []DebrisSpawn{
		{Effect: kinds.KindExplosion},
		{DX: -1, DY: -1, Delay: 1, Effect: kinds.KindDebris, Pattern: PatternDebrisLeft},
		{DX: 1, DY: -1, Delay: 1, Effect: kinds.KindDebris, Pattern: PatternDebrisRight},
		{DY: -2, Delay: 3, Effect: kinds.KindSmokePuff, Pattern: PatternRise},
	}
	debrisLarge = []DebrisSpawn{
		{Effect: kinds.KindExplosion},
		{DX: -2, DY: -1, Delay: 2, Effect: kinds.KindExplosion},
		{DX: 2, DY: -2, Delay: 4, Effect: kinds.KindExplosion},
		{DX: 0, DY: -3, Delay: 6, Effect: kinds.KindExplosion},
		{DX: -1, DY: -1, Delay: 1, Effect: kinds.KindDebris, Pattern: PatternDebrisLeft},
		{DX: 1, DY: -1, Delay: 1, Effect: kinds.KindDebris, Pattern: PatternDebrisRight},
		{DY: -2, Delay: 1, Effect: kinds.KindDebris, Pattern: PatternDebrisUp},
	}
	debrisBox = []DebrisSpawn{
		{Effect: kinds.KindShotImpact},
		{DX: -1, Effect: kinds.KindDebris, Pattern: PatternDebrisLeft},
		{DX: 1, Effect: kinds.KindDebris, Pattern: PatternDebrisRight},
		{DY: -1, Effect: kinds.KindDebris, Pattern: PatternDebrisUp},
	}
	debrisSpark = []DebrisSpawn{
		{Effect: kinds.KindShotImpact},
	}
)

func effectLifetime(k kinds.Kind, p Pattern) int {
	if moves := patternMoves[p]; len(moves) > 0 {
		return len(moves)
	}
	switch k {
	case kinds.KindScoreNumber:
		return 20
	case kinds.KindFireBomb:
		return 24
	}
	return kinds.FrameCount(k)
}

// spawnEffect claims the first free effect slot. A full pool drops the
// effect silently.
func (c *Context) spawnEffect(k kinds.Kind, x, y int, p Pattern, delay int) *Effect {
	for i := range c.effects {
		e := &c.effects[i]
		if e.Active {
			continue
		}
		*e = Effect{
			Active:     true,
			Kind:       k,
			X:          x,
			Y:          y,
			SpawnDelay: delay,
			Pattern:    p,
			Lifetime:   effectLifetime(k, p),
		}
		return e
	}
	c.log.Debug("effect pool full, effect dropped", "kind", k)
	return nil
}

// spawnScore shows a floating score number if the value has a sprite.
func (c *Context) spawnScore(value, x, y int) {
	frame := kinds.ScoreFrame(value)
	if frame < 0 {
		return
	}
	if e := c.spawnEffect(kinds.KindScoreNumber, x, y, PatternRise, 0); e != nil {
		e.Frame = frame
	}
}

// spawnDestruction spawns a debris pattern relative to the actor plus a
// particle burst of color.
func (c *Context) spawnDestruction(a *Actor, pattern []DebrisSpawn, color core.Color) {
	for _, d := range pattern {
		c.spawnEffect(d.Effect, a.X+d.DX, a.Y+d.DY, d.Pattern, d.Delay)
	}
	c.spawnParticles(centerX(a), a.Y, 0, color)
}

// spawnParticles starts a particle burst at a tile position.
func (c *Context) spawnParticles(x, y, dir int, color core.Color) {
	px := x*render.PixelsPerTile + render.PixelsPerTile/2
	py := y*render.PixelsPerTile + render.PixelsPerTile/2
	if !c.particles.Spawn(&c.rng, px, py, dir, color) {
		c.log.Debug("particle groups busy, burst dropped", "x", x, "y", y)
	}
}

// updateEffects advances every effect. Effects still in their spawn delay
// are neither drawn nor collidable.
func (c *Context) updateEffects() {
	for i := range c.effects {
		e := &c.effects[i]
		if !e.Active {
			continue
		}
		if e.SpawnDelay > 0 {
			e.SpawnDelay--
			if e.SpawnDelay == 0 && e.Kind == kinds.KindExplosion {
				c.playSound(render.SoundExplosion)
			}
			continue
		}

		if moves := patternMoves[e.Pattern]; e.MovementStep < len(moves) {
			e.X += moves[e.MovementStep].X
			e.Y += moves[e.MovementStep].Y
		}
		e.MovementStep++

		if e.Kind == kinds.KindFireBomb {
			c.updateFireBomb(e)
		}

		c.out.DrawSprite(e.Kind, e.Frame, e.X, e.Y, render.StyleNormal)

		if e.Kind != kinds.KindScoreNumber {
			if n := kinds.FrameCount(e.Kind); n > 0 {
				e.Frame = (e.Frame + 1) % n
			}
		}
		e.Lifetime--
		if e.Lifetime <= 0 {
			e.Active = false
		}
	}
}

// updateFireBomb makes napalm fire fall onto the floor below it.
func (c *Context) updateFireBomb(e *Effect) {
	if !collision.World(c.tiles, collision.Down, e.Kind, e.Frame, e.X, e.Y+1) {
		e.Y++
	}
}
