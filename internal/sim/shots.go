package sim

import (
	"github.com/vovakirdan/dn2sim/internal/collision"
	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/render"
)

// Weapon is the player's current gun.
type Weapon uint8

const (
	WeaponRegular Weapon = iota
	WeaponLaser
	WeaponRocket
	WeaponFlame
)

func (w Weapon) String() string {
	switch w {
	case WeaponLaser:
		return "laser"
	case WeaponRocket:
		return "rocket"
	case WeaponFlame:
		return "flame"
	}
	return "regular"
}

func (w Weapon) shotKind() kinds.Kind {
	switch w {
	case WeaponLaser:
		return kinds.KindShotLaser
	case WeaponRocket:
		return kinds.KindShotRocket
	case WeaponFlame:
		return kinds.KindShotFlame
	}
	return kinds.KindShotRegular
}

// Damage per damage source.
const (
	DamageRegular  = 1
	DamageFlame    = 2
	DamageLaser    = 2
	DamageRocket   = 8
	DamageShipShot = 3
	DamageFireBomb = 1
)

// PlayerShot is a projectile fired by the player.
type PlayerShot struct {
	Active    bool                `msgpack:"active"`
	Kind      kinds.Kind          `msgpack:"k"`
	Direction collision.Direction `msgpack:"dir"`
	X         int                 `msgpack:"x"`
	Y         int                 `msgpack:"y"`
}

// Frame is 0 for horizontal and 1 for vertical shots.
func (s *PlayerShot) Frame() int {
	if s.Direction.Horizontal() {
		return 0
	}
	return 1
}

func shotDamage(k kinds.Kind) int {
	switch k {
	case kinds.KindShotLaser:
		return DamageLaser
	case kinds.KindShotRocket:
		return DamageRocket
	case kinds.KindShotFlame:
		return DamageFlame
	case kinds.KindShotShipLaser:
		return DamageShipShot
	}
	return DamageRegular
}

// passesThrough reports whether a shot keeps flying after a hit.
func passesThrough(k kinds.Kind) bool {
	return k == kinds.KindShotLaser
}

func shotSpeed(k kinds.Kind) int {
	switch k {
	case kinds.KindShotRocket:
		return 1
	case kinds.KindShotShipLaser:
		return 3
	}
	return 2
}

var weaponSound = map[kinds.Kind]render.Sound{
	kinds.KindShotRegular:   render.SoundPlayerShot,
	kinds.KindShotLaser:     render.SoundLaser,
	kinds.KindShotRocket:    render.SoundRocket,
	kinds.KindShotFlame:     render.SoundFlame,
	kinds.KindShotShipLaser: render.SoundLaser,
}

// spawnShot claims a free shot slot; a full pool drops the shot.
func (c *Context) spawnShot(k kinds.Kind, dir collision.Direction, x, y int) bool {
	for i := range c.shots {
		s := &c.shots[i]
		if s.Active {
			continue
		}
		*s = PlayerShot{Active: true, Kind: k, Direction: dir, X: x, Y: y}
		c.playSound(weaponSound[k])
		return true
	}
	return false
}

// updatePlayerShots moves shots and stops them at walls and at the edge of
// the viewport. Rockets explode on walls.
func (c *Context) updatePlayerShots() {
	view := c.viewRect()
	for i := range c.shots {
		s := &c.shots[i]
		if !s.Active {
			continue
		}
		dx, dy := s.Direction.Delta()
		for step := 0; step < shotSpeed(s.Kind); step++ {
			s.X += dx
			s.Y += dy
			if collision.World(c.tiles, s.Direction, s.Kind, s.Frame(), s.X, s.Y) {
				c.shotHitWall(s)
				break
			}
		}
		if !s.Active {
			continue
		}
		if !view.Contains(s.X, s.Y) {
			s.Active = false
			continue
		}
		c.out.DrawSprite(s.Kind, s.Frame(), s.X, s.Y, render.StyleNormal)
	}
}

func (c *Context) shotHitWall(s *PlayerShot) {
	s.Active = false
	if s.Kind == kinds.KindShotRocket {
		c.spawnEffect(kinds.KindExplosion, s.X, s.Y, PatternStatic, 0)
		c.playSound(render.SoundExplosion)
		return
	}
	c.spawnEffect(kinds.KindShotImpact, s.X, s.Y, PatternStatic, 0)
}
