package sim

import (
	"testing"

	"github.com/vovakirdan/dn2sim/internal/collision"
	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/render"
)

func placeShot(c *Context, i int, k kinds.Kind, x, y int) *PlayerShot {
	c.shots[i] = PlayerShot{Active: true, Kind: k, Direction: collision.Right, X: x, Y: y}
	return &c.shots[i]
}

func TestOnlyFirstShotCounts(t *testing.T) {
	c := newTestContext(t)
	a := spawn(t, c, kinds.KindSkeleton, 10, 18)
	s1 := placeShot(c, 0, kinds.KindShotRegular, 11, 17)
	s2 := placeShot(c, 1, kinds.KindShotRegular, 11, 16)

	damage := c.TestShotCollision(a)
	if damage != DamageRegular {
		t.Errorf("TestShotCollision() = %d, expected %d", damage, DamageRegular)
	}
	if s1.Active {
		t.Error("first shot still active after the hit")
	}
	if !s2.Active {
		t.Error("second shot was used up by the same test")
	}
	if c.HitDirection() != collision.Right {
		t.Errorf("HitDirection() = %s, expected right", c.HitDirection())
	}

	c.HandleShotCollision(damage, a)
	if a.Health != 1 {
		t.Errorf("Health = %d, expected 1", a.Health)
	}
	if a.Style != render.StyleWhiteFlash {
		t.Errorf("Style = %v, expected white flash", a.Style)
	}
}

func TestLaserPassesThrough(t *testing.T) {
	c := newTestContext(t)
	first := spawn(t, c, kinds.KindSkeleton, 10, 18)
	second := spawn(t, c, kinds.KindSkeleton, 20, 18)
	laser := placeShot(c, 0, kinds.KindShotLaser, 11, 17)

	if got := c.TestShotCollision(first); got != DamageLaser {
		t.Errorf("TestShotCollision(first) = %d, expected %d", got, DamageLaser)
	}
	laser.X = 21
	if got := c.TestShotCollision(second); got != DamageLaser {
		t.Errorf("TestShotCollision(second) = %d, expected %d", got, DamageLaser)
	}
	if !laser.Active {
		t.Error("laser was used up, expected it to pass through")
	}
}

func TestRocketExplodesOnHit(t *testing.T) {
	c := newTestContext(t)
	a := spawn(t, c, kinds.KindSkeleton, 10, 18)
	placeShot(c, 0, kinds.KindShotRocket, 11, 17)

	if got := c.TestShotCollision(a); got != DamageRocket {
		t.Errorf("TestShotCollision() = %d, expected %d", got, DamageRocket)
	}

	found := false
	for i := 0; i < MaxEffects; i++ {
		if e := c.Effect(i); e.Active && e.Kind == kinds.KindExplosion {
			found = true
		}
	}
	if !found {
		t.Error("no explosion effect after a rocket hit")
	}
}

func TestZeroHealthActorsIgnoreShots(t *testing.T) {
	c := newTestContext(t)
	a := spawn(t, c, kinds.KindHealthMolecule, 10, 18)
	s := placeShot(c, 0, kinds.KindShotRegular, 10, 18)

	if got := c.TestShotCollision(a); got != 0 {
		t.Errorf("TestShotCollision() = %d, expected 0", got)
	}
	if !s.Active {
		t.Error("shot was used up on an actor without health")
	}
}

func TestDamageActorKillGrantsScore(t *testing.T) {
	c := newTestContext(t)
	a := spawn(t, c, kinds.KindSkeleton, 10, 18)

	c.HandleShotCollision(DamageRocket, a)

	if !a.Deleted {
		t.Error("skeleton survived a rocket")
	}
	if got := c.Player().Score; got != 100 {
		t.Errorf("Score = %d, expected 100", got)
	}
	if got := c.HUD().Kills; got != 1 {
		t.Errorf("Kills = %d, expected 1", got)
	}
}

func TestOneHitPerFrame(t *testing.T) {
	tests := []struct {
		name   string
		second kinds.Kind
	}{
		{"two regular shots", kinds.KindShotRegular},
		{"regular then laser", kinds.KindShotLaser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t)
			a := spawn(t, c, kinds.KindSkeleton, 10, 18)
			a.AlwaysUpdate = true
			first := placeShot(c, 0, kinds.KindShotRegular, 11, 17)
			placeShot(c, 1, tt.second, 11, 16)

			if _, err := c.UpdateFrame(core.NewInputFrame()); err != nil {
				t.Fatalf("UpdateFrame() failed: %v", err)
			}
			if a.Deleted || a.Health != 1 {
				t.Errorf("after one frame Deleted = %v, Health = %d, expected false, 1", a.Deleted, a.Health)
			}
			if first.Active {
				t.Error("first shot still active after the hit")
			}
		})
	}
}
