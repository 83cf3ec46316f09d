package sim

import (
	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/render"
)

// Boss phases, kept in Var1. Var2 is a frame counter and Var3 the
// hovering direction.
const (
	bossWaiting = iota
	bossPhase1
	bossPhase2
	bossDying
)

const (
	bossHealth       = 50
	bossPhase2Health = 30
	bossDyingFrames  = 40
	bossWakeRange    = 16
)

func updateBoss(c *Context, a *Actor) {
	a.Var2++
	animateBoss(a)

	switch a.Var1 {
	case bossWaiting:
		if core.Abs(c.playerCenterX()-centerX(a)) <= bossWakeRange && c.player.Visible() {
			c.startBoss(a)
		}
	case bossPhase1:
		if a.Var2%2 == 0 {
			c.bossHover(a)
		}
		if a.Var2%40 == 0 {
			c.fireEnemyLaser(a, c.bossFacing(a), a.Y-2)
		}
	case bossPhase2:
		c.bossHover(a)
		if a.Var2%30 == 0 {
			k, x := kinds.KindEnemyRocketRight, a.X+kinds.Frame(a.Kind, 0).Width
			if c.bossFacing(a) < 0 {
				k, x = kinds.KindEnemyRocketLeft, a.X-2
			}
			c.SpawnActor(k, x, a.Y-2)
		}
	case bossDying:
		a.Style = render.StyleWhiteFlash
		if a.Var2%4 == 0 {
			r := int(c.rng.Next())
			c.spawnEffect(kinds.KindExplosion, a.X+r%6-1, a.Y-(r/8)%5, PatternStatic, 0)
		}
		a.Var4--
		if a.Var4 <= 0 {
			c.destroyActor(a, debrisLarge, core.ColorLightMagenta)
			c.showMessage(render.MessageBossDefeated)
			c.exitLevel()
		}
	}
}

func animateBoss(a *Actor) {
	if a.Var1 == bossWaiting {
		a.Frame = 0
		return
	}
	a.Frame = 1 + (a.Var2/4)%3
}

func (c *Context) startBoss(a *Actor) {
	a.Var1 = bossPhase1
	a.Var3 = c.bossFacing(a)
	a.AlwaysUpdate = true
}

func (c *Context) bossFacing(a *Actor) int {
	if c.playerCenterX() < centerX(a) {
		return -1
	}
	return 1
}

func (c *Context) bossHover(a *Actor) {
	if a.Var3 == 0 {
		a.Var3 = -1
	}
	if c.moveActor(a, dirFromSign(a.Var3)) {
		a.Var3 = -a.Var3
	}
}

// shotBoss drives the phase changes directly instead of using
// DamageActor.
func shotBoss(c *Context, a *Actor, damage int) {
	switch a.Var1 {
	case bossDying:
		return
	case bossWaiting:
		c.startBoss(a)
	}
	a.Health -= damage
	a.Style = render.StyleWhiteFlash
	c.playSound(render.SoundEnemyHit)

	switch {
	case a.Health <= 0:
		a.Health = 0
		a.Var1 = bossDying
		a.Var4 = bossDyingFrames
		c.addScore(a.ScoreGiven)
		c.hud.Kills++
		c.playSound(render.SoundBigExplosion)
	case a.Health <= bossPhase2Health && a.Var1 == bossPhase1:
		a.Var1 = bossPhase2
	}
}
