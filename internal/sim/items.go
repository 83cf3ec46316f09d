package sim

import (
	"github.com/vovakirdan/dn2sim/internal/collision"
	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/render"
)

// Item box release phases, kept in Var1.
const (
	boxClosed   = 0
	boxOpened   = 1
	boxBursting = 2
	boxRelease  = 3
	// itemLanded ends the release arc. Phases boxRelease..itemLanded-1 each
	// take one arc step.
	itemLanded = boxRelease + len(releaseArc)
)

// releaseArc is the vertical offset per frame of an item leaving its box.
var releaseArc = [...]int{-3, -2, -1, 0, 1, 2, 3, -1, 1}

var boxContents = map[kinds.Kind]kinds.Kind{
	kinds.KindBoxGrey:  kinds.KindRapidFire,
	kinds.KindBoxRed:   kinds.KindSodaCan,
	kinds.KindBoxGreen: kinds.KindLaserGun,
	kinds.KindBoxBlue:  kinds.KindGlobeBlue,
}

func setupItemBox(c *Context, a *Actor) error {
	a.Var2 = int(boxContents[a.Kind])
	return nil
}

// shotItemBox opens the box. The box stops being shootable immediately.
func shotItemBox(c *Context, a *Actor, damage int) {
	a.Health = 0
	a.Var1 = boxOpened
	c.spawnDestruction(a, debrisBox, a.Kind.Info().Color)
	c.playSound(render.SoundBoxOpen)
	c.addScore(a.ScoreGiven)
}

func updateItemBox(c *Context, a *Actor) {
	switch a.Var1 {
	case boxClosed:
		if c.isOnScreen(a) {
			c.showTutorial(render.TutorialBox)
		}
	case boxOpened:
		a.Style = render.StyleInvisible
		a.Var1 = boxBursting
	case boxBursting:
		a.Style = render.StyleInvisible
		a.Var1 = boxRelease
	case boxRelease:
		c.releaseBoxContents(a)
	}
}

// releaseBoxContents turns the box into the item it holds. An empty box
// just disappears.
func (c *Context) releaseBoxContents(a *Actor) {
	item := kinds.Kind(a.Var2)
	if item == kinds.KindNone || !item.Valid() {
		c.deleteActor(a)
		return
	}
	a.Kind = item
	a.Frame = 0
	a.Health = 0
	if item.Info().Shootable {
		a.Health = 1
	}
	a.ScoreGiven = kindTable[item].init.score
	a.Var1 = boxRelease
	a.Var2 = 0
	a.GravityAffected = false
	a.GravityState = GravityGrounded
}

// updateReleaseArc moves an item along its release arc. It reports
// whether the item is still flying.
func updateReleaseArc(a *Actor) bool {
	if a.Var1 < boxRelease || a.Var1 >= itemLanded {
		return false
	}
	a.Y += releaseArc[a.Var1-boxRelease]
	a.Var1++
	if a.Var1 == itemLanded {
		a.GravityAffected = true
	}
	return true
}

func updateItem(c *Context, a *Actor) {
	if updateReleaseArc(a) {
		return
	}
	animate(a)
}

// pickUp removes an item and shows its score.
func (c *Context) pickUp(a *Actor, score int, sound render.Sound) {
	if score > 0 {
		c.addScore(score)
		c.spawnScore(score, a.X, a.Y-1)
	}
	c.playSound(sound)
	c.deleteActor(a)
}

func touchHealth(c *Context, a *Actor) {
	c.showTutorial(render.TutorialHealth)
	if c.player.Health >= MaxHealth {
		c.pickUp(a, 10000, render.SoundPickup)
		return
	}
	c.healPlayer(1)
	c.pickUp(a, 0, render.SoundHealth)
}

func touchSodaCan(c *Context, a *Actor) {
	c.healPlayer(1)
	c.pickUp(a, 100, render.SoundHealth)
}

// shotSodaCan sends the can flying; caught in flight it is worth more.
func shotSodaCan(c *Context, a *Actor, damage int) {
	a.Kind = kinds.KindSodaCanFlying
	a.Frame = 0
	a.Health = 0
	a.GravityAffected = false
	a.AlwaysUpdate = true
	c.playSound(render.SoundBounce)
}

func updateSodaCanFlying(c *Context, a *Actor) {
	animate(a)
	if c.moveActor(a, collision.Up) || !c.isOnScreen(a) {
		c.spawnEffect(kinds.KindShotImpact, a.X, a.Y, PatternStatic, 0)
		c.deleteActor(a)
	}
}

func touchSodaCanFlying(c *Context, a *Actor) {
	c.pickUp(a, 1000, render.SoundPickup)
}

func shotTurkey(c *Context, a *Actor, damage int) {
	a.Kind = kinds.KindTurkeyCooked
	a.Frame = 0
	a.Health = 0
	c.spawnParticles(centerX(a), a.Y, 0, core.ColorYellow)
}

func touchTurkey(c *Context, a *Actor) {
	heal := 1
	if a.Kind == kinds.KindTurkeyCooked {
		heal = 2
	}
	c.healPlayer(heal)
	c.pickUp(a, 100, render.SoundHealth)
}

func touchGlobe(c *Context, a *Actor) {
	c.pickUp(a, a.ScoreGiven, render.SoundPickup)
}

// Letter scoring.
const (
	letterScore     = 10100
	letterBonus     = 100000
	letterPityBonus = 10000
)

var letterOrder = [...]kinds.Kind{
	kinds.KindLetterN, kinds.KindLetterU, kinds.KindLetterK, kinds.KindLetterE, kinds.KindLetterM,
}

func touchLetter(c *Context, a *Actor) {
	c.showTutorial(render.TutorialLetters)
	c.collectLetter(a.Kind)
	c.playSound(render.SoundLetter)
	c.deleteActor(a)
}

// collectLetter scores a letter pickup. Out-of-order pickups pay the
// consolation bonus every time, not just once.
func (c *Context) collectLetter(k kinds.Kind) {
	p := &c.player
	p.Letters = append(p.Letters, k)
	c.addScore(letterScore)

	if !lettersInOrder(p.Letters) {
		c.addScore(letterPityBonus)
		c.showMessage(render.MessageLettersBonus)
		return
	}
	if len(p.Letters) == len(letterOrder) {
		c.addScore(letterBonus)
		c.showMessage(render.MessageLettersInOrder)
	}
}

func lettersInOrder(got []kinds.Kind) bool {
	if len(got) > len(letterOrder) {
		return false
	}
	for i, k := range got {
		if letterOrder[i] != k {
			return false
		}
	}
	return true
}

var itemTutorials = map[kinds.Kind]render.Tutorial{
	kinds.KindKey:       render.TutorialKey,
	kinds.KindKeycard:   render.TutorialKeycard,
	kinds.KindCloak:     render.TutorialCloak,
	kinds.KindRapidFire: render.TutorialRapidFire,
}

func touchInventoryItem(c *Context, a *Actor) {
	p := &c.player
	if !p.Inventory.Add(a.Kind) {
		c.showMessage(render.MessageInventoryFull)
		return
	}
	switch a.Kind {
	case kinds.KindCloak:
		p.Cloak = powerUpFrames
		c.showMessage(render.MessageCloakOn)
	case kinds.KindRapidFire:
		p.RapidFire = powerUpFrames
		c.showMessage(render.MessageRapidFireOn)
	}
	c.showTutorial(itemTutorials[a.Kind])
	c.pickUp(a, a.ScoreGiven, render.SoundPickup)
}

func touchWeapon(c *Context, a *Actor) {
	p := &c.player
	switch a.Kind {
	case kinds.KindLaserGun:
		p.Weapon, p.Ammo = WeaponLaser, weaponAmmo
	case kinds.KindRocketLauncher:
		p.Weapon, p.Ammo = WeaponRocket, weaponAmmo
	case kinds.KindFlameThrower:
		p.Weapon, p.Ammo = WeaponFlame, flameAmmo
	}
	c.showTutorial(render.TutorialWeapon)
	c.pickUp(a, a.ScoreGiven, render.SoundWeapon)
}

// shotNapalmBomb spreads fire bombs along the floor on both sides.
func shotNapalmBomb(c *Context, a *Actor, damage int) {
	for i, dx := range []int{0, -2, 2, -4, 4} {
		c.spawnEffect(kinds.KindFireBomb, a.X+dx, a.Y, PatternStatic, i/2*2)
	}
	c.spawnDestruction(a, debrisSmall, core.ColorLightRed)
	c.addScore(a.ScoreGiven)
	c.deleteActor(a)
}

// updateSpyCamera turns the camera towards the player.
func updateSpyCamera(c *Context, a *Actor) {
	px := c.player.X + kinds.PlayerWidth/2
	switch {
	case px < a.X-1:
		a.Frame = 0
	case px > a.X+1:
		a.Frame = 2
	default:
		a.Frame = 1
	}
}
