package sim

import (
	"github.com/vovakirdan/dn2sim/internal/kinds"
)

type (
	updateFunc func(c *Context, a *Actor)
	shotFunc   func(c *Context, a *Actor, damage int)
	touchFunc  func(c *Context, a *Actor)
	setupFunc  func(c *Context, a *Actor) error
)

// defaults are the values a freshly spawned actor starts with.
type defaults struct {
	health, score int
	vars          [5]int

	gravity bool
	stairs  bool
	always  bool
	remain  bool
}

// kindEntry is everything the simulation knows about one kind. Behaviour
// and spawn defaults share the entry so the two cannot drift apart.
type kindEntry struct {
	update updateFunc
	shot   shotFunc  // nil: damage and destroy with medium debris
	touch  touchFunc // nil: no player contact reaction
	init   defaults
	setup  setupFunc
}

func (e *kindEntry) apply(c *Context, a *Actor) error {
	d := e.init
	a.Health = d.health
	a.ScoreGiven = d.score
	a.Var1, a.Var2, a.Var3, a.Var4, a.Var5 = d.vars[0], d.vars[1], d.vars[2], d.vars[3], d.vars[4]
	a.GravityAffected = d.gravity
	a.AllowStairStepping = d.stairs
	a.AlwaysUpdate = d.always
	a.RemainActive = d.remain
	if e.setup != nil {
		return e.setup(c, a)
	}
	return nil
}

// kindTable is filled in init because the behaviours spawn actors, which
// reads the table.
var kindTable [kinds.Count]kindEntry

func init() {
	kindTable = [kinds.Count]kindEntry{
		// Item boxes.
		kinds.KindBoxGrey:  itemBox(),
		kinds.KindBoxRed:   itemBox(),
		kinds.KindBoxGreen: itemBox(),
		kinds.KindBoxBlue:  itemBox(),

		// Items.
		kinds.KindHealthMolecule: {update: updateItem, touch: touchHealth, init: defaults{gravity: true}},
		kinds.KindSodaCan:        {update: updateItem, shot: shotSodaCan, touch: touchSodaCan, init: defaults{health: 1, gravity: true}},
		kinds.KindSodaCanFlying:  {update: updateSodaCanFlying, touch: touchSodaCanFlying, init: defaults{always: true}},
		kinds.KindTurkey:         {update: updateItem, shot: shotTurkey, touch: touchTurkey, init: defaults{health: 1, gravity: true}},
		kinds.KindTurkeyCooked:   {update: updateItem, touch: touchTurkey, init: defaults{gravity: true}},
		kinds.KindGlobeBlue:      {update: updateItem, touch: touchGlobe, init: defaults{score: 500, gravity: true}},
		kinds.KindGlobeRed:       {update: updateItem, touch: touchGlobe, init: defaults{score: 2000, gravity: true}},
		kinds.KindGlobeGreen:     {update: updateItem, touch: touchGlobe, init: defaults{score: 5000, gravity: true}},
		kinds.KindGlobeWhite:     {update: updateItem, touch: touchGlobe, init: defaults{score: 10000, gravity: true}},
		kinds.KindLetterN:        {update: updateItem, touch: touchLetter, init: defaults{gravity: true}},
		kinds.KindLetterU:        {update: updateItem, touch: touchLetter, init: defaults{gravity: true}},
		kinds.KindLetterK:        {update: updateItem, touch: touchLetter, init: defaults{gravity: true}},
		kinds.KindLetterE:        {update: updateItem, touch: touchLetter, init: defaults{gravity: true}},
		kinds.KindLetterM:        {update: updateItem, touch: touchLetter, init: defaults{gravity: true}},
		kinds.KindKey:            {update: updateItem, touch: touchInventoryItem, init: defaults{score: 500, gravity: true}},
		kinds.KindKeycard:        {update: updateItem, touch: touchInventoryItem, init: defaults{score: 500, gravity: true}},
		kinds.KindCircuitCard:    {update: updateItem, touch: touchInventoryItem, init: defaults{score: 500, gravity: true}},
		kinds.KindCloak:          {update: updateItem, touch: touchInventoryItem, init: defaults{score: 500, gravity: true}},
		kinds.KindRapidFire:      {update: updateItem, touch: touchInventoryItem, init: defaults{score: 500, gravity: true}},
		kinds.KindLaserGun:       {update: updateItem, touch: touchWeapon, init: defaults{score: 2000, gravity: true}},
		kinds.KindRocketLauncher: {update: updateItem, touch: touchWeapon, init: defaults{score: 2000, gravity: true}},
		kinds.KindFlameThrower:   {update: updateItem, touch: touchWeapon, init: defaults{score: 2000, gravity: true}},
		kinds.KindNapalmBomb:     {update: updateItem, shot: shotNapalmBomb, init: defaults{health: 1, score: 100, gravity: true}},
		kinds.KindSpyCamera:      {update: updateSpyCamera, init: defaults{health: 1, score: 100}},

		// Enemies.
		kinds.KindSkeleton:         {update: updateSkeleton, touch: touchHurts, init: defaults{health: 2, score: 100, vars: [5]int{-1}, gravity: true}},
		kinds.KindBlueGuard:        {update: updateBlueGuard, touch: touchHurts, init: defaults{health: 3, score: 500, vars: [5]int{guardWalking, -1}, gravity: true}},
		kinds.KindHoverBot:         {update: updateHoverBot, touch: touchHurts, init: defaults{health: 1, score: 100, vars: [5]int{-1}}},
		kinds.KindRigelatinSoldier: {update: updateRigelatin, touch: touchHurts, init: defaults{health: 6, score: 2000, gravity: true}},
		kinds.KindWallWalker:       {update: updateWallWalker, touch: touchHurts, init: defaults{health: 1, score: 100, vars: [5]int{-1}}},
		kinds.KindSpider:           {update: updateSpider, shot: shotSpider, touch: touchSpider, init: defaults{health: 1, score: 100}},
		kinds.KindSnake:            {update: updateSnake, shot: shotSnake, touch: touchSnake, init: defaults{health: 8, score: 5000, vars: [5]int{-1}, gravity: true}},
		kinds.KindCeilingSucker:    {update: updateCeilingSucker, shot: shotCeilingSucker, touch: touchCeilingSucker, init: defaults{health: 15, score: 1000}},
		kinds.KindLaserTurret:      {update: updateLaserTurret, touch: touchHurts, init: defaults{health: 4, score: 500}},
		kinds.KindRocketTurret:     {update: updateRocketTurret, touch: touchHurts, init: defaults{health: 3, score: 500}},
		kinds.KindEnemyRocketLeft:  enemyRocket(),
		kinds.KindEnemyRocketRight: enemyRocket(),
		kinds.KindEnemyRocketUp:    enemyRocket(),
		kinds.KindEnemyRocketDown:  enemyRocket(),
		kinds.KindSlimeContainer:   {update: updateAnimated, shot: shotSlimeContainer, init: defaults{health: 1, score: 100}},
		kinds.KindSlimeBlob:        {update: updateSlimeBlob, touch: touchHurts, init: defaults{health: 1, score: 100, gravity: true}},
		kinds.KindRedBird:          {update: updateRedBird, touch: touchHurts, init: defaults{health: 1, score: 100, vars: [5]int{-1}}},
		kinds.KindBomberPlane:      {update: updateBomberPlane, touch: touchHurts, init: defaults{health: 4, score: 5000, vars: [5]int{-1}, remain: true}},
		kinds.KindBomb:             {update: updateBomb, touch: touchBomb, init: defaults{gravity: true, always: true}},
		kinds.KindEyeballThrower:   {update: updateEyeballThrower, touch: touchHurts, init: defaults{health: 6, score: 2000, gravity: true}},
		kinds.KindEyeball:          {update: updateEyeball, touch: touchExplodes, init: defaults{health: 1, score: 100, always: true}},
		kinds.KindFlameJet:         {update: updateFlameJet, touch: touchHurts},
		kinds.KindFloorFire:        {update: updateAnimated, touch: touchHurts},
		kinds.KindSpikeBall:        {update: updateSpikeBall, touch: touchSpikeBall, init: defaults{vars: [5]int{-1}}},
		kinds.KindCeilingSpike:     {update: updateCeilingSpike, touch: touchHurts, init: defaults{health: 1, score: 100}},
		kinds.KindSmashHammer:      {update: updateSmashHammer, touch: touchHurts, setup: setupSmashHammer},
		kinds.KindWatchBot:         {update: updateWatchBot, touch: touchHurts, init: defaults{health: 5, score: 500, gravity: true, stairs: true}},
		kinds.KindSmallFighter:     {update: updateSmallFighter, touch: touchExplodes, init: defaults{health: 1, score: 100, remain: true}},
		kinds.KindBoss:             {update: updateBoss, shot: shotBoss, touch: touchHurts, init: defaults{health: bossHealth, score: 50000, remain: true}},
		kinds.KindEnemyLaserShot:   {update: updateEnemyLaserShot, touch: touchExplodes, init: defaults{always: true}},

		// Mechanisms.
		kinds.KindSlidingDoorHorizontal: {update: updateSlidingDoor, setup: setupDoor},
		kinds.KindSlidingDoorVertical:   {update: updateSlidingDoor, setup: setupDoor},
		kinds.KindForceField:            {update: updateForceField, touch: touchHurts, setup: setupDoor},
		kinds.KindCardReader:            {update: updateAnimated, touch: touchCardReader},
		kinds.KindKeyHole:               {update: updateAnimated, touch: touchKeyHole},
		kinds.KindKeyDoor:               {update: updateAnimated, setup: setupDoor},
		kinds.KindElevator:              {update: updateElevator, init: defaults{vars: [5]int{elevatorIdle}}},
		kinds.KindTeleporter1:           {update: updateAnimated, touch: touchTeleporter},
		kinds.KindTeleporter2:           {update: updateAnimated, touch: touchTeleporter},
		kinds.KindPlayerShip:            {update: updatePlayerShip, touch: touchPlayerShip, init: defaults{gravity: true}},
		kinds.KindLevelExit:             {update: updateAnimated, touch: touchLevelExit},
		kinds.KindRespawnBeacon:         {update: updateRespawnBeacon, touch: touchRespawnBeacon},
		kinds.KindBlowingFan:            {update: updateBlowingFan},
		kinds.KindRadarDish:             {update: updateAnimated, shot: shotRadarDish, init: defaults{health: 4, score: 500}},
		kinds.KindReactor:               {update: updateAnimated, shot: shotReactor, touch: touchHurts, init: defaults{health: 10, score: 2000}},
		kinds.KindFallingGeometry:       {update: updateFallingGeometry},
		kinds.KindWaterArea:             {update: updateWaterArea},
		kinds.KindNuclearWasteBarrel:    {update: updateAnimated, shot: shotNuclearWasteBarrel, init: defaults{health: 1, score: 200, gravity: true}},
	}
}

func itemBox() kindEntry {
	return kindEntry{
		update: updateItemBox,
		shot:   shotItemBox,
		init:   defaults{health: 1, score: 100, gravity: true},
		setup:  setupItemBox,
	}
}

func enemyRocket() kindEntry {
	return kindEntry{
		update: updateEnemyRocket,
		shot:   shotExplodes,
		touch:  touchExplodes,
		init:   defaults{health: 1, score: 100, always: true},
	}
}

// updateAnimated cycles the frames of a kind that has no other behaviour.
func updateAnimated(c *Context, a *Actor) {
	animate(a)
}

func animate(a *Actor) {
	if n := kinds.FrameCount(a.Kind); n > 1 {
		a.Frame = (a.Frame + 1) % n
	}
}
