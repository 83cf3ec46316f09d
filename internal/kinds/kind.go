// Package kinds is the closed enumeration of actor, effect and shot kinds
// together with their static metadata: names, draw order, radar visibility
// and per-frame bounding boxes.
package kinds

// Kind identifies an actor, effect or shot type.
type Kind uint16

const (
	KindNone Kind = iota

	// Player sprite and level placement markers.
	KindPlayer
	KindMarkerMedium
	KindMarkerHard

	// Item boxes.
	KindBoxGrey
	KindBoxRed
	KindBoxGreen
	KindBoxBlue

	// Items.
	KindHealthMolecule
	KindSodaCan
	KindSodaCanFlying
	KindTurkey
	KindTurkeyCooked
	KindGlobeBlue
	KindGlobeRed
	KindGlobeGreen
	KindGlobeWhite
	KindLetterN
	KindLetterU
	KindLetterK
	KindLetterE
	KindLetterM
	KindKey
	KindKeycard
	KindCircuitCard
	KindCloak
	KindRapidFire
	KindLaserGun
	KindRocketLauncher
	KindFlameThrower
	KindNapalmBomb

	// Enemies.
	KindSpyCamera
	KindSkeleton
	KindBlueGuard
	KindHoverBot
	KindRigelatinSoldier
	KindWallWalker
	KindSpider
	KindSnake
	KindCeilingSucker
	KindLaserTurret
	KindRocketTurret
	KindEnemyRocketLeft
	KindEnemyRocketRight
	KindEnemyRocketUp
	KindEnemyRocketDown
	KindSlimeContainer
	KindSlimeBlob
	KindRedBird
	KindBomberPlane
	KindBomb
	KindEyeballThrower
	KindEyeball
	KindFlameJet
	KindFloorFire
	KindSpikeBall
	KindCeilingSpike
	KindSmashHammer
	KindWatchBot
	KindSmallFighter
	KindBoss
	KindEnemyLaserShot

	// Mechanisms and scenery with logic.
	KindSlidingDoorHorizontal
	KindSlidingDoorVertical
	KindForceField
	KindCardReader
	KindKeyHole
	KindKeyDoor
	KindElevator
	KindTeleporter1
	KindTeleporter2
	KindPlayerShip
	KindLevelExit
	KindRespawnBeacon
	KindBlowingFan
	KindRadarDish
	KindReactor
	KindFallingGeometry
	KindWaterArea
	KindNuclearWasteBarrel

	// Effects.
	KindExplosion
	KindSmokePuff
	KindScoreNumber
	KindDebris
	KindShotImpact
	KindFireBomb

	// Player shots.
	KindShotRegular
	KindShotLaser
	KindShotRocket
	KindShotFlame
	KindShotShipLaser

	// Count is the number of kinds; valid kinds are 1..Count-1.
	Count
)

// Valid reports whether k names a kind.
func (k Kind) Valid() bool {
	return k > KindNone && k < Count
}

// String returns the kind's level-file name.
func (k Kind) String() string {
	if !k.Valid() {
		return "none"
	}
	return table[k].info.Name
}

// Info returns the static metadata of k. Invalid kinds return the zero Info.
func (k Kind) Info() Info {
	if !k.Valid() {
		return Info{}
	}
	return table[k].info
}

// IsPlayer reports whether k is the player sprite.
func (k Kind) IsPlayer() bool {
	return k == KindPlayer
}

// IsLetter reports whether k is one of the N-U-K-E-M bonus letters.
func (k Kind) IsLetter() bool {
	return k >= KindLetterN && k <= KindLetterM
}

// IsItemBox reports whether k is one of the coloured item boxes.
func (k Kind) IsItemBox() bool {
	return k >= KindBoxGrey && k <= KindBoxBlue
}

// ByName resolves a level-file name.
func ByName(name string) (Kind, bool) {
	k, ok := byName[name]
	return k, ok
}

// All returns every valid kind in enumeration order.
func All() []Kind {
	out := make([]Kind, 0, Count-1)
	for k := Kind(1); k < Count; k++ {
		out = append(out, k)
	}
	return out
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, Count)
	for k := Kind(1); k < Count; k++ {
		m[table[k].info.Name] = k
	}
	return m
}()
