package kinds

import "github.com/vovakirdan/dn2sim/internal/core"

// Info is the per-kind static metadata.
type Info struct {
	Name string
	// DrawIndex orders the level-load spawn passes (0..3); later passes
	// render in front of earlier ones.
	DrawIndex int
	// Radar marks kinds that show up as radar blips.
	Radar bool
	// Spawnable kinds may appear in level actor lists and be spawned as actors.
	Spawnable bool
	// Shootable marks items that keep one point of health when released
	// from an item box so that shooting them triggers their reaction.
	Shootable bool
	// Glyph and Color are used by the character rasteriser.
	Glyph rune
	Color core.Color
}

// FrameInfo is the bounding box of one animation frame in tile units.
// Sprites are anchored at their bottom-left corner: the box covers columns
// x+XOffset .. x+XOffset+Width-1 and rows y+YOffset-Height+1 .. y+YOffset.
type FrameInfo struct {
	Width   int
	Height  int
	XOffset int
	YOffset int
}

// Frame returns the bounding box of a kind's animation frame. Frames past
// the end of the kind's list fall back to frame 0; unknown kinds are 1x1.
func Frame(k Kind, frame int) FrameInfo {
	if !k.Valid() {
		return FrameInfo{Width: 1, Height: 1}
	}
	frames := table[k].frames
	if frame < 0 || frame >= len(frames) {
		frame = 0
	}
	return frames[frame]
}

// FrameCount returns the number of animation frames of k.
func FrameCount(k Kind) int {
	if !k.Valid() {
		return 0
	}
	return len(table[k].frames)
}

type entry struct {
	info   Info
	frames []FrameInfo
}

func (e entry) radar() entry {
	e.info.Radar = true
	return e
}

func (e entry) shootable() entry {
	e.info.Shootable = true
	return e
}

func actor(name string, draw int, glyph rune, c core.Color, frames []FrameInfo) entry {
	return entry{
		info:   Info{Name: name, DrawIndex: draw, Spawnable: true, Glyph: glyph, Color: c},
		frames: frames,
	}
}

func sprite(name string, glyph rune, c core.Color, frames []FrameInfo) entry {
	return entry{
		info:   Info{Name: name, Glyph: glyph, Color: c},
		frames: frames,
	}
}

func anim(n, w, h int) []FrameInfo {
	out := make([]FrameInfo, n)
	for i := range out {
		out[i] = FrameInfo{Width: w, Height: h}
	}
	return out
}

func one(w, h int) []FrameInfo {
	return anim(1, w, h)
}

var table = [Count]entry{
	KindPlayer:       sprite("player", '@', core.ColorWhite, playerFrames()),
	KindMarkerMedium: sprite("marker_medium", '2', core.ColorDarkGray, one(1, 1)),
	KindMarkerHard:   sprite("marker_hard", '3', core.ColorDarkGray, one(1, 1)),

	KindBoxGrey:  actor("box_grey", 1, 'B', core.ColorLightGray, one(2, 2)),
	KindBoxRed:   actor("box_red", 1, 'B', core.ColorRed, one(2, 2)),
	KindBoxGreen: actor("box_green", 1, 'B', core.ColorGreen, one(2, 2)),
	KindBoxBlue:  actor("box_blue", 1, 'B', core.ColorBlue, one(2, 2)),

	KindHealthMolecule: actor("health_molecule", 1, '+', core.ColorLightRed, anim(4, 2, 2)),
	KindSodaCan:        actor("soda_can", 1, 'c', core.ColorRed, anim(4, 1, 2)).shootable(),
	KindSodaCanFlying:  actor("soda_can_flying", 1, 'c', core.ColorLightRed, anim(2, 1, 2)),
	KindTurkey:         actor("turkey", 1, 't', core.ColorBrown, one(2, 1)).shootable(),
	KindTurkeyCooked:   actor("turkey_cooked", 1, 'T', core.ColorYellow, one(2, 1)),
	KindGlobeBlue:      actor("globe_blue", 1, 'o', core.ColorLightBlue, anim(4, 2, 2)),
	KindGlobeRed:       actor("globe_red", 1, 'o', core.ColorLightRed, anim(4, 2, 2)),
	KindGlobeGreen:     actor("globe_green", 1, 'o', core.ColorLightGreen, anim(4, 2, 2)),
	KindGlobeWhite:     actor("globe_white", 1, 'o', core.ColorWhite, anim(4, 2, 2)),
	KindLetterN:        actor("letter_n", 1, 'N', core.ColorYellow, one(2, 2)),
	KindLetterU:        actor("letter_u", 1, 'U', core.ColorYellow, one(2, 2)),
	KindLetterK:        actor("letter_k", 1, 'K', core.ColorYellow, one(2, 2)),
	KindLetterE:        actor("letter_e", 1, 'E', core.ColorYellow, one(2, 2)),
	KindLetterM:        actor("letter_m", 1, 'M', core.ColorYellow, one(2, 2)),
	KindKey:            actor("key", 1, 'k', core.ColorYellow, one(2, 1)),
	KindKeycard:        actor("keycard", 1, '=', core.ColorLightCyan, one(2, 1)),
	KindCircuitCard:    actor("circuit_card", 1, '#', core.ColorLightGreen, one(2, 1)),
	KindCloak:          actor("cloak", 1, '%', core.ColorMagenta, anim(2, 2, 2)),
	KindRapidFire:      actor("rapid_fire", 1, 'R', core.ColorLightMagenta, anim(2, 2, 2)),
	KindLaserGun:       actor("laser_gun", 1, 'L', core.ColorLightCyan, one(2, 2)),
	KindRocketLauncher: actor("rocket_launcher", 1, 'W', core.ColorLightRed, one(2, 2)),
	KindFlameThrower:   actor("flame_thrower", 1, 'F', core.ColorYellow, one(2, 2)),
	KindNapalmBomb:     actor("napalm_bomb", 1, 'n', core.ColorRed, one(2, 1)),

	KindSpyCamera:        actor("spy_camera", 2, 'C', core.ColorLightGray, anim(3, 1, 1)),
	KindSkeleton:         actor("skeleton", 2, 'S', core.ColorWhite, anim(4, 3, 4)).radar(),
	KindBlueGuard:        actor("blue_guard", 2, 'G', core.ColorLightBlue, anim(6, 3, 5)).radar(),
	KindHoverBot:         actor("hover_bot", 2, 'h', core.ColorCyan, anim(4, 3, 3)).radar(),
	KindRigelatinSoldier: actor("rigelatin_soldier", 2, 'X', core.ColorGreen, anim(4, 3, 5)).radar(),
	KindWallWalker:       actor("wall_walker", 2, 'w', core.ColorBrown, anim(2, 2, 2)).radar(),
	KindSpider:           actor("spider", 2, '*', core.ColorDarkGray, anim(4, 2, 1)).radar(),
	KindSnake:            actor("snake", 2, '~', core.ColorGreen, anim(4, 4, 2)).radar(),
	KindCeilingSucker:    actor("ceiling_sucker", 2, 'V', core.ColorMagenta, anim(3, 3, 2)).radar(),
	KindLaserTurret:      actor("laser_turret", 2, 'Y', core.ColorLightGray, anim(4, 2, 2)).radar(),
	KindRocketTurret:     actor("rocket_turret", 2, 'Q', core.ColorLightGray, anim(3, 2, 2)).radar(),
	KindEnemyRocketLeft:  actor("enemy_rocket_left", 2, '<', core.ColorLightRed, one(2, 1)),
	KindEnemyRocketRight: actor("enemy_rocket_right", 2, '>', core.ColorLightRed, one(2, 1)),
	KindEnemyRocketUp:    actor("enemy_rocket_up", 2, '^', core.ColorLightRed, one(1, 2)),
	KindEnemyRocketDown:  actor("enemy_rocket_down", 2, 'v', core.ColorLightRed, one(1, 2)),
	KindSlimeContainer:   actor("slime_container", 2, 'U', core.ColorLightGreen, anim(2, 2, 3)),
	KindSlimeBlob:        actor("slime_blob", 2, 'g', core.ColorLightGreen, anim(3, 2, 1)).radar(),
	KindRedBird:          actor("red_bird", 2, 'b', core.ColorRed, anim(2, 2, 2)).radar(),
	KindBomberPlane:      actor("bomber_plane", 2, 'P', core.ColorDarkGray, anim(2, 5, 2)).radar(),
	KindBomb:             actor("bomb", 2, '.', core.ColorDarkGray, one(1, 1)),
	KindEyeballThrower:   actor("eyeball_thrower", 2, 'E', core.ColorMagenta, anim(3, 3, 4)).radar(),
	KindEyeball:          actor("eyeball", 2, 'e', core.ColorWhite, one(1, 1)),
	KindFlameJet:         actor("flame_jet", 2, '!', core.ColorYellow, anim(3, 1, 3)),
	KindFloorFire:        actor("floor_fire", 2, '^', core.ColorLightRed, anim(2, 1, 1)),
	KindSpikeBall:        actor("spike_ball", 2, 'O', core.ColorLightGray, one(2, 2)),
	KindCeilingSpike:     actor("ceiling_spike", 2, 'V', core.ColorLightGray, one(1, 2)),
	KindSmashHammer:      actor("smash_hammer", 2, 'H', core.ColorDarkGray, one(3, 2)),
	KindWatchBot:         actor("watch_bot", 2, 'm', core.ColorLightCyan, anim(3, 2, 3)).radar(),
	KindSmallFighter:     actor("small_fighter", 2, 'f', core.ColorLightGray, one(3, 1)).radar(),
	KindBoss:             actor("boss", 2, 'Z', core.ColorLightMagenta, anim(4, 6, 5)).radar(),
	KindEnemyLaserShot:   actor("enemy_laser_shot", 2, '-', core.ColorLightRed, one(1, 1)),

	KindSlidingDoorHorizontal: actor("sliding_door_horizontal", 0, '_', core.ColorCyan, one(8, 1)),
	KindSlidingDoorVertical:   actor("sliding_door_vertical", 0, '|', core.ColorCyan, one(1, 5)),
	KindForceField:            actor("force_field", 3, ':', core.ColorLightBlue, anim(2, 1, 5)),
	KindCardReader:            actor("card_reader", 0, 'r', core.ColorLightCyan, one(1, 1)),
	KindKeyHole:               actor("key_hole", 0, 'q', core.ColorYellow, one(1, 1)),
	KindKeyDoor:               actor("key_door", 0, 'D', core.ColorBrown, one(1, 5)),
	KindElevator:              actor("elevator", 0, 'x', core.ColorLightGray, one(4, 1)),
	KindTeleporter1:           actor("teleporter_1", 0, '&', core.ColorLightMagenta, anim(2, 3, 5)),
	KindTeleporter2:           actor("teleporter_2", 0, '&', core.ColorLightMagenta, anim(2, 3, 5)),
	KindPlayerShip:            actor("player_ship", 1, 'A', core.ColorLightCyan, anim(2, 4, 3)),
	KindLevelExit:             actor("level_exit", 0, 'X', core.ColorLightGreen, one(1, 5)),
	KindRespawnBeacon:         actor("respawn_beacon", 0, 'i', core.ColorLightGreen, anim(2, 1, 2)),
	KindBlowingFan:            actor("blowing_fan", 3, 'J', core.ColorLightGray, anim(4, 3, 1)),
	KindRadarDish:             actor("radar_dish", 2, 'D', core.ColorLightGray, anim(4, 3, 3)).radar(),
	KindReactor:               actor("reactor", 2, 'R', core.ColorLightCyan, anim(2, 2, 4)),
	KindFallingGeometry:       actor("falling_geometry", 0, ' ', core.ColorDarkGray, one(4, 2)),
	KindWaterArea:             actor("water_area", 3, '~', core.ColorBlue, one(4, 2)),
	KindNuclearWasteBarrel:    actor("nuclear_waste_barrel", 1, 'u', core.ColorGreen, one(2, 2)),

	KindExplosion:   sprite("explosion", '*', core.ColorYellow, anim(6, 3, 3)),
	KindSmokePuff:   sprite("smoke_puff", 's', core.ColorDarkGray, anim(5, 2, 2)),
	KindScoreNumber: sprite("score_number", '$', core.ColorWhite, anim(len(ScoreValues), 2, 1)),
	KindDebris:      sprite("debris", ',', core.ColorBrown, anim(4, 1, 1)),
	KindShotImpact:  sprite("shot_impact", 'x', core.ColorWhite, anim(2, 1, 1)),
	KindFireBomb:    sprite("fire_bomb", 'W', core.ColorLightRed, anim(4, 2, 2)),

	KindShotRegular:   sprite("shot_regular", '-', core.ColorYellow, []FrameInfo{{Width: 1, Height: 1}, {Width: 1, Height: 1}}),
	KindShotLaser:     sprite("shot_laser", '=', core.ColorLightCyan, []FrameInfo{{Width: 2, Height: 1}, {Width: 1, Height: 2}}),
	KindShotRocket:    sprite("shot_rocket", '>', core.ColorLightRed, []FrameInfo{{Width: 2, Height: 1}, {Width: 1, Height: 2}}),
	KindShotFlame:     sprite("shot_flame", '~', core.ColorYellow, []FrameInfo{{Width: 2, Height: 1}, {Width: 1, Height: 2}}),
	KindShotShipLaser: sprite("shot_ship_laser", '=', core.ColorLightGreen, []FrameInfo{{Width: 2, Height: 1}, {Width: 1, Height: 2}}),
}

// ScoreValues lists the values a floating score number can show; the
// value's index is the score number effect's frame.
var ScoreValues = [...]int{100, 500, 1000, 2000, 5000, 10000}

// ScoreFrame returns the score number frame that shows value, or -1.
func ScoreFrame(value int) int {
	for i, v := range ScoreValues {
		if v == value {
			return i
		}
	}
	return -1
}
