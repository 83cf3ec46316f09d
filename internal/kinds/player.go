package kinds

// Player animation frames. Each facing has its own block of
// PlayerFramesPerFacing frames; the right-facing block follows the left one.
const (
	PlayerStand = iota
	PlayerWalk1
	PlayerWalk2
	PlayerWalk3
	PlayerWalk4
	PlayerLookUp
	PlayerCrouch
	PlayerJump
	PlayerFall
	PlayerClimb1
	PlayerClimb2
	PlayerShootUp
	PlayerCrouchShoot
	PlayerHurt
	PlayerDying1
	PlayerDying2
	PlayerDying3
	PlayerSwim
	PlayerHang
	PlayerTeleport

	PlayerFramesPerFacing
)

// PlayerFacingRight is added to a frame to select the right-facing block.
const PlayerFacingRight = PlayerFramesPerFacing

// PlayerWidth and PlayerHeight are the standing player's box size.
const (
	PlayerWidth  = 3
	PlayerHeight = 5
)

// HitboxAdjust narrows the player's box when the player is the second
// argument of a sprite intersection test.
type HitboxAdjust struct {
	DX int // added to x
	DW int // added to width
	DH int // added to height
}

func playerFrames() []FrameInfo {
	frames := make([]FrameInfo, 2*PlayerFramesPerFacing)
	for i := range frames {
		frames[i] = FrameInfo{Width: PlayerWidth, Height: PlayerHeight}
		switch i % PlayerFramesPerFacing {
		case PlayerCrouch, PlayerCrouchShoot:
			frames[i].Height = PlayerHeight - 1
		case PlayerDying1, PlayerDying2, PlayerDying3:
			frames[i] = FrameInfo{Width: 4, Height: 3}
		}
	}
	return frames
}

var playerHitbox = func() [2 * PlayerFramesPerFacing]HitboxAdjust {
	var t [2 * PlayerFramesPerFacing]HitboxAdjust
	for facing := 0; facing < 2; facing++ {
		base := facing * PlayerFramesPerFacing
		// The weapon sticks out on the facing side. Facing left that is the
		// leftmost column, so x moves in by one as well.
		dx := 1
		if facing == 1 {
			dx = 0
		}
		for _, f := range []int{
			PlayerStand, PlayerWalk1, PlayerWalk2, PlayerWalk3, PlayerWalk4,
			PlayerJump, PlayerFall, PlayerCrouch, PlayerCrouchShoot,
		} {
			t[base+f] = HitboxAdjust{DX: dx, DW: -1}
		}
		// Raised weapon and head.
		t[base+PlayerLookUp] = HitboxAdjust{DX: dx, DW: -1, DH: -1}
		t[base+PlayerShootUp] = HitboxAdjust{DX: dx, DW: -1, DH: -1}
	}
	return t
}()

// PlayerHitbox returns the adjustment for a player frame.
func PlayerHitbox(frame int) HitboxAdjust {
	if frame < 0 || frame >= len(playerHitbox) {
		return HitboxAdjust{}
	}
	return playerHitbox[frame]
}

// PlayerFrame returns the frame number for a base frame and facing.
func PlayerFrame(base int, facingRight bool) int {
	if facingRight {
		return base + PlayerFacingRight
	}
	return base
}
