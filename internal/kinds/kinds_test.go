package kinds

import "testing"

func TestEveryKindHasMetadata(t *testing.T) {
	for _, k := range All() {
		info := k.Info()
		if info.Name == "" {
			t.Errorf("kind %d has no name", k)
		}
		if FrameCount(k) == 0 {
			t.Errorf("%s has no frames", k)
		}
		if info.DrawIndex < 0 || info.DrawIndex > 3 {
			t.Errorf("%s DrawIndex = %d, expected 0..3", k, info.DrawIndex)
		}
		got, ok := ByName(info.Name)
		if !ok || got != k {
			t.Errorf("ByName(%q) = %v, %v, expected %v", info.Name, got, ok, k)
		}
	}
}

func TestNonSpawnableKinds(t *testing.T) {
	for _, k := range []Kind{KindPlayer, KindMarkerMedium, KindMarkerHard, KindExplosion, KindShotLaser} {
		if k.Info().Spawnable {
			t.Errorf("%s should not be spawnable", k)
		}
	}
	if !KindSkeleton.Info().Spawnable {
		t.Error("skeleton should be spawnable")
	}
}

func TestFrameFallback(t *testing.T) {
	f := Frame(KindSkeleton, 99)
	if f != Frame(KindSkeleton, 0) {
		t.Errorf("Frame(skeleton, 99) = %+v, expected frame 0", f)
	}
	if f := Frame(KindNone, 0); f.Width != 1 || f.Height != 1 {
		t.Errorf("Frame(none) = %+v, expected 1x1", f)
	}
}

func TestPlayerHitbox(t *testing.T) {
	left := PlayerHitbox(PlayerFrame(PlayerStand, false))
	right := PlayerHitbox(PlayerFrame(PlayerStand, true))
	if left.DX != 1 || left.DW != -1 {
		t.Errorf("left stand adjust = %+v", left)
	}
	if right.DX != 0 || right.DW != -1 {
		t.Errorf("right stand adjust = %+v", right)
	}
	if up := PlayerHitbox(PlayerLookUp); up.DH != -1 {
		t.Errorf("look up adjust = %+v, expected DH -1", up)
	}
	if PlayerHitbox(PlayerClimb1) != (HitboxAdjust{}) {
		t.Error("climbing frames should not be adjusted")
	}
	if PlayerHitbox(-1) != (HitboxAdjust{}) || PlayerHitbox(1000) != (HitboxAdjust{}) {
		t.Error("out of range frames should not be adjusted")
	}
}

func TestScoreFrame(t *testing.T) {
	if ScoreFrame(1000) != 2 {
		t.Errorf("ScoreFrame(1000) = %d, expected 2", ScoreFrame(1000))
	}
	if ScoreFrame(123) != -1 {
		t.Errorf("ScoreFrame(123) = %d, expected -1", ScoreFrame(123))
	}
}
