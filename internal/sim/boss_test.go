package sim

import (
	"testing"

	"github.com/vovakirdan/dn2sim/internal/kinds"
)

func TestBossPhases(t *testing.T) {
	c := newTestContext(t)
	a := spawn(t, c, kinds.KindBoss, 5, 10)

	shotBoss(c, a, DamageRocket)
	if a.Var1 != bossPhase1 {
		t.Errorf("phase after first hit = %d, expected %d", a.Var1, bossPhase1)
	}

	for a.Health > bossPhase2Health {
		shotBoss(c, a, DamageRegular)
	}
	if a.Var1 != bossPhase2 {
		t.Errorf("phase at %d health = %d, expected %d", a.Health, a.Var1, bossPhase2)
	}

	for a.Health > 0 {
		shotBoss(c, a, DamageRocket)
	}
	if a.Var1 != bossDying {
		t.Fatalf("phase at zero health = %d, expected %d", a.Var1, bossDying)
	}
	if got := c.Player().Score; got != 50000 {
		t.Errorf("Score = %d, expected 50000", got)
	}

	for iter := 0; iter < bossDyingFrames; iter++ {
		updateBoss(c, a)
	}
	if !a.Deleted {
		t.Error("boss still alive after its dying frames")
	}
	if !c.Player().Exited() {
		t.Error("level did not end with the boss")
	}
}
