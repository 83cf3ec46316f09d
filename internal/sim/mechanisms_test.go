package sim

import (
	"testing"

	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/kinds"
)

func TestTeleporterPair(t *testing.T) {
	c := newTestContext(t)
	from := spawn(t, c, kinds.KindTeleporter1, 10, 18)
	spawn(t, c, kinds.KindTeleporter2, 25, 18)
	c.input = core.InputOf(core.ActionUp)

	touchTeleporter(c, from)

	p := c.Player()
	if p.X != 25 || p.Y != 18 {
		t.Errorf("player at (%d, %d), expected (25, 18)", p.X, p.Y)
	}
	if p.Exited() {
		t.Error("player exited the level through a paired teleporter")
	}
}

func TestLoneTeleporterExitsLevel(t *testing.T) {
	c := newTestContext(t)
	a := spawn(t, c, kinds.KindTeleporter1, 10, 18)
	c.input = core.InputOf(core.ActionUp)

	touchTeleporter(c, a)

	if !c.Player().Exited() {
		t.Errorf("State = %s, expected exited", c.Player().State)
	}
	if !c.out.StopMusic {
		t.Error("StopMusic not set on level exit")
	}
}

func TestTeleporterNeedsFreshPress(t *testing.T) {
	c := newTestContext(t)
	a := spawn(t, c, kinds.KindTeleporter1, 10, 18)
	c.input = core.InputOf(core.ActionUp)
	c.prevInput = core.InputOf(core.ActionUp)

	touchTeleporter(c, a)

	if c.Player().Exited() {
		t.Error("held Up used the teleporter again")
	}
}

func TestExitedPlayerStopsUpdating(t *testing.T) {
	c := newTestContext(t)
	c.exitLevel()
	x := c.Player().X

	for iter := 0; iter < 5; iter++ {
		if _, err := c.UpdateFrame(core.InputOf(core.ActionLeft)); err != nil {
			t.Fatalf("UpdateFrame() failed: %v", err)
		}
	}
	if c.Player().X != x {
		t.Errorf("exited player moved to X = %d", c.Player().X)
	}
}
