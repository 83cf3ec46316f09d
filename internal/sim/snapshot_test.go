package sim

import (
	"encoding/binary"
	"testing"

	"github.com/vovakirdan/dn2sim/internal/core"
	"github.com/vovakirdan/dn2sim/internal/kinds"
	"github.com/vovakirdan/dn2sim/internal/levels"
	"github.com/vovakirdan/dn2sim/internal/world"
)

// scriptedInput walks right, jumps now and then and keeps firing.
func scriptedInput(frame int) core.InputFrame {
	in := core.NewInputFrame()
	switch {
	case frame%40 < 25:
		in.Set(core.ActionRight)
	case frame%40 < 32:
		in.Set(core.ActionLeft)
	}
	if frame%17 == 0 {
		in.Set(core.ActionJump)
	}
	if frame%6 < 3 {
		in.Set(core.ActionFire)
	}
	return in
}

func runFrames(t *testing.T, c *Context, from, to int) {
	t.Helper()
	for i := from; i < to; i++ {
		if _, err := c.UpdateFrame(scriptedInput(i)); err != nil {
			t.Fatalf("UpdateFrame() at frame %d failed: %v", i, err)
		}
	}
}

func TestDeterminism(t *testing.T) {
	all, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin() failed: %v", err)
	}

	for _, lvl := range all {
		t.Run(lvl.ID, func(t *testing.T) {
			var hashes [2][]uint64
			for run := 0; run < 2; run++ {
				c, err := New()
				if err != nil {
					t.Fatalf("New() failed: %v", err)
				}
				if err := c.LoadLevel(&lvl); err != nil {
					t.Fatalf("LoadLevel() failed: %v", err)
				}
				for step := 0; step < 6; step++ {
					runFrames(t, c, step*50, (step+1)*50)
					hashes[run] = append(hashes[run], c.Hash())
				}
			}

			for i := range hashes[0] {
				if hashes[0][i] != hashes[1][i] {
					t.Fatalf("hash after %d frames differs: %d vs %d", (i+1)*50, hashes[0][i], hashes[1][i])
				}
			}
		})
	}
}

func TestRestoreReplaysIdentically(t *testing.T) {
	c := newTestContext(t,
		levels.ActorPlacement{Kind: kinds.KindSkeleton, X: 10, Y: 18},
		levels.ActorPlacement{Kind: kinds.KindWatchBot, X: 20, Y: 18},
		levels.ActorPlacement{Kind: kinds.KindBoxRed, X: 25, Y: 18},
	)
	runFrames(t, c, 0, 50)
	snap := c.Snapshot()

	runFrames(t, c, 50, 120)
	want := c.Hash()

	if err := c.Restore(snap); err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	if c.FrameNumber() != 50 {
		t.Errorf("FrameNumber() after Restore = %d, expected 50", c.FrameNumber())
	}
	runFrames(t, c, 50, 120)
	if got := c.Hash(); got != want {
		t.Errorf("Hash() after replay = %d, expected %d", got, want)
	}
}

func TestSnapshotPreservesRNG(t *testing.T) {
	c := newTestContext(t)
	for iter := 0; iter < 5; iter++ {
		c.RNG().Next()
	}
	snap := c.Snapshot()
	want := c.RNG().Peek()

	for iter := 0; iter < 3; iter++ {
		c.RNG().Next()
	}
	if err := c.Restore(snap); err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	if got := c.RNG().Next(); got != want {
		t.Errorf("Next() after Restore = %d, expected %d", got, want)
	}
}

func TestSnapshotEncoding(t *testing.T) {
	c := newTestContext(t, levels.ActorPlacement{Kind: kinds.KindSkeleton, X: 10, Y: 18})
	runFrames(t, c, 0, 30)
	c.collectLetter(kinds.KindLetterN)
	snap := c.Snapshot()

	data, err := EncodeSnapshot(snap)
	if err != nil {
		t.Fatalf("EncodeSnapshot() failed: %v", err)
	}
	decoded, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot() failed: %v", err)
	}
	if decoded.Hash() != snap.Hash() {
		t.Errorf("decoded Hash() = %d, expected %d", decoded.Hash(), snap.Hash())
	}

	other, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := other.Restore(decoded); err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	if other.Hash() != c.Hash() {
		t.Errorf("restored Hash() = %d, expected %d", other.Hash(), c.Hash())
	}
	if got := other.Player().Letters; len(got) != 1 || got[0] != kinds.KindLetterN {
		t.Errorf("restored Letters = %v, expected [letter_n]", got)
	}

	if _, err := DecodeSnapshot([]byte{0xc1}); err == nil {
		t.Error("DecodeSnapshot(garbage) succeeded")
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	c := newTestContext(t, levels.ActorPlacement{Kind: kinds.KindSkeleton, X: 10, Y: 18})
	snap := c.Snapshot()
	want := snap.Hash()

	c.Actor(0).X = 5
	c.Tiles().SetTile(tileEmpty, 0, 0)
	if got := snap.Hash(); got != want {
		t.Errorf("snapshot Hash() changed with the live state: %d, expected %d", got, want)
	}
}

func TestRestoreBringsBackDoorTileCache(t *testing.T) {
	c := newTestContext(t, levels.ActorPlacement{Kind: kinds.KindSlidingDoorVertical, X: 20, Y: 18})
	door := c.Actor(0)
	if door == nil || door.Kind != kinds.KindSlidingDoorVertical {
		t.Fatal("door not spawned in slot 0")
	}
	area := actorArea(door)
	snap := c.Snapshot()

	c.openDoor(door, world.PartDoorOpening)
	clear(c.Arena().Bytes(door.Buffer))

	if err := c.Restore(snap); err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	door = c.Actor(0)
	cache := c.Arena().Bytes(door.Buffer)
	if len(cache) != area.W*area.H*2 {
		t.Fatalf("door cache is %d bytes, expected %d", len(cache), area.W*area.H*2)
	}
	for i := 0; i < len(cache); i += 2 {
		if got := binary.LittleEndian.Uint16(cache[i:]); got != tileSolid {
			t.Errorf("cache word %d = %d, expected %d", i/2, got, tileSolid)
		}
	}

	// The restored cache closes the door again.
	c.openDoor(door, world.PartDoorOpening)
	c.closeDoor(door)
	for y := area.Y; y < area.Bottom(); y++ {
		if got := c.Tiles().Tile(area.X, y); got != tileSolid {
			t.Errorf("tile (%d, %d) after close = %d, expected %d", area.X, y, got, tileSolid)
		}
	}
}
