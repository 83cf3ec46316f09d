package arena

import (
	"errors"
	"testing"
)

func TestPushChunkBumpsOffsets(t *testing.T) {
	a := New(100, 4)

	h1, err := a.PushChunk(10, ChunkMap)
	if err != nil {
		t.Fatalf("PushChunk() failed: %v", err)
	}
	h2, err := a.PushChunk(30, ChunkActors)
	if err != nil {
		t.Fatalf("PushChunk() failed: %v", err)
	}

	if h1.Offset != 0 || h2.Offset != 10 {
		t.Errorf("offsets = %d, %d, expected 0, 10", h1.Offset, h2.Offset)
	}
	if a.Used() != 40 || a.Free() != 60 {
		t.Errorf("Used/Free = %d/%d, expected 40/60", a.Used(), a.Free())
	}
	if len(a.Bytes(h2)) != 30 {
		t.Errorf("len(Bytes(h2)) = %d, expected 30", len(a.Bytes(h2)))
	}
}

func TestByteCapEnforced(t *testing.T) {
	a := New(64, 10)
	if _, err := a.PushChunk(60, ChunkMap); err != nil {
		t.Fatalf("PushChunk() failed: %v", err)
	}

	_, err := a.PushChunk(5, ChunkDoorCache)
	if !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("expected ErrOutOfMemory, got %v", err)
	}
	if !errors.Is(err, ErrResourceExhausted) {
		t.Errorf("out of memory should classify as resource exhaustion, got %v", err)
	}
	if a.Used() != 60 || a.ChunkCount() != 1 {
		t.Errorf("failed push changed the arena: used=%d chunks=%d", a.Used(), a.ChunkCount())
	}

	// The exact remainder still fits
	if _, err := a.PushChunk(4, ChunkDoorCache); err != nil {
		t.Errorf("PushChunk(4) should fit exactly, got %v", err)
	}
}

func TestChunkCapEnforcedIndependently(t *testing.T) {
	a := New(1000, 2)
	for i := 0; i < 2; i++ {
		if _, err := a.PushChunk(1, ChunkCommon); err != nil {
			t.Fatalf("PushChunk() failed: %v", err)
		}
	}

	_, err := a.PushChunk(0, ChunkCommon)
	if !errors.Is(err, ErrTooManyChunks) {
		t.Errorf("expected ErrTooManyChunks with bytes to spare, got %v", err)
	}
	if !errors.Is(err, ErrResourceExhausted) {
		t.Errorf("chunk cap should classify as resource exhaustion, got %v", err)
	}
}

func TestReleaseTopStackDiscipline(t *testing.T) {
	a := New(100, 10)
	keep, _ := a.PushChunk(10, ChunkMap)
	a.PushChunk(5, ChunkDoorCache)
	a.PushChunk(5, ChunkMap)
	a.PushChunk(5, ChunkMap)

	if n := a.ReleaseTop(ChunkMap); n != 2 {
		t.Errorf("ReleaseTop(map) = %d, expected 2", n)
	}
	if a.Used() != 15 {
		t.Errorf("Used() = %d, expected 15", a.Used())
	}
	if n := a.ReleaseTop(ChunkMap); n != 0 {
		t.Errorf("ReleaseTop(map) under a door cache = %d, expected 0", n)
	}
	if !a.Owns(keep) {
		t.Error("bottom chunk should still be owned")
	}
}

func TestStaleHandle(t *testing.T) {
	a := New(100, 10)
	h, _ := a.PushChunk(8, ChunkDoorCache)
	a.ReleaseTop(ChunkDoorCache)

	if a.Bytes(h) != nil {
		t.Error("Bytes() of a released chunk should be nil")
	}
	if a.Bytes(Handle{}) != nil {
		t.Error("Bytes() of the zero handle should be nil")
	}
}

func TestStateRestore(t *testing.T) {
	a := New(32, 4)
	h, _ := a.PushChunk(4, ChunkDoorCache)
	copy(a.Bytes(h), []byte{1, 2, 3, 4})
	snap := a.State()

	a.Bytes(h)[0] = 99
	a.PushChunk(8, ChunkLevelActorList)

	if err := a.Restore(snap); err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	if a.ChunkCount() != 1 || a.Used() != 4 {
		t.Errorf("after Restore chunks=%d used=%d, expected 1/4", a.ChunkCount(), a.Used())
	}
	if a.Bytes(h)[0] != 1 {
		t.Errorf("restored byte = %d, expected 1", a.Bytes(h)[0])
	}

	if err := New(16, 4).Restore(snap); err == nil {
		t.Error("Restore() into a differently sized arena should fail")
	}
}
