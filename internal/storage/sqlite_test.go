package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSlotSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	blob := []byte{0x81, 0xa1, 'f', 0x2a}
	if err := store.SaveSlot("quick", "training", 120, blob); err != nil {
		t.Fatalf("SaveSlot() failed: %v", err)
	}

	e, err := store.LoadSlot("quick")
	if err != nil {
		t.Fatalf("LoadSlot() failed: %v", err)
	}
	if e.LevelID != "training" || e.Frame != 120 {
		t.Errorf("LoadSlot() = %s@%d, expected training@120", e.LevelID, e.Frame)
	}
	if !bytes.Equal(e.Blob, blob) {
		t.Errorf("Blob = %x, expected %x", e.Blob, blob)
	}
}

func TestSlotOverwrite(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveSlot("quick", "training", 10, []byte{1}); err != nil {
		t.Fatalf("SaveSlot() failed: %v", err)
	}
	if err := store.SaveSlot("quick", "outpost", 20, []byte{2}); err != nil {
		t.Fatalf("SaveSlot() failed: %v", err)
	}

	slots, err := store.ListSlots()
	if err != nil {
		t.Fatalf("ListSlots() failed: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("len(ListSlots()) = %d, expected 1", len(slots))
	}
	if slots[0].LevelID != "outpost" || slots[0].Frame != 20 {
		t.Errorf("slot = %s@%d, expected outpost@20", slots[0].LevelID, slots[0].Frame)
	}
	if slots[0].Blob != nil {
		t.Error("ListSlots() returned blobs, expected metadata only")
	}
}

func TestSlotMissing(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.LoadSlot("nope"); !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("LoadSlot(missing) = %v, expected ErrSlotNotFound", err)
	}
	if err := store.SaveSlot("", "training", 0, nil); err == nil {
		t.Error("SaveSlot(\"\") succeeded, expected an error")
	}
}

func TestSlotDelete(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveSlot("a", "training", 1, []byte{1}); err != nil {
		t.Fatalf("SaveSlot() failed: %v", err)
	}
	if err := store.DeleteSlot("a"); err != nil {
		t.Fatalf("DeleteSlot() failed: %v", err)
	}
	if err := store.DeleteSlot("a"); err != nil {
		t.Errorf("DeleteSlot() of a deleted slot = %v, expected nil", err)
	}
	if _, err := store.LoadSlot("a"); !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("LoadSlot() after delete = %v, expected ErrSlotNotFound", err)
	}
}

func TestScoresOrdering(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		level  string
		score  int
		frames uint64
	}{
		{"training", 100, 300},
		{"training", 5000, 900},
		{"training", 2500, 600},
		{"outpost", 9000, 1200},
	}
	ids := map[string]bool{}
	for _, r := range runs {
		id, err := store.SaveScore(r.level, r.score, r.frames)
		if err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
		if ids[id] {
			t.Errorf("SaveScore() reused run ID %s", id)
		}
		ids[id] = true
	}

	scores, err := store.TopScores("training", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("len(TopScores()) = %d, expected 2", len(scores))
	}
	if scores[0].Score != 5000 || scores[1].Score != 2500 {
		t.Errorf("TopScores() = %d, %d, expected 5000, 2500", scores[0].Score, scores[1].Score)
	}
	if scores[0].Frames != 900 {
		t.Errorf("Frames = %d, expected 900", scores[0].Frames)
	}

	all, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores(all) failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("len(TopScores(all)) = %d, expected 4", len(all))
	}
	if all[0].LevelID != "outpost" {
		t.Errorf("TopScores(all) led by %q, expected outpost", all[0].LevelID)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("training")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty table = %d, expected 0", high)
	}

	for _, s := range []int{300, 1200, 700} {
		if _, err := store.SaveScore("training", s, 0); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	high, err = store.HighScore("training")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 1200 {
		t.Errorf("HighScore() = %d, expected 1200", high)
	}
}
