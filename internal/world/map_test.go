package world

import (
	"testing"

	"github.com/vovakirdan/dn2sim/internal/core"
)

func TestMapReadWriteBounds(t *testing.T) {
	m, err := NewMap(4, 3, []Attr{0, Solid})
	if err != nil {
		t.Fatalf("NewMap() failed: %v", err)
	}

	m.SetTile(1, 2, 1)
	if m.Tile(2, 1) != 1 {
		t.Errorf("Tile(2, 1) = %d, expected 1", m.Tile(2, 1))
	}
	if !m.Attrs(2, 1).Has(SolidTop) {
		t.Error("tile 1 should be solid on top")
	}

	m.SetTile(1, -1, 0) // ignored
	m.SetTile(1, 4, 0)  // ignored
	if m.Tile(-1, 0) != 0 || m.Tile(0, 3) != 0 {
		t.Error("out of bounds reads should return tile 0")
	}
	if m.AttrOf(99) != 0 {
		t.Error("tile indices beyond the table should have no attributes")
	}
}

func TestMapFillCloneIndependent(t *testing.T) {
	m, _ := NewMap(5, 5, []Attr{0, Solid})
	m.Fill(core.NewRect(1, 1, 2, 2), 1)

	c := m.Clone()
	c.SetTile(0, 1, 1)

	if m.Tile(1, 1) != 1 {
		t.Error("Clone() shares storage with the original")
	}
	if c.Tile(2, 2) != 1 {
		t.Error("Clone() lost filled tiles")
	}
	if m.ByteSize() != 50 {
		t.Errorf("ByteSize() = %d, expected 50", m.ByteSize())
	}
}

func TestParseAttr(t *testing.T) {
	a, ok := ParseAttr([]string{"solid_top", "Ladder", " conveyor_left "})
	if !ok {
		t.Fatal("ParseAttr() rejected known names")
	}
	if a != SolidTop|Ladder|ConveyorLeft {
		t.Errorf("ParseAttr() = %s", a)
	}

	if all, _ := ParseAttr([]string{"solid"}); all != Solid {
		t.Errorf("ParseAttr(solid) = %s, expected all edges", all)
	}
	if _, ok := ParseAttr([]string{"sticky"}); ok {
		t.Error("ParseAttr() should flag unknown names")
	}
	if (SolidTop | Ladder).String() != "solid_top|ladder" {
		t.Errorf("String() = %q", (SolidTop | Ladder).String())
	}
}
