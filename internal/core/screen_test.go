package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorYellow)
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if s.GetCell(5, 5).Color != ColorYellow {
		t.Errorf("GetCell(5, 5).Color = %d, expected %d", s.GetCell(5, 5).Color, ColorYellow)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorWhite)
	s.Set(0, 100, 'A', ColorWhite)
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawText(5, 0, "Hello", ColorWhite)

	if s.Row(0) != "     Hel" {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "     Hel")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawRect(NewRect(0, 1, 3, 1), '#', ColorRed)

	expected := "   \n###"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}

	s.Resize(4, 1)
	if !strings.HasPrefix(s.Row(0), "    ") {
		t.Errorf("Resize should clear content, row 0 = %q", s.Row(0))
	}
}
