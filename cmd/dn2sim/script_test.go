package main

import (
	"testing"

	"github.com/vovakirdan/dn2sim/internal/core"
)

func TestParseScript(t *testing.T) {
	sc, err := parseScript("right*2, right+jump ,none*2,fire")
	if err != nil {
		t.Fatalf("parseScript() error = %v", err)
	}
	if sc.Len() != 6 {
		t.Fatalf("Len() = %d, expected 6", sc.Len())
	}

	expected := []core.InputFrame{
		core.InputOf(core.ActionRight),
		core.InputOf(core.ActionRight),
		core.InputOf(core.ActionRight, core.ActionJump),
		core.NewInputFrame(),
		core.NewInputFrame(),
		core.InputOf(core.ActionFire),
	}
	for i, want := range expected {
		if got := sc.At(i); got != want {
			t.Errorf("At(%d) = %016b, expected %016b", i, got.Bits(), want.Bits())
		}
	}
	if got := sc.At(7); got != expected[1] {
		t.Errorf("At(7) = %016b, expected loop to frame 1", got.Bits())
	}
}

func TestParseScriptEmpty(t *testing.T) {
	sc, err := parseScript("  ")
	if err != nil {
		t.Fatalf("parseScript() error = %v", err)
	}
	if got := sc.At(42); got != core.NewInputFrame() {
		t.Errorf("At(42) = %016b, expected empty", got.Bits())
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []string{
		"right*0",
		"right*x",
		"walk",
		"left+duck*2",
		"right,,left",
	}
	for _, s := range tests {
		if _, err := parseScript(s); err == nil {
			t.Errorf("parseScript(%q) expected error", s)
		}
	}
}
