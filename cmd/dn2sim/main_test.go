package main

import (
	"testing"

	"github.com/vovakirdan/dn2sim/internal/config"
)

func TestLoadEngineConfigFlagOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	flagDifficulty, flagDBPath, flagLogLevel = "hard", "/tmp/x.db", "debug"
	t.Cleanup(func() { flagDifficulty, flagDBPath, flagLogLevel = "", "", "" })

	cfg, err := loadEngineConfig()
	if err != nil {
		t.Fatalf("loadEngineConfig() error = %v", err)
	}
	if cfg.Simulation.Difficulty != config.DifficultyHard {
		t.Errorf("Difficulty = %q, expected hard", cfg.Simulation.Difficulty)
	}
	if cfg.Storage.DBPath != "/tmp/x.db" {
		t.Errorf("DBPath = %q, expected /tmp/x.db", cfg.Storage.DBPath)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected debug", cfg.Logging.Level)
	}
}

func TestLoadEngineConfigRejectsBadFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tests := []struct {
		difficulty string
		logLevel   string
	}{
		{"nightmare", ""},
		{"", "verbose"},
	}
	for _, tt := range tests {
		flagDifficulty, flagLogLevel = tt.difficulty, tt.logLevel
		if _, err := loadEngineConfig(); err == nil {
			t.Errorf("loadEngineConfig(%q, %q) expected error", tt.difficulty, tt.logLevel)
		}
	}
	flagDifficulty, flagLogLevel = "", ""
}

func TestResolveAndRunBuiltinLevel(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	lvl, err := resolveLevel("training")
	if err != nil {
		t.Fatalf("resolveLevel() error = %v", err)
	}
	ctx, err := newSimulation(cfg, newLogger(cfg), &lvl)
	if err != nil {
		t.Fatalf("newSimulation() error = %v", err)
	}
	if ctx.LevelID() != "training" {
		t.Errorf("LevelID() = %q, expected training", ctx.LevelID())
	}
	if _, err := resolveLevel("no-such-level"); err == nil {
		t.Error("resolveLevel(no-such-level) expected error")
	}
}
