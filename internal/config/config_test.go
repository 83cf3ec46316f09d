package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultEngineConfig() {
		t.Errorf("Load() = %+v, expected %+v", cfg, DefaultEngineConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestLoadCustomPathOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	data := []byte("simulation:\n  difficulty: hard\nmemory:\n  max_chunks: 64\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Simulation.Difficulty != DifficultyHard {
		t.Errorf("Difficulty = %q, expected %q", cfg.Simulation.Difficulty, DifficultyHard)
	}
	if cfg.Memory.MaxChunks != 64 {
		t.Errorf("MaxChunks = %d, expected 64", cfg.Memory.MaxChunks)
	}
	if cfg.Memory.ArenaBytes != DefaultEngineConfig().Memory.ArenaBytes {
		t.Errorf("ArenaBytes = %d, expected the default", cfg.Memory.ArenaBytes)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".dn2sim", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "engine.yaml"), []byte("simulation:\n  tick_rate: 30\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Simulation.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.Simulation.TickRate)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("memory: [1, 2"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("simulation:\n  difficulty: nightmare\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.yaml")},
		{"malformed yaml", bad},
		{"unknown difficulty", invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path); err == nil {
				t.Errorf("Load(%s) succeeded, expected an error", tt.name)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in        string
		want      DifficultyPreset
		wantLevel int
		wantErr   bool
	}{
		{"easy", DifficultyEasy, 1, false},
		{"Medium", DifficultyMedium, 2, false},
		{"normal", DifficultyMedium, 2, false},
		{"3", DifficultyHard, 3, false},
		{"insane", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDifficulty(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDifficulty(%q) error = %v, expected error %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ParseDifficulty(%q) = %q, expected %q", tt.in, got, tt.want)
			}
			if got.Level() != tt.wantLevel {
				t.Errorf("Level() = %d, expected %d", got.Level(), tt.wantLevel)
			}
		})
	}
}

func TestRuntime(t *testing.T) {
	cfg := DefaultEngineConfig()
	if err := ApplyDifficultyPreset(&cfg, "easy"); err != nil {
		t.Fatalf("ApplyDifficultyPreset() failed: %v", err)
	}

	rc := cfg.Runtime()
	if rc.Difficulty != 1 || rc.TickRate != 15 || rc.ScreenW != 80 {
		t.Errorf("Runtime() = %+v, expected difficulty 1 at 15 fps on 80 columns", rc)
	}
}
