// Package config provides YAML-based engine configuration loading and
// difficulty presets for the simulation host.
package config

import (
	"fmt"

	"github.com/vovakirdan/dn2sim/internal/core"
)

// EngineConfig contains everything the host needs to set up a simulation.
type EngineConfig struct {
	Memory     MemoryConfig     `yaml:"memory"`
	Simulation SimulationConfig `yaml:"simulation"`
	Viewer     ViewerConfig     `yaml:"viewer"`
	Logging    LoggingConfig    `yaml:"logging"`
	Storage    StorageConfig    `yaml:"storage"`
}

// MemoryConfig sizes the level arena.
type MemoryConfig struct {
	ArenaBytes int `yaml:"arena_bytes"`
	MaxChunks  int `yaml:"max_chunks"`
}

// SimulationConfig defines the pacing and the level-load difficulty.
type SimulationConfig struct {
	TickRate   int              `yaml:"tick_rate"`  // Frames per second in the viewer
	Difficulty DifficultyPreset `yaml:"difficulty"` // easy, medium or hard
}

// ViewerConfig defines the terminal viewer size.
type ViewerConfig struct {
	ScreenW int `yaml:"screen_w"`
	ScreenH int `yaml:"screen_h"`
}

// LoggingConfig defines the diagnostics level.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// StorageConfig defines where save slots and scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// Runtime converts the config into the host-side runtime settings.
func (c EngineConfig) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    c.Viewer.ScreenW,
		ScreenH:    c.Viewer.ScreenH,
		TickRate:   c.Simulation.TickRate,
		Difficulty: c.Simulation.Difficulty.Level(),
	}
}

// Validate checks that the values can start a simulation.
func (c EngineConfig) Validate() error {
	if c.Memory.ArenaBytes <= 0 {
		return fmt.Errorf("config: memory.arena_bytes must be positive, got %d", c.Memory.ArenaBytes)
	}
	if c.Memory.MaxChunks <= 0 {
		return fmt.Errorf("config: memory.max_chunks must be positive, got %d", c.Memory.MaxChunks)
	}
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("config: simulation.tick_rate must be positive, got %d", c.Simulation.TickRate)
	}
	if _, err := ParseDifficulty(string(c.Simulation.Difficulty)); err != nil {
		return err
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown logging.level %q", c.Logging.Level)
	}
	return nil
}
