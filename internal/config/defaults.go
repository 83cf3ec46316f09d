package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// DefaultEngineConfig returns the built-in engine configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Memory: MemoryConfig{
			ArenaBytes: 393216,
			MaxChunks:  1000,
		},
		Simulation: SimulationConfig{
			TickRate:   15,
			Difficulty: DifficultyMedium,
		},
		Viewer: ViewerConfig{
			ScreenW: 80,
			ScreenH: 24,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			DBPath: "~/.dn2sim/dn2sim.db",
		},
	}
}
