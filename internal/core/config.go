package core

// RuntimeConfig contains the host-side settings a simulation run starts with.
type RuntimeConfig struct {
	ScreenW    int // Viewer width in characters
	ScreenH    int // Viewer height in characters
	TickRate   int // Simulation frames per second
	Difficulty int // 1 = easy, 2 = medium, 3 = hard
}

// DefaultConfig returns a RuntimeConfig with DN2's pacing.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   15,
		Difficulty: 2,
	}
}
