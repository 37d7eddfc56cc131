package core

// RuntimeConfig contains host settings passed to the game at initialization.
// They describe the terminal and the frame cadence, never the game rules.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second of wall-clock time (default 60)
	Seed     int64 // RNG seed for obstacle geometry, 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
