package core

import "time"

// RuntimeConfig contains configuration passed to the platform at startup.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second driven by the platform (default 60)

	// HoldWindow is how long a terminal key press keeps its direction held.
	// Terminals report presses only, so a held key shows up as repeats.
	HoldWindow time.Duration
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		HoldWindow: 550 * time.Millisecond,
	}
}
