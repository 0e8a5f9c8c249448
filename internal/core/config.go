package core

// DefaultMaxDepth is the horizon depth used when none is configured.
const DefaultMaxDepth = 3

// RuntimeConfig contains the settings handed to strategy factories.
type RuntimeConfig struct {
	MaxDepth      int  // Horizon depth for depth-limited search
	NearestTarget bool // Horizon goal is the nearest enemy instead of the first
	MaxTicks      int  // Upper bound on simulated ticks per run
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		MaxDepth:      DefaultMaxDepth,
		NearestTarget: false,
		MaxTicks:      500,
	}
}
