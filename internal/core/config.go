package core

// RuntimeConfig contains configuration passed to simulations at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Viewer ticks per second
	StepSize int // Generations simulated per tick

	Rule     uint8  // Wolfram code for elementary automata
	LifeRule string // Life-like rule ("B3/S23") for the generic 2D automaton
	Pattern  string // Seed pattern name or file path, empty for the default seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		StepSize: 1,
		Rule:     90,
		LifeRule: "B3/S23",
	}
}
