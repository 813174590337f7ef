package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/automata.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Simulation: SimulationConfig{
			Kind:        "life",
			Rule:        90,
			LifeRule:    "B3/S23",
			Generations: 32,
		},
		Viewer: ViewerConfig{
			TickRate: 10,
			StepSize: 1,
		},
		Storage: StorageConfig{
			Path: "~/.automata/library.db",
		},
		Server: ServerConfig{
			Addr:        ":2323",
			HostKey:     ".ssh/automata_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
