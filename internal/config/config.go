// Package config provides YAML-based configuration loading for the automata
// tools: which simulation to run, viewer pacing, storage and SSH serving.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-automata/internal/automata"
	"github.com/vovakirdan/tui-automata/internal/core"
)

// Config is the complete tool configuration.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Viewer     ViewerConfig     `yaml:"viewer"`
	Storage    StorageConfig    `yaml:"storage"`
	Server     ServerConfig     `yaml:"server"`
}

// SimulationConfig selects the automaton and its seed.
type SimulationConfig struct {
	Kind        string `yaml:"kind"`        // Registered simulation id
	Rule        int    `yaml:"rule"`        // Wolfram code, 0-255
	LifeRule    string `yaml:"life_rule"`   // B/S notation for the generic 2D automaton
	Pattern     string `yaml:"pattern"`     // Seed pattern name or file, empty for the default
	Generations int    `yaml:"generations"` // Generations simulated by `run`
}

// ViewerConfig controls the pacing of the interactive viewer.
type ViewerConfig struct {
	TickRate int         `yaml:"tick_rate"` // Ticks per second
	StepSize int         `yaml:"step_size"` // Generations per tick
	Speed    SpeedPreset `yaml:"speed"`     // Optional preset overriding the two above
}

// StorageConfig locates the saved-state library.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig configures the SSH viewer server.
type ServerConfig struct {
	Addr        string        `yaml:"addr"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Simulation.Rule < 0 || c.Simulation.Rule > 255 {
		return fmt.Errorf("config: rule %d out of range 0-255", c.Simulation.Rule)
	}
	if c.Simulation.LifeRule != "" {
		if _, err := automata.ParseRule(c.Simulation.LifeRule); err != nil {
			return fmt.Errorf("config: life_rule: %w", err)
		}
	}
	if c.Simulation.Generations < 0 {
		return fmt.Errorf("config: generations must not be negative, got %d", c.Simulation.Generations)
	}
	if c.Viewer.TickRate <= 0 || c.Viewer.TickRate > MaxTickRate {
		return fmt.Errorf("config: tick_rate %d out of range 1-%d", c.Viewer.TickRate, MaxTickRate)
	}
	if c.Viewer.StepSize <= 0 {
		return fmt.Errorf("config: step_size must be positive, got %d", c.Viewer.StepSize)
	}
	if c.Viewer.Speed != "" && !c.Viewer.Speed.Valid() {
		return fmt.Errorf("config: unknown speed preset %q", c.Viewer.Speed)
	}
	return nil
}

// Runtime converts the configuration into the values passed to simulations.
func (c Config) Runtime(screenW, screenH int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if screenW > 0 {
		rc.ScreenW = screenW
	}
	if screenH > 0 {
		rc.ScreenH = screenH
	}
	rc.TickRate = c.Viewer.TickRate
	rc.StepSize = c.Viewer.StepSize
	rc.Rule = uint8(c.Simulation.Rule)
	if c.Simulation.LifeRule != "" {
		rc.LifeRule = c.Simulation.LifeRule
	}
	rc.Pattern = c.Simulation.Pattern
	return rc
}
