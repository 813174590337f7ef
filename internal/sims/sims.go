// Package sims binds the automata engines and their states into registry
// simulations. Importing it registers "elementary", "life" and "twod".
package sims

import (
	"fmt"

	"github.com/vovakirdan/tui-automata/internal/automata"
	"github.com/vovakirdan/tui-automata/internal/patterns"
	"github.com/vovakirdan/tui-automata/internal/registry"
)

// Default seeds when the configuration names no pattern.
const (
	defaultElementarySeed = "single"
	defaultPlaneSeed      = "r-pentomino"
)

func init() {
	registry.Register("elementary", func() registry.Simulation {
		return NewElementary()
	})
	registry.Register("life", func() registry.Simulation {
		return NewLife()
	})
	registry.Register("twod", func() registry.Simulation {
		return NewTwoDimensional()
	})
}

// seed resolves the named pattern, or def when name is empty.
func seed(name, def string) (patterns.Pattern, error) {
	if name == "" {
		name = def
	}
	p, err := patterns.Resolve(name)
	if err != nil {
		return patterns.Pattern{}, fmt.Errorf("sims: seed: %w", err)
	}
	return p, nil
}

// checkKind rejects records saved by another simulation.
func checkKind(got, want string) error {
	if got != want {
		return fmt.Errorf("%w: record of kind %q, want %q", automata.ErrCorruptState, got, want)
	}
	return nil
}
