// Package registry provides a global registry for simulation factories.
// Simulations register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-automata/internal/core"
)

// ErrUnknownSimulation is returned by Create for unregistered IDs.
var ErrUnknownSimulation = errors.New("registry: unknown simulation")

// Simulation binds an automaton engine to the state it advances.
// Simulations contain pure logic with no external dependencies (especially no
// Bubble Tea). The platform handles input mapping, timing, and rendering.
type Simulation interface {
	// ID returns a unique identifier (e.g., "life", "elementary").
	// Used for CLI commands and as the kind of saved states.
	ID() string

	// Title returns a human-readable name for display (e.g., "Game of Life").
	Title() string

	// Reset configures the engine and replaces the state with the seed
	// pattern named in cfg.
	Reset(cfg core.RuntimeConfig) error

	// Step advances the state by the given number of generations.
	Step(generations int)

	// Toggle flips the cell at p, growing the state if needed.
	Toggle(p core.Point)

	// Render draws the visible part of the state into the screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// Focus returns the rectangle the viewer should keep in view.
	Focus() core.Rect

	// Generation returns the number of generations simulated since Reset.
	Generation() int

	// Population returns the number of active cells in the viewport.
	Population() int

	// Rule describes the engine configuration (e.g., "rule 90", "B3/S23").
	Rule() string

	// Encode serializes the current state as a named record.
	Encode(name string) ([]byte, error)

	// Decode replaces the current state with an encoded record of this kind.
	Decode(data []byte) error
}

// Info contains metadata about a registered simulation.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a simulation.
type Factory func() Simulation

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a simulation factory to the registry.
// Typically called from an init() function.
// Panics if a simulation with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: simulation %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered simulations, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new simulation by its ID.
func Create(id string) (Simulation, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSimulation, id)
	}

	return f(), nil
}

// Restore creates a simulation of the given kind, configures it from cfg and
// replaces its state with an encoded record.
func Restore(id string, cfg core.RuntimeConfig, data []byte) (Simulation, error) {
	sim, err := Create(id)
	if err != nil {
		return nil, err
	}
	if err := sim.Reset(cfg); err != nil {
		return nil, fmt.Errorf("registry: reset %q: %w", id, err)
	}
	if err := sim.Decode(data); err != nil {
		return nil, fmt.Errorf("registry: restore %q: %w", id, err)
	}
	return sim, nil
}

// Exists checks if a simulation with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// unregister removes id; tests use it to clean up.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(factories, id)
	delete(titles, id)
}
