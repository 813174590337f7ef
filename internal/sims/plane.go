package sims

import (
	"fmt"

	"github.com/vovakirdan/tui-automata/internal/automata"
	"github.com/vovakirdan/tui-automata/internal/core"
	"github.com/vovakirdan/tui-automata/internal/registry"
)

// Plane runs a two-dimensional automaton: Conway's Life or the generic
// engine driven by a life-like rule.
type Plane struct {
	id    string
	title string

	// configure builds the engine for a rule string and reports the
	// normalized rule.
	configure func(rule string) (automata.Automaton[*automata.PlaneState], string, error)

	engine     automata.Automaton[*automata.PlaneState]
	rule       string
	state      *automata.PlaneState
	generation int
}

var _ registry.Simulation = (*Plane)(nil)

// NewLife creates a Game of Life simulation from an empty state.
func NewLife() *Plane {
	return newPlane("life", "Game of Life", func(string) (automata.Automaton[*automata.PlaneState], string, error) {
		return automata.Life{}, "B3/S23", nil
	})
}

// NewTwoDimensional creates a generic 2D simulation. Its rule is a life-like
// rule string; the outer value evolves with it.
func NewTwoDimensional() *Plane {
	return newPlane("twod", "Two-Dimensional Automaton", func(rule string) (automata.Automaton[*automata.PlaneState], string, error) {
		if rule == "" {
			return automata.NewTwoDimensional(nil), "default", nil
		}
		lr, err := automata.ParseRule(rule)
		if err != nil {
			return nil, "", err
		}
		return automata.NewTwoDimensional(lr.Func()), lr.String(), nil
	})
}

func newPlane(id, title string, configure func(string) (automata.Automaton[*automata.PlaneState], string, error)) *Plane {
	p := &Plane{id: id, title: title, configure: configure, state: automata.NewPlaneState()}
	p.engine, p.rule, _ = configure("")
	return p
}

func (p *Plane) ID() string { return p.id }
func (p *Plane) Title() string { return p.title }

// Reset builds the engine from cfg.LifeRule and seeds the pattern centered on
// the origin.
func (p *Plane) Reset(cfg core.RuntimeConfig) error {
	engine, rule, err := p.configure(cfg.LifeRule)
	if err != nil {
		return fmt.Errorf("sims: %s: %w", p.id, err)
	}
	pat, err := seed(cfg.Pattern, defaultPlaneSeed)
	if err != nil {
		return err
	}
	state, err := pat.Centered()
	if err != nil {
		return err
	}
	p.engine, p.rule = engine, rule
	p.state = state
	p.generation = 0
	return nil
}

func (p *Plane) Step(generations int) {
	if generations <= 0 {
		return
	}
	p.state = p.engine.Simulate(p.state, generations)
	p.generation += generations
}

func (p *Plane) Toggle(pt core.Point) {
	p.state.Set(pt, p.state.Get(pt).Flip())
}

func (p *Plane) Render(dst *core.Screen) {
	automata.Draw(dst, p.state)
}

func (p *Plane) Focus() core.Rect { return p.state.Viewport() }
func (p *Plane) Generation() int { return p.generation }
func (p *Plane) Population() int { return p.state.Population() }
func (p *Plane) Rule() string { return p.rule }
func (p *Plane) State() *automata.PlaneState { return p.state }

func (p *Plane) Encode(name string) ([]byte, error) {
	return automata.EncodeRecord(automata.Record[*automata.PlaneState]{
		Name:  name,
		Kind:  p.id,
		Rule:  p.rule,
		State: p.state,
	})
}

// Decode loads a saved plane. A stored rule replaces the engine rule.
func (p *Plane) Decode(data []byte) error {
	rec, err := automata.DecodeRecord[*automata.PlaneState](data)
	if err != nil {
		return err
	}
	if err := checkKind(rec.Kind, p.id); err != nil {
		return err
	}
	if rec.Rule != "" && rec.Rule != "default" {
		engine, rule, err := p.configure(rec.Rule)
		if err != nil {
			return fmt.Errorf("sims: %s: %w", p.id, err)
		}
		p.engine, p.rule = engine, rule
	}
	p.state = rec.State
	p.generation = 0
	return nil
}
