package sims

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-automata/internal/automata"
	"github.com/vovakirdan/tui-automata/internal/core"
	"github.com/vovakirdan/tui-automata/internal/registry"
)

// Elementary runs a Wolfram-code automaton. Every generation is kept as a row
// of the history, so the state grows downward.
type Elementary struct {
	engine     *automata.Elementary
	state      *automata.ElementaryState
	generation int
}

var _ registry.Simulation = (*Elementary)(nil)

// NewElementary creates an elementary simulation running rule 90 from an
// empty state. Call Reset to seed it.
func NewElementary() *Elementary {
	return &Elementary{
		engine: automata.NewElementary(90),
		state:  automata.NewElementaryState(),
	}
}

func (e *Elementary) ID() string { return "elementary" }
func (e *Elementary) Title() string { return "Elementary Automaton" }

// Reset sets the rule from cfg and seeds the first row.
func (e *Elementary) Reset(cfg core.RuntimeConfig) error {
	p, err := seed(cfg.Pattern, defaultElementarySeed)
	if err != nil {
		return err
	}
	state, err := p.Elementary()
	if err != nil {
		return err
	}
	e.engine = automata.NewElementary(cfg.Rule)
	e.state = state
	e.generation = 0
	return nil
}

func (e *Elementary) Step(generations int) {
	if generations <= 0 {
		return
	}
	e.state = e.engine.Simulate(e.state, generations)
	e.generation += generations
}

// Toggle flips one cell of the history.
func (e *Elementary) Toggle(p core.Point) {
	e.state.Set(p, e.state.Get(p).Flip())
}

// Render draws the history. When the newest row falls below the window, the
// window scrolls so that row sits on the last line.
func (e *Elementary) Render(dst *core.Screen) {
	if last := e.state.Viewport().MaxY() - 1; last >= dst.Window().MaxY() {
		dst.Origin.Y = last - dst.Height() + 1
	}
	automata.Draw(dst, e.state)
}

func (e *Elementary) Focus() core.Rect { return e.state.Viewport() }
func (e *Elementary) Generation() int { return e.generation }
func (e *Elementary) Population() int { return e.state.Population() }
func (e *Elementary) Rule() string { return fmt.Sprintf("rule %d", e.engine.Rule) }
func (e *Elementary) State() *automata.ElementaryState { return e.state }

func (e *Elementary) Encode(name string) ([]byte, error) {
	return automata.EncodeRecord(automata.Record[*automata.ElementaryState]{
		Name:  name,
		Kind:  e.ID(),
		Rule:  strconv.Itoa(int(e.engine.Rule)),
		State: e.state,
	})
}

// Decode loads a saved history. The stored rule, if any, replaces the current
// one and the generation counter restarts from the history height.
func (e *Elementary) Decode(data []byte) error {
	rec, err := automata.DecodeRecord[*automata.ElementaryState](data)
	if err != nil {
		return err
	}
	if err := checkKind(rec.Kind, e.ID()); err != nil {
		return err
	}
	if rec.Rule != "" {
		rule, err := parseWolfram(rec.Rule)
		if err != nil {
			return err
		}
		e.engine = automata.NewElementary(rule)
	}
	e.state = rec.State
	e.generation = max(rec.State.Viewport().Height()-1, 0)
	return nil
}

// parseWolfram parses a rule number, optionally prefixed with "rule".
func parseWolfram(s string) (uint8, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "rule"))
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("sims: bad elementary rule %q: %w", s, err)
	}
	return uint8(n), nil
}
