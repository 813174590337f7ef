package automata

import (
	"github.com/vovakirdan/tui-automata/internal/core"
)

// Neighborhood is a 3x3 block of cells in row-major order; index 4 is the
// center cell.
type Neighborhood [9]Cell

// Sum returns the number of active cells in the block, center included.
func (n Neighborhood) Sum() int {
	sum := 0
	for _, c := range n {
		sum += int(c)
	}
	return sum
}

// Center returns the cell the block is centered on.
func (n Neighborhood) Center() Cell {
	return n[4]
}

// uniform returns a block with every cell set to c.
func uniform(c Cell) Neighborhood {
	var n Neighborhood
	for i := range n {
		n[i] = c
	}
	return n
}

// RuleFunc maps a neighbourhood to the next value of its center cell.
type RuleFunc func(Neighborhood) Cell

// DefaultRule is the rule a TwoDimensional automaton starts with: a live cell
// stays alive when the block holds 3 or 4 live cells, a dead one is born when
// it holds exactly 3.
func DefaultRule(n Neighborhood) Cell {
	sum := n.Sum()
	if n.Center() == Active {
		if sum == 3 || sum == 4 {
			return Active
		}
		return Inactive
	}
	if sum == 3 {
		return Active
	}
	return Inactive
}

// TwoDimensional is a plane automaton driven by an arbitrary rule function.
// The outer value evolves like any cell surrounded by outer cells.
type TwoDimensional struct {
	rule RuleFunc

	// Successors of an all-active and an all-inactive block, cached per rule.
	fromActive   Cell
	fromInactive Cell
}

var _ Automaton[*PlaneState] = (*TwoDimensional)(nil)

// NewTwoDimensional creates an automaton for rule, or DefaultRule if nil.
func NewTwoDimensional(rule RuleFunc) *TwoDimensional {
	a := &TwoDimensional{}
	a.SetRule(rule)
	return a
}

// Rule returns the current rule function.
func (a *TwoDimensional) Rule() RuleFunc {
	return a.rule
}

// SetRule replaces the rule function and recomputes the outer transitions.
func (a *TwoDimensional) SetRule(rule RuleFunc) {
	if rule == nil {
		rule = DefaultRule
	}
	a.rule = rule
	a.fromActive = rule(uniform(Active))
	a.fromInactive = rule(uniform(Inactive))
}

// nextOuter returns the outer value one generation after outer.
func (a *TwoDimensional) nextOuter(outer Cell) Cell {
	if outer == Active {
		return a.fromActive
	}
	return a.fromInactive
}

// outerAfter returns the outer value generations steps after outer. The
// sequence settles after one step unless the rule toggles uniform blocks, in
// which case it alternates and only the parity of generations matters.
func (a *TwoDimensional) outerAfter(outer Cell, generations int) Cell {
	switch {
	case a.fromActive == Inactive && a.fromInactive == Active:
		if generations%2 == 1 {
			return outer.Flip()
		}
		return outer
	case a.fromActive == Inactive && a.fromInactive == Inactive:
		return Inactive
	case a.fromActive == Active && a.fromInactive == Active:
		return Active
	default:
		return outer
	}
}

// Simulate advances a copy of state by generations steps. Each step evaluates
// the rule over the viewport grown by one cell on every side; the new state
// only grows where a cell differs from the new outer value.
func (a *TwoDimensional) Simulate(in *PlaneState, generations int) *PlaneState {
	state := in.Clone()
	state.MakeIndependent()
	if generations <= 0 {
		return state
	}

	if state.Viewport().Area() == 0 {
		state.SetOuter(a.outerAfter(state.Outer(), generations))
		return state
	}

	for range generations {
		state = stepPlane(state, a.nextOuter(state.Outer()), a.rule)
	}
	return state
}

// Life is Conway's Game of Life. The rule counts the center cell in the block
// sum: a live cell survives with a sum of 3 or 4, a dead cell is born at 3.
type Life struct{}

var _ Automaton[*PlaneState] = Life{}

// Simulate advances a copy of state by generations steps. The outer value of
// Life is always inactive, so a state without tracked cells never changes.
func (Life) Simulate(in *PlaneState, generations int) *PlaneState {
	state := in.Clone()
	state.MakeIndependent()
	if generations <= 0 || state.Viewport().Area() == 0 {
		return state
	}

	for range generations {
		state = stepPlane(state, Inactive, lifeRule)
	}
	return state
}

func lifeRule(n Neighborhood) Cell {
	sum := n.Sum()
	if sum == 3 || (sum == 4 && n.Center() == Active) {
		return Active
	}
	return Inactive
}

// stepPlane computes one generation of cur into a fresh state with the same
// viewport and the given outer value.
func stepPlane(cur *PlaneState, outer Cell, rule RuleFunc) *PlaneState {
	vp := cur.Viewport()
	next := NewPlaneStateRect(vp, Inactive)
	next.outer = outer

	area := vp.Grown(1)
	for y := area.MinY(); y < area.MaxY(); y++ {
		for x := area.MinX(); x < area.MaxX(); x++ {
			p := core.Pt(x, y)
			next.Set(p, rule(cur.neighborhood(p)))
		}
	}
	return next
}
