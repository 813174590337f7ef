package automata

import (
	"github.com/vovakirdan/tui-automata/internal/core"
)

// Elementary is a Wolfram-code one-dimensional automaton. The newest
// generation is the last viewport row; each step appends the next row below.
type Elementary struct {
	// Rule is the Wolfram code: bit (left<<2 | self<<1 | right) of Rule
	// is the next value of a cell with that neighbourhood.
	Rule uint8
}

var _ Automaton[*ElementaryState] = (*Elementary)(nil)

// NewElementary creates an automaton for the given Wolfram code.
func NewElementary(rule uint8) *Elementary {
	return &Elementary{Rule: rule}
}

// Next returns the successor of a cell given its neighbourhood.
func (e *Elementary) Next(left, self, right Cell) Cell {
	idx := left<<2 | self<<1 | right
	return Cell(e.Rule>>idx) & 1
}

// bornFromEmpty reports whether an all-inactive neighbourhood turns active.
func (e *Elementary) bornFromEmpty() bool { return e.Rule&0b1 != 0 }

// survivesFull reports whether an all-active neighbourhood stays active.
func (e *Elementary) survivesFull() bool { return e.Rule&0b1000_0000 != 0 }

// Simulate appends generations rows to a copy of state.
//
// A state without tracked cells is treated as one infinite row: only the row
// outer values evolve, driven by the rule's all-inactive and all-active bits.
// If simulation never grows the viewport, it is still extended by generations
// rows so the history height reflects the count.
func (e *Elementary) Simulate(in *ElementaryState, generations int) *ElementaryState {
	state := in.Clone()
	state.MakeIndependent()
	if generations <= 0 {
		return state
	}

	start := state.Viewport()
	first := start.MaxY() - 1

	if start.Area() == 0 {
		for y := first; y < first+generations; y++ {
			if state.Row(y) == Inactive {
				if !e.bornFromEmpty() {
					break
				}
				state.SetRow(y+1, Active)
			} else if e.survivesFull() {
				state.SetRow(y+1, Active)
			}
		}
		return state
	}

	for y := first; y < first+generations; y++ {
		e.step(state, y)
	}

	if state.Viewport() == start {
		state.resize(start.ExpandedDown(generations))
	}
	return state
}

// step writes row y+1 from row y.
func (e *Elementary) step(state *ElementaryState, y int) {
	switch state.Row(y) {
	case Inactive:
		if e.bornFromEmpty() {
			state.SetRow(y+1, Active)
		}
	case Active:
		if e.survivesFull() {
			state.SetRow(y+1, Active)
		}
	}

	vp := state.Viewport()
	for x := vp.MinX() - 1; x <= vp.MaxX(); x++ {
		next := e.Next(
			state.Get(core.Pt(x-1, y)),
			state.Get(core.Pt(x, y)),
			state.Get(core.Pt(x+1, y)),
		)
		state.Set(core.Pt(x, y+1), next)
	}
}
