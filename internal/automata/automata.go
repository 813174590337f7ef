// Package automata implements growable cellular automaton states and the
// engines that advance them.
//
// A state tracks a rectangular viewport with a dense backing buffer; every cell
// outside the viewport reads as an outer value, so the grid behaves as if it
// were unbounded. Writes outside the viewport grow it.
//
// Region returns a view that shares its parent's buffer and clips reads to a
// sub-rectangle. Buffers are copy-on-write: once shared, a buffer is never
// written again, and whichever state mutates first takes a private copy.
// States are not safe for concurrent use.
package automata

import (
	"github.com/vovakirdan/tui-automata/internal/core"
)

// Cell is the binary state of one grid cell.
type Cell uint8

const (
	Inactive Cell = 0
	Active   Cell = 1
)

// Flip returns the opposite cell value.
func (c Cell) Flip() Cell {
	return c ^ 1
}

func (c Cell) String() string {
	if c == Active {
		return "active"
	}
	return "inactive"
}

// CellReader reads single cells in global coordinates.
type CellReader interface {
	Get(p core.Point) Cell
}

// State is the contract shared by the elementary and plane states.
// S is the concrete pointer type so Region and Clone stay typed.
type State[S any] interface {
	CellReader

	// Viewport is the tracked rectangle backed by the dense buffer.
	Viewport() core.Rect
	// SetViewport reallocates the buffer to r, keeping overlapping cells.
	SetViewport(r core.Rect)
	// Set writes one cell, growing the viewport when p lies outside it.
	Set(p core.Point, c Cell)
	// Region returns a view clipped to r that shares this state's buffer.
	Region(r core.Rect) S
	// SetRegion copies every cell of r from src.
	SetRegion(r core.Rect, src CellReader)
	// Translate moves the viewport (and view clip) by offset.
	Translate(offset core.Point)
	// MakeIndependent turns a view into a state owning its buffer.
	MakeIndependent()
	// IsView reports whether the state still borrows another state's buffer.
	IsView() bool
	// Clone returns a state with identical reads that shares the buffer
	// copy-on-write.
	Clone() S
}

// Automaton advances a state by a number of generations. Implementations do
// not modify their input and keep no reference to it after returning.
type Automaton[S State[S]] interface {
	Simulate(state S, generations int) S
}
