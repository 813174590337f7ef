package automata

import (
	"slices"
)

// buffer is a dense cell store that may be referenced by several states.
// A shared buffer is frozen: no state writes to it, writers copy it first.
type buffer struct {
	cells  []Cell
	shared bool
}

func newBuffer(n int, fill Cell) *buffer {
	b := &buffer{cells: make([]Cell, n)}
	if fill != Inactive {
		for i := range b.cells {
			b.cells[i] = fill
		}
	}
	return b
}

// share marks b frozen and returns it for the new reference.
func (b *buffer) share() *buffer {
	b.shared = true
	return b
}

// writable returns b itself if it is private, otherwise a private copy.
func (b *buffer) writable() *buffer {
	if !b.shared {
		return b
	}
	return &buffer{cells: slices.Clone(b.cells)}
}

func (b *buffer) len() int {
	return len(b.cells)
}

// fill sets cells[from:to] to c.
func (b *buffer) fill(from, to int, c Cell) {
	for i := from; i < to; i++ {
		b.cells[i] = c
	}
}
