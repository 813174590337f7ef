package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-automata/internal/core"
)

func mustPlane(t *testing.T, origin core.Point, rows ...string) *PlaneState {
	t.Helper()
	s, err := ParsePlane(origin, rows...)
	require.NoError(t, err)
	return s
}

func TestPlaneStateEmpty(t *testing.T) {
	s := NewPlaneState()

	assert.Equal(t, core.Rect{}, s.Viewport())
	assert.Equal(t, Inactive, s.Get(core.Pt(0, 0)))
	assert.Equal(t, Inactive, s.Get(core.Pt(-100, 42)))
	assert.False(t, s.IsView())
	assert.Equal(t, "", s.String())
}

func TestPlaneStateOuterValue(t *testing.T) {
	s := NewPlaneStateRect(core.R(0, 0, 2, 2), Active)

	for _, p := range []core.Point{{X: -1, Y: 0}, {X: 2, Y: 2}, {X: 50, Y: -7}} {
		assert.Equal(t, Active, s.Get(p), "outside point %v", p)
	}
	assert.Equal(t, Active, s.Get(core.Pt(1, 1)), "new cells start as the outer value")

	s.SetOuter(Inactive)
	assert.Equal(t, Inactive, s.Get(core.Pt(-1, 0)))
	assert.Equal(t, Active, s.Get(core.Pt(0, 0)))
}

func TestPlaneStateSetGrows(t *testing.T) {
	s := NewPlaneStateRect(core.R(0, 0, 2, 2), Inactive)

	s.Set(core.Pt(1, 1), Active)
	assert.Equal(t, core.R(0, 0, 2, 2), s.Viewport())

	s.Set(core.Pt(-3, 4), Active)
	assert.Equal(t, core.R(-3, 0, 5, 5), s.Viewport())
	assert.Equal(t, Active, s.Get(core.Pt(-3, 4)))
	assert.Equal(t, Active, s.Get(core.Pt(1, 1)), "existing cells survive growth")
	assert.Equal(t, s.Viewport().Area(), s.cells.len())

	// Writing the outer value outside the viewport is a no-op.
	s.Set(core.Pt(100, 100), Inactive)
	assert.Equal(t, core.R(-3, 0, 5, 5), s.Viewport())
}

func TestPlaneStateSetGetRoundTrip(t *testing.T) {
	points := []core.Point{{X: 0, Y: 0}, {X: 7, Y: -2}, {X: -4, Y: 9}, {X: 3, Y: 3}}
	for _, v := range []Cell{Active, Inactive} {
		s := NewPlaneStateRect(core.R(0, 0, 1, 1), v.Flip())
		for _, p := range points {
			s.Set(p, v)
			assert.Equal(t, v, s.Get(p), "set %v at %v", v, p)
		}
		for _, p := range points {
			assert.Equal(t, v, s.Get(p), "after all writes, %v", p)
		}
	}
}

func TestPlaneStateSetViewport(t *testing.T) {
	s := mustPlane(t, core.Pt(0, 0),
		"O.O",
		".O.",
	)
	s.SetOuter(Active)

	s.SetViewport(core.R(1, 0, 4, 3))
	assert.Equal(t, core.R(1, 0, 4, 3), s.Viewport())
	assert.Equal(t, s.Viewport().Area(), s.cells.len())

	// Overlap keeps its values.
	assert.Equal(t, Inactive, s.Get(core.Pt(1, 0)))
	assert.Equal(t, Active, s.Get(core.Pt(2, 0)))
	assert.Equal(t, Active, s.Get(core.Pt(1, 1)))
	assert.Equal(t, Inactive, s.Get(core.Pt(2, 1)))
	// New cells take the outer value.
	assert.Equal(t, Active, s.Get(core.Pt(3, 0)))
	assert.Equal(t, Active, s.Get(core.Pt(4, 2)))
	// Dropped column reads as outer.
	assert.Equal(t, Active, s.Get(core.Pt(0, 1)))
}

func TestPlaneStateTranslate(t *testing.T) {
	s := mustPlane(t, core.Pt(0, 0), "O.")
	s.Translate(core.Pt(5, -1))

	assert.Equal(t, core.R(5, -1, 2, 1), s.Viewport())
	assert.Equal(t, Active, s.Get(core.Pt(5, -1)))
	assert.Equal(t, Inactive, s.Get(core.Pt(0, 0)))
}

func TestPlaneStateRegionIsView(t *testing.T) {
	parent := mustPlane(t, core.Pt(0, 0),
		"OOO",
		"OOO",
		"OOO",
	)
	parent.SetOuter(Active)

	view := parent.Region(core.R(1, 1, 2, 2))
	require.True(t, view.IsView())
	assert.Same(t, parent.cells, view.cells, "a view does not copy")

	assert.Equal(t, Active, view.Get(core.Pt(1, 1)))
	assert.Equal(t, Inactive, view.Get(core.Pt(0, 0)), "outside the clip reads inactive")
	assert.Equal(t, Inactive, view.Get(core.Pt(10, 10)), "clip wins over the parent's outer value")
	assert.Equal(t, "██\n██", view.String())
	assert.Len(t, view.ActiveCells(), 4)
}

func TestPlaneStateCopyOnWrite(t *testing.T) {
	parent := mustPlane(t, core.Pt(0, 0),
		"O..",
		".O.",
		"..O",
	)
	clip := core.R(0, 0, 2, 2)
	view := parent.Region(clip)
	before := view.String()

	// Mutating the parent leaves the view untouched.
	parent.Set(core.Pt(1, 0), Active)
	parent.Set(core.Pt(0, 0), Inactive)
	parent.SetRegion(core.R(0, 1, 2, 1), NewPlaneStateRect(core.R(0, 1, 2, 1), Active))
	assert.Equal(t, before, view.String())
	assert.Equal(t, Active, view.Get(core.Pt(0, 0)))

	// Mutating the view promotes it and leaves the parent untouched.
	parentBefore := parent.String()
	view.Set(core.Pt(1, 0), Active)
	assert.False(t, view.IsView())
	assert.Equal(t, clip, view.Viewport())
	assert.Equal(t, parentBefore, parent.String())
	assert.Equal(t, "██\n █", view.String())
}

func TestPlaneStateMakeIndependent(t *testing.T) {
	parent := mustPlane(t, core.Pt(0, 0), "OO", "OO")
	parent.SetOuter(Active)
	view := parent.Region(core.R(1, 1, 3, 3))

	reads := func(s *PlaneState) []Cell {
		var out []Cell
		for _, p := range core.R(-2, -2, 8, 8).Points() {
			out = append(out, s.Get(p))
		}
		return out
	}
	viewReads := reads(view)

	view.MakeIndependent()
	assert.False(t, view.IsView())
	assert.Equal(t, core.R(1, 1, 3, 3), view.Viewport())
	assert.Equal(t, Inactive, view.Outer())
	assert.Equal(t, viewReads, reads(view), "promotion keeps every read")

	once := view.String()
	view.MakeIndependent()
	assert.Equal(t, once, view.String(), "idempotent")

	// After promotion writes never reach the parent.
	parentReads := reads(parent)
	view.Set(core.Pt(1, 1), Inactive)
	assert.Equal(t, parentReads, reads(parent))
}

func TestPlaneStateNestedRegion(t *testing.T) {
	parent := mustPlane(t, core.Pt(0, 0), "OOOO", "OOOO")
	inner := parent.Region(core.R(0, 0, 2, 2)).Region(core.R(1, 0, 3, 2))

	assert.Equal(t, core.R(1, 0, 1, 2), inner.Bounds())
	assert.Equal(t, Inactive, inner.Get(core.Pt(2, 0)))
	assert.Equal(t, Active, inner.Get(core.Pt(1, 1)))
}

func TestPlaneStateSetRegion(t *testing.T) {
	dst := NewPlaneState()
	src := mustPlane(t, core.Pt(4, 4), "O.", ".O")

	dst.SetRegion(core.R(4, 4, 2, 2), src)
	assert.True(t, dst.Viewport().ContainsRect(core.R(4, 4, 2, 2)))
	assert.Equal(t, []core.Point{core.Pt(4, 4), core.Pt(5, 5)}, dst.ActiveCells())

	// A view receiving a region is promoted first.
	view := dst.Region(core.R(4, 4, 1, 1))
	view.SetRegion(core.R(6, 6, 1, 1), NewPlaneStateRect(core.R(6, 6, 1, 1), Active))
	assert.False(t, view.IsView())
	assert.Equal(t, Active, view.Get(core.Pt(6, 6)))
	assert.Equal(t, Inactive, dst.Get(core.Pt(6, 6)))
}

func TestPlaneStateClone(t *testing.T) {
	s := mustPlane(t, core.Pt(0, 0), "O")
	c := s.Clone()
	c.Set(core.Pt(0, 0), Inactive)

	assert.Equal(t, Active, s.Get(core.Pt(0, 0)))
	assert.Equal(t, Inactive, c.Get(core.Pt(0, 0)))

	s.Set(core.Pt(1, 0), Active)
	assert.Equal(t, Inactive, c.Get(core.Pt(1, 0)))
}
