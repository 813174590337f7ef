package automata

import (
	"github.com/vovakirdan/tui-automata/internal/core"
)

// PlaneState is a two-dimensional grid state. Every cell outside the viewport
// reads as a single outer value.
type PlaneState struct {
	viewport core.Rect
	cells    *buffer
	outer    Cell

	// clip is set while the state is a view over another state's buffer.
	// Reads outside it are inactive regardless of outer.
	clip *core.Rect
}

var _ State[*PlaneState] = (*PlaneState)(nil)

// NewPlaneState creates an empty state with a zero viewport.
func NewPlaneState() *PlaneState {
	return NewPlaneStateRect(core.Rect{}, Inactive)
}

// NewPlaneStateRect creates a state tracking r with every cell, inside and
// outside the viewport, set to outer.
func NewPlaneStateRect(r core.Rect, outer Cell) *PlaneState {
	return &PlaneState{
		viewport: r,
		cells:    newBuffer(r.Area(), outer),
		outer:    outer,
	}
}

// Viewport returns the tracked rectangle.
func (s *PlaneState) Viewport() core.Rect {
	return s.viewport
}

// Bounds returns the rectangle reads are meaningful in: the clip for views,
// the viewport otherwise.
func (s *PlaneState) Bounds() core.Rect {
	if s.clip != nil {
		return *s.clip
	}
	return s.viewport
}

// Outer returns the value of cells outside the viewport.
func (s *PlaneState) Outer() Cell {
	return s.outer
}

// SetOuter changes the value of cells outside the viewport.
func (s *PlaneState) SetOuter(c Cell) {
	if c == s.outer && s.clip == nil {
		return
	}
	s.MakeIndependent()
	s.outer = c
}

// IsView reports whether s borrows another state's buffer.
func (s *PlaneState) IsView() bool {
	return s.clip != nil
}

// Get returns the cell at p.
func (s *PlaneState) Get(p core.Point) Cell {
	if s.clip != nil && !s.clip.Contains(p) {
		return Inactive
	}
	if !s.viewport.Contains(p) {
		return s.outer
	}
	return s.cells.cells[s.viewport.Index(p)]
}

// Set writes c at p. Writing the current value is a no-op; otherwise a view is
// promoted first and the viewport grows to include p.
func (s *PlaneState) Set(p core.Point, c Cell) {
	if s.Get(p) == c {
		return
	}
	s.MakeIndependent()
	if !s.viewport.Contains(p) {
		s.resize(s.viewport.Including(p))
	}
	s.cells = s.cells.writable()
	s.cells.cells[s.viewport.Index(p)] = c
}

// Region returns a view of r sharing this state's buffer. Nested views are
// clipped by both rectangles.
func (s *PlaneState) Region(r core.Rect) *PlaneState {
	return &PlaneState{
		viewport: s.viewport,
		cells:    s.cells.share(),
		outer:    s.outer,
		clip:     nestedClip(s.clip, r),
	}
}

// SetRegion copies every cell of r from src, growing the viewport to cover r.
func (s *PlaneState) SetRegion(r core.Rect, src CellReader) {
	s.MakeIndependent()
	if !s.viewport.ContainsRect(r) {
		s.resize(s.viewport.Union(r))
	}
	s.cells = s.cells.writable()
	for y := r.MinY(); y < r.MaxY(); y++ {
		for x := r.MinX(); x < r.MaxX(); x++ {
			p := core.Pt(x, y)
			s.cells.cells[s.viewport.Index(p)] = src.Get(p)
		}
	}
}

// SetViewport reallocates the buffer to r. Cells in the overlap with the old
// viewport keep their values; new cells take the outer value.
func (s *PlaneState) SetViewport(r core.Rect) {
	s.MakeIndependent()
	s.resize(r)
}

func (s *PlaneState) resize(r core.Rect) {
	next := newBuffer(r.Area(), s.outer)
	if area, ok := r.Intersect(s.viewport); ok && area.Width() > 0 {
		for y := area.MinY(); y < area.MaxY(); y++ {
			from := s.viewport.Index(core.Pt(area.MinX(), y))
			to := r.Index(core.Pt(area.MinX(), y))
			copy(next.cells[to:to+area.Width()], s.cells.cells[from:from+area.Width()])
		}
	}
	s.cells = next
	s.viewport = r
}

// Translate moves the viewport, and the clip of a view, by offset.
func (s *PlaneState) Translate(offset core.Point) {
	if s.clip != nil {
		moved := s.clip.Translate(offset)
		s.clip = &moved
	}
	s.viewport = s.viewport.Translate(offset)
}

// MakeIndependent promotes a view: the viewport shrinks to the clip, the buffer
// is copied and the outer value resets to inactive, the same reads a view
// reports outside its clip. It is a no-op for independent states.
func (s *PlaneState) MakeIndependent() {
	if s.clip == nil {
		return
	}
	clip := *s.clip
	s.clip = nil
	s.resize(clip)
	s.outer = Inactive
}

// Clone returns a copy of s sharing the buffer copy-on-write.
func (s *PlaneState) Clone() *PlaneState {
	c := *s
	c.cells = s.cells.share()
	if s.clip != nil {
		clip := *s.clip
		c.clip = &clip
	}
	return &c
}

// ActiveCells returns the active cells within Bounds in row-major order.
func (s *PlaneState) ActiveCells() []core.Point {
	return activeCells(s, s.Bounds())
}

// Population returns the number of active cells within Bounds.
func (s *PlaneState) Population() int {
	return len(s.ActiveCells())
}

// neighborhood returns the 3x3 block centered on p in row-major order.
func (s *PlaneState) neighborhood(p core.Point) Neighborhood {
	var n Neighborhood
	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			n[i] = s.Get(core.Pt(p.X+dx, p.Y+dy))
			i++
		}
	}
	return n
}

// String draws Bounds, one line per row.
func (s *PlaneState) String() string {
	return render(s, s.Bounds())
}
