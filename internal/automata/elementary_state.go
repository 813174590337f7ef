package automata

import (
	"github.com/vovakirdan/tui-automata/internal/core"
)

// ElementaryState is the history of a one-dimensional automaton: row y holds
// generation y. Each tracked row carries its own outer value, the value of
// that row's cells left and right of the viewport. Rows outside the viewport
// read as inactive.
type ElementaryState struct {
	viewport core.Rect
	cells    *buffer
	rows     *buffer // one outer value per viewport row

	// clip is set while the state is a view over another state's buffers.
	clip *core.Rect
}

var _ State[*ElementaryState] = (*ElementaryState)(nil)

// NewElementaryState creates an empty state with a zero viewport.
func NewElementaryState() *ElementaryState {
	return NewElementaryStateRect(core.Rect{})
}

// NewElementaryStateRect creates an all-inactive state tracking r.
func NewElementaryStateRect(r core.Rect) *ElementaryState {
	return &ElementaryState{
		viewport: r,
		cells:    newBuffer(r.Area(), Inactive),
		rows:     newBuffer(r.Height(), Inactive),
	}
}

// Viewport returns the tracked rectangle.
func (s *ElementaryState) Viewport() core.Rect {
	return s.viewport
}

// Bounds returns the clip for views and the viewport otherwise.
func (s *ElementaryState) Bounds() core.Rect {
	if s.clip != nil {
		return *s.clip
	}
	return s.viewport
}

// IsView reports whether s borrows another state's buffers.
func (s *ElementaryState) IsView() bool {
	return s.clip != nil
}

// Row returns the outer value of row y.
func (s *ElementaryState) Row(y int) Cell {
	if s.clip != nil && !s.clip.HasRow(y) {
		return Inactive
	}
	if !s.viewport.HasRow(y) {
		return Inactive
	}
	return s.rows.cells[y-s.viewport.MinY()]
}

// SetRow changes the outer value of row y, growing the viewport vertically
// when y is not tracked yet. Cells already stored in the row are unchanged.
func (s *ElementaryState) SetRow(y int, c Cell) {
	if s.Row(y) == c {
		return
	}
	s.MakeIndependent()
	if !s.viewport.HasRow(y) {
		s.resize(s.coveringRow(y))
	}
	s.rows = s.rows.writable()
	s.rows.cells[y-s.viewport.MinY()] = c
}

// coveringRow returns the viewport extended vertically to include row y.
func (s *ElementaryState) coveringRow(y int) core.Rect {
	if y < s.viewport.MinY() {
		return s.viewport.ExpandedUp(s.viewport.MinY() - y)
	}
	return s.viewport.ExpandedDown(y - s.viewport.MaxY() + 1)
}

// Get returns the cell at p, falling back to the row outer value outside the
// viewport.
func (s *ElementaryState) Get(p core.Point) Cell {
	if s.clip != nil && !s.clip.Contains(p) {
		return Inactive
	}
	if s.viewport.Contains(p) {
		return s.cells.cells[s.viewport.Index(p)]
	}
	if !s.viewport.HasRow(p.Y) {
		return Inactive
	}
	return s.rows.cells[p.Y-s.viewport.MinY()]
}

// Set writes c at p, promoting a view and growing the viewport as needed.
func (s *ElementaryState) Set(p core.Point, c Cell) {
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

// Region returns a view of r sharing this state's buffers.
func (s *ElementaryState) Region(r core.Rect) *ElementaryState {
	return &ElementaryState{
		viewport: s.viewport,
		cells:    s.cells.share(),
		rows:     s.rows.share(),
		clip:     nestedClip(s.clip, r),
	}
}

// SetRegion copies every cell of r from src, growing the viewport to cover r.
func (s *ElementaryState) SetRegion(r core.Rect, src CellReader) {
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

// SetViewport reallocates the buffers to r. Rows shared with the old viewport
// keep their outer values and cells; new cells in those rows take the row's
// outer value. Rows that were not tracked start inactive.
func (s *ElementaryState) SetViewport(r core.Rect) {
	s.MakeIndependent()
	s.resize(r)
}

func (s *ElementaryState) resize(r core.Rect) {
	cells := newBuffer(r.Area(), Inactive)
	rows := newBuffer(r.Height(), Inactive)

	if area, ok := r.Intersect(s.viewport); ok {
		for y := area.MinY(); y < area.MaxY(); y++ {
			outer := s.rows.cells[y-s.viewport.MinY()]
			rows.cells[y-r.MinY()] = outer

			begin := r.Index(core.Pt(r.MinX(), y))
			from := r.Index(core.Pt(area.MinX(), y))
			to := r.Index(core.Pt(area.MaxX(), y))
			end := r.Index(core.Pt(r.MaxX(), y))
			old := s.viewport.Index(core.Pt(area.MinX(), y))

			cells.fill(begin, from, outer)
			copy(cells.cells[from:to], s.cells.cells[old:old+area.Width()])
			cells.fill(to, end, outer)
		}
	}

	s.cells = cells
	s.rows = rows
	s.viewport = r
}

// Translate moves the viewport, and the clip of a view, by offset.
func (s *ElementaryState) Translate(offset core.Point) {
	if s.clip != nil {
		moved := s.clip.Translate(offset)
		s.clip = &moved
	}
	s.viewport = s.viewport.Translate(offset)
}

// MakeIndependent promotes a view to a state owning its buffers. The viewport
// becomes the clip and every row outer value resets to inactive, matching what
// the view reported outside its clip.
func (s *ElementaryState) MakeIndependent() {
	if s.clip == nil {
		return
	}
	clip := *s.clip
	s.clip = nil
	s.resize(clip)
	s.rows = newBuffer(clip.Height(), Inactive)
}

// Clone returns a copy of s sharing the buffers copy-on-write.
func (s *ElementaryState) Clone() *ElementaryState {
	c := *s
	c.cells = s.cells.share()
	c.rows = s.rows.share()
	if s.clip != nil {
		clip := *s.clip
		c.clip = &clip
	}
	return &c
}

// ActiveCells returns the active cells within Bounds in row-major order.
func (s *ElementaryState) ActiveCells() []core.Point {
	return activeCells(s, s.Bounds())
}

// Population returns the number of active cells within Bounds.
func (s *ElementaryState) Population() int {
	return len(s.ActiveCells())
}

// String draws Bounds, one line per generation.
func (s *ElementaryState) String() string {
	return render(s, s.Bounds())
}
