package core

import (
	"strings"
)

// Glyphs used when drawing cells.
const (
	GlyphActive   = '█'
	GlyphInactive = ' '
)

// Screen is a 2D character buffer that shows a window onto the unbounded grid.
// Origin is the global coordinate drawn at the top-left character, so
// simulations plot in grid space while the platform handles the terminal.
type Screen struct {
	width  int
	height int
	cells  [][]rune

	// Origin is the grid coordinate of the top-left character.
	Origin Point
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]rune, s.height)
	for y := range s.cells {
		s.cells[y] = make([]rune, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Window returns the grid rectangle currently visible on the screen.
func (s *Screen) Window() Rect {
	return Rect{Origin: s.Origin, Size: Size{w: s.width, h: s.height}}
}

// CenterOn moves Origin so that r is centered in the window.
func (s *Screen) CenterOn(r Rect) {
	s.Origin = Pt(
		r.MinX()+(r.Width()-s.width)/2,
		r.MinY()+(r.Height()-s.height)/2,
	)
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	for y := 0; y < min(oldH, height); y++ {
		copy(s.cells[y][:min(oldW, width)], oldCells[y])
	}
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = ' '
		}
	}
}

// Set places a rune at the given screen position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = r
}

// Get returns the rune at the given screen position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x]
}

// Plot draws the cell at grid point p if it falls inside the window.
func (s *Screen) Plot(p Point, active bool) {
	glyph := GlyphInactive
	if active {
		glyph = GlyphActive
	}
	local := p.Sub(s.Origin)
	s.Set(local.X, local.Y, glyph)
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r)
		i++
	}
}

// String converts the screen buffer to a renderable string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x])
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	return string(s.cells[y])
}
