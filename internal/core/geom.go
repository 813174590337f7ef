// Package core provides the geometry and rendering primitives shared by the
// automata, the registry and the terminal front-ends. It has no external
// dependencies so the simulation code stays pure and testable.
package core

import (
	"errors"
	"fmt"
)

// ErrNegativeSize is returned when a Size is built from a negative dimension.
var ErrNegativeSize = errors.New("core: negative size")

// Point is a cell coordinate in global grid space.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p translated by -o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is a non-negative width and height. The zero value is a valid empty size;
// any other value must come from NewSize or MustSize.
type Size struct {
	w, h int
}

// NewSize builds a Size, rejecting negative dimensions.
func NewSize(w, h int) (Size, error) {
	if w < 0 || h < 0 {
		return Size{}, fmt.Errorf("%w: %dx%d", ErrNegativeSize, w, h)
	}
	return Size{w: w, h: h}, nil
}

// MustSize is like NewSize but panics on negative dimensions.
func MustSize(w, h int) Size {
	s, err := NewSize(w, h)
	if err != nil {
		panic(err)
	}
	return s
}

// Width returns the horizontal extent.
func (s Size) Width() int { return s.w }

// Height returns the vertical extent.
func (s Size) Height() int { return s.h }

// Area returns width*height.
func (s Size) Area() int { return s.w * s.h }

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.w, s.h)
}

// Rect is an axis-aligned rectangle covering the half-open ranges
// [Origin.X, Origin.X+Width) and [Origin.Y, Origin.Y+Height).
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect creates a rectangle, rejecting negative dimensions.
func NewRect(x, y, w, h int) (Rect, error) {
	size, err := NewSize(w, h)
	if err != nil {
		return Rect{}, err
	}
	return Rect{Origin: Pt(x, y), Size: size}, nil
}

// R is like NewRect but panics on negative dimensions.
func R(x, y, w, h int) Rect {
	return Rect{Origin: Pt(x, y), Size: MustSize(w, h)}
}

// rectFromBounds builds the rectangle [minX,maxX) x [minY,maxY).
// Callers guarantee max >= min.
func rectFromBounds(minX, minY, maxX, maxY int) Rect {
	return Rect{Origin: Pt(minX, minY), Size: Size{w: maxX - minX, h: maxY - minY}}
}

// MinX returns the first column.
func (r Rect) MinX() int { return r.Origin.X }

// MinY returns the first row.
func (r Rect) MinY() int { return r.Origin.Y }

// MaxX returns one past the last column.
func (r Rect) MaxX() int { return r.Origin.X + r.Size.w }

// MaxY returns one past the last row.
func (r Rect) MaxY() int { return r.Origin.Y + r.Size.h }

// Width returns the horizontal extent.
func (r Rect) Width() int { return r.Size.w }

// Height returns the vertical extent.
func (r Rect) Height() int { return r.Size.h }

// Area returns the number of cells covered.
func (r Rect) Area() int { return r.Size.Area() }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.Area() == 0 }

// Intersect returns the overlap of r and o. Rectangles that only touch along an
// edge intersect in a zero-area seam; ok is false only when they are apart.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	minX := max(r.MinX(), o.MinX())
	maxX := min(r.MaxX(), o.MaxX())
	minY := max(r.MinY(), o.MinY())
	maxY := min(r.MaxY(), o.MaxY())
	if minX > maxX || minY > maxY {
		return Rect{}, false
	}
	return rectFromBounds(minX, minY, maxX, maxY), true
}

// Union returns the bounding box of r and o.
func (r Rect) Union(o Rect) Rect {
	return rectFromBounds(
		min(r.MinX(), o.MinX()),
		min(r.MinY(), o.MinY()),
		max(r.MaxX(), o.MaxX()),
		max(r.MaxY(), o.MaxY()),
	)
}

// Including returns the bounding box of r and the 1x1 rectangle at p.
func (r Rect) Including(p Point) Rect {
	return r.Union(Rect{Origin: p, Size: Size{w: 1, h: 1}})
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return r.MinX() <= p.X && p.X < r.MaxX() && r.MinY() <= p.Y && p.Y < r.MaxY()
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return r.MinX() <= o.MinX() && r.MinY() <= o.MinY() &&
		r.MaxX() >= o.MaxX() && r.MaxY() >= o.MaxY()
}

// HasRow reports whether row y lies in [MinY, MaxY).
func (r Rect) HasRow(y int) bool {
	return r.MinY() <= y && y < r.MaxY()
}

// Translate returns r moved by offset.
func (r Rect) Translate(offset Point) Rect {
	return Rect{Origin: r.Origin.Add(offset), Size: r.Size}
}

// ExpandedDown returns r with n more rows appended below its last row.
// A negative n shrinks the rectangle down to zero height.
func (r Rect) ExpandedDown(n int) Rect {
	return Rect{Origin: r.Origin, Size: Size{w: r.Size.w, h: max(r.Size.h+n, 0)}}
}

// ExpandedUp returns r with n more rows prepended above its first row.
func (r Rect) ExpandedUp(n int) Rect {
	n = max(n, -r.Size.h)
	return Rect{Origin: Pt(r.Origin.X, r.Origin.Y-n), Size: Size{w: r.Size.w, h: r.Size.h + n}}
}

// Grown returns r extended by n cells on every side.
func (r Rect) Grown(n int) Rect {
	return Rect{
		Origin: Pt(r.Origin.X-n, r.Origin.Y-n),
		Size:   Size{w: max(r.Size.w+2*n, 0), h: max(r.Size.h+2*n, 0)},
	}
}

// Index returns the row-major offset of p in a buffer laid out over r.
func (r Rect) Index(p Point) int {
	return (p.Y-r.Origin.Y)*r.Size.w + p.X - r.Origin.X
}

// Points returns every cell of r in row-major order.
func (r Rect) Points() []Point {
	pts := make([]Point, 0, r.Area())
	for y := r.MinY(); y < r.MaxY(); y++ {
		for x := r.MinX(); x < r.MaxX(); x++ {
			pts = append(pts, Pt(x, y))
		}
	}
	return pts
}

func (r Rect) String() string {
	return fmt.Sprintf("%v+%v", r.Origin, r.Size)
}
