package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSize(t *testing.T) {
	s, err := NewSize(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Width())
	assert.Equal(t, 4, s.Height())
	assert.Equal(t, 12, s.Area())

	for _, tc := range [][2]int{{-1, 0}, {0, -1}, {-3, -3}} {
		_, err := NewSize(tc[0], tc[1])
		assert.ErrorIs(t, err, ErrNegativeSize, "NewSize(%d, %d)", tc[0], tc[1])
	}

	assert.Panics(t, func() { MustSize(-1, 2) })
	_, err = NewRect(0, 0, -2, 1)
	assert.ErrorIs(t, err, ErrNegativeSize)
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Rect
		want   Rect
		wantOK bool
	}{
		{"overlapping", R(0, 0, 10, 10), R(5, 5, 10, 10), R(5, 5, 5, 5), true},
		{"apart horizontally", R(0, 0, 10, 10), R(15, 0, 10, 10), Rect{}, false},
		{"apart vertically", R(0, 0, 10, 10), R(0, 15, 10, 10), Rect{}, false},
		{"touching edge is a seam", R(0, 0, 10, 10), R(10, 0, 10, 10), R(10, 0, 0, 10), true},
		{"contained", R(0, 0, 20, 20), R(5, 5, 5, 5), R(5, 5, 5, 5), true},
		{"single cell", R(0, 0, 10, 10), R(9, 9, 10, 10), R(9, 9, 1, 1), true},
		{"zero rect at origin", Rect{}, R(-1, -1, 2, 2), R(0, 0, 0, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.a.Intersect(tc.b)
			require.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)

			rev, revOK := tc.b.Intersect(tc.a)
			assert.Equal(t, ok, revOK)
			assert.Equal(t, got, rev)

			if ok {
				assert.True(t, tc.a.ContainsRect(got))
				assert.True(t, tc.b.ContainsRect(got))
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	rects := []Rect{
		{},
		R(0, 0, 1, 1),
		R(-5, 3, 2, 7),
		R(10, -10, 0, 4),
		R(2, 2, 6, 1),
	}
	for _, a := range rects {
		for _, b := range rects {
			u := a.Union(b)
			assert.True(t, u.ContainsRect(a), "%v ∪ %v = %v", a, b, u)
			assert.True(t, u.ContainsRect(b), "%v ∪ %v = %v", a, b, u)
			assert.Equal(t, u, b.Union(a))
		}
	}

	assert.Equal(t, R(-1, 0, 2, 2), R(0, 0, 1, 1).Including(Pt(-1, 1)))
	assert.Equal(t, R(0, 0, 4, 4), Rect{}.Including(Pt(3, 3)))
}

func TestRectContains(t *testing.T) {
	r := R(10, 10, 20, 15)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Pt(15, 15), true},
		{"top-left corner", Pt(10, 10), true},
		{"last cell", Pt(29, 24), true},
		{"bottom-right edge (exclusive)", Pt(30, 25), false},
		{"outside left", Pt(5, 15), false},
		{"outside right", Pt(35, 15), false},
		{"outside top", Pt(15, 5), false},
		{"outside bottom", Pt(15, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Contains(tc.p))
		})
	}

	assert.False(t, Rect{}.Contains(Pt(0, 0)))
	assert.True(t, r.ContainsRect(R(10, 10, 20, 15)))
	assert.True(t, r.ContainsRect(R(12, 12, 0, 0)))
	assert.False(t, r.ContainsRect(R(9, 10, 2, 2)))
}

func TestRectTransforms(t *testing.T) {
	r := R(2, 3, 4, 5)

	assert.Equal(t, R(3, 1, 4, 5), r.Translate(Pt(1, -2)))
	assert.Equal(t, R(2, 3, 4, 8), r.ExpandedDown(3))
	assert.Equal(t, R(2, 1, 4, 7), r.ExpandedUp(2))
	assert.Equal(t, R(1, 2, 6, 7), r.Grown(1))
	assert.Equal(t, 0, r.ExpandedDown(-10).Height())

	assert.Equal(t, 6, r.MaxX())
	assert.Equal(t, 8, r.MaxY())
	assert.True(t, r.HasRow(3))
	assert.False(t, r.HasRow(8))
}

func TestRectIndex(t *testing.T) {
	r := R(-2, -1, 3, 2)
	for i, p := range r.Points() {
		assert.Equal(t, i, r.Index(p), "index of %v", p)
	}
	assert.Len(t, r.Points(), 6)
	assert.Equal(t, Pt(-2, -1), r.Points()[0])
	assert.Equal(t, Pt(0, 0), r.Points()[5])
}
