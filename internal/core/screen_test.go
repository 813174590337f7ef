package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	assert.Equal(t, 10, s.Width())
	assert.Equal(t, 5, s.Height())
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			assert.Equal(t, ' ', s.Get(x, y))
		}
	}

	empty := NewScreen(-1, 3)
	assert.Equal(t, 0, empty.Width())
	assert.Equal(t, "\n\n", empty.String())
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(5, 2, 'X')
	assert.Equal(t, 'X', s.Get(5, 2))

	// Out of bounds writes are ignored, reads return space.
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	s.Set(0, 5, 'Y')
	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ' ', s.Get(100, 100))
}

func TestScreenPlot(t *testing.T) {
	s := NewScreen(4, 3)
	s.Origin = Pt(-2, 10)

	s.Plot(Pt(-2, 10), true)
	s.Plot(Pt(1, 12), true)
	s.Plot(Pt(2, 12), true) // outside the window

	assert.Equal(t, string(GlyphActive)+"   ", s.Row(0))
	assert.Equal(t, "   "+string(GlyphActive), s.Row(2))
	assert.Equal(t, R(-2, 10, 4, 3), s.Window())
}

func TestScreenCenterOn(t *testing.T) {
	s := NewScreen(10, 6)
	s.CenterOn(R(0, 0, 2, 2))
	assert.Equal(t, Pt(-4, -2), s.Origin)
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawText(2, 0, "gen 1")
	assert.Equal(t, "  gen 1 ", s.Row(0))

	s.DrawText(6, 0, "clipped")
	assert.Equal(t, "  gen cl", s.Row(0))
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'A')
	s.Set(2, 1, 'B')
	assert.Equal(t, "A  \n  B", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(2, 2, 'X')
	s.Set(4, 4, 'Y')

	s.Resize(3, 3)
	assert.Equal(t, 3, s.Width())
	assert.Equal(t, 'X', s.Get(2, 2))

	s.Resize(6, 6)
	assert.Equal(t, 'X', s.Get(2, 2))
	assert.Equal(t, ' ', s.Get(4, 4), "content cut by shrinking is not restored")
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 1, "ab")
	assert.Equal(t, "ab  ", s.Row(1))
	assert.Equal(t, "    ", s.Row(-1))
}
