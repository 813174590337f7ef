package automata

import (
	"strings"

	"github.com/vovakirdan/tui-automata/internal/core"
)

// nestedClip combines a view's existing clip with a new region.
func nestedClip(parent *core.Rect, r core.Rect) *core.Rect {
	if parent == nil {
		return &r
	}
	clip, ok := parent.Intersect(r)
	if !ok {
		clip = core.Rect{Origin: r.Origin}
	}
	return &clip
}

func activeCells(src CellReader, r core.Rect) []core.Point {
	var pts []core.Point
	for y := r.MinY(); y < r.MaxY(); y++ {
		for x := r.MinX(); x < r.MaxX(); x++ {
			if p := core.Pt(x, y); src.Get(p) == Active {
				pts = append(pts, p)
			}
		}
	}
	return pts
}

func render(src CellReader, r core.Rect) string {
	var sb strings.Builder
	for y := r.MinY(); y < r.MaxY(); y++ {
		if y > r.MinY() {
			sb.WriteByte('\n')
		}
		for x := r.MinX(); x < r.MaxX(); x++ {
			if src.Get(core.Pt(x, y)) == Active {
				sb.WriteRune(core.GlyphActive)
			} else {
				sb.WriteRune(core.GlyphInactive)
			}
		}
	}
	return sb.String()
}

// Draw plots every cell of src visible in dst's window.
func Draw(dst *core.Screen, src CellReader) {
	window := dst.Window()
	for y := window.MinY(); y < window.MaxY(); y++ {
		for x := window.MinX(); x < window.MaxX(); x++ {
			p := core.Pt(x, y)
			dst.Plot(p, src.Get(p) == Active)
		}
	}
}
