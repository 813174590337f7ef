package automata

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-automata/internal/core"
)

// ErrCorruptState is returned when a serialized state is inconsistent.
var ErrCorruptState = errors.New("automata: corrupt state")

// Cell glyphs in serialized states, in the plaintext ".cells" convention.
const (
	textActive   = 'O'
	textInactive = '.'
)

type rectDoc struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func newRectDoc(r core.Rect) rectDoc {
	return rectDoc{X: r.MinX(), Y: r.MinY(), Width: r.Width(), Height: r.Height()}
}

func (d rectDoc) rect() (core.Rect, error) {
	r, err := core.NewRect(d.X, d.Y, d.Width, d.Height)
	if err != nil {
		return core.Rect{}, fmt.Errorf("%w: viewport: %w", ErrCorruptState, err)
	}
	return r, nil
}

type planeDoc struct {
	Viewport rectDoc  `yaml:"viewport"`
	Outer    Cell     `yaml:"outer"`
	Cells    []string `yaml:"cells"`
}

type elementaryDoc struct {
	Viewport rectDoc  `yaml:"viewport"`
	Rows     string   `yaml:"rows"`
	Cells    []string `yaml:"cells"`
}

// MarshalYAML encodes the state. Views are encoded as their promoted form,
// which reads identically.
func (s *PlaneState) MarshalYAML() (any, error) {
	st := s.Clone()
	st.MakeIndependent()
	return planeDoc{
		Viewport: newRectDoc(st.viewport),
		Outer:    st.outer,
		Cells:    encodeCells(st.cells.cells, st.viewport),
	}, nil
}

// UnmarshalYAML decodes a state written by MarshalYAML.
func (s *PlaneState) UnmarshalYAML(value *yaml.Node) error {
	var doc planeDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	vp, err := doc.Viewport.rect()
	if err != nil {
		return err
	}
	if doc.Outer > Active {
		return fmt.Errorf("%w: outer value %d", ErrCorruptState, doc.Outer)
	}
	cells, err := decodeCells(doc.Cells, vp)
	if err != nil {
		return err
	}
	*s = PlaneState{viewport: vp, cells: cells, outer: doc.Outer}
	return nil
}

// MarshalYAML encodes the state. Views are encoded as their promoted form.
func (s *ElementaryState) MarshalYAML() (any, error) {
	st := s.Clone()
	st.MakeIndependent()
	return elementaryDoc{
		Viewport: newRectDoc(st.viewport),
		Rows:     encodeLine(st.rows.cells),
		Cells:    encodeCells(st.cells.cells, st.viewport),
	}, nil
}

// UnmarshalYAML decodes a state written by MarshalYAML.
func (s *ElementaryState) UnmarshalYAML(value *yaml.Node) error {
	var doc elementaryDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	vp, err := doc.Viewport.rect()
	if err != nil {
		return err
	}
	cells, err := decodeCells(doc.Cells, vp)
	if err != nil {
		return err
	}
	rows, err := decodeLine(doc.Rows, vp.Height())
	if err != nil {
		return fmt.Errorf("%w: rows: %w", ErrCorruptState, err)
	}
	*s = ElementaryState{viewport: vp, cells: cells, rows: &buffer{cells: rows}}
	return nil
}

func encodeLine(cells []Cell) string {
	var sb strings.Builder
	sb.Grow(len(cells))
	for _, c := range cells {
		if c == Active {
			sb.WriteByte(textActive)
		} else {
			sb.WriteByte(textInactive)
		}
	}
	return sb.String()
}

func decodeLine(line string, width int) ([]Cell, error) {
	if len(line) != width {
		return nil, fmt.Errorf("length %d, want %d", len(line), width)
	}
	cells := make([]Cell, width)
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case textActive, 'o', '*', '#':
			cells[i] = Active
		case textInactive, ' ':
		default:
			return nil, fmt.Errorf("unexpected %q at %d", line[i], i)
		}
	}
	return cells, nil
}

func encodeCells(cells []Cell, vp core.Rect) []string {
	lines := make([]string, 0, vp.Height())
	w := vp.Width()
	for y := 0; y < vp.Height(); y++ {
		lines = append(lines, encodeLine(cells[y*w:(y+1)*w]))
	}
	return lines
}

func decodeCells(lines []string, vp core.Rect) (*buffer, error) {
	if len(lines) != vp.Height() {
		return nil, fmt.Errorf("%w: %d rows of cells, want %d", ErrCorruptState, len(lines), vp.Height())
	}
	b := newBuffer(vp.Area(), Inactive)
	for y, line := range lines {
		row, err := decodeLine(line, vp.Width())
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrCorruptState, y, err)
		}
		copy(b.cells[y*vp.Width():], row)
	}
	return b, nil
}

// ParsePlane builds an independent state from plaintext rows ('O' active,
// '.' inactive) with the top-left character at origin. Short rows are padded.
func ParsePlane(origin core.Point, rows ...string) (*PlaneState, error) {
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	s := NewPlaneStateRect(core.R(origin.X, origin.Y, width, len(rows)), Inactive)
	for y, r := range rows {
		line, err := decodeLine(r+strings.Repeat(".", width-len(r)), width)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrCorruptState, y, err)
		}
		copy(s.cells.cells[y*width:], line)
	}
	return s, nil
}

// ParseElementary is ParsePlane for elementary histories. Every row outer
// value is inactive.
func ParseElementary(origin core.Point, rows ...string) (*ElementaryState, error) {
	plane, err := ParsePlane(origin, rows...)
	if err != nil {
		return nil, err
	}
	s := NewElementaryStateRect(plane.viewport)
	copy(s.cells.cells, plane.cells.cells)
	return s, nil
}
