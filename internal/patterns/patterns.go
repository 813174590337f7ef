// Package patterns provides seed patterns for the automata: an embedded
// catalogue plus loading of pattern files from disk.
package patterns

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-automata/internal/automata"
	"github.com/vovakirdan/tui-automata/internal/core"
)

//go:embed catalog/*.yaml
var catalogFS embed.FS

// ErrUnknownPattern is returned when a name matches neither a catalogue entry
// nor a readable file.
var ErrUnknownPattern = errors.New("patterns: unknown pattern")

// Pattern is a small block of cells in plaintext rows, top row first.
type Pattern struct {
	ID          string
	Name        string
	Description string
	Rows        []string
	FilePath    string // Empty for catalogue entries
}

// Size returns the width and height of the pattern.
func (p Pattern) Size() core.Size {
	w := 0
	for _, r := range p.Rows {
		w = max(w, len(r))
	}
	return core.MustSize(w, len(p.Rows))
}

// Plane builds a 2D state with the pattern's top-left cell at origin.
func (p Pattern) Plane(origin core.Point) (*automata.PlaneState, error) {
	s, err := automata.ParsePlane(origin, p.Rows...)
	if err != nil {
		return nil, fmt.Errorf("patterns: %s: %w", p.ID, err)
	}
	return s, nil
}

// Centered builds a 2D state with the pattern centered on the origin.
func (p Pattern) Centered() (*automata.PlaneState, error) {
	size := p.Size()
	return p.Plane(core.Pt(-size.Width()/2, -size.Height()/2))
}

// Elementary builds a one-row history from the first row of the pattern,
// centered on x = 0.
func (p Pattern) Elementary() (*automata.ElementaryState, error) {
	if len(p.Rows) == 0 {
		return automata.NewElementaryState(), nil
	}
	row := p.Rows[0]
	s, err := automata.ParseElementary(core.Pt(-len(row)/2, 0), row)
	if err != nil {
		return nil, fmt.Errorf("patterns: %s: %w", p.ID, err)
	}
	return s, nil
}

// Catalog returns the embedded patterns sorted by ID.
func Catalog() []Pattern {
	entries, err := fs.ReadDir(catalogFS, "catalog")
	if err != nil {
		return nil
	}

	var out []Pattern
	for _, e := range entries {
		data, err := catalogFS.ReadFile(path.Join("catalog", e.Name()))
		if err != nil {
			continue
		}
		p, err := ParseYAML(data)
		if err != nil {
			// Skip invalid entries
			continue
		}
		if p.ID == "" {
			p.ID = strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Lookup finds a catalogue pattern by ID.
func Lookup(id string) (Pattern, bool) {
	for _, p := range Catalog() {
		if p.ID == id {
			return p, true
		}
	}
	return Pattern{}, false
}

// Resolve returns the catalogue pattern named ref, or loads ref as a file.
func Resolve(ref string) (Pattern, error) {
	if p, ok := Lookup(ref); ok {
		return p, nil
	}
	if _, err := os.Stat(ref); err != nil {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, ref)
	}
	return LoadFile(ref)
}

// LoadFile loads a single pattern file.
func LoadFile(filename string) (Pattern, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Pattern{}, fmt.Errorf("patterns: reading file %s: %w", filename, err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	p, err := parseByExtension(data, ext)
	if err != nil {
		return Pattern{}, fmt.Errorf("patterns: parsing file %s: %w", filename, err)
	}
	if p.ID == "" {
		p.ID = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	p.FilePath = filename
	return p, nil
}

// Loader handles loading patterns from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new pattern loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all pattern files.
// Returns patterns sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Pattern, error) {
	var out []Pattern

	err := filepath.WalkDir(l.Root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(p))) {
			return nil
		}

		pat, err := LoadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}
		out = append(out, pat)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("patterns: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func isSupportedExtension(ext string) bool {
	switch ext {
	case ".yaml", ".yml", ".cells":
		return true
	}
	return false
}

func parseByExtension(data []byte, ext string) (Pattern, error) {
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".cells":
		return ParseCells(data)
	default:
		return Pattern{}, fmt.Errorf("unsupported format: %s", ext)
	}
}
