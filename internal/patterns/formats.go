package patterns

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-automata/internal/automata"
	"github.com/vovakirdan/tui-automata/internal/core"
)

// yamlPattern represents the YAML structure for a pattern file.
type yamlPattern struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Rows        []string `yaml:"rows"`
}

// ParseYAML parses a YAML pattern file.
func ParseYAML(data []byte) (Pattern, error) {
	var yp yamlPattern
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pattern{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	p := Pattern{ID: yp.ID, Name: yp.Name, Description: yp.Description, Rows: yp.Rows}
	return p, validate(p)
}

// ParseCells parses the plaintext ".cells" format: lines starting with '!'
// are comments, "!Name: x" names the pattern, every other line is a row.
func ParseCells(data []byte) (Pattern, error) {
	var p Pattern
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if rest, ok := strings.CutPrefix(line, "!"); ok {
			if name, ok := strings.CutPrefix(rest, "Name:"); ok {
				p.Name = strings.TrimSpace(name)
			} else if p.Description == "" {
				p.Description = strings.TrimSpace(rest)
			}
			continue
		}
		p.Rows = append(p.Rows, line)
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, err
	}
	return p, validate(p)
}

func validate(p Pattern) error {
	if len(p.Rows) == 0 {
		return fmt.Errorf("pattern %q has no rows", p.Name)
	}
	// Let the state parser check every glyph.
	if _, err := automata.ParsePlane(core.Pt(0, 0), p.Rows...); err != nil {
		return err
	}
	return nil
}
