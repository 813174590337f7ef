package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-automata/internal/core"
)

// glyphStyles maps screen glyphs to lipgloss styles. Other runes use the
// default style.
var glyphStyles = map[rune]lipgloss.Style{
	core.GlyphActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.GlyphInactive: lipgloss.NewStyle(),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func styleFor(r rune) lipgloss.Style {
	if style, ok := glyphStyles[r]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		row := []rune(s.Row(y))
		x := 0
		for x < len(row) {
			active := row[x] == core.GlyphActive
			start := x
			for x < len(row) && (row[x] == core.GlyphActive) == active {
				x++
			}
			sb.WriteString(styleFor(row[start]).Render(string(row[start:x])))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
