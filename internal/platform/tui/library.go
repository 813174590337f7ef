package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-automata/internal/registry"
	"github.com/vovakirdan/tui-automata/internal/storage"
)

// Library layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show kind sidebar
	sidebarWidth       = 20 // Width of kind sidebar
)

// LibraryModel is the Bubble Tea model for browsing saved states.
type LibraryModel struct {
	kinds       []registry.Info
	kindCursor  int
	store       *storage.Store
	entries     []storage.Entry
	table       table.Model
	help        help.Model
	keys        ListKeyMap
	width       int
	height      int
	status      string
	quitting    bool
	goingBack   bool
	selected    *storage.Entry // Set when user opens a saved state
	showSidebar bool
}

// NewLibraryModel creates a new library model.
func NewLibraryModel(store *storage.Store, width, height int) LibraryModel {
	keys := DefaultListKeyMap()
	keys.Library.SetEnabled(false)

	h := help.New()
	h.Width = width

	m := LibraryModel{
		kinds:       registry.List(),
		store:       store,
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.loadEntries()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *LibraryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 24},
		{Title: "Rule", Width: 10},
		{Title: "Saved", Width: 14},
	}

	// Give spare width to the name column
	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if spare := tableWidth - 60; spare > 0 {
		columns[1].Width += min(spare, 24)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// currentKind returns the kind shown in the table.
func (m *LibraryModel) currentKind() string {
	if len(m.kinds) == 0 {
		return ""
	}
	return m.kinds[m.kindCursor].ID
}

// loadEntries loads saved states of the current kind.
func (m *LibraryModel) loadEntries() {
	m.entries = nil
	if m.store != nil && len(m.kinds) > 0 {
		entries, err := m.store.List(m.currentKind())
		if err != nil {
			m.status = err.Error()
		} else {
			m.entries = entries
		}
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.ID),
			e.Name,
			e.Rule,
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the library model.
func (m LibraryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the library.
func (m LibraryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			if len(m.kinds) > 0 {
				m.kindCursor = (m.kindCursor + 1) % len(m.kinds)
				m.loadEntries()
			}
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			if len(m.kinds) > 0 {
				m.kindCursor = (m.kindCursor - 1 + len(m.kinds)) % len(m.kinds)
				m.loadEntries()
			}
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if e, ok := m.cursorEntry(); ok {
				full, err := m.store.Get(e.ID)
				if err != nil {
					m.status = err.Error()
					return m, nil
				}
				m.selected = &full
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if e, ok := m.cursorEntry(); ok {
				if err := m.store.Delete(e.ID); err != nil {
					m.status = err.Error()
				} else {
					m.status = fmt.Sprintf("deleted #%d", e.ID)
				}
				m.loadEntries()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.loadEntries()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// cursorEntry returns the entry under the table cursor.
func (m LibraryModel) cursorEntry() (storage.Entry, bool) {
	i := m.table.Cursor()
	if m.store == nil || i < 0 || i >= len(m.entries) {
		return storage.Entry{}, false
	}
	return m.entries[i], true
}

// View renders the library.
func (m LibraryModel) View() string {
	if m.quitting || m.goingBack || m.selected != nil {
		return ""
	}

	var b strings.Builder

	title := "SAVED STATES"
	if len(m.kinds) > 0 {
		title = fmt.Sprintf("SAVED STATES - %s", m.kinds[m.kindCursor].Title)
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(pausedStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// renderWideLayout renders the library with a sidebar of kinds.
func (m LibraryModel) renderWideLayout() string {
	var sidebar strings.Builder
	sidebar.WriteString("Kinds\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, k := range m.kinds {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.kindCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + k.ID))
		sidebar.WriteString("\n")
	}

	sidebarRendered := panelStyle.Width(sidebarWidth).Render(sidebar.String())
	tableRendered := panelStyle.Render(m.renderTableContent())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout renders the library with kind tabs above the table.
func (m LibraryModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.kinds))
	for i, k := range m.kinds {
		if i == m.kindCursor {
			tabs[i] = activeTabStyle.Render(k.ID)
		} else {
			tabs[i] = tabStyle.Render(" " + k.ID + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(panelStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m LibraryModel) renderTableContent() string {
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No saved states yet.\nPress s in the viewer to save one!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m LibraryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m LibraryModel) IsQuitting() bool {
	return m.quitting
}

// Selected returns the opened saved state, with its data, or nil.
func (m LibraryModel) Selected() *storage.Entry {
	return m.selected
}
