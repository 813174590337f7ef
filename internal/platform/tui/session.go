package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-automata/internal/core"
	"github.com/vovakirdan/tui-automata/internal/registry"
	"github.com/vovakirdan/tui-automata/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenLibrary
	screenViewer
)

// SessionModel manages the full session flow: menu -> viewer -> menu, with
// the saved-state library reachable from the menu.
// This is the top-level model used for SSH sessions and the local browser.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	screen   sessionScreen
	menu     MenuModel
	library  LibraryModel
	viewer   Model
	status   string
	quitting bool
}

// NewSessionModel creates a new session model. store may be nil, which
// disables saving and leaves the library empty.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenViewer:
		return m.updateViewer(msg)
	case screenLibrary:
		return m.updateLibrary(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsLibrary() {
		m.library = NewLibraryModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenLibrary
		return m, m.library.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		m.config = m.menu.Config()
		sim, err := registry.Create(selected.ID)
		if err == nil {
			err = sim.Reset(m.config)
		}
		if err != nil {
			m.status = err.Error()
			return m.backToMenu()
		}
		return m.startViewer(sim)
	}

	return m, cmd
}

// updateLibrary handles updates when browsing saved states.
func (m SessionModel) updateLibrary(msg tea.Msg) (tea.Model, tea.Cmd) {
	newLibrary, cmd := m.library.Update(msg)
	if libraryModel, ok := newLibrary.(LibraryModel); ok {
		m.library = libraryModel
	}

	switch {
	case m.library.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.library.IsGoingBack():
		return m.backToMenu()

	case m.library.Selected() != nil:
		entry := m.library.Selected()
		sim, err := registry.Restore(entry.Kind, m.config, entry.Data)
		if err != nil {
			m.status = err.Error()
			return m.backToMenu()
		}
		m.status = ""
		return m.startViewer(sim)
	}

	return m, cmd
}

// updateViewer handles updates when watching a simulation.
func (m SessionModel) updateViewer(msg tea.Msg) (tea.Model, tea.Cmd) {
	newViewer, cmd := m.viewer.Update(msg)
	if viewerModel, ok := newViewer.(Model); ok {
		m.viewer = viewerModel
	}

	if m.viewer.BackToMenu() {
		return m.backToMenu()
	}

	if m.viewer.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m SessionModel) startViewer(sim registry.Simulation) (tea.Model, tea.Cmd) {
	m.viewer = NewModel(sim, m.store, m.config)
	m.screen = screenViewer
	return m, m.viewer.Init()
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.config)
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenViewer:
		return m.viewer.View()
	case screenLibrary:
		return m.library.View()
	}

	view := m.menu.View()
	if m.status != "" {
		view += "\n" + centerText(pausedStyle.Render(m.status), m.config.ScreenW)
	}
	return view
}

// Status returns the last error shown on the menu.
func (m SessionModel) Status() string {
	return m.status
}

// RunSession starts the menu-driven session in the local terminal.
func RunSession(store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// RunLibrary starts the saved-state browser on its own and opens the chosen
// state in the viewer.
func RunLibrary(store *storage.Store, cfg core.RuntimeConfig) error {
	m := NewSessionModel(store, cfg)
	m.library = NewLibraryModel(store, cfg.ScreenW, cfg.ScreenH)
	m.screen = screenLibrary

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
