package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-automata/internal/config"
	"github.com/vovakirdan/tui-automata/internal/core"
	"github.com/vovakirdan/tui-automata/internal/registry"
	"github.com/vovakirdan/tui-automata/internal/storage"
)

// Lines below the grid: status bar and help.
const chromeLines = 2

// Cursor glyphs over inactive and active cells.
const (
	cursorInactive = '░'
	cursorActive   = '▓'
)

// Pan distances per key press.
const (
	panX = 4
	panY = 2
)

// Model is the Bubble Tea model for watching a simulation. Every tick
// advances the simulation by the pace's step size unless paused.
type Model struct {
	sim        registry.Simulation
	screen     *core.Screen
	store      *storage.Store
	cfg        core.RuntimeConfig
	pace       config.Pace
	keys       ViewerKeyMap
	help       help.Model
	paused     bool
	status     string
	quitting   bool
	backToMenu bool
	quitOnBack bool // No menu to return to
}

// NewModel creates a viewer for a simulation that has already been reset.
// store may be nil, which disables saving.
func NewModel(sim registry.Simulation, store *storage.Store, cfg core.RuntimeConfig) Model {
	m := Model{
		sim:    sim,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-chromeLines, 0)),
		store:  store,
		cfg:    cfg,
		pace:   config.NewPace(cfg.TickRate, cfg.StepSize),
		keys:   DefaultViewerKeyMap(),
		help:   help.New(),
	}
	m.help.Width = cfg.ScreenW
	m.screen.CenterOn(sim.Focus())
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.pace.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.quitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Step):
		m.paused = true
		m.sim.Step(1)

	case key.Matches(msg, m.keys.Save):
		m.status = m.save()

	case key.Matches(msg, m.keys.Faster):
		m.pace = m.pace.Faster()

	case key.Matches(msg, m.keys.Slower):
		m.pace = m.pace.Slower()

	case key.Matches(msg, m.keys.Up):
		m.screen.Origin.Y -= panY
	case key.Matches(msg, m.keys.Down):
		m.screen.Origin.Y += panY
	case key.Matches(msg, m.keys.Left):
		m.screen.Origin.X -= panX
	case key.Matches(msg, m.keys.Right):
		m.screen.Origin.X += panX

	case key.Matches(msg, m.keys.Toggle):
		m.sim.Toggle(m.cursor())

	case key.Matches(msg, m.keys.Center):
		m.screen.CenterOn(m.sim.Focus())

	case key.Matches(msg, m.keys.Reset):
		if err := m.sim.Reset(m.cfg); err != nil {
			m.status = err.Error()
		} else {
			m.status = "restarted"
			m.screen.CenterOn(m.sim.Focus())
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// cursor is the grid point under the window center, the target of Toggle.
func (m Model) cursor() core.Point {
	window := m.screen.Window()
	return core.Pt(window.MinX()+window.Width()/2, window.MinY()+window.Height()/2)
}

// handleResize keeps the window centered on the same grid point.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	center := m.cursor()

	m.cfg.ScreenW = msg.Width
	m.cfg.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-chromeLines, 0))
	m.screen.CenterOn(core.R(center.X, center.Y, 0, 0))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.sim.Step(m.pace.StepSize)
	}
	return m, tickCmd(m.pace.TickRate)
}

// save stores the current state in the library and returns a status line.
func (m Model) save() string {
	if m.store == nil {
		return "no library configured"
	}
	name := fmt.Sprintf("%s-gen%d-%s", m.sim.ID(), m.sim.Generation(), time.Now().Format("150405"))
	data, err := m.sim.Encode(name)
	if err != nil {
		return "save failed: " + err.Error()
	}
	id, err := m.store.Save(data)
	if err != nil {
		return "save failed: " + err.Error()
	}
	return fmt.Sprintf("saved %q as #%d", name, id)
}

// statusLine summarizes the simulation in one line.
func (m Model) statusLine() string {
	parts := []string{
		m.sim.Title(),
		m.sim.Rule(),
		fmt.Sprintf("gen %d", m.sim.Generation()),
		fmt.Sprintf("pop %d", m.sim.Population()),
		fmt.Sprintf("%d/s x%d", m.pace.TickRate, m.pace.StepSize),
	}
	line := " " + strings.Join(parts, "  |  ")
	if m.status != "" {
		line += "  |  " + m.status
	}
	return line
}

// View renders the grid, the status bar and the help line.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.sim.Render(m.screen)
	if m.paused {
		m.drawCursor()
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")

	status := statusStyle.Width(max(m.cfg.ScreenW, 0)).Render(m.statusLine())
	if m.paused {
		status = pausedStyle.Render("PAUSED ") + status
	}
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// drawCursor marks the toggle target while paused.
func (m Model) drawCursor() {
	x, y := m.screen.Width()/2, m.screen.Height()/2
	glyph := cursorInactive
	if m.screen.Get(x, y) == core.GlyphActive {
		glyph = cursorActive
	}
	m.screen.Set(x, y, glyph)
}

// Paused reports whether ticks are currently ignored.
func (m Model) Paused() bool {
	return m.paused
}

// Status returns the last status message.
func (m Model) Status() string {
	return m.status
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Simulation returns the simulation being watched.
func (m Model) Simulation() registry.Simulation {
	return m.sim
}

// Run starts the viewer for a simulation that has already been reset.
func Run(sim registry.Simulation, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(sim, store, cfg)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
