package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tappy-block/internal/core"
	"github.com/vovakirdan/tappy-block/internal/tappy"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// Model is the Bubble Tea model that hosts one Tappy Block machine.
// Bubble Tea delivers messages one at a time, so input and ticks never interleave.
type Model struct {
	machine  *tappy.Machine
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	tickGen  int // Current tick chain; bumped on every start
	quitting bool
}

// NewModel creates a Bubble Tea model around the given machine.
func NewModel(machine *tappy.Machine, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		machine: machine,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
	}
}

// Init shows the start screen. Ticking begins with the first activate.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.dispatch(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.dispatch(MapMouse(msg))

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-helpHeight)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// dispatch applies a host action.
func (m Model) dispatch(action HostAction) (tea.Model, tea.Cmd) {
	switch action {
	case HostActionQuit:
		m.quitting = true
		m.logger.Debug("quit", "phase", m.machine.Phase(), "high_score", m.machine.HighScore())
		return m, tea.Quit
	case HostActionActivate:
		return m.activate()
	}
	return m, nil
}

// activate forwards the single game input and starts the tick loop on start.
func (m Model) activate() (tea.Model, tea.Cmd) {
	before := m.machine.Phase()
	after := m.machine.Handle(tappy.Activate)

	switch {
	case before == tappy.PhaseNotStarted && after == tappy.PhasePlaying:
		m.tickGen++
		m.logger.Info("game started", "high_score", m.machine.HighScore())
		return m, tickCmd(m.config.TickRate, m.tickGen)
	case before == tappy.PhaseGameOver:
		m.logger.Debug("session reset", "high_score", m.machine.HighScore())
	}
	return m, nil
}

// handleTick processes simulation ticks. The chain ends at game over.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen || m.machine.Phase() != tappy.PhasePlaying {
		return m, nil
	}

	if m.machine.Tick() {
		return m, tickCmd(m.config.TickRate, m.tickGen)
	}

	m.logger.Info("game over", "score", m.machine.Score(), "high_score", m.machine.HighScore())
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	tappy.Draw(m.screen, m.machine.Snapshot())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Phase returns the phase of the hosted machine.
func (m Model) Phase() tappy.Phase {
	return m.machine.Phase()
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for the given machine and blocks until exit.
func Run(machine *tappy.Machine, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(machine, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks count as taps
	)

	_, err := p.Run()
	return err
}
