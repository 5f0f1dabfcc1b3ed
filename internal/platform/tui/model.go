package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/balloon-quiz/internal/core"
	"github.com/vovakirdan/balloon-quiz/internal/games/balloons"
)

// footerHeight is the number of rows reserved for the help line.
const footerHeight = 1

// Model is the Bubble Tea model that runs one quiz session.
type Model struct {
	game       *balloons.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	painter    *Painter
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a model around game for a terminal of cfg's size.
// A nil logger discards game events.
func NewModel(game *balloons.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	playH := max(cfg.ScreenH-footerHeight, 0)
	game.Reset(core.RuntimeConfig{ScreenW: cfg.ScreenW, ScreenH: playH, TickRate: cfg.TickRate})

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keys:       DefaultKeyMap(),
		help:       h,
		painter:    defaultPainter,
		logger:     logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keys.MapKey(msg, &m.inputFrame) == core.ActionQuit {
		m.quitting = true
		m.game.Close()
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns left-button presses into taps.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Tap(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize keeps the session and lays it out for the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	playH := max(msg.Height-footerHeight, 0)
	m.screen.Resize(msg.Width, playH)
	m.game.Resize(msg.Width, playH)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, e := range m.game.Events() {
		m.logger.Debug("game event",
			"kind", e.Kind,
			"tick", e.Tick,
			"score", e.Score,
			"round", e.Index+1,
			"detail", e.String(),
		)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	footer := m.painter.Help(m.help.View(m.keys))
	if m.screen.Height() == 0 {
		return footer
	}
	return m.painter.Render(m.screen) + "\n" + footer
}

// WithPainter returns a copy of the model that renders through p.
func (m Model) WithPainter(p *Painter) Model {
	if p != nil {
		m.painter = p
	}
	return m
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game *balloons.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
