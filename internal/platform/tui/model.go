package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hsmto25519/block-game/internal/core"
	"github.com/hsmto25519/block-game/internal/registry"
)

// Options customize a game model.
type Options struct {
	// OnGameOver is called once for every session that reaches game over,
	// before the player restarts or quits.
	OnGameOver func(game registry.Game)
}

// Outcome summarizes a finished program.
type Outcome struct {
	Final    core.GameState // state of the last session when the program exited
	Sessions int            // number of sessions played, restarts included
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	onGameOver func(registry.Game)
	sessions   int
	reported   bool // game over already passed to onGameOver
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, screenRows(cfg.ScreenH, false)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		onGameOver: opts.OnGameOver,
		sessions:   1,
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Rows taken by the short (one line) and full help views.
const (
	shortHelpRows = 1
	fullHelpRows  = 3
)

// screenRows is the game area left after the help view.
func screenRows(termH int, fullHelp bool) int {
	rows := shortHelpRows
	if fullHelp {
		rows = fullHelpRows
	}
	return max(termH-rows, 1)
}

// layout sizes the screen buffer to the terminal and help view.
func (m *Model) layout() {
	m.screen.Resize(m.config.ScreenW, screenRows(m.config.ScreenH, m.help.ShowAll))
	m.help.Width = m.config.ScreenW
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.layout()
		return m, nil

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey records one press per key message. Quit, help and restart
// are host concerns and take effect immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// restart begins a new session with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.reported = false
	m.sessions++
}

// handleFrame runs one host frame of the game.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver && !m.reported {
		m.reported = true
		if m.onGameOver != nil {
			m.onGameOver(m.game)
		}
	}

	return m, frameCmd(m.config.FrameInterval())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Outcome reports the state the model ended in.
func (m Model) Outcome() Outcome {
	return Outcome{Final: m.gameState, Sessions: m.sessions}
}

// Run starts the Bubble Tea program for the game and blocks until the
// player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Outcome, error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return Outcome{}, err
	}
	if m, ok := final.(Model); ok {
		return m.Outcome(), nil
	}
	return Outcome{}, nil
}
