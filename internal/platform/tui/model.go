package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/queenchase/internal/core"
	"github.com/vovakirdan/queenchase/internal/registry"
)

// Options tune the game model beyond the runtime config.
type Options struct {
	// HoldTimeout is how long a direction stays held without a key repeat.
	// Zero latches directions.
	HoldTimeout time.Duration

	// Logger receives game events. Nil discards them.
	Logger *log.Logger

	// QuitToMenu makes the quit key leave the game instead of the program.
	QuitToMenu bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	hold       holdTracker
	logger     *log.Logger
	quitToMenu bool

	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		hold:       newHoldTracker(opts.HoldTimeout),
		logger:     logger.With("game", game.ID()),
		quitToMenu: opts.QuitToMenu,
		inputFrame: core.NewInputFrame(),
	}
}

// gameHeight leaves one row for the help footer.
func gameHeight(h int) int {
	return max(h-1, 0)
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey folds a key press into the pending input frame.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	action, jump := m.keys.MapKey(msg)

	switch {
	case action == core.ActionQuit:
		m.logger.Info("game closed")
		if m.quitToMenu {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case action.IsDirection() && jump:
		// The old direction must be released before the modifier goes
		// down, or it would pick up the jump as well.
		m.hold.switchTo(action, &m.inputFrame)
		m.inputFrame.Press(core.ActionJump)
		m.hold.press(action, now, &m.inputFrame)
		m.inputFrame.Release(core.ActionJump)

	case action.IsDirection():
		m.hold.press(action, now, &m.inputFrame)

	case action == core.ActionJump:
		// Terminals report space as a single press.
		m.inputFrame.Press(core.ActionJump)
		m.inputFrame.Release(core.ActionJump)

	case action != core.ActionNone:
		m.inputFrame.Press(action)
	}

	return m, nil
}

// handleResize processes window resize events. The game adapts its layout
// on the next render, so the episode keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	m.hold.expire(now, &m.inputFrame)
	m.inputFrame.Time = now

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventPitsRegenerated, core.EventWallsRegenerated:
			m.logger.Debug("hazards regenerated", "kind", e.Kind, "cells", e.Count)
		default:
			m.logger.Info(e.Kind.String())
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// State returns the game state after the most recent tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
