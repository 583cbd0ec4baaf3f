package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Env carries the services shared by every screen of a session.
type Env struct {
	Registry *registry.Registry
	Store    *storage.Store // optional session scoreboard
	Logger   *log.Logger    // optional; TUI output never goes to the terminal
	Player   string
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel is the Bubble Tea model for one running game.
type GameModel struct {
	id         string // tick owner
	game       registry.Game
	env        Env
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	best       int
	saved      bool // Whether score has been saved for current round
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, env Env, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		id:     uuid.NewString(),
		game:   game,
		env:    env,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	if env.Store != nil {
		if best, err := env.Store.HighScore(game.ID()); err == nil {
			m.best = best
		}
	}
	return m
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.env.logger().Debug("round started", "game", m.game.ID(), "seed", m.config.Seed, "player", m.env.Player)
	return tickCmd(m.id, m.game.Delay())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Owner != m.id {
			return m, nil
		}
		m.step(core.NewInputFrame())
		return m, tickCmd(m.id, m.game.Delay())
	}

	return m, nil
}

// handleKey processes keyboard input. Key presses land between ticks;
// direction changes go through the game's gate.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.game.State().GameOver {
			m.backToMenu = true
		}
		return m, nil
	}

	switch a := m.keys.Action(msg); {
	case a == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case a == core.ActionRestart:
		m.step(core.FrameOf(core.ActionRestart))
	case a.IsDirection():
		if m.game.Offer(a) {
			m.step(core.NewInputFrame())
		}
	}
	return m, nil
}

// step runs one tick and records round transitions.
func (m *GameModel) step(in core.InputFrame) {
	logger := m.env.logger()
	before := m.game.State()
	res := m.game.Step(in)

	switch {
	case res.Reset:
		m.saved = false
		logger.Debug("round started", "game", m.game.ID(), "player", m.env.Player)
	case res.State.Score > before.Score:
		logger.Debug("apple eaten", "game", m.game.ID(), "score", res.State.Score)
	}

	if res.State.GameOver && !before.GameOver {
		m.finishRound(res.State)
	}
}

// finishRound logs the result and saves the score once per round.
func (m *GameModel) finishRound(st core.GameState) {
	logger := m.env.logger()
	snap := m.game.Snapshot()
	logger.Info("round over",
		"game", m.game.ID(),
		"player", m.env.Player,
		"score", st.Score,
		"won", st.Won,
		"ticks", snap.Tick,
	)

	m.best = max(m.best, st.Score)
	if m.saved || m.env.Store == nil || st.Score == 0 {
		return
	}
	_, err := m.env.Store.SaveScore(storage.Round{
		GameID: m.game.ID(),
		Player: m.env.Player,
		Score:  st.Score,
		Length: snap.Length,
		Ticks:  snap.Tick,
		Won:    st.Won,
	})
	if err != nil {
		logger.Warn("could not save score", "error", err)
		return
	}
	m.saved = true
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	status := fmt.Sprintf(" Best: %d  ", m.best) + m.help.View(m.keys)
	return RenderScreen(m.screen) + "\n" + statusStyle.Render(status)
}

// Best returns the best score seen this session for the game.
func (m GameModel) Best() int {
	return m.best
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
