package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game -> menu, with
// the scoreboard reachable from the menu. It is the top-level model for
// both local play and SSH sessions.
type SessionModel struct {
	id       string
	env      Env
	config   core.RuntimeConfig
	screen   sessionScreen
	menu     MenuModel
	game     *GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session that starts in the variant menu, or
// straight in a game when variant is non-empty.
func NewSessionModel(env Env, cfg core.RuntimeConfig, variant string) (SessionModel, error) {
	m := SessionModel{
		id:     uuid.NewString(),
		env:    env,
		config: cfg,
		menu:   NewMenuModel(env.Registry, cfg.ScreenW, cfg.ScreenH),
	}
	if variant != "" {
		if err := m.startGame(variant); err != nil {
			return SessionModel{}, err
		}
	}
	return m, nil
}

// ID returns the session identifier used in logs.
func (m SessionModel) ID() string {
	return m.id
}

// startGame creates the variant and switches to the game screen.
func (m *SessionModel) startGame(variant string) error {
	game, err := m.env.Registry.Create(variant)
	if err != nil {
		return err
	}
	cfg := m.config
	if cfg.Seed == 0 || m.game != nil {
		// Every game after the first gets a fresh seed.
		cfg.Seed = time.Now().UnixNano()
	}
	gm := NewGameModel(game, m.env, cfg)
	m.game = &gm
	m.screen = screenGame
	m.env.logger().Debug("game selected", "session", m.id, "game", game.ID())
	return nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenGame && m.game != nil {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		newMenu, _ := m.menu.Update(msg)
		m.menu = newMenu.(MenuModel)
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		return m, nil
	}
	newMenu, cmd := m.menu.Update(msg)
	m.menu = newMenu.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.env.Registry.List(), m.env.Store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		m.menu = NewMenuModel(m.env.Registry, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		if err := m.startGame(m.menu.Selected().ID); err != nil {
			// Shouldn't happen since menu only shows registered variants
			m.env.logger().Error("could not start game", "error", err)
			m.menu = NewMenuModel(m.env.Registry, m.config.ScreenW, m.config.ScreenH)
			return m, nil
		}
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	gm := newModel.(GameModel)
	m.game = &gm

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu; the game's pending tick is dropped by owner id.
	if m.game.BackToMenu() {
		m.screen = screenMenu
		m.menu = NewMenuModel(m.env.Registry, m.config.ScreenW, m.config.ScreenH)
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	m.scores = newModel.(ScoreboardModel)

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.screen = screenMenu
		return m, nil
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// Run starts a local Bubble Tea program. An empty variant opens the menu.
func Run(env Env, cfg core.RuntimeConfig, variant string) error {
	model, err := NewSessionModel(env, cfg, variant)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
