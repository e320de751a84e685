package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/highscore"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScoreboard
)

// SessionModel manages the full flow: menu -> game -> menu, with the
// scoreboard reachable from the menu. It backs the local menu command and
// every SSH session.
type SessionModel struct {
	opts       GameOptions
	config     core.RuntimeConfig
	screen     screenKind
	lastMode   string
	menu       MenuModel
	game       *GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session starting at the menu. Without a store
// the session keeps one in-memory Expert ledger for all its games.
func NewSessionModel(cfg core.RuntimeConfig, opts GameOptions, initialMode string) SessionModel {
	if opts.Store == nil && opts.Ledger == nil {
		opts.Ledger = highscore.DefaultLedger()
	}
	return SessionModel{
		opts:     opts,
		config:   cfg,
		lastMode: initialMode,
		menu:     NewMenuModel(cfg, opts.Player, initialMode),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.opts, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScoreboard
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		modeID := m.menu.Selected().ModeID
		game, err := registry.Create(modeID)
		if err != nil {
			// the menu only lists registered modes
			m.opts.logger().Error("cannot create game", "mode", modeID, "error", err)
			m.menu = NewMenuModel(m.config, m.opts.Player, m.lastMode)
			return m, nil
		}

		m.lastMode = modeID
		gameModel := NewGameModel(game, m.config, m.opts)
		m.game = &gameModel
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		return m.toMenu()
	}

	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.config, m.opts.Player, m.lastMode)
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScoreboard:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// LastMode returns the mode most recently played, or the initial one.
func (m SessionModel) LastMode() string {
	return m.lastMode
}

// RunSession runs the menu flow in the local terminal and returns the last
// mode played.
func RunSession(cfg core.RuntimeConfig, opts GameOptions, initialMode string) (string, error) {
	p := tea.NewProgram(
		NewSessionModel(cfg, opts, initialMode),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return initialMode, err
	}
	if sm, ok := final.(SessionModel); ok {
		return sm.LastMode(), nil
	}
	return initialMode, nil
}
