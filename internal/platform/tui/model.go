package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/highscore"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

// GameOptions are shared by every game a host starts.
type GameOptions struct {
	Store  *storage.Store      // nil skips the results history
	Ledger highscore.Submitter // overrides the stored Expert ledger
	Player string
	Logger *log.Logger // nil discards
}

func (o GameOptions) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// ledger returns the Expert ledger games submit to. Without a store or an
// explicit ledger the records last as long as the game.
func (o GameOptions) ledger() highscore.Submitter {
	switch {
	case o.Ledger != nil:
		return o.Ledger
	case o.Store != nil:
		return o.Store.Board(highscore.ExpertBoard)
	}
	return highscore.DefaultLedger()
}

// GameModel runs one game: it ticks the simulation, collects input between
// ticks and records finished rounds.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       GameOptions
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	standalone bool // quits the program instead of returning to a menu
}

// NewGameModel creates a model for game. Games that keep records get the
// Expert ledger attached.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if rk, ok := game.(registry.RecordKeeper); ok {
		rk.AttachLedger(opts.ledger(), opts.Player)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// The board does not depend on the screen size, so no reset.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	isQuit, isBack := m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case isBack:
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if rk, ok := m.game.(registry.RecordKeeper); ok {
		if out, ok := rk.Outcome(); ok {
			m.record(out)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// record stores a finished round. Failures are logged and play continues.
func (m GameModel) record(out registry.Outcome) {
	logger := m.opts.logger()
	logger.Info("game finished",
		"player", m.opts.Player,
		"difficulty", out.Difficulty,
		"won", out.Won,
		"time", fmt.Sprintf("%.1fs", out.Time),
		"clicks", out.Clicks,
		"score", out.Score,
		"rank", out.Rank,
	)
	if m.opts.Store == nil {
		return
	}

	_, err := m.opts.Store.SaveResult(storage.Result{
		Difficulty: out.Difficulty,
		Player:     m.opts.Player,
		Won:        out.Won,
		Score:      out.Score,
		Time:       out.Time,
		Clicks:     out.Clicks,
		GridSeed:   out.GridSeed,
	})
	if err != nil {
		logger.Warn("could not save result", "error", err)
	}
}

// saveScreenshot saves the current screen to ~/.minesweeper/screenshots.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".minesweeper", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run plays a single game until the user quits or goes back.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) error {
	model := NewGameModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
