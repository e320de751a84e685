// Package minesweeper adapts the engine to the platform's Game interface:
// a keyboard cursor, one engine tick per platform tick, and a text renderer.
package minesweeper

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
	"github.com/vovakirdan/tui-minesweeper/internal/highscore"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

// ModeCustom is the registry ID of the user-defined board.
const ModeCustom = "custom"

// Package-level settings, applied to every game created afterwards.
var (
	customDifficulty = engine.Difficulty{Width: 20, Height: 12, MineCount: 45}
	logger           *log.Logger
)

// SetCustomDifficulty sets the board used by the custom mode.
func SetCustomDifficulty(d engine.Difficulty) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("minesweeper: custom board %s: %w", d, err)
	}
	customDifficulty = d
	return nil
}

// CustomDifficulty returns the board used by the custom mode.
func CustomDifficulty() engine.Difficulty {
	return customDifficulty
}

// SetLogger routes engine logging. Nil discards it.
func SetLogger(l *log.Logger) {
	logger = l
}

func init() {
	for i, p := range engine.Presets() {
		registry.Register(p.Name, i, func() registry.Game {
			return New(p.Name, p.Title, p.Difficulty)
		})
	}
	registry.Register(ModeCustom, len(engine.Presets()), func() registry.Game {
		return New(ModeCustom, "Custom", customDifficulty)
	})
}

// Game is one minesweeper mode.
type Game struct {
	id         string
	title      string
	difficulty engine.Difficulty

	eng         *engine.Engine
	tickSeconds float64

	cursorX int
	cursorY int

	ledger highscore.Submitter
	player string

	last    engine.GameOver
	pending bool
}

// New creates a mode playing on d. The board is built on Reset.
func New(id, title string, d engine.Difficulty) *Game {
	return &Game{
		id:         id,
		title:      title,
		difficulty: d,
	}
}

func (g *Game) ID() string    { return g.id }
func (g *Game) Title() string { return g.title }

func (g *Game) Describe() string {
	return fmt.Sprintf("%dx%d, %d mines", g.difficulty.Width, g.difficulty.Height, g.difficulty.MineCount)
}

// Difficulty returns the board this mode plays on.
func (g *Game) Difficulty() engine.Difficulty {
	return g.difficulty
}

// Engine exposes the running session. Nil before the first Reset.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// Cursor returns the cell under the cursor.
func (g *Game) Cursor() (x, y int) {
	return g.cursorX, g.cursorY
}

// AttachLedger makes Expert wins rank against l under the given player name.
func (g *Game) AttachLedger(l highscore.Submitter, player string) {
	g.ledger = l
	g.player = player
	if g.eng != nil {
		g.eng.SetLedger(l)
		g.eng.SetPlayerName(player)
	}
}

// Outcome returns the last finished round. It reports each round once.
func (g *Game) Outcome() (registry.Outcome, bool) {
	if !g.pending {
		return registry.Outcome{}, false
	}
	g.pending = false
	return registry.Outcome{
		Difficulty: g.difficulty.Name(),
		Won:        g.last.Won,
		Score:      g.last.Score,
		Time:       g.last.Time,
		Clicks:     g.last.Clicks,
		GridSeed:   g.eng.GridSeed(),
		Rank:       g.last.Rank,
	}, true
}

// Reset builds a fresh engine and centres the cursor.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	eng, err := g.newEngine(cfg)
	if err != nil {
		// custom boards are validated on the way in, so only a bad
		// direct New() lands here
		if logger != nil {
			logger.Error("cannot create board, using beginner", "mode", g.id, "error", err)
		}
		g.difficulty = engine.Beginner
		if eng, err = g.newEngine(cfg); err != nil {
			panic(fmt.Sprintf("minesweeper: beginner board rejected: %v", err))
		}
	}

	g.eng = eng
	g.tickSeconds = cfg.TickSeconds()
	g.pending = false
	g.centerCursor()
}

func (g *Game) newEngine(cfg core.RuntimeConfig) (*engine.Engine, error) {
	return engine.New(g.difficulty, engine.Options{
		Seed:       cfg.Seed,
		Ledger:     g.ledger,
		PlayerName: g.player,
		OnGameOver: g.onGameOver,
		Logger:     logger,
	})
}

func (g *Game) centerCursor() {
	g.cursorX = g.difficulty.Width / 2
	g.cursorY = g.difficulty.Height / 2
}

func (g *Game) onGameOver(over engine.GameOver) {
	g.last = over
	g.pending = true
}

// Step applies the frame's actions in order, then advances the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions {
		g.apply(a)
	}
	g.eng.Tick(g.tickSeconds)
	return core.StepResult{State: g.State()}
}

func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionRestart:
		g.eng.RestartGame()
		g.pending = false
		return
	case core.ActionPause:
		if g.eng.IsPaused() {
			g.eng.ResumeGame()
		} else {
			g.eng.PauseGame()
		}
		return
	}

	if g.eng.IsPaused() {
		return
	}

	switch a {
	case core.ActionUp:
		g.moveCursor(0, -1)
	case core.ActionDown:
		g.moveCursor(0, 1)
	case core.ActionLeft:
		g.moveCursor(-1, 0)
	case core.ActionRight:
		g.moveCursor(1, 0)
	}

	if g.eng.IsGameOver() {
		return
	}

	switch a {
	case core.ActionOpen:
		g.eng.TryOpenCell(g.cursorX, g.cursorY)
	case core.ActionFlag:
		g.eng.TryFlagCell(g.cursorX, g.cursorY)
	case core.ActionChord:
		g.eng.TryChordCell(g.cursorX, g.cursorY)
	}
}

func (g *Game) moveCursor(dx, dy int) {
	g.cursorX = core.Clamp(g.cursorX+dx, 0, g.difficulty.Width-1)
	g.cursorY = core.Clamp(g.cursorY+dy, 0, g.difficulty.Height-1)
}

// State reports the round for the platform.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.eng.IsGameOver(),
		Won:      g.eng.HasWon(),
		Paused:   g.eng.IsPaused(),
	}
	if st.Won {
		st.Score = highscore.Score(g.eng.GameTime(), g.eng.TotalClicks())
	}
	return st
}
