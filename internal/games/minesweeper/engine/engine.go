package engine

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minesweeper/internal/highscore"
)

// State is the session's logical state.
type State int

const (
	StateSetup    State = iota // board allocated, no cell opened
	StateActive                // first cell opened, game running
	StateFinished              // won or lost
)

func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateActive:
		return "active"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// GameOver is delivered synchronously when a game is won or lost.
type GameOver struct {
	Won    bool
	Time   float64 // seconds
	Clicks int
	Score  int // 0 unless won
	Rank   int // ledger rank, -1 when not ranked
}

// Options configure an Engine.
type Options struct {
	// Seed initialises the source of per-game grid seeds. 0 means time based.
	Seed int64

	// Ledger receives Expert wins. May be nil.
	Ledger highscore.Submitter

	// PlayerName is recorded with ledger entries.
	PlayerName string

	// OnGameOver is called inside the open/chord call that ends the game.
	OnGameOver func(GameOver)

	// Logger receives debug and warning output. Nil discards it.
	Logger *log.Logger
}

// Engine owns one minesweeper session.
type Engine struct {
	opts   Options
	logger *log.Logger
	seeds  *rand.Rand

	difficulty Difficulty
	grid       *Grid
	gridSeed   uint64

	active         bool
	paused         bool
	won            bool
	gameTime       float64
	totalClicks    int
	flagsRemaining int
	numClosedCells int
	numOpenedCells int

	lastHighScoreRank int8

	// scratch space for the cascade
	stack []int
	nbuf  []int
}

// New creates an engine and sets up a game at difficulty d.
func New(d Difficulty, opts Options) (*Engine, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		opts:              opts,
		logger:            logger,
		seeds:             rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1)),
		lastHighScoreRank: -1,
	}
	if err := e.SetupGame(d); err != nil {
		return nil, err
	}
	return e, nil
}

// SetupGame allocates a fresh grid for d and resets the session.
func (e *Engine) SetupGame(d Difficulty) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("engine: cannot set up game: %w", err)
	}
	e.difficulty = d
	e.grid = NewGrid(d.Width, d.Height)
	e.resetSession(e.seeds.Uint64())
	return nil
}

// RestartGame resets every cell in place and draws a new grid seed.
func (e *Engine) RestartGame() {
	e.RestartWithSeed(e.seeds.Uint64())
}

// RestartWithSeed restarts the game so that mines will be placed from seed.
// The same seed and first click always produce the same board.
func (e *Engine) RestartWithSeed(seed uint64) {
	e.grid.Reset()
	e.resetSession(seed)
}

func (e *Engine) resetSession(seed uint64) {
	e.gridSeed = seed
	e.active = false
	e.paused = false
	e.won = false
	e.gameTime = 0
	e.totalClicks = 0
	e.flagsRemaining = e.difficulty.MineCount
	e.numClosedCells = 0
	e.numOpenedCells = 0
	e.lastHighScoreRank = -1
}

// SetPlayerName changes the name recorded with future ledger entries.
func (e *Engine) SetPlayerName(name string) {
	e.opts.PlayerName = name
}

// SetLedger replaces the ledger collaborator. Nil disables ranking.
func (e *Engine) SetLedger(l highscore.Submitter) {
	e.opts.Ledger = l
}

// SetGameOverHandler replaces the game-over callback.
func (e *Engine) SetGameOverHandler(fn func(GameOver)) {
	e.opts.OnGameOver = fn
}

// started reports whether mines are placed and the clock has ticked.
func (e *Engine) started() bool {
	return e.active && e.gameTime > 0
}

// TryOpenCell opens the cell at (x, y). The first open of a game places the
// mines around the clicked cell, so it is never a mine.
func (e *Engine) TryOpenCell(x, y int) bool {
	idx := e.grid.CoordToIndex(x, y)
	if idx < 0 {
		return false
	}

	switch {
	case e.started():
		e.totalClicks++
		c := &e.grid.cells[idx]
		if c.IsOpened || c.IsFlagged {
			return false
		}
		e.open(idx)
		e.checkFinished(c.HasMine)
		return true

	case !e.active && e.gameTime == 0:
		if e.grid.cells[idx].IsFlagged {
			return false
		}
		e.active = true
		e.totalClicks = 1
		e.flagsRemaining = max(0, e.difficulty.MineCount-e.grid.countFlagged())
		e.numClosedCells = e.grid.Len()
		e.numOpenedCells = 0

		e.placeMines(idx)
		e.grid.countNeighborMines()
		e.logger.Debug("game started",
			"difficulty", e.difficulty.String(),
			"seed", e.gridSeed,
			"x", x, "y", y,
		)
		e.open(idx)
		return true
	}

	// active but not yet ticked, or finished
	return false
}

// TryFlagCell toggles the flag on a closed cell. Every valid coordinate
// counts as a click, even when the cell is already open.
func (e *Engine) TryFlagCell(x, y int) bool {
	idx := e.grid.CoordToIndex(x, y)
	if idx < 0 {
		return false
	}
	e.totalClicks++

	c := &e.grid.cells[idx]
	if c.IsOpened {
		return false
	}

	c.IsFlagged = !c.IsFlagged
	if c.IsFlagged {
		if e.flagsRemaining > 0 {
			e.flagsRemaining--
		}
	} else {
		e.flagsRemaining++
	}
	return true
}

// TryChordCell opens every closed, unflagged neighbour of an opened number
// whose flagged neighbours already match it. It counts as one click.
func (e *Engine) TryChordCell(x, y int) bool {
	idx := e.grid.CoordToIndex(x, y)
	if idx < 0 || !e.started() {
		return false
	}
	e.totalClicks++

	c := e.grid.cells[idx]
	if !c.IsOpened || c.NeighborMineCount <= 0 {
		return false
	}

	neighbors := e.grid.neighborIndices(idx, nil)
	flagged := 0
	for _, n := range neighbors {
		if e.grid.cells[n].IsFlagged {
			flagged++
		}
	}
	if flagged != c.NeighborMineCount {
		return false
	}

	opened := false
	hitMine := false
	for _, n := range neighbors {
		nc := &e.grid.cells[n]
		if nc.IsOpened || nc.IsFlagged {
			continue
		}
		e.open(n)
		opened = true
		if nc.HasMine {
			hitMine = true
		}
	}
	if opened {
		e.checkFinished(hitMine)
	}
	return opened
}

// open marks idx opened and cascades through zero cells. Flagged cells stop
// the cascade and keep their flag.
func (e *Engine) open(idx int) {
	e.markOpened(idx)
	if c := e.grid.cells[idx]; c.HasMine || c.NeighborMineCount != 0 {
		return
	}

	e.stack = append(e.stack[:0], idx)
	for len(e.stack) > 0 {
		cur := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]

		e.nbuf = e.grid.neighborIndices(cur, e.nbuf[:0])
		for _, n := range e.nbuf {
			nc := &e.grid.cells[n]
			if nc.IsOpened || nc.IsFlagged {
				continue
			}
			e.markOpened(n)
			if nc.NeighborMineCount == 0 {
				e.stack = append(e.stack, n)
			}
		}
	}
}

func (e *Engine) markOpened(idx int) {
	e.grid.cells[idx].IsOpened = true
	e.numClosedCells--
	e.numOpenedCells++
}

// placeMines scatters the mines over every cell except safe using a partial
// Fisher-Yates shuffle seeded from the grid seed.
func (e *Engine) placeMines(safe int) {
	total := e.grid.Len()
	candidates := make([]int, 0, total-1)
	for i := 0; i < total; i++ {
		if i != safe {
			candidates = append(candidates, i)
		}
	}

	rng := rand.New(rand.NewPCG(e.gridSeed, e.gridSeed^0x9e3779b97f4a7c15))
	for i := 0; i < e.difficulty.MineCount; i++ {
		j := i + rng.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		e.grid.cells[candidates[i]].HasMine = true
	}
}

// checkFinished ends the game on a mine hit or once only mines stay closed.
func (e *Engine) checkFinished(hitMine bool) {
	switch {
	case hitMine:
		e.active = false
		e.lastHighScoreRank = -1
		e.finish(GameOver{Won: false, Time: e.gameTime, Clicks: e.totalClicks, Rank: -1})
	case e.numClosedCells == e.difficulty.MineCount:
		e.active = false
		e.won = true
		over := GameOver{
			Won:    true,
			Time:   e.gameTime,
			Clicks: e.totalClicks,
			Score:  highscore.Score(e.gameTime, e.totalClicks),
			Rank:   -1,
		}
		if e.difficulty.IsExpert() {
			over.Rank = e.submit(over)
		}
		e.lastHighScoreRank = int8(over.Rank)
		e.finish(over)
	}
}

// submit records an Expert win with the ledger collaborator.
func (e *Engine) submit(over GameOver) int {
	if e.opts.Ledger == nil {
		return -1
	}
	name, err := highscore.SanitizeName(e.opts.PlayerName)
	if err != nil {
		name = "Anonymous"
	}
	rank, err := e.opts.Ledger.Submit(highscore.Entry{
		Name:   name,
		Score:  over.Score,
		Time:   over.Time,
		Clicks: over.Clicks,
	})
	if err != nil {
		e.logger.Warn("could not submit high score", "error", err)
		return -1
	}
	return rank
}

func (e *Engine) finish(over GameOver) {
	e.logger.Debug("game over",
		"won", over.Won,
		"time", over.Time,
		"clicks", over.Clicks,
		"score", over.Score,
		"rank", over.Rank,
	)
	if e.opts.OnGameOver != nil {
		e.opts.OnGameOver(over)
	}
}

// PauseGame freezes the timer. It has no effect unless the game is active.
func (e *Engine) PauseGame() {
	if e.active {
		e.paused = true
	}
}

// ResumeGame lets the timer advance again.
func (e *Engine) ResumeGame() {
	e.paused = false
}

// Tick advances the game time by delta seconds while active and unpaused.
// A first open whose cascade already cleared the board is won here, since
// the win needs a running clock.
func (e *Engine) Tick(delta float64) {
	if !e.active || e.paused || delta <= 0 {
		return
	}
	e.gameTime += delta
	if e.numClosedCells == e.difficulty.MineCount {
		e.checkFinished(false)
	}
}
