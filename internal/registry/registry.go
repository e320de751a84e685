// Package registry holds the playable game modes. Modes register a factory in
// init(), so the CLI and the terminal layer can list and create them without
// knowing the concrete types.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/highscore"
)

// Game is what the platform drives every tick. Implementations hold pure
// logic and never touch the terminal.
type Game interface {
	// ID is the stable mode identifier used by the CLI ("expert").
	ID() string

	// Title is the display name ("Expert").
	Title() string

	// Describe is a one-line summary for listings ("30x16, 99 mines").
	Describe() string

	// Reset starts a fresh board.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the input collected since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	// State reports score, game over and pause.
	State() core.GameState
}

// Outcome describes a finished round for the results history.
type Outcome struct {
	Difficulty string // preset name or "custom"
	Won        bool
	Score      int
	Time       float64
	Clicks     int
	GridSeed   uint64
	Rank       int
}

// RecordKeeper is implemented by games that rank wins against a persistent
// high-score ledger and report finished rounds.
type RecordKeeper interface {
	AttachLedger(l highscore.Submitter, player string)
	Outcome() (Outcome, bool)
}

// Info describes a registered mode.
type Info struct {
	ID          string
	Title       string
	Description string
	Order       int
}

// Factory creates a new instance of a mode.
type Factory func() Game

type entry struct {
	order   int
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a mode. order sorts listings; ties sort by ID.
// Panics on a duplicate ID.
func Register(id string, order int, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	entries[id] = entry{order: order, factory: f}
}

// List returns every registered mode in display order. Titles and
// descriptions come from a fresh instance, so they follow settings changed
// after registration.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for id, e := range entries {
		g := e.factory()
		result = append(result, Info{
			ID:          id,
			Title:       g.Title(),
			Description: g.Describe(),
			Order:       e.order,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
