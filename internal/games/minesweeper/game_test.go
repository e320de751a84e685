package minesweeper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
	"github.com/vovakirdan/tui-minesweeper/internal/highscore"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

func newTestGame(t *testing.T, d engine.Difficulty, seed int64) *Game {
	t.Helper()
	g := New("test", "Test", d)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// openAllSafe opens every remaining safe cell directly on the engine.
func openAllSafe(g *Game) {
	snap := g.Engine().Snapshot()
	w := snap.Difficulty.Width
	for i, c := range snap.Cells {
		if !c.HasMine {
			g.Engine().TryOpenCell(i%w, i/w)
		}
	}
}

func TestModesRegistered(t *testing.T) {
	var ids []string
	for _, info := range registry.List() {
		switch info.ID {
		case "beginner", "intermediate", "expert", ModeCustom:
			ids = append(ids, info.ID)
		}
	}
	assert.Equal(t, []string{"beginner", "intermediate", "expert", ModeCustom}, ids)

	g, err := registry.Create("expert")
	require.NoError(t, err)
	assert.Equal(t, "Expert", g.Title())
	assert.Equal(t, "30x16, 99 mines", g.Describe())

	_, ok := g.(registry.RecordKeeper)
	assert.True(t, ok, "minesweeper modes keep records")
}

func TestFirstOpenStartsClock(t *testing.T) {
	g := newTestGame(t, engine.Intermediate, 11)

	g.Step(core.NewInputFrame())
	assert.Equal(t, engine.StateSetup, g.Engine().State())
	assert.Zero(t, g.Engine().GameTime())

	g.Step(frame(core.ActionOpen))

	assert.Equal(t, engine.StateActive, g.Engine().State())
	assert.InDelta(t, 1.0/30, g.Engine().GameTime(), 1e-9)
	assert.Equal(t, 1, g.Engine().TotalClicks())

	c, ok := g.Engine().CellAt(g.Cursor())
	require.True(t, ok)
	assert.True(t, c.IsOpened)
	assert.False(t, c.HasMine)
}

func TestCursorClampsToBoard(t *testing.T) {
	g := newTestGame(t, engine.Beginner, 1)

	x, y := g.Cursor()
	assert.Equal(t, [2]int{4, 4}, [2]int{x, y})

	moves := make([]core.Action, 20)
	for i := range moves {
		moves[i] = core.ActionLeft
	}
	g.Step(frame(moves...))
	x, _ = g.Cursor()
	assert.Equal(t, 0, x)

	for i := range moves {
		moves[i] = core.ActionDown
	}
	g.Step(frame(moves...))
	_, y = g.Cursor()
	assert.Equal(t, 8, y)
}

func TestPauseFreezesClockAndInput(t *testing.T) {
	g := newTestGame(t, engine.Intermediate, 5)
	g.Step(frame(core.ActionOpen))
	g.Step(core.NewInputFrame())
	before := g.Engine().GameTime()
	clicks := g.Engine().TotalClicks()

	g.Step(frame(core.ActionPause))
	require.True(t, g.State().Paused)

	for range 10 {
		g.Step(frame(core.ActionRight, core.ActionFlag))
	}
	assert.Equal(t, before, g.Engine().GameTime())
	assert.Equal(t, clicks, g.Engine().TotalClicks())

	g.Step(frame(core.ActionPause))
	assert.False(t, g.State().Paused)
	assert.Greater(t, g.Engine().GameTime(), before)
}

func TestExpertWinIsRankedAndReportedOnce(t *testing.T) {
	ledger := highscore.DefaultLedger()
	g := newTestGame(t, engine.Expert, 99)
	g.AttachLedger(ledger, "ace")

	g.Step(frame(core.ActionOpen))
	openAllSafe(g)

	st := g.State()
	require.True(t, st.GameOver)
	require.True(t, st.Won)
	assert.Positive(t, st.Score)

	out, ok := g.Outcome()
	require.True(t, ok)
	assert.True(t, out.Won)
	assert.Equal(t, "expert", out.Difficulty)
	assert.Equal(t, 0, out.Rank)
	assert.Equal(t, st.Score, out.Score)
	assert.Equal(t, g.Engine().GridSeed(), out.GridSeed)
	assert.Equal(t, "ace", ledger.Entries()[0].Name)

	_, ok = g.Outcome()
	assert.False(t, ok, "outcome must be reported once")
}

func TestLossOutcomeAndFrozenBoard(t *testing.T) {
	g := newTestGame(t, engine.Intermediate, 3)
	g.Step(frame(core.ActionOpen))

	mine := g.Engine().Snapshot().MineIndices()[0]
	mx, my := g.Engine().Grid().IndexToCoord(mine)
	require.True(t, g.Engine().TryOpenCell(mx, my))

	out, ok := g.Outcome()
	require.True(t, ok)
	assert.False(t, out.Won)
	assert.Equal(t, -1, out.Rank)
	assert.Zero(t, out.Score)

	clicks := g.Engine().TotalClicks()
	g.Step(frame(core.ActionOpen, core.ActionFlag, core.ActionChord))
	assert.Equal(t, clicks, g.Engine().TotalClicks(), "finished board ignores clicks")

	g.Step(frame(core.ActionRestart))
	assert.Equal(t, engine.StateSetup, g.Engine().State())
	_, ok = g.Outcome()
	assert.False(t, ok)
}

func TestLossWithOneSafeCellLeftShowsBoom(t *testing.T) {
	mines := engine.Beginner.MineCount
	for seed := int64(1); seed <= 50; seed++ {
		g := newTestGame(t, engine.Beginner, seed)
		g.Step(frame(core.ActionOpen))
		eng := g.Engine()
		w := engine.Beginner.Width

		for i := 0; i < eng.Grid().Len() && eng.NumClosedCells() > mines+1; i++ {
			if c, _ := eng.GetCell(i); !c.HasMine && !c.IsOpened {
				eng.TryOpenCell(i%w, i/w)
			}
		}
		if eng.IsGameOver() {
			continue // a cascade cleared the last safe cells together
		}
		require.Equal(t, mines+1, eng.NumClosedCells())

		mine := eng.Snapshot().MineIndices()[0]
		require.True(t, eng.TryOpenCell(mine%w, mine/w))

		assert.True(t, eng.IsGameOver())
		assert.False(t, eng.HasWon())
		st := g.State()
		assert.False(t, st.Won)
		assert.Zero(t, st.Score)

		scr := core.NewScreen(80, 24)
		g.Render(scr)
		assert.Contains(t, scr.String(), "Boom!")
		assert.NotContains(t, scr.String(), "You win!")
		assert.Contains(t, scr.Row(0), "lost")
		return
	}
	t.Fatal("no seed left exactly one safe cell closed")
}

func TestResetFallsBackToBeginner(t *testing.T) {
	g := newTestGame(t, engine.Difficulty{Width: 3, Height: 3, MineCount: 9}, 5)

	require.NotNil(t, g.Engine())
	assert.Equal(t, engine.Beginner, g.Difficulty())
	assert.Equal(t, engine.Beginner, g.Engine().Difficulty())
	cx, cy := g.Cursor()
	assert.Equal(t, [2]int{4, 4}, [2]int{cx, cy})
}

func TestCellGlyph(t *testing.T) {
	tests := []struct {
		name     string
		cell     engine.Cell
		lost     bool
		expected rune
	}{
		{"closed", engine.Cell{}, false, glyphClosed},
		{"hidden mine while playing", engine.Cell{HasMine: true}, false, glyphClosed},
		{"mine revealed after loss", engine.Cell{HasMine: true}, true, glyphMine},
		{"exploded mine", engine.Cell{HasMine: true, IsOpened: true}, true, glyphMine},
		{"flag", engine.Cell{IsFlagged: true}, false, glyphFlag},
		{"correct flag after loss", engine.Cell{IsFlagged: true, HasMine: true}, true, glyphFlag},
		{"wrong flag after loss", engine.Cell{IsFlagged: true}, true, glyphWrongFlag},
		{"empty", engine.Cell{IsOpened: true}, false, ' '},
		{"number", engine.Cell{IsOpened: true, NeighborMineCount: 3}, false, '3'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := cellGlyph(tt.cell, tt.lost)
			assert.Equal(t, string(tt.expected), string(r))
		})
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, engine.Intermediate, 8)
	g.Step(frame(core.ActionOpen))

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	assert.Contains(t, scr.Row(0), "Test 16x16/40")
	assert.Contains(t, scr.Row(0), "playing")
	assert.Contains(t, scr.String(), helpLine)

	bw, bh := BoardSize(engine.Intermediate)
	box := core.NewRect(0, hudRows, 80, 24-hudRows-footerRows).Centered(bw, bh)
	assert.Equal(t, '┌', scr.Get(box.X, box.Y))

	cx, cy := g.Cursor()
	cell := scr.GetCell(box.X+2+cx*cellWidth, box.Y+1+cy)
	assert.Equal(t, core.ColorInverse, cell.Color)
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, engine.Expert, 1)

	scr := core.NewScreen(40, 10)
	g.Render(scr)

	assert.True(t, strings.Contains(scr.String(), "Window too small"))
}

func TestSetCustomDifficulty(t *testing.T) {
	prev := CustomDifficulty()
	t.Cleanup(func() { customDifficulty = prev })

	err := SetCustomDifficulty(engine.Difficulty{Width: 3, Height: 3, MineCount: 9})
	require.ErrorIs(t, err, engine.ErrInvalidDifficulty)
	assert.Equal(t, prev, CustomDifficulty())

	d := engine.Difficulty{Width: 12, Height: 10, MineCount: 20}
	require.NoError(t, SetCustomDifficulty(d))

	g, err := registry.Create(ModeCustom)
	require.NoError(t, err)
	assert.Equal(t, "12x10, 20 mines", g.Describe())
}
