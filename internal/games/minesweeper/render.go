package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
)

// Board layout: two HUD rows above the box, one help row below it, and each
// cell two columns wide.
const (
	hudRows    = 2
	footerRows = 1
	cellWidth  = 2
)

// Glyphs.
const (
	glyphClosed    = '·'
	glyphFlag      = '⚑'
	glyphMine      = '*'
	glyphWrongFlag = 'x'
)

var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorRed,
	core.ColorBlue,
	core.ColorBrightRed,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorGray,
}

const helpLine = "arrows move  space open  f flag  c chord  p pause  r restart  b menu"

// BoardSize returns the screen area the board box needs.
func BoardSize(d engine.Difficulty) (w, h int) {
	return d.Width*cellWidth + 3, d.Height + 2
}

// MinScreenSize returns the smallest screen that fits the board and HUD.
func MinScreenSize(d engine.Difficulty) (w, h int) {
	bw, bh := BoardSize(d)
	return max(bw, len(helpLine)), bh + hudRows + footerRows
}

// Render draws the HUD, the board and any overlay.
func (g *Game) Render(dst *core.Screen) {
	minW, minH := MinScreenSize(g.difficulty)
	if dst.Width() < minW || dst.Height() < minH {
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(mid, fmt.Sprintf("need %dx%d", minW, minH), core.ColorGray)
		return
	}

	g.renderHUD(dst)

	bw, bh := BoardSize(g.difficulty)
	area := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows-footerRows)
	box := area.Centered(bw, bh)
	dst.DrawBox(box, core.ColorGray)

	g.renderCells(dst, box)

	dst.DrawTextCentered(dst.Height()-1, helpLine, core.ColorGray)

	switch {
	case g.eng.IsPaused():
		g.renderOverlay(dst, box, "Paused", "press p to continue")
	case g.eng.HasWon():
		sub := fmt.Sprintf("score %d, r for a new board", g.last.Score)
		if g.last.Rank >= 0 {
			sub = fmt.Sprintf("score %d, high score #%d", g.last.Score, g.last.Rank+1)
		}
		g.renderOverlay(dst, box, "You win!", sub)
	case g.eng.IsGameOver():
		g.renderOverlay(dst, box, "Boom!", "r for a new board")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	status := "open any cell to start"
	switch g.eng.State() {
	case engine.StateActive:
		status = "playing"
	case engine.StateFinished:
		status = "lost"
		if g.eng.HasWon() {
			status = "won"
		}
	}

	hud := fmt.Sprintf(" %s %s   time %03d   flags %d   clicks %d   %s",
		g.title,
		g.difficulty,
		int(g.eng.GameTime()),
		g.eng.FlagsRemaining(),
		g.eng.TotalClicks(),
		status,
	)
	dst.DrawText(0, 0, hud)
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

func (g *Game) renderCells(dst *core.Screen, box core.Rect) {
	paused := g.eng.IsPaused()
	lost := g.eng.IsGameOver() && !g.eng.HasWon()

	g.eng.ForEachCell(func(c engine.Cell, _, x, y int) {
		r, col := glyphClosed, core.ColorGray
		if !paused {
			r, col = cellGlyph(c, lost)
		}
		if x == g.cursorX && y == g.cursorY && !paused {
			col = core.ColorInverse
		}
		dst.SetColored(box.X+2+x*cellWidth, box.Y+1+y, r, col)
	})
}

// cellGlyph picks the rune and colour for a cell. After a loss every mine is
// shown and flags on safe cells are marked wrong.
func cellGlyph(c engine.Cell, lost bool) (rune, core.Color) {
	switch {
	case c.IsOpened && c.HasMine:
		return glyphMine, core.ColorBrightRed
	case c.IsOpened && c.NeighborMineCount > 0:
		return rune('0' + c.NeighborMineCount), numberColors[c.NeighborMineCount]
	case c.IsOpened:
		return ' ', core.ColorDefault
	case lost && c.IsFlagged && !c.HasMine:
		return glyphWrongFlag, core.ColorYellow
	case c.IsFlagged:
		return glyphFlag, core.ColorRed
	case lost && c.HasMine:
		return glyphMine, core.ColorRed
	}
	return glyphClosed, core.ColorGray
}

func (g *Game) renderOverlay(dst *core.Screen, box core.Rect, title, sub string) {
	w := max(len(title), len(sub)) + 4
	panel := core.NewRect(0, box.Y, dst.Width(), box.H).Centered(w, 4)
	for y := panel.Y; y < panel.Bottom(); y++ {
		for x := panel.X; x < panel.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(panel, core.ColorWhite)
	dst.DrawTextColored(panel.X+(w-len(title))/2, panel.Y+1, title, core.ColorYellow)
	dst.DrawTextColored(panel.X+(w-len(sub))/2, panel.Y+2, sub, core.ColorWhite)
}
