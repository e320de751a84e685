package engine

// IsActive reports whether a game is running.
func (e *Engine) IsActive() bool { return e.active }

// IsPaused reports whether the timer is frozen.
func (e *Engine) IsPaused() bool { return e.paused }

// GameTime returns the elapsed play time in seconds.
func (e *Engine) GameTime() float64 { return e.gameTime }

// FlagsRemaining returns the mine count minus placed flags, floored at zero.
func (e *Engine) FlagsRemaining() int { return e.flagsRemaining }

// TotalClicks returns the number of open, flag and chord actions.
func (e *Engine) TotalClicks() int { return e.totalClicks }

// NumClosedCells returns how many cells are still closed.
func (e *Engine) NumClosedCells() int { return e.numClosedCells }

// NumOpenedCells returns how many cells have been opened.
func (e *Engine) NumOpenedCells() int { return e.numOpenedCells }

// Difficulty returns the difficulty of the current game.
func (e *Engine) Difficulty() Difficulty { return e.difficulty }

// GridSeed returns the seed mines are (or will be) placed from.
func (e *Engine) GridSeed() uint64 { return e.gridSeed }

// LastHighScoreRank returns the ledger rank of the last Expert win, or -1.
func (e *Engine) LastHighScoreRank() int8 { return e.lastHighScoreRank }

// HasWon reports whether the game ended with every safe cell opened.
func (e *Engine) HasWon() bool {
	return e.won
}

// IsGameOver reports whether the game has been won or lost.
func (e *Engine) IsGameOver() bool {
	return !e.active && e.gameTime > 0
}

// State derives the session state from the active flag and timer.
func (e *Engine) State() State {
	switch {
	case e.active:
		return StateActive
	case e.gameTime > 0:
		return StateFinished
	default:
		return StateSetup
	}
}

// Grid exposes the cell grid for coordinate math. Callers must not mutate
// cells through it; all accessors return copies.
func (e *Engine) Grid() *Grid { return e.grid }

// GetCell returns a copy of the cell at index i.
func (e *Engine) GetCell(i int) (Cell, bool) {
	return e.grid.Cell(i)
}

// CellAt returns a copy of the cell at (x, y).
func (e *Engine) CellAt(x, y int) (Cell, bool) {
	return e.grid.Cell(e.grid.CoordToIndex(x, y))
}

// GetNeighborCells returns copies of the neighbours of the cell at index i.
func (e *Engine) GetNeighborCells(i int) []Cell {
	if !e.grid.IsValidIndex(i) {
		return nil
	}
	idx := e.grid.neighborIndices(i, nil)
	out := make([]Cell, len(idx))
	for k, n := range idx {
		out[k] = e.grid.cells[n]
	}
	return out
}

// ForEachCell calls visit for every cell in index order.
func (e *Engine) ForEachCell(visit func(c Cell, index, x, y int)) {
	for i, c := range e.grid.cells {
		x, y := e.grid.IndexToCoord(i)
		visit(c, i, x, y)
	}
}
