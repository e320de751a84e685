package engine

// Snapshot captures the complete session for determinism tests and replay.
type Snapshot struct {
	Difficulty     Difficulty
	GridSeed       uint64
	State          State
	Paused         bool
	GameTime       float64
	TotalClicks    int
	FlagsRemaining int
	ClosedCells    int
	OpenedCells    int
	Cells          []Cell
}

// Snapshot returns a deep copy of the session state.
func (e *Engine) Snapshot() Snapshot {
	cells := make([]Cell, len(e.grid.cells))
	copy(cells, e.grid.cells)
	return Snapshot{
		Difficulty:     e.difficulty,
		GridSeed:       e.gridSeed,
		State:          e.State(),
		Paused:         e.paused,
		GameTime:       e.gameTime,
		TotalClicks:    e.totalClicks,
		FlagsRemaining: e.flagsRemaining,
		ClosedCells:    e.numClosedCells,
		OpenedCells:    e.numOpenedCells,
		Cells:          cells,
	}
}

// MineIndices lists the indices of every mined cell.
func (s Snapshot) MineIndices() []int {
	var out []int
	for i, c := range s.Cells {
		if c.HasMine {
			out = append(out, i)
		}
	}
	return out
}
