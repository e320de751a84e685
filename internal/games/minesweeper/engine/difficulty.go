package engine

import (
	"errors"
	"fmt"
)

// Grid limits. Custom difficulties outside these bounds are rejected.
const (
	MaxGridSize  = 30
	MaxMineCount = 400
)

// ErrInvalidDifficulty is returned when a difficulty cannot produce a
// playable, first-click-safe board.
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// Difficulty describes the board dimensions and number of mines.
// Two difficulties are equal when all three fields are equal.
type Difficulty struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	MineCount int `yaml:"mines"`
}

// Named presets.
var (
	Beginner     = Difficulty{Width: 9, Height: 9, MineCount: 10}
	Intermediate = Difficulty{Width: 16, Height: 16, MineCount: 40}
	Expert       = Difficulty{Width: 30, Height: 16, MineCount: 99}
)

// Preset pairs a difficulty with its stable name.
type Preset struct {
	Name       string
	Title      string
	Difficulty Difficulty
}

// Presets returns the named presets in ascending order of difficulty.
func Presets() []Preset {
	return []Preset{
		{Name: "beginner", Title: "Beginner", Difficulty: Beginner},
		{Name: "intermediate", Title: "Intermediate", Difficulty: Intermediate},
		{Name: "expert", Title: "Expert", Difficulty: Expert},
	}
}

// PresetByName looks up a preset difficulty by its name.
func PresetByName(name string) (Difficulty, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p.Difficulty, true
		}
	}
	return Difficulty{}, false
}

// TotalCells returns width*height.
func (d Difficulty) TotalCells() int {
	return d.Width * d.Height
}

// IsBeginner reports whether d equals the Beginner preset.
func (d Difficulty) IsBeginner() bool { return d == Beginner }

// IsIntermediate reports whether d equals the Intermediate preset.
func (d Difficulty) IsIntermediate() bool { return d == Intermediate }

// IsExpert reports whether d equals the Expert preset.
func (d Difficulty) IsExpert() bool { return d == Expert }

// Name returns the preset name for d, or "custom".
func (d Difficulty) Name() string {
	for _, p := range Presets() {
		if p.Difficulty == d {
			return p.Name
		}
	}
	return "custom"
}

// String formats d as "WxH/mines".
func (d Difficulty) String() string {
	return fmt.Sprintf("%dx%d/%d", d.Width, d.Height, d.MineCount)
}

// Validate checks the grid bounds and that at least one cell stays safe.
func (d Difficulty) Validate() error {
	if d.Width < 1 || d.Width > MaxGridSize {
		return fmt.Errorf("%w: width %d not in [1, %d]", ErrInvalidDifficulty, d.Width, MaxGridSize)
	}
	if d.Height < 1 || d.Height > MaxGridSize {
		return fmt.Errorf("%w: height %d not in [1, %d]", ErrInvalidDifficulty, d.Height, MaxGridSize)
	}
	maxMines := min(d.TotalCells()-1, MaxMineCount)
	if d.MineCount < 1 || d.MineCount > maxMines {
		return fmt.Errorf("%w: mine count %d not in [1, %d]", ErrInvalidDifficulty, d.MineCount, maxMines)
	}
	return nil
}
