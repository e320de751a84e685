package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridCoordIndexRoundTrip(t *testing.T) {
	g := NewGrid(7, 4)

	for i := 0; i < g.Len(); i++ {
		x, y := g.IndexToCoord(i)
		require.True(t, g.IsValidCoord(x, y), "index %d", i)
		assert.Equal(t, i, g.CoordToIndex(x, y))
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			gx, gy := g.IndexToCoord(g.CoordToIndex(x, y))
			assert.Equal(t, [2]int{x, y}, [2]int{gx, gy})
		}
	}
}

func TestGridRejectsInvalidInput(t *testing.T) {
	g := NewGrid(3, 2)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x past width", 3, 0},
		{"y past height", 0, 2},
		{"x wraps into next row", 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, g.IsValidCoord(tt.x, tt.y))
			assert.Equal(t, -1, g.CoordToIndex(tt.x, tt.y))
		})
	}

	assert.False(t, g.IsValidIndex(-1))
	assert.False(t, g.IsValidIndex(6))
	assert.True(t, g.IsValidIndex(5))

	_, ok := g.Cell(6)
	assert.False(t, ok)
}

func TestGridNeighborsOf(t *testing.T) {
	g := NewGrid(4, 3)

	tests := []struct {
		name     string
		x, y     int
		expected []Coord
	}{
		{
			name:     "top-left corner",
			x:        0,
			y:        0,
			expected: []Coord{{1, 0}, {0, 1}, {1, 1}},
		},
		{
			name: "interior",
			x:    1,
			y:    1,
			expected: []Coord{
				{0, 0}, {1, 0}, {2, 0},
				{0, 1}, {2, 1},
				{0, 2}, {1, 2}, {2, 2},
			},
		},
		{
			name:     "right edge",
			x:        3,
			y:        1,
			expected: []Coord{{2, 0}, {3, 0}, {2, 1}, {2, 2}, {3, 2}},
		},
		{
			name:     "bottom-right corner",
			x:        3,
			y:        2,
			expected: []Coord{{2, 1}, {3, 1}, {2, 2}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, g.NeighborsOf(tt.x, tt.y))
		})
	}
}

func TestGridResetIsVirgin(t *testing.T) {
	g := NewGrid(3, 3)
	g.cells[4] = Cell{HasMine: true, IsOpened: true, IsFlagged: true, NeighborMineCount: 3}

	g.Reset()

	for i := 0; i < g.Len(); i++ {
		c, ok := g.Cell(i)
		require.True(t, ok)
		assert.Equal(t, Cell{NeighborMineCount: UncomputedCount}, c, "cell %d", i)
	}
}

func TestDifficultyValidate(t *testing.T) {
	tests := []struct {
		name    string
		d       Difficulty
		wantErr bool
	}{
		{"beginner", Beginner, false},
		{"intermediate", Intermediate, false},
		{"expert", Expert, false},
		{"densest allowed", Difficulty{Width: 3, Height: 3, MineCount: 8}, false},
		{"no safe cell", Difficulty{Width: 3, Height: 3, MineCount: 9}, true},
		{"no mines", Difficulty{Width: 3, Height: 3, MineCount: 0}, true},
		{"zero width", Difficulty{Width: 0, Height: 3, MineCount: 1}, true},
		{"too tall", Difficulty{Width: 5, Height: MaxGridSize + 1, MineCount: 1}, true},
		{"single cell", Difficulty{Width: 1, Height: 1, MineCount: 1}, true},
		{"mine cap", Difficulty{Width: 30, Height: 30, MineCount: MaxMineCount + 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.d.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDifficulty)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	assert.True(t, Beginner.IsBeginner())
	assert.True(t, Intermediate.IsIntermediate())
	assert.True(t, Expert.IsExpert())
	assert.False(t, Difficulty{Width: 30, Height: 16, MineCount: 98}.IsExpert())

	d, ok := PresetByName("expert")
	require.True(t, ok)
	assert.Equal(t, Expert, d)
	assert.Equal(t, "expert", d.Name())
	assert.Equal(t, "custom", Difficulty{Width: 5, Height: 5, MineCount: 3}.Name())
	assert.Equal(t, "9x9/10", Beginner.String())

	_, ok = PresetByName("nightmare")
	assert.False(t, ok)
}
