package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)

	got := outer.Centered(20, 10)
	if got != NewRect(30, 7, 20, 10) {
		t.Errorf("Centered(20, 10) = %+v, expected {30 7 20 10}", got)
	}

	// larger than the outer rect sticks to the origin
	got = outer.Centered(100, 30)
	if got.X != 0 || got.Y != 0 {
		t.Errorf("Centered(100, 30) origin = (%d, %d), expected (0, 0)", got.X, got.Y)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		val, n, expected int
	}{
		{3, 9, 3},
		{9, 9, 0},
		{-1, 9, 8},
		{-10, 9, 8},
		{4, 0, 0},
	}

	for _, tc := range tests {
		if got := Wrap(tc.val, tc.n); got != tc.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.val, tc.n, got, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionNone)
	if !f.Empty() {
		t.Error("ActionNone should not be recorded")
	}

	f.Set(ActionRight)
	f.Set(ActionRight)
	f.Set(ActionOpen)
	if len(f.Actions) != 3 {
		t.Errorf("len(Actions) = %d, expected 3", len(f.Actions))
	}
	if !f.Has(ActionOpen) || f.Has(ActionFlag) {
		t.Error("Has() does not match recorded actions")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
	if ActionChord.String() != "Chord" || Action(99).String() != "Unknown" {
		t.Error("String() names are wrong")
	}
}

func TestTickSeconds(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 20}).TickSeconds(); got != 0.05 {
		t.Errorf("TickSeconds() = %v, expected 0.05", got)
	}
	if got := (RuntimeConfig{}).TickSeconds(); got != 1.0/30 {
		t.Errorf("TickSeconds() with zero rate = %v, expected 1/30", got)
	}
}
