package highscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoresOf(l *Ledger) []int {
	out := make([]int, 0, l.Len())
	for _, e := range l.Entries() {
		out = append(out, e.Score)
	}
	return out
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		time     float64
		clicks   int
		expected int
	}{
		{"reference", 100, 50, 30000},
		{"fractional time floors", 3, 1, 1333333},
		{"zero time", 0, 10, 100000},
		{"zero clicks", 10, 0, 100000},
		{"nothing", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(tt.time, tt.clicks))
		})
	}
}

func TestDefaultLedger(t *testing.T) {
	l := DefaultLedger()

	require.Equal(t, LedgerSize, l.Len())
	assert.Equal(t, []int{100, 90, 80, 70, 60, 50, 40, 30, 20, 10}, scoresOf(l))

	first := l.Entries()[0]
	assert.Equal(t, Entry{Name: "Some_Randy", Score: 100, Time: 100}, first)
	assert.InDelta(t, 1000.0, l.Entries()[9].Time, 1e-9)
}

func TestLedgerRank(t *testing.T) {
	l := DefaultLedger()

	tests := []struct {
		score    int
		expected int
	}{
		{75, 3},
		{101, 0},
		{100, -1}, // ties do not displace
		{11, 9},
		{10, -1},
		{5, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, l.Rank(tt.score), "Rank(%d)", tt.score)
	}
}

func TestLedgerInsertDropsLast(t *testing.T) {
	l := DefaultLedger()

	rank := l.Insert(Entry{Name: "new", Score: 75, Time: 12.5, Clicks: 40})

	assert.Equal(t, 3, rank)
	assert.Equal(t, []int{100, 90, 80, 75, 70, 60, 50, 40, 30, 20}, scoresOf(l))
	assert.Equal(t, "new", l.Entries()[3].Name)
}

func TestLedgerInsertRejected(t *testing.T) {
	l := DefaultLedger()
	before := l.Entries()

	rank, err := l.Submit(Entry{Name: "slow", Score: 10})

	require.NoError(t, err)
	assert.Equal(t, -1, rank)
	assert.Equal(t, before, l.Entries())
}

func TestShortLedgerAppends(t *testing.T) {
	l := NewLedger([]Entry{{Name: "a", Score: 50}})

	assert.Equal(t, 1, l.Insert(Entry{Name: "b", Score: 20}))
	assert.Equal(t, 0, l.Insert(Entry{Name: "c", Score: 70}))
	assert.Equal(t, []int{70, 50, 20}, scoresOf(l))
}

func TestNewLedgerTruncates(t *testing.T) {
	entries := make([]Entry, LedgerSize+5)
	for i := range entries {
		entries[i] = Entry{Score: 1000 - i}
	}

	l := NewLedger(entries)

	assert.Equal(t, LedgerSize, l.Len())
	assert.Equal(t, 991, l.Entries()[LedgerSize-1].Score)
}

func TestEntriesIsACopy(t *testing.T) {
	l := DefaultLedger()
	entries := l.Entries()
	entries[0].Score = 0

	assert.Equal(t, 100, l.Entries()[0].Score)
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
		wantErr  bool
	}{
		{"Some_Randy", "Some_Randy", false},
		{"ace player!", "aceplayer", false},
		{"dash-ok_42", "dash-ok_42", false},
		{"ünïcödé", "ncd", false},
		{"abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnopqrst", false},
		{"   ", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := SanitizeName(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrEmptyName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
