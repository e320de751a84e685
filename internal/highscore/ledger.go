// Package highscore scores won games and keeps the bounded, ranked list of
// best results.
package highscore

import "math"

// MaxScore is the numerator of both score terms.
const MaxScore = 1_000_000

// LedgerSize is the fixed number of entries in a ledger.
const LedgerSize = 10

// ExpertBoard is the ledger key used for Expert games, the only difficulty
// that is ranked.
const ExpertBoard = "expert"

// Entry is one high-score record.
type Entry struct {
	Name   string
	Score  int
	Time   float64 // seconds
	Clicks int
}

// Score rewards a fast game with few actions:
// floor(MaxScore/gameTime + MaxScore/clicks). A non-positive input
// contributes nothing for its term.
func Score(gameTime float64, clicks int) int {
	var total float64
	if gameTime > 0 {
		total += MaxScore / gameTime
	}
	if clicks > 0 {
		total += MaxScore / float64(clicks)
	}
	return int(math.Floor(total))
}

// Submitter accepts a finished game and reports the rank it reached, or -1.
// Implementations may persist the result.
type Submitter interface {
	Submit(e Entry) (int, error)
}

// Ledger is a score-descending list of at most LedgerSize entries.
type Ledger struct {
	entries []Entry
}

// NewLedger builds a ledger from entries, keeping the best LedgerSize.
// Entries are expected in descending score order.
func NewLedger(entries []Entry) *Ledger {
	l := &Ledger{entries: make([]Entry, 0, LedgerSize+1)}
	for _, e := range entries {
		if len(l.entries) == LedgerSize {
			break
		}
		l.entries = append(l.entries, e)
	}
	return l
}

// DefaultLedger returns the stock list shipped with a fresh install.
func DefaultLedger() *Ledger {
	entries := make([]Entry, LedgerSize)
	for i := range entries {
		entries[i] = Entry{
			Name:  "Some_Randy",
			Score: (LedgerSize - i) * 10,
			Time:  float64((i + 1) * 100),
		}
	}
	return NewLedger(entries)
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries, best first.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Rank returns the position a new score would take: the first index whose
// stored score is strictly less than score. A list that still has room ranks
// a score that beats nothing at its end. Otherwise -1.
func (l *Ledger) Rank(score int) int {
	for i, e := range l.entries {
		if e.Score < score {
			return i
		}
	}
	if len(l.entries) < LedgerSize {
		return len(l.entries)
	}
	return -1
}

// Insert places e at its rank and drops whatever falls off the end.
// It returns the rank, or -1 when e did not qualify.
func (l *Ledger) Insert(e Entry) int {
	rank := l.Rank(e.Score)
	if rank < 0 {
		return -1
	}
	l.entries = append(l.entries, Entry{})
	copy(l.entries[rank+1:], l.entries[rank:])
	l.entries[rank] = e
	if len(l.entries) > LedgerSize {
		l.entries = l.entries[:LedgerSize]
	}
	return rank
}

// Submit implements Submitter for an in-memory ledger.
func (l *Ledger) Submit(e Entry) (int, error) {
	return l.Insert(e), nil
}
