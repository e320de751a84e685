package storage

import (
	"fmt"

	"github.com/vovakirdan/tui-minesweeper/internal/highscore"
)

// LoadLedger reads the ledger stored for board. A board without rows reads
// as the default ledger.
func (s *Store) LoadLedger(board string) (*highscore.Ledger, error) {
	return loadLedger(s.db, board)
}

func loadLedger(q querier, board string) (*highscore.Ledger, error) {
	rows, err := q.Query(
		`SELECT name, score, time_secs, clicks
		 FROM high_scores
		 WHERE board = ?
		 ORDER BY rank ASC`,
		board,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query ledger: %w", err)
	}
	defer rows.Close()

	var entries []highscore.Entry
	for rows.Next() {
		var e highscore.Entry
		if err := rows.Scan(&e.Name, &e.Score, &e.Time, &e.Clicks); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	if len(entries) == 0 {
		return highscore.DefaultLedger(), nil
	}
	return highscore.NewLedger(entries), nil
}

// SaveLedger replaces the stored ledger for board.
func (s *Store) SaveLedger(board string, l *highscore.Ledger) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := saveLedger(tx, board, l); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit ledger: %w", err)
	}
	return nil
}

func saveLedger(q querier, board string, l *highscore.Ledger) error {
	if _, err := q.Exec("DELETE FROM high_scores WHERE board = ?", board); err != nil {
		return fmt.Errorf("storage: cannot clear ledger: %w", err)
	}
	for rank, e := range l.Entries() {
		_, err := q.Exec(
			`INSERT INTO high_scores (board, rank, name, score, time_secs, clicks)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			board, rank, e.Name, e.Score, e.Time, e.Clicks,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save ledger entry: %w", err)
		}
	}
	return nil
}

// ClearLedger deletes the stored ledger, so the board reads as the default
// ledger again.
func (s *Store) ClearLedger(board string) error {
	_, err := s.db.Exec("DELETE FROM high_scores WHERE board = ?", board)
	if err != nil {
		return fmt.Errorf("storage: cannot clear ledger: %w", err)
	}
	return nil
}

// BoardLedger is a persisted ledger usable as the engine's high-score
// collaborator.
type BoardLedger struct {
	store *Store
	board string
}

// Board returns the persisted ledger for board.
func (s *Store) Board(board string) *BoardLedger {
	return &BoardLedger{store: s, board: board}
}

// Submit loads the ledger, inserts e and saves it in one transaction.
// It returns the rank reached, or -1.
func (b *BoardLedger) Submit(e highscore.Entry) (int, error) {
	tx, err := b.store.db.Begin()
	if err != nil {
		return -1, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	l, err := loadLedger(tx, b.board)
	if err != nil {
		return -1, err
	}
	rank := l.Insert(e)
	if rank < 0 {
		return -1, nil
	}
	if err := saveLedger(tx, b.board, l); err != nil {
		return -1, err
	}
	if err := tx.Commit(); err != nil {
		return -1, fmt.Errorf("storage: cannot commit ledger: %w", err)
	}
	return rank, nil
}

// Entries returns the current ledger entries.
func (b *BoardLedger) Entries() ([]highscore.Entry, error) {
	l, err := b.store.LoadLedger(b.board)
	if err != nil {
		return nil, err
	}
	return l.Entries(), nil
}

var _ highscore.Submitter = (*BoardLedger)(nil)
