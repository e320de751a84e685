package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is one finished game.
type Result struct {
	ID         int64
	GameUUID   string
	Difficulty string
	Player     string
	Won        bool
	Score      int
	Time       float64 // seconds
	Clicks     int
	GridSeed   uint64
	CreatedAt  time.Time
}

// SaveResult records a finished game and returns it with its ID and UUID
// filled in. A UUID already set on r is kept.
func (s *Store) SaveResult(r Result) (Result, error) {
	if r.GameUUID == "" {
		r.GameUUID = uuid.NewString()
	}

	res, err := s.db.Exec(
		`INSERT INTO results
		 (game_uuid, difficulty, player, won, score, time_secs, clicks, grid_seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameUUID,
		r.Difficulty,
		r.Player,
		r.Won,
		r.Score,
		r.Time,
		r.Clicks,
		int64(r.GridSeed), // SQLite integers are signed
	)
	if err != nil {
		return r, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return r, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	r.ID = id
	return r, nil
}

// RecentResults returns the latest finished games, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_uuid, difficulty, player, won, score, time_secs, clicks, grid_seed, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var seed int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.GameUUID,
			&r.Difficulty,
			&r.Player,
			&r.Won,
			&r.Score,
			&r.Time,
			&r.Clicks,
			&seed,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.GridSeed = uint64(seed)
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats aggregates the finished games of one difficulty.
type Stats struct {
	Difficulty string
	Games      int
	Wins       int
	BestScore  int
	BestTime   float64 // fastest win, 0 without wins
	AvgTime    float64 // over wins
	LastPlayed time.Time
}

// WinRate returns wins/games, or 0 before the first game.
func (st Stats) WinRate() float64 {
	if st.Games == 0 {
		return 0
	}
	return float64(st.Wins) / float64(st.Games)
}

// Stats retrieves aggregated statistics for a difficulty.
func (s *Store) Stats(difficulty string) (*Stats, error) {
	st := &Stats{Difficulty: difficulty}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(won), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(MIN(CASE WHEN won THEN time_secs END), 0),
		        COALESCE(AVG(CASE WHEN won THEN time_secs END), 0)
		 FROM results WHERE difficulty = ?`,
		difficulty,
	).Scan(&st.Games, &st.Wins, &st.BestScore, &st.BestTime, &st.AvgTime)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE difficulty = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		difficulty,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		st.LastPlayed = parseTime(lastPlayed)
	}

	return st, nil
}
