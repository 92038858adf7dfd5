// Package storage provides SQLite-based persistence for match history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/engine"
)

// DefaultPath is where the CLI keeps match history.
const DefaultPath = "~/.ledpong/matches.db"

const timeLayout = "2006-01-02 15:04:05"

// ErrNotFound is returned when a match does not exist.
var ErrNotFound = errors.New("storage: match not found")

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// Ensure Store can record matches for the engine runner.
var _ engine.MatchRecorder = (*Store)(nil)

// MatchRecord is one finished match as stored.
type MatchRecord struct {
	ID          int64
	MatchID     string
	Winner      core.Player
	Score1      int
	Score2      int
	Ticks       uint64
	Goals       int
	WallBounces int
	Blocks      int
	Duration    time.Duration
	CreatedAt   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			winner INTEGER NOT NULL,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			goals INTEGER NOT NULL DEFAULT 0,
			wall_bounces INTEGER NOT NULL DEFAULT 0,
			blocks INTEGER NOT NULL DEFAULT 0,
			duration_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(winner);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished match. It implements engine.MatchRecorder.
func (s *Store) SaveMatch(ctx context.Context, r engine.MatchResult) error {
	finished := r.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO matches
		 (match_id, winner, score1, score2, ticks, goals, wall_bounces, blocks, duration_secs, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID.String(), r.Winner.Number(), r.Score1, r.Score2, int64(r.Ticks),
		r.Goals, r.WallBounces, r.Blocks, r.Duration.Seconds(),
		finished.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save match: %w", err)
	}
	return nil
}

const matchColumns = `id, match_id, winner, score1, score2, ticks, goals, wall_bounces, blocks, duration_secs, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (MatchRecord, error) {
	var (
		m         MatchRecord
		winner    int
		ticks     int64
		secs      float64
		createdAt any
	)
	if err := row.Scan(&m.ID, &m.MatchID, &winner, &m.Score1, &m.Score2, &ticks,
		&m.Goals, &m.WallBounces, &m.Blocks, &secs, &createdAt); err != nil {
		return m, err
	}
	m.Winner = core.Player1
	if winner == core.Player2.Number() {
		m.Winner = core.Player2
	}
	m.Ticks = uint64(ticks)
	m.Duration = time.Duration(secs * float64(time.Second))
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// MatchByID retrieves a match by its match ID.
func (s *Store) MatchByID(ctx context.Context, matchID string) (*MatchRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`, matchID)
	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get match: %w", err)
	}
	return &m, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(ctx context.Context, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+matchColumns+`
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var matches []MatchRecord
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return matches, nil
}

// WinCounts returns the number of matches won by each player.
func (s *Store) WinCounts(ctx context.Context) ([2]int, error) {
	var wins [2]int
	rows, err := s.db.QueryContext(ctx, `SELECT winner, COUNT(*) FROM matches GROUP BY winner`)
	if err != nil {
		return wins, fmt.Errorf("storage: cannot count wins: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var winner, n int
		if err := rows.Scan(&winner, &n); err != nil {
			return wins, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if winner >= 1 && winner <= 2 {
			wins[winner-1] = n
		}
	}
	return wins, rows.Err()
}

// Stats contains aggregated statistics over all matches.
type Stats struct {
	Matches     int
	Goals       int64
	WallBounces int64
	Blocks      int64
	AvgTicks    float64
	LastPlayed  time.Time
}

// Stats retrieves aggregated statistics over all recorded matches.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(goals), 0), COALESCE(SUM(wall_bounces), 0),
		        COALESCE(SUM(blocks), 0), COALESCE(AVG(ticks), 0), MAX(created_at)
		 FROM matches`,
	).Scan(&stats.Matches, &stats.Goals, &stats.WallBounces, &stats.Blocks, &stats.AvgTicks, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearMatches deletes all recorded matches.
func (s *Store) ClearMatches(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
