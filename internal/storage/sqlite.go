// Package storage provides SQLite-based persistence for high scores and settings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultTop is the number of places in a score table.
const DefaultTop = 5

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	WorldID   string
	Name      string
	Lines     int
	Level     int
	Score     int
	CreatedAt time.Time
}

// WorldStats contains aggregated statistics for one world preset.
type WorldStats struct {
	WorldID    string
	Entries    int
	HighScore  int
	AvgScore   float64
	TotalLines int64
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			world_id TEXT NOT NULL,
			name TEXT NOT NULL,
			lines INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_world_id ON scores(world_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(world_id, score DESC, level DESC, lines DESC);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
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

// SaveScore records a score for the given world unconditionally.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (world_id, name, lines, level, score) VALUES (?, ?, ?, ?, ?)",
		e.WorldID, e.Name, e.Lines, e.Level, e.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given world.
// Ties on score are broken by level, then lines, then insertion order.
func (s *Store) TopScores(worldID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultTop
	}

	rows, err := s.db.Query(
		`SELECT id, world_id, name, lines, level, score, created_at
		 FROM scores
		 WHERE world_id = ?
		 ORDER BY score DESC, level DESC, lines DESC, id ASC
		 LIMIT ?`,
		worldID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.WorldID, &e.Name, &e.Lines, &e.Level, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Qualifies reports whether score earns a place among the top entries of
// the world: either the table is not full yet or the score beats one of
// its entries. Non-positive scores never qualify.
func (s *Store) Qualifies(worldID string, top, score int) (bool, error) {
	if score <= 0 {
		return false, nil
	}
	entries, err := s.TopScores(worldID, top)
	if err != nil {
		return false, err
	}
	if len(entries) < top {
		return true, nil
	}
	for _, e := range entries {
		if e.Score < score {
			return true, nil
		}
	}
	return false, nil
}

// ErrRejected is returned by AddScore for entries that are never recorded.
var ErrRejected = errors.New("storage: score rejected")

// AddScore records e when it qualifies for the top entries of its world.
// Entries with a non-positive score or a blank name are rejected.
// It reports whether the entry was recorded.
func (s *Store) AddScore(top int, e ScoreEntry) (bool, error) {
	if e.Score <= 0 || strings.TrimSpace(e.Name) == "" {
		return false, ErrRejected
	}
	ok, err := s.Qualifies(e.WorldID, top, e.Score)
	if err != nil || !ok {
		return false, err
	}
	if _, err := s.SaveScore(e); err != nil {
		return false, err
	}
	return true, nil
}

// HighScore returns the highest score for the given world.
// Returns 0 if no scores exist.
func (s *Store) HighScore(worldID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE world_id = ?",
		worldID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given world.
func (s *Store) ClearScores(worldID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE world_id = ?", worldID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// WorldStats retrieves aggregated statistics for a world.
func (s *Store) WorldStats(worldID string) (*WorldStats, error) {
	stats := &WorldStats{WorldID: worldID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(lines), 0), MAX(created_at)
		 FROM scores WHERE world_id = ?`,
		worldID,
	).Scan(&stats.Entries, &stats.HighScore, &stats.AvgScore, &stats.TotalLines, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get world stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
