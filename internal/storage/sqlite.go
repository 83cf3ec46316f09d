// Package storage provides SQLite-based persistence for quick-save slots
// and run scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrSlotNotFound is returned by LoadSlot for an unknown slot name.
var ErrSlotNotFound = errors.New("storage: save slot not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SaveEntry is one quick-save slot. Blob is an encoded simulation snapshot.
type SaveEntry struct {
	Slot      string
	LevelID   string
	Frame     uint64
	Blob      []byte
	CreatedAt time.Time
}

// ScoreEntry represents the result of one headless or interactive run.
type ScoreEntry struct {
	RunID     string
	LevelID   string
	Score     int
	Frames    uint64
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS saves (
			slot TEXT PRIMARY KEY,
			level_id TEXT NOT NULL,
			frame INTEGER NOT NULL,
			blob BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			level_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_level_id ON scores(level_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(level_id, score DESC);
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

// SaveSlot writes a snapshot blob to a named slot, replacing what was
// there before.
func (s *Store) SaveSlot(slot, levelID string, frame uint64, blob []byte) error {
	if slot == "" {
		return errors.New("storage: empty slot name")
	}
	_, err := s.db.Exec(
		`INSERT INTO saves (slot, level_id, frame, blob, created_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
			level_id = excluded.level_id,
			frame = excluded.frame,
			blob = excluded.blob,
			created_at = excluded.created_at`,
		slot, levelID, int64(frame), blob, //#nosec G115 -- frame counts fit
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save slot %s: %w", slot, err)
	}
	return nil
}

// LoadSlot reads a slot. It returns ErrSlotNotFound for unknown slots.
func (s *Store) LoadSlot(slot string) (*SaveEntry, error) {
	row := s.db.QueryRow(
		`SELECT slot, level_id, frame, blob, created_at
		 FROM saves
		 WHERE slot = ?`,
		slot,
	)

	var e SaveEntry
	var frame int64
	var createdAt any
	if err := row.Scan(&e.Slot, &e.LevelID, &frame, &e.Blob, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrSlotNotFound, slot)
		}
		return nil, fmt.Errorf("storage: cannot load slot %s: %w", slot, err)
	}
	e.Frame = uint64(frame) //#nosec G115 -- stored from a uint64
	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// ListSlots returns every slot without its blob, ordered by name.
func (s *Store) ListSlots() ([]SaveEntry, error) {
	rows, err := s.db.Query(
		`SELECT slot, level_id, frame, created_at
		 FROM saves
		 ORDER BY slot`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var entries []SaveEntry
	for rows.Next() {
		var e SaveEntry
		var frame int64
		var createdAt any
		if err := rows.Scan(&e.Slot, &e.LevelID, &frame, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Frame = uint64(frame) //#nosec G115 -- stored from a uint64
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteSlot removes a slot. Deleting an unknown slot is not an error.
func (s *Store) DeleteSlot(slot string) error {
	if _, err := s.db.Exec("DELETE FROM saves WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete slot %s: %w", slot, err)
	}
	return nil
}

// SaveScore records the result of a run and returns its generated run ID.
func (s *Store) SaveScore(levelID string, score int, frames uint64) (string, error) {
	runID := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO scores (run_id, level_id, score, frames) VALUES (?, ?, ?, ?)",
		runID, levelID, score, int64(frames), //#nosec G115 -- frame counts fit
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save score: %w", err)
	}
	return runID, nil
}

// TopScores retrieves the top N scores for a level, or for every level
// when levelID is empty. Results are ordered by score descending.
func (s *Store) TopScores(levelID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT run_id, level_id, score, frames, created_at
		 FROM scores
		 WHERE ? = '' OR level_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		levelID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var frames int64
		var createdAt any
		if err := rows.Scan(&e.RunID, &e.LevelID, &e.Score, &frames, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Frames = uint64(frames) //#nosec G115 -- stored from a uint64
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for a level, or 0 if none exists.
func (s *Store) HighScore(levelID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE level_id = ?",
		levelID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
