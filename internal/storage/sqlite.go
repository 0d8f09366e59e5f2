// Package storage provides SQLite-based persistence for campaign progress,
// level clear records and custom level designs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/blockout/internal/core"
)

// ErrNotFound is returned when a custom level does not exist.
var ErrNotFound = errors.New("storage: not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ClearRecord summarizes the clears of one level.
type ClearRecord struct {
	LevelID     string
	BestTicks   int
	Clears      int
	LastCleared time.Time
}

// CustomLevelInfo describes a saved editor design.
type CustomLevelInfo struct {
	Name      string
	Size      int
	UpdatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS progress (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			max_unlocked INTEGER NOT NULL DEFAULT 1,
			coins INTEGER NOT NULL DEFAULT 0,
			last_played INTEGER NOT NULL DEFAULT 1,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS clears (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_clears_level_id ON clears(level_id);

		CREATE TABLE IF NOT EXISTS custom_levels (
			name TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
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

// LoadProgress returns the saved campaign progress, or fresh progress when
// nothing has been saved yet.
func (s *Store) LoadProgress() (core.Progress, error) {
	p := core.NewProgress()
	err := s.db.QueryRow(
		"SELECT max_unlocked, coins, last_played FROM progress WHERE id = 1",
	).Scan(&p.MaxUnlocked, &p.Coins, &p.LastPlayed)
	if errors.Is(err, sql.ErrNoRows) {
		return core.NewProgress(), nil
	}
	if err != nil {
		return core.Progress{}, fmt.Errorf("storage: cannot load progress: %w", err)
	}
	return p, nil
}

// SaveProgress replaces the saved campaign progress.
func (s *Store) SaveProgress(p core.Progress) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (id, max_unlocked, coins, last_played, updated_at)
		 VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
			max_unlocked = excluded.max_unlocked,
			coins = excluded.coins,
			last_played = excluded.last_played,
			updated_at = excluded.updated_at`,
		p.MaxUnlocked, p.Coins, p.LastPlayed,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}
	return nil
}

// ResetProgress forgets campaign progress and every clear record.
// Custom levels are kept.
func (s *Store) ResetProgress() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot reset progress: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec("DELETE FROM progress"); err != nil {
		return fmt.Errorf("storage: cannot reset progress: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM clears"); err != nil {
		return fmt.Errorf("storage: cannot reset clears: %w", err)
	}
	return tx.Commit()
}

// RecordClear stores one clear of a level and the ticks it took.
func (s *Store) RecordClear(levelID string, ticks int) error {
	_, err := s.db.Exec(
		"INSERT INTO clears (level_id, ticks) VALUES (?, ?)",
		levelID, ticks,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record clear: %w", err)
	}
	return nil
}

// BestClears returns one record per cleared level, ordered by level ID.
func (s *Store) BestClears() ([]ClearRecord, error) {
	rows, err := s.db.Query(
		`SELECT level_id, MIN(ticks), COUNT(*), MAX(created_at)
		 FROM clears
		 GROUP BY level_id
		 ORDER BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query clears: %w", err)
	}
	defer rows.Close()

	var records []ClearRecord
	for rows.Next() {
		var r ClearRecord
		var last any
		if err := rows.Scan(&r.LevelID, &r.BestTicks, &r.Clears, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.LastCleared = parseTime(last)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// SaveCustomLevel stores a design under name, replacing any earlier one.
func (s *Store) SaveCustomLevel(name string, data []byte) error {
	if name == "" {
		return errors.New("storage: custom level needs a name")
	}
	_, err := s.db.Exec(
		`INSERT INTO custom_levels (name, data, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`,
		name, data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save custom level: %w", err)
	}
	return nil
}

// CustomLevel returns the design saved under name.
func (s *Store) CustomLevel(name string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM custom_levels WHERE name = ?", name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: custom level %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load custom level: %w", err)
	}
	return data, nil
}

// CustomLevels lists the saved designs by name.
func (s *Store) CustomLevels() ([]CustomLevelInfo, error) {
	rows, err := s.db.Query(
		"SELECT name, LENGTH(data), updated_at FROM custom_levels ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query custom levels: %w", err)
	}
	defer rows.Close()

	var infos []CustomLevelInfo
	for rows.Next() {
		var info CustomLevelInfo
		var updated any
		if err := rows.Scan(&info.Name, &info.Size, &updated); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.UpdatedAt = parseTime(updated)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// DeleteCustomLevel removes a saved design.
func (s *Store) DeleteCustomLevel(name string) error {
	res, err := s.db.Exec("DELETE FROM custom_levels WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete custom level: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: custom level %q", ErrNotFound, name)
	}
	return nil
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
