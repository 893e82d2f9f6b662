package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/sadopc/worklog/internal/timesheet"
)

const currentVersion = 1

// SQLite mirrors the entry set into a SQLite database. SaveAll rewrites the
// whole table in one transaction; the volumes involved are tens to low
// thousands of rows, so mirror-style writes stay cheap.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at dbPath and runs migrations.
func NewSQLite(dbPath string) (*SQLite, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory backend for testing.
func NewMemory() (*SQLite, error) {
	return NewSQLite(":memory:")
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *SQLite) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS work_entries (
		id            INTEGER PRIMARY KEY,
		date          TEXT NOT NULL,
		start_time    TEXT NOT NULL,
		end_time      TEXT NOT NULL,
		break_minutes INTEGER NOT NULL DEFAULT 0,
		hours         REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_work_entries_date ON work_entries(date);
	`
	_, err := s.db.Exec(ddl)
	return err
}

// LoadAll returns every persisted entry, date-descending.
func (s *SQLite) LoadAll() ([]timesheet.Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, date, start_time, end_time, break_minutes, hours
		 FROM work_entries ORDER BY date DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	defer rows.Close()

	var entries []timesheet.Entry
	for rows.Next() {
		var e timesheet.Entry
		var date, start, end string
		if err := rows.Scan(&e.ID, &date, &start, &end, &e.BreakMinutes, &e.Hours); err != nil {
			return nil, err
		}
		if e.Date, err = timesheet.ParseDate(date); err != nil {
			return nil, fmt.Errorf("entry %d: %w", e.ID, err)
		}
		if e.Start, err = timesheet.ParseClock(start); err != nil {
			return nil, fmt.Errorf("entry %d: %w", e.ID, err)
		}
		if e.End, err = timesheet.ParseClock(end); err != nil {
			return nil, fmt.Errorf("entry %d: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SaveAll replaces the persisted set with the given entries.
func (s *SQLite) SaveAll(entries []timesheet.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM work_entries`); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO work_entries (id, date, start_time, end_time, break_minutes, hours)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.ID, e.Date.String(), e.Start.String(), e.End.String(), e.BreakMinutes, e.Hours); err != nil {
			return fmt.Errorf("insert entry %d: %w", e.ID, err)
		}
	}
	return tx.Commit()
}

// DefaultDBPath returns ~/.config/worklog/worklog.db
func DefaultDBPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "worklog", "worklog.db"), nil
}
