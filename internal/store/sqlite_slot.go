package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite opens (creating if needed) the database at path and applies the
// kv_slots schema.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := ConnectSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, db, DialectSQLite, "up"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// ConnectSQLite opens the database at path without touching its schema.
func ConnectSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer at a time avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		`PRAGMA journal_mode = WAL;`,
		`PRAGMA busy_timeout = 5000;`,
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// SQLiteSlot is a row in the kv_slots table of a SQLite database.
type SQLiteSlot struct {
	db   *sql.DB
	name string
}

func NewSQLiteSlot(db *sql.DB, name string) *SQLiteSlot {
	return &SQLiteSlot{db: db, name: name}
}

func (s *SQLiteSlot) Get(ctx context.Context) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_slots WHERE name = ?`, s.name).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("select slot %q: %w", s.name, err)
	}
	return value, true, nil
}

func (s *SQLiteSlot) Set(ctx context.Context, value string) error {
	const query = `
	INSERT INTO kv_slots (name, value) VALUES (?, ?)
	ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.ExecContext(ctx, query, s.name, value); err != nil {
		return fmt.Errorf("upsert slot %q: %w", s.name, err)
	}
	return nil
}

func (s *SQLiteSlot) Delete(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_slots WHERE name = ?`, s.name); err != nil {
		return fmt.Errorf("delete slot %q: %w", s.name, err)
	}
	return nil
}
