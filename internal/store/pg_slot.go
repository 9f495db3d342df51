package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// OpenPostgres creates a pool for dsn, pings it and applies the kv_slots
// schema.
func OpenPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := ConnectPostgres(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := MigratePostgres(ctx, pool, "up"); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// ConnectPostgres creates and pings a pool without touching the schema.
func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("cannot ping database: %w", err)
	}
	return pool, nil
}

// MigratePostgres runs a goose command through a database/sql view of pool.
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool, command string) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return Migrate(ctx, db, DialectPostgres, command)
}

type PostgresSlot struct {
	db      *pgxpool.Pool
	name    string
	timeout time.Duration
}

func NewPostgresSlot(db *pgxpool.Pool, name string, timeout time.Duration) *PostgresSlot {
	return &PostgresSlot{db: db, name: name, timeout: timeout}
}

func (s *PostgresSlot) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *PostgresSlot) Get(ctx context.Context) (string, bool, error) {
	const query = `SELECT value FROM kv_slots WHERE name = $1 LIMIT 1`
	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	var value string
	if err := s.db.QueryRow(timeoutCtx, query, s.name).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("select slot %q: %w", s.name, err)
	}
	return value, true, nil
}

func (s *PostgresSlot) Set(ctx context.Context, value string) error {
	const query = `
	INSERT INTO kv_slots (name, value) VALUES ($1, $2)
	ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	if _, err := s.db.Exec(timeoutCtx, query, s.name, value); err != nil {
		return fmt.Errorf("upsert slot %q: %w", s.name, err)
	}
	return nil
}

func (s *PostgresSlot) Delete(ctx context.Context) error {
	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	if _, err := s.db.Exec(timeoutCtx, `DELETE FROM kv_slots WHERE name = $1`, s.name); err != nil {
		return fmt.Errorf("delete slot %q: %w", s.name, err)
	}
	return nil
}
