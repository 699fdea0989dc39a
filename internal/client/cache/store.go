// Package cache implements the local persistent store: a synchronous
// key-value table over SQLite holding the last-known snapshot of each
// collection plus the session-gate flag. It is a fallback and warm seed,
// never the authority once remote data has loaded.
package cache

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/ourstory-app/ourstory/internal/client/cache/migrations"
	"github.com/ourstory-app/ourstory/internal/dbx"
)

// Store is the minimal key-value contract the rest of the client uses.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores the value for key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// SQLiteStore is the Store implementation backed by a local SQLite file.
type SQLiteStore struct {
	db dbx.DBTX
}

var _ Store = (*SQLiteStore)(nil)

// Open opens (creating if needed) the cache database at dsn and applies
// pending migrations.
func Open(ctx context.Context, dsn string) (*SQLiteStore, *sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("cache open error: %w", err)
	}
	// single local writer; also keeps :memory: databases on one connection
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, nil, fmt.Errorf("cache dialect error: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, nil, fmt.Errorf("cache migration error: %w", err)
	}

	return NewSQLiteStore(db), db, nil
}

// NewSQLiteStore wraps an already-open database handle.
func NewSQLiteStore(db dbx.DBTX) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache get error: %w", err)
	}
	return v, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
		key, value)
	if err != nil {
		return fmt.Errorf("cache set error: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE k = ?`, key)
	if err != nil {
		return fmt.Errorf("cache remove error: %w", err)
	}
	return nil
}
