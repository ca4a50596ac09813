package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/encore/internal/shared"
)

// SQLiteStore implements [KVStore] on the kv_store table.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an open database. The kv_store migration must already be applied.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// OpenSQLiteStore opens the database at path, applies migrations and returns a store.
func OpenSQLiteStore(path string, maxOpenConns, maxIdleConns int) (*SQLiteStore, error) {
	db, err := shared.NewDatabase(path)
	if err != nil {
		return nil, err
	}

	if path != ":memory:" && maxOpenConns > 0 {
		shared.ConfigureDatabase(db, maxOpenConns, maxIdleConns)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return NewSQLiteStore(db), nil
}

// Load retrieves the value stored under key
func (s *SQLiteStore) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", shared.ErrKeyNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query key: %w", err)
	}
	return value, nil
}

// Save inserts or replaces the value stored under key
func (s *SQLiteStore) Save(ctx context.Context, key string, value []byte) error {
	now := time.Now()
	query := `
		INSERT INTO kv_store (key, value, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, key, value, now, now); err != nil {
		return fmt.Errorf("failed to upsert key: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
