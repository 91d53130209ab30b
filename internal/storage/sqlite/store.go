package sqlite

import (
	"context"
	"database/sql"

	"timekeep/internal/errors"
	"timekeep/internal/storage/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// KVStore implements storage.Store on a single-table SQLite database.
type KVStore struct {
	db *sql.DB
}

// New creates a new SQLite-backed store at the given path. ":memory:"
// yields an ephemeral store for tests.
func New(dbPath string) (*KVStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &KVStore{db: db}, nil
}

// Get returns the value stored under key and whether it was present.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM kv WHERE key = ?`

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewStorageError("get "+key, err)
	}
	return value, true, nil
}

// Put writes the value under key, replacing any previous value.
func (s *KVStore) Put(ctx context.Context, key string, value string) error {
	query := `
	INSERT INTO kv (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return errors.NewStorageError("put "+key, err)
	}
	return nil
}

// Delete removes the value under key. Absent keys are not an error.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv WHERE key = ?`

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return errors.NewStorageError("delete "+key, err)
	}
	return nil
}

// Close closes the database connection
func (s *KVStore) Close() error {
	return s.db.Close()
}
