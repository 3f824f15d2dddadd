package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore returns a KVStore over the `history` table.
func NewSQLiteStore(db *sql.DB) KVStore {
	return &sqliteStore{db: db}
}

func (s *sqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := "SELECT value FROM history WHERE key = ?"
	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not read %q: %w", key, err)
	}
	return []byte(value), nil
}

func (s *sqliteStore) Put(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO history (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, key, string(value), time.Now().UTC()); err != nil {
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	query := "DELETE FROM history WHERE key = ?"
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("could not delete %q: %w", key, err)
	}
	return nil
}
