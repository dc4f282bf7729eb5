// Package store provides the device-local profile store: a sqlite-backed
// key-value file holding a single JSON-encoded record under a fixed key.
// It stands in for browser local storage when no user session exists.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"visionboard/src/core/domain"
)

// LocalStore is a process-wide singleton over one sqlite file. It implements
// ports.ProfileStore; the user id argument is ignored because the device
// holds exactly one profile record.
type LocalStore struct {
	db  *sql.DB
	log *slog.Logger
}

// NewLocalStore opens (creating if needed) the sqlite file at path and
// ensures the key-value table exists.
func NewLocalStore(path string, log *slog.Logger) (*LocalStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create local store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize local store: %w", err)
	}

	log.Info("local store opened", "path", path)
	return &LocalStore{db: db, log: log}, nil
}

// Close releases the underlying sqlite handle.
func (s *LocalStore) Close() error {
	return s.db.Close()
}

// Health checks the sqlite handle is usable.
func (s *LocalStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Load reads the device profile record. A missing record maps to a not
// found domain error; fields absent from the stored JSON come back as empty
// strings via the zero value.
func (s *LocalStore) Load(ctx context.Context, _ string) (*domain.Profile, error) {
	raw, err := s.get(ctx, domain.LocalProfileKey)
	if err != nil {
		return nil, err
	}
	var p domain.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("corrupt local profile record: %w", err)
	}
	return &p, nil
}

// Save writes the device profile record, replacing any previous value.
func (s *LocalStore) Save(ctx context.Context, _ string, profile domain.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode local profile record: %w", err)
	}
	return s.set(ctx, domain.LocalProfileKey, string(raw))
}

func (s *LocalStore) get(ctx context.Context, key string) (string, error) {
	const q = `SELECT value FROM kv WHERE key = ?`
	var value string
	if err := s.db.QueryRowContext(ctx, q, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.NewNotFoundError(key)
		}
		return "", err
	}
	return value, nil
}

func (s *LocalStore) set(ctx context.Context, key, value string) error {
	const q = `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`
	_, err := s.db.ExecContext(ctx, q, key, value)
	return err
}
