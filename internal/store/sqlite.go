package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/youriscent/storefront/pkg/errors"
)

type sqliteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteStore opens (creating if needed) a single-file store at path.
func NewSQLiteStore(path string, logger *zap.Logger) (*sqliteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &sqliteStore{db: db, logger: logger}, nil
}

func (s *sqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv WHERE key = ?`

	var value []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "key", ID: key}
	}
	if err != nil {
		s.logger.Error("Failed to read key", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	return value, nil
}

func (s *sqliteStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`

	_, err := s.db.ExecContext(ctx, query, key, value)
	if err != nil {
		s.logger.Error("Failed to write key", zap.String("key", key), zap.Error(err))
		return err
	}

	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv WHERE key = ?`

	_, err := s.db.ExecContext(ctx, query, key)
	if err != nil {
		s.logger.Error("Failed to delete key", zap.String("key", key), zap.Error(err))
		return err
	}

	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
