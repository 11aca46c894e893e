// Package sqlite は SQLite の単一テーブルに値を保存するバイト列ストアです。
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ogurasousui/employee-roster/internal/core/persist"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

const schema = `CREATE TABLE IF NOT EXISTS app_state (
	name TEXT PRIMARY KEY,
	payload BLOB NOT NULL,
	updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// Store は app_state テーブルを用いた persist.BlobStore の実装です。
type Store struct {
	db   *sql.DB
	path string
}

var _ persist.BlobStore = (*Store)(nil)

// NewStore は path のデータベースを開き、テーブルがなければ作成します。
func NewStore(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		path = "roster.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("sqlite store: create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: open: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite store: create table: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Get は name が key の行の payload を返します。
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM app_state WHERE name = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, persist.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite store: select %s: %w", key, err)
	}
	return payload, nil
}

// Put は key の行を upsert します。
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO app_state(name, payload, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, data,
	); err != nil {
		return fmt.Errorf("sqlite store: upsert %s: %w", key, err)
	}
	return nil
}

// Delete は key の行を削除します。
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM app_state WHERE name = ?`, key); err != nil {
		return fmt.Errorf("sqlite store: delete %s: %w", key, err)
	}
	return nil
}

// Close はデータベースを閉じます。
func (s *Store) Close() error {
	return s.db.Close()
}

// Path は使用中のデータベースファイルのパスを返します。
func (s *Store) Path() string { return s.path }
