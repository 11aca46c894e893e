// Package postgres は PostgreSQL の app_state テーブルに値を保存するバイト列ストアです。
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/employee-roster/internal/core/persist"
	pgdb "github.com/ogurasousui/employee-roster/internal/platform/db/postgres"
)

const undefinedTableCode = "42P01"

// Table は状態を保存するテーブル名です。
const Table = "app_state"

// ErrSchemaMissing は app_state テーブルが存在しない場合に返却されます。cmd/migrate の実行が必要です。
var ErrSchemaMissing = errors.New("postgres store: app_state table missing, run migrations")

// Store は pgx を利用した persist.BlobStore の実装です。
type Store struct {
	pool pgdb.Queryer
}

var _ persist.BlobStore = (*Store)(nil)

// NewStore は Store を生成します。
func NewStore(pool pgdb.Queryer) *Store {
	return &Store{pool: pool}
}

// Get は name が key の行の payload を返します。
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx, `SELECT payload FROM app_state WHERE name = $1`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, persist.ErrNotFound
		}
		return nil, translatePgError(err)
	}
	return payload, nil
}

// Put は key の行を upsert します。
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.pool.Exec(ctx, `
        INSERT INTO app_state (name, payload, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (name) DO UPDATE
           SET payload = EXCLUDED.payload,
               updated_at = EXCLUDED.updated_at
    `, key, data)
	if err != nil {
		return translatePgError(err)
	}
	return nil
}

// Delete は key の行を削除します。行が存在しなくてもエラーにはなりません。
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM app_state WHERE name = $1`, key); err != nil {
		return translatePgError(err)
	}
	return nil
}

func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == undefinedTableCode {
		return ErrSchemaMissing
	}
	return fmt.Errorf("postgres store: %w", err)
}
