// Package memory はプロセス内に閉じたバイト列ストアです。テストと一時的な実行向けです。
package memory

import (
	"context"
	"sync"

	"github.com/ogurasousui/employee-roster/internal/core/persist"
)

// Store は map を用いた persist.BlobStore の実装です。
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ persist.BlobStore = (*Store)(nil)

// NewStore は空の Store を生成します。
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get は key の値の複製を返します。
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, persist.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put は key の値を置き換えます。
func (s *Store) Put(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = append([]byte(nil), data...)
	return nil
}

// Delete は key を削除します。
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
