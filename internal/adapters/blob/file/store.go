// Package file はディレクトリ配下のファイルに値を保存するバイト列ストアです。
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ogurasousui/employee-roster/internal/core/persist"
)

const filePerm = 0o600

// Store は 1 キー 1 ファイルで値を保持します。書き込みは一時ファイルからの rename で置き換えます。
type Store struct {
	dir string
}

var _ persist.BlobStore = (*Store)(nil)

// NewStore は dir を保存先とする Store を生成します。ディレクトリは必要に応じて作成されます。
func NewStore(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("file store: dir is required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("file store: create dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir は保存先ディレクトリを返します。
func (s *Store) Dir() string {
	return s.dir
}

// Get は key のファイル内容を返します。
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, persist.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("file store: read %s: %w", key, err)
	}
	return data, nil
}

// Put は key のファイルを data で原子的に置き換えます。
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data, filePerm); err != nil {
		return fmt.Errorf("file store: write %s: %w", key, err)
	}
	return nil
}

// Delete は key のファイルを削除します。
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("file store: delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("file store: invalid key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return syncDir(dir)
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
