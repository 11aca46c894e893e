package app

import (
	"context"
	"fmt"

	"github.com/ogurasousui/employee-roster/internal/adapters/blob/file"
	"github.com/ogurasousui/employee-roster/internal/adapters/blob/memory"
	blobpg "github.com/ogurasousui/employee-roster/internal/adapters/blob/postgres"
	blobs3 "github.com/ogurasousui/employee-roster/internal/adapters/blob/s3"
	"github.com/ogurasousui/employee-roster/internal/adapters/blob/sqlite"
	"github.com/ogurasousui/employee-roster/internal/core/persist"
	"github.com/ogurasousui/employee-roster/internal/platform/config"
	pgdb "github.com/ogurasousui/employee-roster/internal/platform/db/postgres"
)

func noRelease() error { return nil }

// OpenStore は storage.driver に対応する persist.BlobStore と、その解放関数を返します。
func OpenStore(ctx context.Context, storage config.StorageConfig, db config.DatabaseConfig) (persist.BlobStore, func() error, error) {
	switch storage.Driver {
	case config.DriverMemory:
		return memory.NewStore(), noRelease, nil
	case config.DriverFile, "":
		s, err := file.NewStore(storage.File.Dir)
		if err != nil {
			return nil, nil, err
		}
		return s, noRelease, nil
	case config.DriverSQLite:
		s, err := sqlite.NewStore(ctx, storage.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.DriverPostgres:
		pool, err := pgdb.NewPool(ctx, db)
		if err != nil {
			return nil, nil, err
		}
		return blobpg.NewStore(pool), func() error { pool.Close(); return nil }, nil
	case config.DriverS3:
		s, err := blobs3.New(ctx, blobs3.Config{
			Bucket:    storage.S3.Bucket,
			Region:    storage.S3.Region,
			Endpoint:  storage.S3.Endpoint,
			Prefix:    storage.S3.Prefix,
			PathStyle: storage.S3.PathStyle,
		})
		if err != nil {
			return nil, nil, err
		}
		return s, noRelease, nil
	default:
		return nil, nil, fmt.Errorf("app: unsupported storage driver %q", storage.Driver)
	}
}

// Describe はログ出力用に store の種別と保存先を返します。
func Describe(store persist.BlobStore) string {
	switch s := store.(type) {
	case *memory.Store:
		return config.DriverMemory
	case *file.Store:
		return config.DriverFile + ":" + s.Dir()
	case *sqlite.Store:
		return config.DriverSQLite + ":" + s.Path()
	case *blobpg.Store:
		return config.DriverPostgres + ":" + blobpg.Table
	case *blobs3.Store:
		return config.DriverS3 + ":" + s.Bucket()
	default:
		return fmt.Sprintf("%T", store)
	}
}
