// Package s3 は S3 互換ストレージ (AWS S3 / MinIO) に値を保存するバイト列ストアです。
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/ogurasousui/employee-roster/internal/core/persist"
)

const (
	defaultRegion = "us-east-1"
	contentType   = "application/json"
)

// Config は S3 ストアの接続設定です。認証情報は AWS の既定チェーンから解決されます。
type Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	Prefix    string
	PathStyle bool
}

// Store はキーごとに 1 オブジェクトを保持する persist.BlobStore の実装です。
type Store struct {
	client *s3.Client
	bucket string
	prefix string
}

var _ persist.BlobStore = (*Store)(nil)

// Bucket は保存先のバケット名とプレフィックスを返します。
func (s *Store) Bucket() string {
	return s.bucket + "/" + s.prefix
}

// New は Config から Store を生成します。
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 store: bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("s3 store: load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewWithClient(client, cfg.Bucket, cfg.Prefix), nil
}

// NewWithClient は構築済みのクライアントから Store を生成します。
func NewWithClient(client *s3.Client, bucket, prefix string) *Store {
	return &Store{client: client, bucket: bucket, prefix: prefix}
}

// Get は key のオブジェクト本文を返します。
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: s.objectKey(key)})
	if err != nil {
		if isNotFound(err) {
			return nil, persist.ErrNotFound
		}
		return nil, fmt.Errorf("s3 store: get %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 store: read %s: %w", key, err)
	}
	return data, nil
}

// Put は key のオブジェクトを data で置き換えます。
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        &s.bucket,
		Key:           s.objectKey(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("s3 store: put %s: %w", key, err)
	}
	return nil
}

// Delete は key のオブジェクトを削除します。S3 は存在しないキーの削除も成功として扱います。
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: &s.bucket, Key: s.objectKey(key)}); err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("s3 store: delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) objectKey(key string) *string {
	return aws.String(s.prefix + key + ".json")
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var status interface{ HTTPStatusCode() int }
	return errors.As(err, &status) && status.HTTPStatusCode() == 404
}
