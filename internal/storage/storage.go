package storage

import (
	"context"
	"errors"
	"io"

	"github.com/solarbi/savvy-planner/internal/config"
)

var ErrObjectNotFound = errors.New("object not found")

// ObjectStore keeps the generated workbooks.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Type() string
}

// New returns the minio store when an S3 endpoint is configured and a
// filesystem store rooted at the output folder otherwise.
func New(ctx context.Context, cfg *config.Config) (ObjectStore, error) {
	s3 := cfg.Service.S3
	if s3.Endpoint == "" {
		return NewFileStore(cfg.Service.OutputFolder)
	}

	return NewMinioStore(ctx,
		WithEndpoint(s3.Endpoint),
		WithBucket(s3.Bucket),
		WithAccessKey(s3.AccessKey),
		WithSecretKey(s3.SecretKey),
		WithSSL(s3.UseSSL),
	)
}
