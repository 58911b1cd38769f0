package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/config"
	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/constant"
)

type ObjectInfo struct {
	Size        int64
	ContentType string
}

// Storage is the blob backend behind the gallery. Implementations must
// translate a missing object into an apperr not-found error. Readers
// returned by Get and GetRange are owned by the caller.
type Storage interface {
	Put(ctx context.Context, r io.Reader, objectName string, size int64, contentType string) error
	Get(ctx context.Context, objectName string) (io.ReadCloser, ObjectInfo, error)
	GetRange(ctx context.Context, objectName string, start, end int64) (io.ReadCloser, error)
	Stat(ctx context.Context, objectName string) (ObjectInfo, error)
	Delete(ctx context.Context, objectName string) error
	URL(objectName string) string
}

// New builds the backend selected in the config, once, at process start.
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Backend {
	case constant.StorageBackendMinIO:
		return NewMinIO(ctx, cfg.MinIO, cfg.Storage.Bucket)
	case constant.StorageBackendLocal:
		return NewLocal(cfg.Storage.LocalDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
