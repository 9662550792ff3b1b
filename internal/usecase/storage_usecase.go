package usecase

import (
	"context"
	"io"

	"depot/internal/domain/service"
)

// StorageUsecase defines the object-store operations exposed over HTTP.
// Calls pass straight through to the remote store; the only augmentation is
// Upload's bucket auto-creation.
type StorageUsecase interface {
	// CreateBucket creates a named bucket in the remote store.
	CreateBucket(ctx context.Context, bucket string) error

	// DeleteBucket removes a named bucket.
	DeleteBucket(ctx context.Context, bucket string) error

	// ListBuckets returns the names of all buckets.
	ListBuckets(ctx context.Context) ([]string, error)

	// DeleteAllBuckets deletes every bucket sequentially. A failure mid-way
	// leaves the store in a mixed state; there is no rollback.
	DeleteAllBuckets(ctx context.Context) error

	// Upload writes an object, creating the target bucket first if it does
	// not exist. The existence check and creation are not atomic.
	Upload(ctx context.Context, bucket, key, contentType string, body io.Reader) error

	// Download streams an object back with its stored content type.
	Download(ctx context.Context, bucket, key string) (*service.Object, error)

	// DeleteObject removes a single object.
	DeleteObject(ctx context.Context, bucket, key string) error
}
