package service

import (
	"context"
	"io"
)

// Object is a remote blob streamed back to the caller. The Body must be
// closed by the consumer.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// ObjectStore defines the pass-through operations against an S3-compatible
// store. Each call maps 1:1 to a remote request; buckets and objects are
// externally owned and no local invariants are enforced beyond what the
// remote store guarantees.
type ObjectStore interface {
	// CreateBucket creates a named bucket.
	CreateBucket(ctx context.Context, bucket string) error

	// DeleteBucket removes a named bucket.
	DeleteBucket(ctx context.Context, bucket string) error

	// ListBuckets returns the names of all buckets.
	ListBuckets(ctx context.Context) ([]string, error)

	// PutObject writes an object under bucket/key with the declared content type.
	PutObject(ctx context.Context, bucket, key, contentType string, body io.Reader) error

	// GetObject streams an object back with its stored content type.
	GetObject(ctx context.Context, bucket, key string) (*Object, error)

	// DeleteObject removes a single object.
	DeleteObject(ctx context.Context, bucket, key string) error
}
