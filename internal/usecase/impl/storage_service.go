package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"

	deliverycontext "depot/internal/delivery/context"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/domain/service"
	"depot/internal/usecase"

	"go.uber.org/fx"
)

// storageService implements the StorageUsecase interface as a pass-through
// over the object store.
type storageService struct {
	store  service.ObjectStore
	logger *slog.Logger
}

// StorageServiceParams holds dependencies for storageService, injected by Fx.
type StorageServiceParams struct {
	fx.In

	Store  service.ObjectStore
	Logger *slog.Logger
}

// NewStorageService is the constructor for storageService.
func NewStorageService(params StorageServiceParams) usecase.StorageUsecase {
	return &storageService{
		store:  params.Store,
		logger: params.Logger,
	}
}

// log returns the request-scoped logger placed on the context by the
// delivery layer, falling back to the service logger.
func (srv *storageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

func (srv *storageService) CreateBucket(ctx context.Context, bucket string) error {
	if err := srv.store.CreateBucket(ctx, bucket); err != nil {
		return domainerrors.NewObjectStoreError("create bucket", err)
	}

	srv.log(ctx).Info("Bucket created", slog.String("bucket", bucket))

	return nil
}

func (srv *storageService) DeleteBucket(ctx context.Context, bucket string) error {
	if err := srv.store.DeleteBucket(ctx, bucket); err != nil {
		return domainerrors.NewObjectStoreError("delete bucket", err)
	}

	srv.log(ctx).Info("Bucket deleted", slog.String("bucket", bucket))

	return nil
}

func (srv *storageService) ListBuckets(ctx context.Context) ([]string, error) {
	buckets, err := srv.store.ListBuckets(ctx)
	if err != nil {
		return nil, domainerrors.NewObjectStoreError("list buckets", err)
	}

	return buckets, nil
}

// DeleteAllBuckets enumerates and deletes each bucket sequentially. A
// failure mid-sequence stops immediately and leaves the remaining buckets in
// place; there is no rollback.
func (srv *storageService) DeleteAllBuckets(ctx context.Context) error {
	buckets, err := srv.store.ListBuckets(ctx)
	if err != nil {
		return domainerrors.NewObjectStoreError("list buckets", err)
	}

	for _, bucket := range buckets {
		if err := srv.store.DeleteBucket(ctx, bucket); err != nil {
			srv.log(ctx).Error("Failed to delete bucket", slog.String("bucket", bucket), slog.Any("error", err))

			return domainerrors.NewObjectStoreError("delete bucket", err)
		}
	}

	srv.log(ctx).Info("All buckets deleted", slog.Int("count", len(buckets)))

	return nil
}

// Upload writes an object, creating the target bucket first when it does not
// exist yet. The existence check and the creation are two separate remote
// calls; a concurrent upload to the same missing bucket can race between
// them. That race is accepted and left to the remote store to arbitrate.
func (srv *storageService) Upload(ctx context.Context, bucket, key, contentType string, body io.Reader) error {
	buckets, err := srv.store.ListBuckets(ctx)
	if err != nil {
		return domainerrors.NewObjectStoreError("list buckets", err)
	}

	if !slices.Contains(buckets, bucket) {
		if err := srv.store.CreateBucket(ctx, bucket); err != nil {
			return domainerrors.NewObjectStoreError("create bucket", err)
		}
		srv.log(ctx).Info("Bucket auto-created for upload", slog.String("bucket", bucket))
	}

	if err := srv.store.PutObject(ctx, bucket, key, contentType, body); err != nil {
		return domainerrors.NewObjectStoreError("put object", err)
	}

	srv.log(ctx).Info("Object uploaded", slog.String("bucket", bucket), slog.String("key", key))

	return nil
}

func (srv *storageService) Download(ctx context.Context, bucket, key string) (*service.Object, error) {
	object, err := srv.store.GetObject(ctx, bucket, key)
	if err != nil {
		return nil, domainerrors.NewObjectStoreError("get object", err)
	}

	return object, nil
}

func (srv *storageService) DeleteObject(ctx context.Context, bucket, key string) error {
	if err := srv.store.DeleteObject(ctx, bucket, key); err != nil {
		return domainerrors.NewObjectStoreError("delete object", err)
	}

	srv.log(ctx).Info("Object deleted", slog.String("bucket", bucket), slog.String("key", key))

	return nil
}
