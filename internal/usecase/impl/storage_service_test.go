package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "depot/internal/domain/errors"
	"depot/internal/domain/service"
	mockSvc "depot/internal/mocks/service"
	"depot/internal/usecase"
)

func createTestStorageService(t *testing.T) (usecase.StorageUsecase, *mockSvc.MockObjectStore) {
	store := mockSvc.NewMockObjectStore(t)
	svc := NewStorageService(StorageServiceParams{
		Store:  store,
		Logger: newDiscardLogger(),
	})

	return svc, store
}

func TestStorageService_Upload_CreatesMissingBucket(t *testing.T) {
	svc, store := createTestStorageService(t)
	ctx := context.Background()
	body := strings.NewReader("payload")

	store.On("ListBuckets", ctx).Return([]string{"other"}, nil)
	store.On("CreateBucket", ctx, "photos").Return(nil)
	store.On("PutObject", ctx, "photos", "cat.png", "image/png", body).Return(nil)

	err := svc.Upload(ctx, "photos", "cat.png", "image/png", body)

	require.NoError(t, err)
}

func TestStorageService_Upload_SkipsCreateWhenBucketExists(t *testing.T) {
	svc, store := createTestStorageService(t)
	ctx := context.Background()
	body := strings.NewReader("payload")

	store.On("ListBuckets", ctx).Return([]string{"photos"}, nil)
	store.On("PutObject", ctx, "photos", "cat.png", "image/png", body).Return(nil)

	err := svc.Upload(ctx, "photos", "cat.png", "image/png", body)

	require.NoError(t, err)
	store.AssertNotCalled(t, "CreateBucket", ctx, "photos")
}

func TestStorageService_Upload_PutFailurePropagates(t *testing.T) {
	svc, store := createTestStorageService(t)
	ctx := context.Background()
	body := strings.NewReader("payload")

	store.On("ListBuckets", ctx).Return([]string{"photos"}, nil)
	store.On("PutObject", ctx, "photos", "cat.png", "", body).Return(io.ErrUnexpectedEOF)

	err := svc.Upload(ctx, "photos", "cat.png", "", body)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "OBJECT_STORE_FAILED", appErr.ErrorCode())
}

func TestStorageService_DeleteAllBuckets(t *testing.T) {
	svc, store := createTestStorageService(t)
	ctx := context.Background()

	store.On("ListBuckets", ctx).Return([]string{"a", "b", "c"}, nil)
	store.On("DeleteBucket", ctx, "a").Return(nil)
	store.On("DeleteBucket", ctx, "b").Return(nil)
	store.On("DeleteBucket", ctx, "c").Return(nil)

	require.NoError(t, svc.DeleteAllBuckets(ctx))
}

func TestStorageService_DeleteAllBuckets_StopsOnFirstFailure(t *testing.T) {
	svc, store := createTestStorageService(t)
	ctx := context.Background()

	store.On("ListBuckets", ctx).Return([]string{"a", "b", "c"}, nil)
	store.On("DeleteBucket", ctx, "a").Return(nil)
	store.On("DeleteBucket", ctx, "b").Return(io.ErrUnexpectedEOF)

	err := svc.DeleteAllBuckets(ctx)

	// Partial failure leaves remaining buckets in place; no rollback
	assert.Error(t, err)
	store.AssertNotCalled(t, "DeleteBucket", ctx, "c")
}

func TestStorageService_Download_PassesThrough(t *testing.T) {
	svc, store := createTestStorageService(t)
	ctx := context.Background()

	object := &service.Object{
		Body:        io.NopCloser(strings.NewReader("bytes")),
		ContentType: "application/octet-stream",
		Size:        5,
	}
	store.On("GetObject", ctx, "photos", "cat.png").Return(object, nil)

	got, err := svc.Download(ctx, "photos", "cat.png")

	require.NoError(t, err)
	assert.Equal(t, object, got)
}
