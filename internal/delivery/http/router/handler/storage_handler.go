package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"path"

	"depot/internal/delivery/http/response"
	"depot/internal/usecase"
	"depot/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StorageHandler holds dependencies for object-store handlers.
type StorageHandler struct {
	storageUC usecase.StorageUsecase
	logger    *slog.Logger
}

// NewStorageHandler is the constructor for StorageHandler, injected by Fx.
func NewStorageHandler(storageUC usecase.StorageUsecase, logger *slog.Logger) *StorageHandler {
	return &StorageHandler{
		storageUC: storageUC,
		logger:    logger,
	}
}

// CreateBucket creates the bucket named in the path.
func (h *StorageHandler) CreateBucket(c echo.Context) error {
	bucket := c.Param("bucket")
	if err := h.storageUC.CreateBucket(c.Request().Context(), bucket); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"bucket": bucket}, "Bucket created")
}

// DeleteBucket deletes the bucket named in the path.
func (h *StorageHandler) DeleteBucket(c echo.Context) error {
	bucket := c.Param("bucket")
	if err := h.storageUC.DeleteBucket(c.Request().Context(), bucket); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"bucket": bucket}, "Bucket deleted")
}

// ListBuckets returns the names of all buckets.
func (h *StorageHandler) ListBuckets(c echo.Context) error {
	buckets, err := h.storageUC.ListBuckets(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, buckets, "")
}

// DeleteAllBuckets deletes every bucket. Deletion is sequential; a failure
// part-way leaves the remaining buckets in place.
func (h *StorageHandler) DeleteAllBuckets(c echo.Context) error {
	if err := h.storageUC.DeleteAllBuckets(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "All buckets deleted")
}

// Upload stores the multipart file under its original filename in the
// bucket named in the path, creating the bucket first when absent.
func (h *StorageHandler) Upload(c echo.Context) error {
	bucket := c.Param("bucket")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Multipart field 'file' is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	contentType := fileHeader.Header.Get(echo.HeaderContentType)

	err = h.storageUC.Upload(c.Request().Context(), bucket, fileHeader.Filename, contentType, src)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("File uploaded",
		slog.String("bucket", bucket),
		slog.String("file", fileHeader.Filename),
		slog.String("size", util.FormatBytes(fileHeader.Size)),
	)

	return response.Success(c, http.StatusOK, map[string]string{"file": fileHeader.Filename}, "File uploaded")
}

// Download streams the object back. The attachment filename is the final
// path segment of the key.
func (h *StorageHandler) Download(c echo.Context) error {
	bucket := c.QueryParam("bucket")
	key := c.QueryParam("key")
	if bucket == "" || key == "" {
		return response.BindingError(c, "INVALID_INPUT", "Query parameters 'bucket' and 'key' are required")
	}

	object, err := h.storageUC.Download(c.Request().Context(), bucket, key)
	if err != nil {
		return errors.WithStack(err)
	}
	defer object.Body.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%s", path.Base(key)))

	return c.Stream(http.StatusOK, object.ContentType, object.Body)
}

// DeleteObject removes a single object.
func (h *StorageHandler) DeleteObject(c echo.Context) error {
	bucket := c.QueryParam("bucket")
	key := c.QueryParam("key")
	if bucket == "" || key == "" {
		return response.BindingError(c, "INVALID_INPUT", "Query parameters 'bucket' and 'key' are required")
	}

	if err := h.storageUC.DeleteObject(c.Request().Context(), bucket, key); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "success"}, "Object deleted")
}
