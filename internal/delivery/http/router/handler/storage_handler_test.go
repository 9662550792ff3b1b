package handler

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"depot/internal/domain/service"
	mocksvc "depot/internal/mocks/service"
	"depot/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStorageHandler(t *testing.T, store *mocksvc.MockObjectStore) *StorageHandler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	storageUC := impl.NewStorageService(impl.StorageServiceParams{
		Store:  store,
		Logger: logger,
	})

	return NewStorageHandler(storageUC, logger)
}

func TestStorageHandler_Download_StreamsAttachment(t *testing.T) {
	store := mocksvc.NewMockObjectStore(t)
	store.On("GetObject", mock.Anything, "media", "photos/2024/cat.png").Return(&service.Object{
		Body:        io.NopCloser(bytes.NewReader([]byte("png-bytes"))),
		ContentType: "image/png",
		Size:        9,
	}, nil)

	h := newStorageHandler(t, store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/storage/download?bucket=media&key=photos/2024/cat.png", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Download(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	// Attachment filename is the last path segment of the key.
	assert.Equal(t, "attachment; filename=cat.png", rec.Header().Get(echo.HeaderContentDisposition))
}

func TestStorageHandler_Download_MissingParams(t *testing.T) {
	store := mocksvc.NewMockObjectStore(t)
	h := newStorageHandler(t, store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/storage/download?bucket=media", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Download(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStorageHandler_Upload_MultipartFile(t *testing.T) {
	store := mocksvc.NewMockObjectStore(t)
	store.On("ListBuckets", mock.Anything).Return([]string{"media"}, nil)
	store.On("PutObject", mock.Anything, "media", "notes.txt", mock.Anything, mock.Anything).Return(nil)

	h := newStorageHandler(t, store)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("note contents"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/storage/upload/media", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("bucket")
	c.SetParamValues("media")

	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "notes.txt")
}

func TestStorageHandler_Upload_MissingFile(t *testing.T) {
	store := mocksvc.NewMockObjectStore(t)
	h := newStorageHandler(t, store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/storage/upload/media", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("bucket")
	c.SetParamValues("media")

	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
