package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/rabbit/app/controllers"
	"github.com/shashiranjanraj/rabbit/config"
	"github.com/shashiranjanraj/rabbit/pkg/ctx"
	"github.com/shashiranjanraj/rabbit/pkg/storage"
)

func newUploadController(t *testing.T) (*controllers.UploadController, string) {
	t.Helper()
	root := t.TempDir()

	disks, err := storage.NewManager(config.StorageConfig{
		Disk:         "local",
		UploadFolder: "rabbit_products",
		LocalRoot:    root,
		LocalURL:     "http://localhost:9000/uploads",
	})
	require.NoError(t, err)

	return controllers.NewUploadController(disks.Default(), "rabbit_products"), root
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestUploadStoresFile(t *testing.T) {
	ctrl, root := newUploadController(t)

	body, contentType := multipartBody(t, "file", "shirt.png", "fake-png-bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	ctx.Wrap(ctrl.Upload)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Image uploaded successfully", resp["message"])
	assert.True(t, strings.HasPrefix(resp["imageUrl"], "http://localhost:9000/uploads/rabbit_products/"))
	assert.True(t, strings.HasSuffix(resp["imageUrl"], ".png"))

	// The file landed on disk with the uploaded content.
	entries, err := os.ReadDir(filepath.Join(root, "rabbit_products"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(root, "rabbit_products", entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(data))
}

func TestUploadCustomFieldName(t *testing.T) {
	ctrl, _ := newUploadController(t)

	body, contentType := multipartBody(t, "image", "photo.jpg", "jpeg-bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/upload?field=image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	ctx.Wrap(ctrl.Upload)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestUploadMissingFile(t *testing.T) {
	ctrl, _ := newUploadController(t)

	// Multipart body whose field name does not match.
	body, contentType := multipartBody(t, "wrong", "shirt.png", "bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	ctx.Wrap(ctrl.Upload)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "No file uploaded", resp["message"])
}

func TestUploadNoBody(t *testing.T) {
	ctrl, _ := newUploadController(t)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	rec := httptest.NewRecorder()
	ctx.Wrap(ctrl.Upload)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
