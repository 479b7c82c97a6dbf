package controllers

import (
	"net/http"
	"path"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/rabbit/pkg/ctx"
	"github.com/shashiranjanraj/rabbit/pkg/logger"
	"github.com/shashiranjanraj/rabbit/pkg/storage"
)

// maxUploadBytes bounds the in-memory multipart parse.
const maxUploadBytes = 10 << 20

// UploadController proxies a single multipart file to the configured storage
// disk and returns the public URL.
type UploadController struct {
	disk   storage.Disk
	folder string
}

func NewUploadController(disk storage.Disk, folder string) *UploadController {
	return &UploadController{disk: disk, folder: folder}
}

// Upload handles POST /api/upload. The multipart field name defaults to
// "file" and can be overridden with ?field=<name>.
func (c *UploadController) Upload(cc *ctx.Context) {
	if err := cc.R.ParseMultipartForm(maxUploadBytes); err != nil {
		cc.Error(http.StatusBadRequest, "No file uploaded")
		return
	}

	field := cc.DefaultQuery("field", "file")
	file, header, err := cc.R.FormFile(field)
	if err != nil {
		cc.Error(http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	// Random prefix keeps concurrent uploads of same-named files apart.
	name := uuid.NewString() + path.Ext(header.Filename)
	url, err := c.disk.Put(cc.Context(), path.Join(c.folder, name), file)
	if err != nil {
		logger.WithCtx(cc.Context()).Error("upload failed", "file", header.Filename, "error", err)
		cc.Error(http.StatusBadGateway, "Image upload failed")
		return
	}

	cc.JSON(http.StatusOK, map[string]string{
		"message":  "Image uploaded successfully",
		"imageUrl": url,
	})
}
