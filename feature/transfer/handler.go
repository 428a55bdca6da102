package transfer

import (
	"fmt"
	"os"
	"path/filepath"

	"s3dropbox/core/errs"
	"s3dropbox/core/logger"
	"s3dropbox/core/mediatype"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for uploads and downloads.
type Handler struct {
	service *Service
	tempDir string
}

// NewHandler creates a new HTTP handler. Request bodies are staged in tempDir
// (os.TempDir when empty).
func NewHandler(service *Service, tempDir string) *Handler {
	return &Handler{service: service, tempDir: tempDir}
}

// RegisterRoutes registers the transfer routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/buckets/:bucket")
	group.Post("/upload", h.HandleUpload)
	group.Get("/download", h.HandleDownload)
}

// HandleUpload stores the uploaded file under key.
// @Summary Upload Object
// @Description Uploads the multipart form field "file". The key defaults to the file name.
// @Tags transfer
// @Accept multipart/form-data
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key query string false "Object key"
// @Param file formData file true "File to upload"
// @Success 201 {object} map[string]interface{} "Uploaded"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Backend Error"
// @Router /buckets/{bucket}/upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	bucket := c.Params("bucket")

	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "form field 'file' is required"})
	}
	key := c.Query("key", fh.Filename)

	// The staged copy keeps the extension so the content type resolves the same way.
	tmp, err := os.CreateTemp(h.tempDir, "s3dropbox-upload-*"+filepath.Ext(fh.Filename))
	if err != nil {
		l.Error("Failed to stage upload", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	staged := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(staged)

	if err := c.SaveFile(fh, staged); err != nil {
		l.Error("Failed to stage upload", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.Upload(c.Context(), bucket, key, staged, nil); err != nil {
		return c.Status(errs.Status(err)).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Object uploaded", zap.String("bucket", bucket), zap.String("key", key), zap.Int64("bytes", fh.Size))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"bucket": bucket, "key": key, "size": fh.Size})
}

// HandleDownload streams an object back to the client.
// @Summary Download Object
// @Tags transfer
// @Produce octet-stream
// @Param bucket path string true "Bucket name"
// @Param key query string true "Object key"
// @Success 200 {file} file "Object content"
// @Failure 400 {object} map[string]string "Missing Key"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /buckets/{bucket}/download [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	bucket, key := c.Params("bucket"), c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "key is required"})
	}

	tmp, err := os.CreateTemp(h.tempDir, "s3dropbox-download-*")
	if err != nil {
		l.Error("Failed to stage download", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	staged := tmp.Name()
	_ = tmp.Close()

	if err := h.service.Download(c.Context(), bucket, key, staged, nil); err != nil {
		_ = os.Remove(staged)
		return c.Status(errs.Status(err)).JSON(fiber.Map{"error": err.Error()})
	}

	f, err := os.Open(staged)
	// Unlinking the open file lets the stream finish while nothing is left behind.
	_ = os.Remove(staged)
	if err != nil {
		l.Error("Failed to open staged download", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	contentType, ok := mediatype.Resolve(key)
	if !ok {
		contentType = fiber.MIMEOctetStream
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filepath.Base(key)))
	return c.SendStream(f, int(info.Size()))
}
