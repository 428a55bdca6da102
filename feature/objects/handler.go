package objects

import (
	"time"

	"s3dropbox/core/errs"
	"s3dropbox/core/logger"
	"s3dropbox/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DefaultTTL is the presigned URL lifetime used when the request names none.
const DefaultTTL = time.Hour

// Handler handles HTTP requests for objects.
type Handler struct {
	service   *Service
	maxExpiry time.Duration
}

// NewHandler creates a new HTTP handler. Presign requests beyond maxExpiry are rejected.
func NewHandler(service *Service, maxExpiry time.Duration) *Handler {
	return &Handler{service: service, maxExpiry: maxExpiry}
}

// RegisterRoutes registers the object routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/buckets/:bucket/objects")
	group.Get("/", h.HandleListObjects)
	group.Get("/exists", h.HandleObjectExists)
	group.Get("/url", h.HandlePresignedURL)
	group.Delete("/", h.HandleDeleteObject)
}

// HandleListObjects lists all objects in a bucket, sorted by key.
// @Summary List Objects
// @Tags objects
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 200 {object} map[string]interface{} "Objects"
// @Failure 404 {object} map[string]string "Bucket Not Found"
// @Router /buckets/{bucket}/objects [get]
func (h *Handler) HandleListObjects(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	bucket := c.Params("bucket")

	objects, err := h.service.ListObjects(c.Context(), bucket)
	if err != nil {
		l.Error("Failed to list objects", zap.String("bucket", bucket), zap.Error(err))
		return c.Status(errs.Status(err)).JSON(fiber.Map{"error": err.Error()})
	}
	if objects == nil {
		objects = []StorageObject{}
	}
	return c.JSON(fiber.Map{"bucket": bucket, "count": len(objects), "objects": objects})
}

// HandleObjectExists reports whether an object with the exact key exists.
// @Summary Object Existence
// @Tags objects
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key query string true "Object key"
// @Success 200 {object} map[string]interface{} "Existence"
// @Failure 400 {object} map[string]string "Missing Key"
// @Router /buckets/{bucket}/objects/exists [get]
func (h *Handler) HandleObjectExists(c *fiber.Ctx) error {
	bucket, key := c.Params("bucket"), c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "key is required"})
	}

	exists, err := h.service.ObjectExists(c.Context(), bucket, key)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Object check failed", zap.Error(err))
		return c.Status(errs.Status(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"bucket": bucket, "key": key, "exists": exists})
}

// HandleDeleteObject deletes an object.
// @Summary Delete Object
// @Tags objects
// @Param bucket path string true "Bucket name"
// @Param key query string true "Object key"
// @Success 204
// @Failure 400 {object} map[string]string "Missing Key"
// @Router /buckets/{bucket}/objects [delete]
func (h *Handler) HandleDeleteObject(c *fiber.Ctx) error {
	bucket, key := c.Params("bucket"), c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "key is required"})
	}

	if err := h.service.DeleteObject(c.Context(), bucket, key); err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to delete object", zap.Error(err))
		return c.Status(errs.Status(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandlePresignedURL issues a presigned GET URL.
// @Summary Presign Object
// @Description Expiry is taken from expires (RFC3339) or ttl (seconds), defaulting to one hour.
// @Tags objects
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key query string true "Object key"
// @Param expires query string false "Absolute expiry (RFC3339)"
// @Param ttl query int false "Lifetime in seconds"
// @Success 200 {object} map[string]interface{} "URL"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /buckets/{bucket}/objects/url [get]
func (h *Handler) HandlePresignedURL(c *fiber.Ctx) error {
	bucket, key := c.Params("bucket"), c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "key is required"})
	}

	now := h.service.now()
	expires := now.Add(DefaultTTL)
	if raw := c.Query("expires"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "expires must be RFC3339"})
		}
		expires = t
	} else if ttl := utils.ToInt(c.Query("ttl"), 0); ttl > 0 {
		expires = now.Add(time.Duration(ttl) * time.Second)
	}

	if !expires.After(now) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "expiry must be in the future"})
	}
	if h.maxExpiry > 0 && expires.Sub(now) > h.maxExpiry {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "expiry exceeds " + h.maxExpiry.String()})
	}

	u, err := h.service.PresignedURL(c.Context(), bucket, key, expires)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to presign", zap.Error(err))
		return c.Status(errs.Status(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"url": u, "expires": expires.UTC().Format(time.RFC3339)})
}
