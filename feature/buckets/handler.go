package buckets

import (
	"s3dropbox/core/errs"
	"s3dropbox/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for buckets.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the bucket routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/regions", h.HandleListRegions)

	group := app.Group("/buckets")
	group.Get("/", h.HandleListBuckets)
	group.Head("/:bucket", h.HandleHeadBucket)
	group.Get("/:bucket", h.HandleGetBucket)
	group.Put("/:bucket", h.HandleCreateBucket)
	group.Delete("/:bucket", h.HandleDeleteBucket)
}

// HandleListRegions lists the regions a bucket can be created in.
// @Summary List Regions
// @Tags buckets
// @Produce json
// @Success 200 {object} map[string]interface{} "Regions"
// @Router /regions [get]
func (h *Handler) HandleListRegions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"regions": h.service.ListRegions()})
}

// HandleListBuckets lists the buckets.
// @Summary List Buckets
// @Tags buckets
// @Produce json
// @Success 200 {object} map[string]interface{} "Buckets"
// @Failure 502 {object} map[string]string "Backend Error"
// @Router /buckets [get]
func (h *Handler) HandleListBuckets(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	buckets, err := h.service.ListBuckets(c.Context())
	if err != nil {
		l.Error("Failed to list buckets", zap.Error(err))
		return c.Status(errs.Status(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"buckets": buckets})
}

// HandleHeadBucket answers 200 when the bucket exists and 404 otherwise.
// @Summary Check Bucket
// @Tags buckets
// @Param bucket path string true "Bucket name"
// @Success 200
// @Failure 404
// @Router /buckets/{bucket} [head]
func (h *Handler) HandleHeadBucket(c *fiber.Ctx) error {
	exists, err := h.service.BucketExists(c.Context(), c.Params("bucket"))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Bucket check failed", zap.Error(err))
		return c.SendStatus(errs.Status(err))
	}
	if !exists {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.SendStatus(fiber.StatusOK)
}

// HandleGetBucket reports whether the bucket exists.
// @Summary Bucket Existence
// @Tags buckets
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 200 {object} map[string]interface{} "Existence"
// @Failure 502 {object} map[string]string "Backend Error"
// @Router /buckets/{bucket} [get]
func (h *Handler) HandleGetBucket(c *fiber.Ctx) error {
	name := c.Params("bucket")
	exists, err := h.service.BucketExists(c.Context(), name)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Bucket check failed", zap.Error(err))
		return c.Status(errs.Status(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"bucket": name, "exists": exists})
}

// HandleCreateBucket creates a bucket.
// @Summary Create Bucket
// @Tags buckets
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param region query string false "Region (backend default when empty)"
// @Success 201 {object} map[string]interface{} "Created"
// @Failure 409 {object} map[string]string "Bucket Exists"
// @Failure 502 {object} map[string]string "Backend Error"
// @Router /buckets/{bucket} [put]
func (h *Handler) HandleCreateBucket(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("bucket")
	region := c.Query("region")

	if err := h.service.CreateBucket(c.Context(), name, region); err != nil {
		l.Error("Failed to create bucket", zap.String("bucket", name), zap.Error(err))
		return c.Status(errs.Status(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"bucket": name, "region": region})
}

// HandleDeleteBucket deletes an empty bucket.
// @Summary Delete Bucket
// @Tags buckets
// @Param bucket path string true "Bucket name"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Bucket Not Empty"
// @Router /buckets/{bucket} [delete]
func (h *Handler) HandleDeleteBucket(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("bucket")

	if err := h.service.DeleteBucket(c.Context(), name); err != nil {
		l.Error("Failed to delete bucket", zap.String("bucket", name), zap.Error(err))
		return c.Status(errs.Status(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
