package cleanup

import (
	"time"

	"s3dropbox/core/errs"
	"s3dropbox/core/logger"
	"s3dropbox/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for multipart cleanup.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the cleanup routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/buckets/:bucket/cleanup")
	group.Get("/", h.HandlePlan)
	group.Post("/", h.HandleApply)
}

// HandlePlan lists abandoned multipart uploads without aborting them.
// @Summary Plan Cleanup
// @Tags cleanup
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param before query string false "Cutoff (RFC3339), defaults to now"
// @Success 200 {object} map[string]interface{} "Plan"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /buckets/{bucket}/cleanup [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	cutoff, err := h.cutoff(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	plan, err := h.service.Plan(c.Context(), c.Params("bucket"), cutoff)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Cleanup plan failed", zap.Error(err))
		return c.Status(errs.Status(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"plan": plan, "count": len(plan.Uploads), "bytes": plan.Bytes()})
}

// HandleApply aborts abandoned multipart uploads.
// @Summary Apply Cleanup
// @Tags cleanup
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param before query string false "Cutoff (RFC3339), defaults to now"
// @Param dry_run query boolean false "Plan only"
// @Success 200 {object} map[string]interface{} "Result"
// @Failure 502 {object} map[string]string "Backend Error"
// @Router /buckets/{bucket}/cleanup [post]
func (h *Handler) HandleApply(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	bucket := c.Params("bucket")
	dryRun := utils.ToBool(c.Query("dry_run"))

	cutoff, err := h.cutoff(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	plan, err := h.service.Plan(c.Context(), bucket, cutoff)
	if err != nil {
		l.Error("Cleanup plan failed", zap.Error(err))
		return c.Status(errs.Status(err)).JSON(fiber.Map{"error": err.Error()})
	}

	aborted, err := h.service.Apply(c.Context(), plan, Options{Confirmed: true, DryRun: dryRun})
	if err != nil {
		l.Error("Cleanup failed", zap.String("bucket", bucket), zap.Int("aborted", aborted), zap.Error(err))
		return c.Status(errs.Status(err)).JSON(fiber.Map{"error": err.Error(), "aborted": aborted})
	}
	return c.JSON(fiber.Map{"plan": plan, "aborted": aborted, "dry_run": dryRun})
}

func (h *Handler) cutoff(c *fiber.Ctx) (time.Time, error) {
	raw := c.Query("before")
	if raw == "" {
		return h.service.now(), nil
	}
	return time.Parse(time.RFC3339, raw)
}
