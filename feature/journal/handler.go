package journal

import (
	"s3dropbox/core/logger"
	"s3dropbox/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the transfer journal.
type Handler struct {
	repo *Repository
}

// NewHandler creates a new HTTP handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// RegisterRoutes registers the journal routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/transfers", h.HandleListTransfers)
}

// HandleListTransfers lists recent transfers.
// @Summary List Transfers
// @Description Lists journaled uploads and downloads, newest first.
// @Tags transfers
// @Produce json
// @Param bucket query string false "Bucket filter"
// @Param direction query string false "upload or download"
// @Param status query string false "completed or failed"
// @Param limit query int false "Maximum records (default 50)"
// @Success 200 {object} map[string]interface{} "Transfers"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /transfers [get]
func (h *Handler) HandleListTransfers(c *fiber.Ctx) error {
	l := logger.WithRayID(h.repo.logger, c)

	records, err := h.repo.List(c.Context(), Filter{
		Bucket:    c.Query("bucket"),
		Direction: Direction(c.Query("direction")),
		Status:    Status(c.Query("status")),
		Limit:     utils.ToInt(c.Query("limit"), DefaultLimit),
	})
	if err != nil {
		l.Error("Failed to list transfers", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"transfers": records, "count": len(records)})
}
