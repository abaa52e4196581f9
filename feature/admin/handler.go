package admin

import (
	"stocktake/core/journal"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for the admin activity journal.
type Handler struct {
	journal *journal.Journal
}

// NewHandler creates a new HTTP handler.
func NewHandler(j *journal.Journal) *Handler {
	return &Handler{journal: j}
}

// RegisterRoutes registers the admin routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/log", h.HandleLog)
}

// HandleLog returns the activity journal, newest first.
// @Summary Get Activity Log
// @Description Returns the bounded server activity journal, newest entries first.
// @Tags admin
// @Produce json
// @Success 200 {array} journal.Entry "Journal entries"
// @Router /api/log [get]
func (h *Handler) HandleLog(c *fiber.Ctx) error {
	return c.JSON(h.journal.Snapshot())
}
