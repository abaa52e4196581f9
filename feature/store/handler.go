package store

import (
	"stocktake/core/logger"
	"stocktake/core/retail"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for store listings.
type Handler struct {
	source retail.Source
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(src retail.Source, logger *zap.Logger) *Handler {
	return &Handler{source: src, logger: logger}
}

// RegisterRoutes registers the store routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/stores", h.HandleList)
}

// HandleList returns all active stores.
// @Summary List Stores
// @Description Returns the active stores available for counting sessions.
// @Tags store
// @Produce json
// @Success 200 {array} retail.Store "Stores"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/stores [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	stores, err := h.source.ListActiveStores(c.Context())
	if err != nil {
		l.Error("Store list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(stores)
}
