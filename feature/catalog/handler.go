package catalog

import (
	"fmt"

	"stocktake/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the product catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/version", h.HandleVersion)
	group.Post("/refresh", h.HandleRefresh)
	group.Get("/", h.HandleGet)
}

// HandleGet returns the full catalog, served from cache.
// @Summary Get Catalog
// @Description Returns the full denormalized product catalog, cached in memory.
// @Tags catalog
// @Produce json
// @Success 200 {array} retail.CatalogRow "Catalog rows"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/catalog [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	rows, err := h.service.Get(c.Context())
	if err != nil {
		l.Error("Catalog load failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(rows)
}

// HandleVersion returns the catalog hash without the payload.
// @Summary Get Catalog Version
// @Description Lightweight staleness check: hash, row count and build timestamp.
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.Version "Catalog version"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/catalog/version [get]
func (h *Handler) HandleVersion(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	v, err := h.service.Version(c.Context())
	if err != nil {
		l.Error("Catalog version failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(v)
}

// HandleRefresh forces a catalog reload from the retail source.
// @Summary Refresh Catalog
// @Description Rebuilds the catalog cache and returns the new hash and count.
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{} "Refresh result"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/catalog/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	hash, count, err := h.service.Refresh(c.Context())
	if err != nil {
		l.Error("Catalog refresh failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"hash":    hash,
		"count":   count,
		"message": fmt.Sprintf("Catalog refreshed: %d products", count),
	})
}
