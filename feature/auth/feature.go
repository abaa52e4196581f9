package auth

import (
	"time"

	"stocktake/core/journal"
	"stocktake/core/retail"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates a new auth feature.
func NewFeature(src retail.Source, j *journal.Journal, logger *zap.Logger, secret string, tokenTTL time.Duration) *Feature {
	svc := NewService(src, j, logger, secret, tokenTTL)
	return &Feature{handler: NewHandler(svc, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "auth"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
