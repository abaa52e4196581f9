package distribution

import (
	"stocktake/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface. The feature is disabled
// when no storage client is configured; the rest of the server runs fine
// without it.
type Feature struct {
	handler *Handler
	enabled bool
}

// NewFeature creates a new distribution feature.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger) *Feature {
	if client == nil {
		return &Feature{enabled: false}
	}
	svc := NewService(client, bucket)
	return &Feature{handler: NewHandler(svc, logger), enabled: true}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "distribution"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
