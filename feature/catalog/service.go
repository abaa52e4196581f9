package catalog

import (
	"context"
	"fmt"

	"stocktake/core/journal"
	"stocktake/core/retail"

	"go.uber.org/zap"
)

// Service exposes the catalog cache to handlers and the CLI.
type Service struct {
	cache   *Cache
	journal *journal.Journal
	logger  *zap.Logger
}

// NewService creates a catalog service backed by the retail source.
func NewService(src retail.Source, j *journal.Journal, logger *zap.Logger) *Service {
	return &Service{
		cache:   NewCache(src.ListCatalog),
		journal: j,
		logger:  logger,
	}
}

// Get returns the full catalog, loading it on first call.
func (s *Service) Get(ctx context.Context) ([]retail.CatalogRow, error) {
	return s.cache.Get(ctx)
}

// Version returns the lightweight staleness-check payload.
func (s *Service) Version(ctx context.Context) (*Version, error) {
	return s.cache.Version(ctx)
}

// Refresh rebuilds the cache from the retail source and journals the result.
func (s *Service) Refresh(ctx context.Context) (string, int, error) {
	hash, count, err := s.cache.Refresh(ctx)
	if err != nil {
		return "", 0, err
	}
	s.journal.Record("catalog", fmt.Sprintf("Catalog refreshed: %d products (hash: %s)", count, hash), "")
	s.logger.Info("Catalog refreshed", zap.String("hash", hash), zap.Int("count", count))
	return hash, count, nil
}
