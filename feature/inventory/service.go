package inventory

import (
	"stocktake/core/journal"
	"stocktake/core/retail"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service owns the inventory session lifecycle, the per-device sync
// protocol and reconciliation. Sessions and readings live in the local
// database; baselines, pricing and surplus back-fill come from the
// external retail source.
type Service struct {
	db      *gorm.DB
	retail  retail.Source
	journal *journal.Journal
	logger  *zap.Logger
}

// NewService creates a new inventory service.
func NewService(db *gorm.DB, src retail.Source, j *journal.Journal, logger *zap.Logger) *Service {
	return &Service{
		db:      db,
		retail:  src,
		journal: j,
		logger:  logger,
	}
}
