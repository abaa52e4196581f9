package inventory

import (
	"context"
	"errors"
	"fmt"

	"stocktake/feature/inventory/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const baselineBatchSize = 500

// Create opens a new session for a store and freezes its baseline: every
// positive on-hand line from the retail source at this moment, copied into
// local stock lines. The session starts in preparing. The header is
// committed before the stock query, so a source failure leaves a session
// with zero baseline lines behind; callers must treat that as a
// recoverable anomaly, not a usable session.
func (s *Service) Create(ctx context.Context, storeCode, storeName, actor string) (*models.Session, int, error) {
	session := &models.Session{
		StoreCode: storeCode,
		StoreName: storeName,
		Status:    models.StatusPreparing,
	}
	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, 0, err
	}

	onHand, err := s.retail.ListOnHand(ctx, storeCode)
	if err != nil {
		return nil, 0, err
	}

	if len(onHand) > 0 {
		lines := make([]models.StockLine, 0, len(onHand))
		for _, row := range onHand {
			lines = append(lines, models.StockLine{
				SessionID:   session.ID,
				SKU:         row.SKU,
				Alu:         row.Alu,
				Description: row.Description,
				Department:  row.Department,
				Model:       row.Model,
				Vendor:      row.Vendor,
				Season:      row.Season,
				Theoretical: row.Qty,
			})
		}
		if err := s.db.WithContext(ctx).CreateInBatches(lines, baselineBatchSize).Error; err != nil {
			return nil, 0, err
		}
	}

	s.journal.Record("inventory",
		fmt.Sprintf("Session %d created for store %s (%d lines)", session.ID, storeCode, len(onHand)),
		actor)
	s.logger.Info("Session created",
		zap.Uint("session_id", session.ID),
		zap.String("store", storeCode),
		zap.Int("lines", len(onHand)))

	return session, len(onHand), nil
}

// Start promotes a session to active. At most one session may be active,
// so any other active session is closed in the same transaction. A missing
// session leaves everything untouched.
func (s *Service) Start(ctx context.Context, id uint, actor string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Session{}).
			Where("status = ? AND id <> ?", models.StatusActive, id).
			Update("status", models.StatusClosed).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Session{}).
			Where("id = ?", id).
			Update("status", models.StatusActive)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSessionNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.journal.Record("inventory", fmt.Sprintf("Session %d started", id), actor)
	return nil
}

// Close moves a session to closed regardless of its current status.
func (s *Service) Close(ctx context.Context, id uint, actor string) error {
	res := s.db.WithContext(ctx).Model(&models.Session{}).
		Where("id = ?", id).
		Update("status", models.StatusClosed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSessionNotFound
	}

	s.journal.Record("inventory", fmt.Sprintf("Session %d closed", id), actor)
	return nil
}

// Active returns the most recently created active session, or nil when no
// session is active. Devices poll this to discover which session to sync
// against.
func (s *Service) Active(ctx context.Context) (*models.Session, error) {
	var session models.Session
	err := s.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Order("id DESC").
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// List returns all sessions newest first, each annotated with its baseline
// line count and the total units scanned across all devices.
func (s *Service) List(ctx context.Context) ([]models.SessionSummary, error) {
	var sessions []models.Session
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}

	type sessionCount struct {
		SessionID uint
		Total     int
	}

	var lineCounts []sessionCount
	err := s.db.WithContext(ctx).Model(&models.StockLine{}).
		Select("session_id, COUNT(*) AS total").
		Group("session_id").
		Scan(&lineCounts).Error
	if err != nil {
		return nil, err
	}

	var unitCounts []sessionCount
	err = s.db.WithContext(ctx).Model(&models.Reading{}).
		Select("session_id, COALESCE(SUM(quantity), 0) AS total").
		Group("session_id").
		Scan(&unitCounts).Error
	if err != nil {
		return nil, err
	}

	lines := make(map[uint]int, len(lineCounts))
	for _, c := range lineCounts {
		lines[c.SessionID] = c.Total
	}
	units := make(map[uint]int, len(unitCounts))
	for _, c := range unitCounts {
		units[c.SessionID] = c.Total
	}

	out := make([]models.SessionSummary, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, models.SessionSummary{
			Session:    sess,
			TotalLines: lines[sess.ID],
			TotalUnits: units[sess.ID],
		})
	}
	return out, nil
}

// Delete removes a session and everything it owns: readings first, then
// stock lines, then the header, all in one transaction. Deleting a session
// that is already gone succeeds; the end state is the same.
func (s *Service) Delete(ctx context.Context, id uint, actor string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", id).Delete(&models.Reading{}).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id = ?", id).Delete(&models.StockLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Session{}, id).Error
	})
	if err != nil {
		return err
	}

	s.journal.Record("inventory", fmt.Sprintf("Session %d deleted", id), actor)
	return nil
}

// StockLines returns a session's frozen baseline ordered for review.
func (s *Service) StockLines(ctx context.Context, sessionID uint) ([]models.StockLine, error) {
	var lines []models.StockLine
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("department, model").
		Find(&lines).Error
	return lines, err
}

// DeleteStockLine removes one baseline line. Deleting a line that is
// already gone succeeds; the end state is the same.
func (s *Service) DeleteStockLine(ctx context.Context, sessionID, lineID uint) error {
	return s.db.WithContext(ctx).
		Where("session_id = ? AND id = ?", sessionID, lineID).
		Delete(&models.StockLine{}).Error
}

// DeleteStockLines removes a batch of baseline lines and reports how many
// actually existed.
func (s *Service) DeleteStockLines(ctx context.Context, sessionID uint, lineIDs []uint) (int64, error) {
	if len(lineIDs) == 0 {
		return 0, nil
	}
	res := s.db.WithContext(ctx).
		Where("session_id = ? AND id IN ?", sessionID, lineIDs).
		Delete(&models.StockLine{})
	return res.RowsAffected, res.Error
}
