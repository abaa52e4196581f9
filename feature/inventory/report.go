package inventory

import (
	"context"
	"errors"

	"stocktake/feature/inventory/models"
	"stocktake/feature/inventory/reconcile"

	"gorm.io/gorm"
)

// load fetches a session's baseline and readings. The baseline keeps its
// insertion order so report rows line up with the frozen snapshot.
func (s *Service) load(ctx context.Context, sessionID uint) ([]models.StockLine, []models.Reading, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).First(&session, sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, err
	}

	var baseline []models.StockLine
	if err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id").
		Find(&baseline).Error; err != nil {
		return nil, nil, err
	}

	var readings []models.Reading
	if err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Find(&readings).Error; err != nil {
		return nil, nil, err
	}

	return baseline, readings, nil
}

// Report builds the full reconciliation report: every baseline line with
// counted quantities and monetary variance, then surplus lines enriched
// with department/vendor from the retail source.
func (s *Service) Report(ctx context.Context, sessionID uint) ([]reconcile.Row, error) {
	baseline, readings, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	pricing, err := s.retail.LookupPricing(ctx)
	if err != nil {
		return nil, err
	}

	surplus := reconcile.SurplusSKUs(baseline, readings)
	deptVendor, err := s.retail.LookupDeptVendor(ctx, surplus)
	if err != nil {
		return nil, err
	}

	return reconcile.Report(baseline, readings, pricing, deptVendor), nil
}

// Progress builds the lightweight progress view polled by dashboards. No
// retail lookups are involved, so it stays cheap under frequent polling.
func (s *Service) Progress(ctx context.Context, sessionID uint) (*reconcile.Progress, error) {
	baseline, readings, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return reconcile.BuildProgress(baseline, readings), nil
}
