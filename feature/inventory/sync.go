package inventory

import (
	"context"
	"fmt"

	"stocktake/core/journal"
	"stocktake/core/utils"
	"stocktake/feature/inventory/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReadingInput is one scan as uploaded by a device. Fields are untyped
// because handheld payloads are inconsistent: SKUs arrive as strings or
// numbers, quantities as numbers, strings or not at all.
type ReadingInput struct {
	SKU         any    `json:"sku"`
	Alu         any    `json:"alu"`
	Description any    `json:"description"`
	Quantity    any    `json:"quantity"`
	Location    any    `json:"location"`
	Origin      string `json:"origin"`
}

// DeviceLogInput is one device-side log line uploaded alongside a sync.
type DeviceLogInput struct {
	Category  string `json:"category"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// SyncResult summarizes an accepted sync batch.
type SyncResult struct {
	Accepted int `json:"accepted"`
	Scanner  int `json:"scanner"`
	Manual   int `json:"manual"`
}

// deviceLogCategories maps device log categories to journal categories.
// Unknown categories fall back to device-info.
var deviceLogCategories = map[string]string{
	"sync":   "device-sync",
	"delete": "device-delete",
	"error":  "device-error",
	"info":   "device-info",
}

// Sync replaces a device's entire contribution to a session with the
// uploaded batch: delete everything the device sent before, insert the new
// readings, in one transaction. Re-sending the same batch is therefore
// idempotent, and a failed sync leaves the previous contribution intact.
func (s *Service) Sync(ctx context.Context, sessionID uint, device string, inputs []ReadingInput, logs []DeviceLogInput) (*SyncResult, error) {
	readings := make([]models.Reading, 0, len(inputs))
	result := &SyncResult{}
	for _, in := range inputs {
		sku := utils.ToString(in.SKU)
		if sku == "" {
			continue
		}
		origin := in.Origin
		if origin != "manual" {
			origin = "scanner"
		}
		readings = append(readings, models.Reading{
			SessionID:   sessionID,
			SKU:         sku,
			Alu:         utils.Truncate(utils.ToString(in.Alu), 50),
			Description: utils.Truncate(utils.ToString(in.Description), 200),
			Quantity:    utils.ToIntDefault(in.Quantity, 1),
			Location:    utils.Truncate(utils.ToString(in.Location), 10),
			Device:      device,
			Origin:      origin,
		})
		if origin == "manual" {
			result.Manual++
		} else {
			result.Scanner++
		}
	}
	result.Accepted = len(readings)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ? AND device = ?", sessionID, device).
			Delete(&models.Reading{}).Error; err != nil {
			return err
		}
		if len(readings) == 0 {
			return nil
		}
		return tx.CreateInBatches(readings, baselineBatchSize).Error
	})
	if err != nil {
		s.logger.Error("Sync failed",
			zap.Uint("session_id", sessionID),
			zap.String("device", device),
			zap.Error(err))
		return nil, &SyncError{SessionID: sessionID, Device: device, Err: err}
	}

	s.importDeviceLogs(device, logs)
	s.journal.Record("sync",
		fmt.Sprintf("Session %d: %s synced %d readings (%d scanner, %d manual)",
			sessionID, device, result.Accepted, result.Scanner, result.Manual),
		device)
	s.logger.Info("Sync accepted",
		zap.Uint("session_id", sessionID),
		zap.String("device", device),
		zap.Int("readings", result.Accepted))

	return result, nil
}

// importDeviceLogs copies device-side log lines into the journal, keeping
// the device's own timestamps verbatim.
func (s *Service) importDeviceLogs(device string, logs []DeviceLogInput) {
	for _, l := range logs {
		category, ok := deviceLogCategories[l.Category]
		if !ok {
			category = "device-info"
		}
		s.journal.Append(journal.Entry{
			Category:  category,
			Message:   fmt.Sprintf("[%s] %s", device, l.Message),
			Actor:     device,
			Timestamp: l.Timestamp,
		})
	}
}

// Readings lists a session's readings, optionally filtered by device.
func (s *Service) Readings(ctx context.Context, sessionID uint, device string) ([]models.Reading, error) {
	q := s.db.WithContext(ctx).Where("session_id = ?", sessionID)
	if device != "" {
		q = q.Where("device = ?", device)
	}
	var readings []models.Reading
	err := q.Order("id").Find(&readings).Error
	return readings, err
}

// DeleteReading removes a single reading, for operator corrections.
func (s *Service) DeleteReading(ctx context.Context, sessionID, readingID uint, actor string) error {
	res := s.db.WithContext(ctx).
		Where("session_id = ? AND id = ?", sessionID, readingID).
		Delete(&models.Reading{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		s.journal.Record("inventory",
			fmt.Sprintf("Session %d: reading %d deleted", sessionID, readingID), actor)
	}
	return nil
}
