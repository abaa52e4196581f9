package inventory

import (
	"context"
	"testing"

	"stocktake/core/journal"
	"stocktake/core/retail"
	"stocktake/core/retail/mocks"
	"stocktake/feature/inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupService(t *testing.T) (*Service, *mocks.Source, *journal.Journal) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Session{}, &models.StockLine{}, &models.Reading{}))

	src := new(mocks.Source)
	j := journal.New()
	return NewService(db, src, j, zap.NewNop()), src, j
}

func TestCreate_FreezesBaseline(t *testing.T) {
	svc, src, j := setupService(t)
	src.On("ListOnHand", mock.Anything, "001").Return([]retail.OnHandRow{
		{SKU: "7500123", Alu: "A1", Qty: 10, Department: "Footwear"},
		{SKU: "7500456", Alu: "A2", Qty: 3, Department: "Apparel"},
	}, nil)

	session, lines, err := svc.Create(context.Background(), "001", "Main Store", "admin")
	require.NoError(t, err)
	assert.Equal(t, 2, lines)
	assert.Equal(t, models.StatusPreparing, session.Status)

	stock, err := svc.StockLines(context.Background(), session.ID)
	require.NoError(t, err)
	require.Len(t, stock, 2)

	entries := j.Snapshot()
	require.NotEmpty(t, entries)
	assert.Equal(t, "inventory", entries[0].Category)
	assert.Equal(t, "admin", entries[0].Actor)
}

func TestCreate_SourceFailureLeavesEmptyHeader(t *testing.T) {
	svc, src, _ := setupService(t)
	src.On("ListOnHand", mock.Anything, "001").
		Return(nil, &retail.SourceError{Op: "list on hand", Err: assert.AnError})

	_, _, err := svc.Create(context.Background(), "001", "", "")
	require.Error(t, err)

	// The header survives the failed stock query; a zero-line session is
	// the caller's signal that creation did not complete.
	sessions, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 0, sessions[0].TotalLines)
}

func TestStart_DemotesOtherActive(t *testing.T) {
	svc, src, _ := setupService(t)
	src.On("ListOnHand", mock.Anything, mock.Anything).Return([]retail.OnHandRow{}, nil)

	first, _, err := svc.Create(context.Background(), "001", "", "")
	require.NoError(t, err)
	second, _, err := svc.Create(context.Background(), "002", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Start(context.Background(), first.ID, ""))
	require.NoError(t, svc.Start(context.Background(), second.ID, ""))

	active, err := svc.Active(context.Background())
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second.ID, active.ID)

	sessions, err := svc.List(context.Background())
	require.NoError(t, err)
	actives := 0
	for _, s := range sessions {
		if s.Status == models.StatusActive {
			actives++
		}
		if s.ID == first.ID {
			assert.Equal(t, models.StatusClosed, s.Status, "demoted session is closed")
		}
	}
	assert.Equal(t, 1, actives)
}

func TestStart_MissingSessionLeavesActiveIntact(t *testing.T) {
	svc, src, _ := setupService(t)
	src.On("ListOnHand", mock.Anything, mock.Anything).Return([]retail.OnHandRow{}, nil)

	session, _, err := svc.Create(context.Background(), "001", "", "")
	require.NoError(t, err)
	require.NoError(t, svc.Start(context.Background(), session.ID, ""))

	err = svc.Start(context.Background(), 9999, "")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	active, err := svc.Active(context.Background())
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, session.ID, active.ID)
}

func TestClose_NoActiveAfterwards(t *testing.T) {
	svc, src, _ := setupService(t)
	src.On("ListOnHand", mock.Anything, mock.Anything).Return([]retail.OnHandRow{}, nil)

	session, _, err := svc.Create(context.Background(), "001", "", "")
	require.NoError(t, err)
	require.NoError(t, svc.Start(context.Background(), session.ID, ""))
	require.NoError(t, svc.Close(context.Background(), session.ID, ""))

	active, err := svc.Active(context.Background())
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestSync_ReplacesDeviceContribution(t *testing.T) {
	svc, src, _ := setupService(t)
	src.On("ListOnHand", mock.Anything, mock.Anything).Return([]retail.OnHandRow{}, nil)

	session, _, err := svc.Create(context.Background(), "001", "", "")
	require.NoError(t, err)

	first := []ReadingInput{
		{SKU: "7500123", Quantity: float64(2)},
		{SKU: "7500456", Quantity: "3"},
	}
	result, err := svc.Sync(context.Background(), session.ID, "PDA-01", first, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Accepted)

	// Another device's readings must survive a PDA-01 re-sync.
	_, err = svc.Sync(context.Background(), session.ID, "PDA-02",
		[]ReadingInput{{SKU: "7500123", Quantity: float64(1)}}, nil)
	require.NoError(t, err)

	second := []ReadingInput{{SKU: "7500123", Quantity: float64(5)}}
	result, err = svc.Sync(context.Background(), session.ID, "PDA-01", second, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)

	readings, err := svc.Readings(context.Background(), session.ID, "")
	require.NoError(t, err)
	require.Len(t, readings, 2)

	mine, err := svc.Readings(context.Background(), session.ID, "PDA-01")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, 5, mine[0].Quantity)
}

func TestSync_EmptyBatchWipesDevice(t *testing.T) {
	svc, src, _ := setupService(t)
	src.On("ListOnHand", mock.Anything, mock.Anything).Return([]retail.OnHandRow{}, nil)

	session, _, err := svc.Create(context.Background(), "001", "", "")
	require.NoError(t, err)

	_, err = svc.Sync(context.Background(), session.ID, "PDA-01",
		[]ReadingInput{{SKU: "7500123"}}, nil)
	require.NoError(t, err)

	result, err := svc.Sync(context.Background(), session.ID, "PDA-01", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Accepted)

	readings, err := svc.Readings(context.Background(), session.ID, "PDA-01")
	require.NoError(t, err)
	assert.Empty(t, readings)
}

func TestSync_CoercesNoisyInput(t *testing.T) {
	svc, src, _ := setupService(t)
	src.On("ListOnHand", mock.Anything, mock.Anything).Return([]retail.OnHandRow{}, nil)

	session, _, err := svc.Create(context.Background(), "001", "", "")
	require.NoError(t, err)

	inputs := []ReadingInput{
		{SKU: float64(7500123), Quantity: nil},            // numeric SKU, missing quantity
		{SKU: "7500456", Quantity: "abc"},                 // unparseable quantity
		{SKU: "7500789", Quantity: float64(0)},            // zero quantity
		{SKU: "7500999", Quantity: float64(-2)},           // negative passes through
		{SKU: nil, Quantity: float64(5)},                  // no SKU, dropped
		{SKU: "7501000", Quantity: float64(3), Origin: "manual"},
	}
	result, err := svc.Sync(context.Background(), session.ID, "PDA-01", inputs, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Accepted)
	assert.Equal(t, 1, result.Manual)
	assert.Equal(t, 4, result.Scanner)

	readings, err := svc.Readings(context.Background(), session.ID, "PDA-01")
	require.NoError(t, err)
	require.Len(t, readings, 5)
	assert.Equal(t, "7500123", readings[0].SKU)
	assert.Equal(t, 1, readings[0].Quantity)
	assert.Equal(t, 1, readings[1].Quantity)
	assert.Equal(t, 1, readings[2].Quantity)
	assert.Equal(t, -2, readings[3].Quantity)
	assert.Equal(t, "manual", readings[4].Origin)
}

func TestSync_ImportsDeviceLogs(t *testing.T) {
	svc, src, j := setupService(t)
	src.On("ListOnHand", mock.Anything, mock.Anything).Return([]retail.OnHandRow{}, nil)

	session, _, err := svc.Create(context.Background(), "001", "", "")
	require.NoError(t, err)

	logs := []DeviceLogInput{
		{Category: "error", Message: "scanner jam", Timestamp: "2026-08-28 10:15:00"},
		{Category: "bogus", Message: "hello", Timestamp: "2026-08-28 10:16:00"},
	}
	_, err = svc.Sync(context.Background(), session.ID, "PDA-01", nil, logs)
	require.NoError(t, err)

	entries := j.Snapshot()
	var categories []string
	for _, e := range entries {
		categories = append(categories, e.Category)
	}
	assert.Contains(t, categories, "device-error")
	assert.Contains(t, categories, "device-info")

	for _, e := range entries {
		if e.Category == "device-error" {
			assert.Equal(t, "[PDA-01] scanner jam", e.Message)
			assert.Equal(t, "2026-08-28 10:15:00", e.Timestamp)
		}
	}
}

func TestDelete_CascadesAndIsolates(t *testing.T) {
	svc, src, _ := setupService(t)
	src.On("ListOnHand", mock.Anything, mock.Anything).Return([]retail.OnHandRow{
		{SKU: "7500123", Qty: 1},
	}, nil)

	doomed, _, err := svc.Create(context.Background(), "001", "", "")
	require.NoError(t, err)
	kept, _, err := svc.Create(context.Background(), "002", "", "")
	require.NoError(t, err)

	_, err = svc.Sync(context.Background(), doomed.ID, "PDA-01",
		[]ReadingInput{{SKU: "7500123"}}, nil)
	require.NoError(t, err)
	_, err = svc.Sync(context.Background(), kept.ID, "PDA-01",
		[]ReadingInput{{SKU: "7500123"}}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), doomed.ID, ""))

	sessions, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, kept.ID, sessions[0].ID)
	assert.Equal(t, 1, sessions[0].TotalLines)

	readings, err := svc.Readings(context.Background(), kept.ID, "")
	require.NoError(t, err)
	assert.Len(t, readings, 1)

	orphans, err := svc.StockLines(context.Background(), doomed.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans)
}

func TestReport_EndToEnd(t *testing.T) {
	svc, src, _ := setupService(t)
	src.On("ListOnHand", mock.Anything, "001").Return([]retail.OnHandRow{
		{SKU: "7500123", Alu: "A1", Qty: 10, Department: "Footwear"},
	}, nil)
	src.On("LookupPricing", mock.Anything).Return(map[string]retail.Pricing{
		"7500123": {Cost: 10, Price: 25, Vendor: "ACME"},
	}, nil)
	src.On("LookupDeptVendor", mock.Anything, []string{"9999999"}).
		Return(map[string]retail.DeptVendor{
			"9999999": {Department: "Apparel", Vendor: "Other"},
		}, nil)

	session, _, err := svc.Create(context.Background(), "001", "", "")
	require.NoError(t, err)

	_, err = svc.Sync(context.Background(), session.ID, "PDA-01", []ReadingInput{
		{SKU: "7500123", Quantity: float64(7)},
		{SKU: "9999999", Quantity: float64(2)},
	}, nil)
	require.NoError(t, err)

	rows, err := svc.Report(context.Background(), session.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, -3, rows[0].Variance)
	assert.InDelta(t, -30.0, rows[0].CostDiff, 0.001)
	assert.True(t, rows[1].IsSurplus)
	assert.Equal(t, "Apparel", rows[1].Department)
}

func TestReport_MissingSession(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.Report(context.Background(), 42)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestProgress_EndToEnd(t *testing.T) {
	svc, src, _ := setupService(t)
	src.On("ListOnHand", mock.Anything, "001").Return([]retail.OnHandRow{
		{SKU: "7500123", Qty: 10},
		{SKU: "7500456", Qty: 10},
	}, nil)

	session, _, err := svc.Create(context.Background(), "001", "", "")
	require.NoError(t, err)

	_, err = svc.Sync(context.Background(), session.ID, "PDA-01",
		[]ReadingInput{{SKU: "7500123", Quantity: float64(5)}}, nil)
	require.NoError(t, err)

	p, err := svc.Progress(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, p.Summary.TotalTheoretical)
	assert.Equal(t, 5, p.Summary.TotalCounted)
	assert.Equal(t, 25.0, p.Summary.Percent)
	assert.Equal(t, 1, p.Summary.CountedLines)
	assert.Equal(t, map[string]int{"PDA-01": 5}, p.ByDevice)

	src.AssertNotCalled(t, "LookupPricing", mock.Anything)
}

func TestDelete_MissingIsNoop(t *testing.T) {
	svc, _, _ := setupService(t)

	assert.NoError(t, svc.Delete(context.Background(), 12345, ""))
}

func TestList_TotalUnitsSumReadings(t *testing.T) {
	svc, src, _ := setupService(t)
	src.On("ListOnHand", mock.Anything, "001").Return([]retail.OnHandRow{
		{SKU: "7500123", Qty: 10},
	}, nil)

	session, _, err := svc.Create(context.Background(), "001", "", "")
	require.NoError(t, err)

	_, err = svc.Sync(context.Background(), session.ID, "PDA-01", []ReadingInput{
		{SKU: "7500123", Quantity: float64(3)},
		{SKU: "9999999", Quantity: float64(2)},
	}, nil)
	require.NoError(t, err)

	sessions, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 1, sessions[0].TotalLines)
	assert.Equal(t, 5, sessions[0].TotalUnits)
}

func TestDeleteStockLine_MissingIsNoop(t *testing.T) {
	svc, src, _ := setupService(t)
	src.On("ListOnHand", mock.Anything, mock.Anything).Return([]retail.OnHandRow{}, nil)

	session, _, err := svc.Create(context.Background(), "001", "", "")
	require.NoError(t, err)

	assert.NoError(t, svc.DeleteStockLine(context.Background(), session.ID, 12345))
}

func TestDeleteStockLines_Batch(t *testing.T) {
	svc, src, _ := setupService(t)
	src.On("ListOnHand", mock.Anything, "001").Return([]retail.OnHandRow{
		{SKU: "A", Qty: 1},
		{SKU: "B", Qty: 1},
		{SKU: "C", Qty: 1},
	}, nil)

	session, _, err := svc.Create(context.Background(), "001", "", "")
	require.NoError(t, err)

	lines, err := svc.StockLines(context.Background(), session.ID)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	deleted, err := svc.DeleteStockLines(context.Background(), session.ID,
		[]uint{lines[0].ID, lines[1].ID, 99999})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining, err := svc.StockLines(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
