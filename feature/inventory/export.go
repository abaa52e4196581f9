package inventory

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []any{
	"SKU", "ALU", "Description", "Department", "Model", "Vendor",
	"Theoretical", "Counted", "Variance", "Cost", "Price",
	"Cost Diff", "Price Diff", "Surplus",
}

// Export renders the reconciliation report as an XLSX workbook.
func (s *Service) Export(ctx context.Context, sessionID uint) (*bytes.Buffer, error) {
	rows, err := s.Report(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return nil, err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		surplus := ""
		if r.IsSurplus {
			surplus = "yes"
		}
		values := []any{
			r.SKU, r.Alu, r.Description, r.Department, r.Model, r.Vendor,
			r.Theoretical, r.Counted, r.Variance, r.Cost, r.Price,
			r.CostDiff, r.PriceDiff, surplus,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}
