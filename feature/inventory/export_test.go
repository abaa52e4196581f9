package inventory

import (
	"context"
	"testing"

	"stocktake/core/retail"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExport_Workbook(t *testing.T) {
	svc, src, _ := setupService(t)
	src.On("ListOnHand", mock.Anything, "001").Return([]retail.OnHandRow{
		{SKU: "7500123", Alu: "A1", Description: "Boot Black 42", Qty: 10},
	}, nil)
	src.On("LookupPricing", mock.Anything).Return(map[string]retail.Pricing{
		"7500123": {Cost: 10, Price: 25, Vendor: "ACME"},
	}, nil)
	src.On("LookupDeptVendor", mock.Anything, mock.Anything).
		Return(map[string]retail.DeptVendor{}, nil)

	session, _, err := svc.Create(context.Background(), "001", "", "")
	require.NoError(t, err)

	_, err = svc.Sync(context.Background(), session.ID, "PDA-01",
		[]ReadingInput{{SKU: "7500123", Quantity: float64(7)}}, nil)
	require.NoError(t, err)

	buf, err := svc.Export(context.Background(), session.ID)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "SKU", rows[0][0])
	assert.Equal(t, "7500123", rows[1][0])
	assert.Equal(t, "7", rows[1][7])
	assert.Equal(t, "-3", rows[1][8])
}
