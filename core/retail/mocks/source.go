package mocks

import (
	"context"

	"stocktake/core/retail"

	"github.com/stretchr/testify/mock"
)

// Source is a mock implementation of retail.Source
type Source struct {
	mock.Mock
}

func (m *Source) AuthenticateEmployee(ctx context.Context, username, pin string) (*retail.Employee, error) {
	args := m.Called(ctx, username, pin)
	if emp, ok := args.Get(0).(*retail.Employee); ok {
		return emp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Source) ListActiveStores(ctx context.Context) ([]retail.Store, error) {
	args := m.Called(ctx)
	if stores, ok := args.Get(0).([]retail.Store); ok {
		return stores, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Source) ListCatalog(ctx context.Context) ([]retail.CatalogRow, error) {
	args := m.Called(ctx)
	if rows, ok := args.Get(0).([]retail.CatalogRow); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Source) ListOnHand(ctx context.Context, storeCode string) ([]retail.OnHandRow, error) {
	args := m.Called(ctx, storeCode)
	if rows, ok := args.Get(0).([]retail.OnHandRow); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Source) LookupPricing(ctx context.Context) (map[string]retail.Pricing, error) {
	args := m.Called(ctx)
	if pricing, ok := args.Get(0).(map[string]retail.Pricing); ok {
		return pricing, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Source) LookupDeptVendor(ctx context.Context, skus []string) (map[string]retail.DeptVendor, error) {
	args := m.Called(ctx, skus)
	if dv, ok := args.Get(0).(map[string]retail.DeptVendor); ok {
		return dv, args.Error(1)
	}
	return nil, args.Error(1)
}
