package catalog

import (
	"context"
	"sync/atomic"
	"testing"

	"stocktake/core/retail"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticLoader(rows []retail.CatalogRow, calls *atomic.Int32) Loader {
	return func(ctx context.Context) ([]retail.CatalogRow, error) {
		calls.Add(1)
		return rows, nil
	}
}

func TestCache_LazyLoadOnce(t *testing.T) {
	var calls atomic.Int32
	rows := []retail.CatalogRow{{SKU: "7500123", Alu: "00075001230000017", Description: "Boot Black 42"}}
	c := NewCache(staticLoader(rows, &calls))

	got, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load(), "second Get must be served from cache")
}

func TestCache_HashStableAcrossGets(t *testing.T) {
	var calls atomic.Int32
	rows := []retail.CatalogRow{{SKU: "7500123"}, {SKU: "7500124"}}
	c := NewCache(staticLoader(rows, &calls))

	v1, err := c.Version(context.Background())
	require.NoError(t, err)
	v2, err := c.Version(context.Background())
	require.NoError(t, err)

	assert.Equal(t, v1.Hash, v2.Hash)
	assert.Equal(t, 2, v1.Count)
	assert.Len(t, v1.Hash, hashLength)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCache_RefreshChangesHashWhenRowsChange(t *testing.T) {
	var generation atomic.Int32
	c := NewCache(func(ctx context.Context) ([]retail.CatalogRow, error) {
		if generation.Load() == 0 {
			return []retail.CatalogRow{{SKU: "7500123"}}, nil
		}
		return []retail.CatalogRow{{SKU: "7500123"}, {SKU: "7500124"}}, nil
	})

	hash1, count1, err := c.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count1)

	generation.Store(1)
	hash2, count2, err := c.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count2)
	assert.NotEqual(t, hash1, hash2)
}

func TestCache_RefreshStableWhenRowsUnchanged(t *testing.T) {
	rows := []retail.CatalogRow{{SKU: "7500123", Vendor: "ACME"}}
	var calls atomic.Int32
	c := NewCache(staticLoader(rows, &calls))

	hash1, _, err := c.Refresh(context.Background())
	require.NoError(t, err)
	hash2, _, err := c.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, hash1, hash2)
	assert.Equal(t, int32(2), calls.Load(), "refresh always reloads")
}

func TestCache_LoaderFailureSurfaces(t *testing.T) {
	c := NewCache(func(ctx context.Context) ([]retail.CatalogRow, error) {
		return nil, assert.AnError
	})

	_, err := c.Get(context.Background())
	assert.Error(t, err)

	_, _, err = c.Refresh(context.Background())
	assert.Error(t, err)
}
