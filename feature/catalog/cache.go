package catalog

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"stocktake/core/retail"

	"golang.org/x/sync/singleflight"
)

// hashLength is the truncated length of the content digest. A short hash
// trades a negligible collision risk for cheap client-side staleness checks;
// collision is treated as equivalence.
const hashLength = 12

// Version describes the cached catalog without transferring the payload.
type Version struct {
	Hash      string    `json:"hash"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

// Loader fetches the full denormalized catalog from the retail source.
type Loader func(ctx context.Context) ([]retail.CatalogRow, error)

// Cache holds the single shared catalog slot. It is lazily populated on
// first read and rebuilt on explicit refresh; there is no TTL. Refreshes
// are serialized through singleflight so a slow reload cannot clobber a
// fresher concurrent one.
type Cache struct {
	load Loader

	mu     sync.RWMutex
	sf     singleflight.Group
	rows   []retail.CatalogRow
	hash   string
	built  time.Time
	loaded bool
}

// NewCache creates an empty cache backed by the given loader.
func NewCache(load Loader) *Cache {
	return &Cache{load: load}
}

// Get returns the cached rows, populating the cache on first call.
func (c *Cache) Get(ctx context.Context) ([]retail.CatalogRow, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rows, nil
}

// Refresh forces a reload regardless of current state and returns the new
// hash and row count.
func (c *Cache) Refresh(ctx context.Context) (string, int, error) {
	_, err, _ := c.sf.Do("refresh", func() (any, error) {
		return nil, c.reload(ctx)
	})
	if err != nil {
		return "", 0, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hash, len(c.rows), nil
}

// Version returns hash, count and build timestamp, loading once if the
// cache has never been populated.
func (c *Cache) Version(ctx context.Context) (*Version, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return &Version{Hash: c.hash, Count: len(c.rows), Timestamp: c.built}, nil
}

func (c *Cache) ensureLoaded(ctx context.Context) error {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded {
		return nil
	}

	_, err, _ := c.sf.Do("refresh", func() (any, error) {
		// Another caller may have populated the slot while we waited.
		c.mu.RLock()
		loaded := c.loaded
		c.mu.RUnlock()
		if loaded {
			return nil, nil
		}
		return nil, c.reload(ctx)
	})
	return err
}

func (c *Cache) reload(ctx context.Context) error {
	rows, err := c.load(ctx)
	if err != nil {
		return err
	}

	hash, err := hashRows(rows)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.rows = rows
	c.hash = hash
	c.built = time.Now()
	c.loaded = true
	c.mu.Unlock()
	return nil
}

// hashRows digests the canonical (sorted-key) JSON serialization of the
// rows. The hash changes if and only if the underlying rows change.
func hashRows(rows []retail.CatalogRow) (string, error) {
	raw, err := json.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("failed to serialize catalog: %w", err)
	}

	// Round-trip through generic maps so keys serialize in sorted order
	// independent of struct field layout.
	var generic []map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return "", fmt.Errorf("failed to canonicalize catalog: %w", err)
	}
	canonical, err := json.Marshal(generic)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize catalog: %w", err)
	}

	sum := md5.Sum(canonical)
	return hex.EncodeToString(sum[:])[:hashLength], nil
}
