// Package catalog serves the versioned product catalog cache.
//
// Many handheld devices need the same large catalog; the cache holds one
// denormalized snapshot in memory with a short content hash so devices can
// check staleness without downloading the payload. The cache has no TTL:
// it is lazily populated on first read and rebuilt only on explicit refresh.
package catalog
