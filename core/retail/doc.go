// Package retail is the boundary to the external employee directory and
// product/store data source.
//
// The retail database is owned by the point-of-sale system; this package
// only reads from it. The Source interface captures the full read contract
// (authentication, store listing, catalog, on-hand stock, pricing and
// department/vendor enrichment) so that the inventory engine and features
// can be tested against the mock in retail/mocks.
//
// SKUs are canonicalized to strings at this boundary: the underlying
// database is inconsistent about SKU representation (numeric vs varchar),
// and picking one representation at ingestion keeps the reconciliation
// engine free of dual-key lookups.
package retail
