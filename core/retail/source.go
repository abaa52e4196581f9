package retail

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup matches nothing (e.g. wrong
// credentials on AuthenticateEmployee).
var ErrNotFound = errors.New("retail: not found")

// SourceError wraps a failed query against the external retail database.
// It is the server-side failure surfaced to callers per the error policy:
// external source failures are never silently swallowed.
type SourceError struct {
	Op  string
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("retail source %s: %v", e.Op, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Employee is the directory record returned by a successful authentication.
// Role is derived from the job position: "admin" (case-insensitive) maps to
// admin, everything else to scanner.
type Employee struct {
	Code      string `json:"code"`
	HomeStore string `json:"home_store"`
	FirstName string `json:"first_name"`
	Role      string `json:"role"`
}

// Store is one active retail store.
type Store struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CatalogRow is one denormalized product reference row served to devices.
type CatalogRow struct {
	SKU         string `json:"sku"`
	Alu         string `json:"alu"`
	Description string `json:"description"`
	Model       string `json:"model"`
	Vendor      string `json:"vendor"`
	Season      string `json:"season"`
	BoxCode     string `json:"box_code"`
}

// OnHandRow is one on-hand stock line for a store, enriched with product
// reference data. It becomes a frozen baseline line at session creation.
type OnHandRow struct {
	SKU         string
	Alu         string
	Qty         int
	Department  string
	Model       string
	Vendor      string
	Season      string
	Description string
}

// Pricing is the per-SKU cost/price/vendor enrichment used by reports.
type Pricing struct {
	Cost   float64
	Price  float64
	Vendor string
}

// DeptVendor is the department/vendor back-fill for surplus lines.
type DeptVendor struct {
	Department string
	Vendor     string
}

// Source is the read contract against the external employee directory and
// product/store database. Implementations must be safe for concurrent use.
type Source interface {
	// AuthenticateEmployee validates a username/PIN pair.
	// Returns ErrNotFound when no employee matches.
	AuthenticateEmployee(ctx context.Context, username, pin string) (*Employee, error)
	// ListActiveStores returns all active stores.
	ListActiveStores(ctx context.Context) ([]Store, error)
	// ListCatalog returns the full denormalized product catalog.
	ListCatalog(ctx context.Context) ([]CatalogRow, error)
	// ListOnHand returns all on-hand lines with positive quantity for a store.
	ListOnHand(ctx context.Context, storeCode string) ([]OnHandRow, error)
	// LookupPricing returns cost/price/vendor for every product, keyed by SKU.
	LookupPricing(ctx context.Context) (map[string]Pricing, error)
	// LookupDeptVendor returns department/vendor for the given SKUs.
	LookupDeptVendor(ctx context.Context, skus []string) (map[string]DeptVendor, error)
}
