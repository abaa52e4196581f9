package retail

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// GormSource implements Source against the read-only retail database.
type GormSource struct {
	db *gorm.DB
}

// NewGormSource wraps a retail database connection.
func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{db: db}
}

// RoleFor derives the application role from a raw job position value.
func RoleFor(jobPosition string) string {
	if strings.EqualFold(strings.TrimSpace(jobPosition), "admin") {
		return "admin"
	}
	return "scanner"
}

func (s *GormSource) AuthenticateEmployee(ctx context.Context, username, pin string) (*Employee, error) {
	var rows []struct {
		Code        string
		HomeStore   string
		FirstName   string
		JobPosition string
	}
	err := s.db.WithContext(ctx).Raw(`
		SELECT EmployeeCode AS code, HomeStoreNo AS home_store,
		       FirstName AS first_name, JobPosition AS job_position
		FROM EMPLOYEE
		WHERE EmployeeCode = ? AND PIN = ?`, username, pin).Scan(&rows).Error
	if err != nil {
		return nil, &SourceError{Op: "authenticate employee", Err: err}
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	r := rows[0]
	return &Employee{
		Code:      r.Code,
		HomeStore: r.HomeStore,
		FirstName: r.FirstName,
		Role:      RoleFor(r.JobPosition),
	}, nil
}

func (s *GormSource) ListActiveStores(ctx context.Context) ([]Store, error) {
	var stores []Store
	err := s.db.WithContext(ctx).Raw(`
		SELECT StoreNo AS code, StoreName AS name
		FROM STORE
		WHERE ActiveStatus = '1' AND StoreNo <> '9999'`).Scan(&stores).Error
	if err != nil {
		return nil, &SourceError{Op: "list active stores", Err: err}
	}
	return stores, nil
}

func (s *GormSource) ListCatalog(ctx context.Context) ([]CatalogRow, error) {
	var rows []CatalogRow
	// Only sellable products with a full-length ALU make it into the catalog.
	err := s.db.WithContext(ctx).Raw(`
		SELECT p.SKU AS sku, p.ALU AS alu,
		       CONCAT(t.Desc1, ' ', c.ColorLongName, ' ', p.SizeCode) AS description,
		       t.Desc1 AS model, t.Desc2 AS vendor, t.Desc3 AS season,
		       p.ProductReference AS box_code
		FROM PRODUCT p
		INNER JOIN PRODUCT_STYLE t ON p.StyleCode = t.StyleCode
		INNER JOIN COLOR c ON p.ColorCode = c.ColorCode
		WHERE COALESCE(p.ALU, '-1') <> '-1' AND LENGTH(p.ALU) = 17
		ORDER BY p.SKU`).Scan(&rows).Error
	if err != nil {
		return nil, &SourceError{Op: "list catalog", Err: err}
	}
	return rows, nil
}

func (s *GormSource) ListOnHand(ctx context.Context, storeCode string) ([]OnHandRow, error) {
	var rows []OnHandRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT p.SKU AS sku, p.ALU AS alu, st.OnHandQty AS qty,
		       (SELECT DeptName FROM DEPARTMENT WHERE DeptCode = t.DeptCode) AS department,
		       t.Desc1 AS model, t.Desc2 AS vendor, t.Desc3 AS season,
		       CONCAT(t.Desc1, ' ', COALESCE(c.ColorLongName, ''), ' ', COALESCE(p.SizeCode, '')) AS description
		FROM PRODUCT_STORE st
		INNER JOIN PRODUCT p ON st.SKU = p.SKU
		INNER JOIN PRODUCT_STYLE t ON p.StyleCode = t.StyleCode
		LEFT JOIN COLOR c ON p.ColorCode = c.ColorCode
		WHERE st.StoreNo = ? AND st.OnHandQty > 0
		ORDER BY department`, storeCode).Scan(&rows).Error
	if err != nil {
		return nil, &SourceError{Op: "list on-hand stock", Err: err}
	}
	return rows, nil
}

func (s *GormSource) LookupPricing(ctx context.Context) (map[string]Pricing, error) {
	var rows []struct {
		SKU    string
		Cost   float64
		Price  float64
		Vendor string
	}
	// Average cost falls back to last cost when the average has never been
	// computed; vendor comes from the same style table as the catalog.
	err := s.db.WithContext(ctx).Raw(`
		SELECT p.SKU AS sku,
		       (CASE WHEN p.AvgCost = 0 THEN p.LastCost ELSE p.AvgCost END) AS cost,
		       COALESCE(p.RetailPrice, 0) AS price,
		       COALESCE(t.Desc2, '') AS vendor
		FROM PRODUCT p
		LEFT JOIN PRODUCT_STYLE t ON p.StyleCode = t.StyleCode`).Scan(&rows).Error
	if err != nil {
		return nil, &SourceError{Op: "lookup pricing", Err: err}
	}
	out := make(map[string]Pricing, len(rows))
	for _, r := range rows {
		out[r.SKU] = Pricing{Cost: r.Cost, Price: r.Price, Vendor: r.Vendor}
	}
	return out, nil
}

func (s *GormSource) LookupDeptVendor(ctx context.Context, skus []string) (map[string]DeptVendor, error) {
	if len(skus) == 0 {
		return map[string]DeptVendor{}, nil
	}
	var rows []struct {
		SKU        string
		Department string
		Vendor     string
	}
	err := s.db.WithContext(ctx).Raw(`
		SELECT p.SKU AS sku,
		       COALESCE((SELECT DeptName FROM DEPARTMENT WHERE DeptCode = t.DeptCode), '') AS department,
		       COALESCE(t.Desc2, '') AS vendor
		FROM PRODUCT p
		INNER JOIN PRODUCT_STYLE t ON p.StyleCode = t.StyleCode
		WHERE p.SKU IN ?`, skus).Scan(&rows).Error
	if err != nil {
		return nil, &SourceError{Op: "lookup department/vendor", Err: err}
	}
	out := make(map[string]DeptVendor, len(rows))
	for _, r := range rows {
		out[r.SKU] = DeptVendor{Department: r.Department, Vendor: r.Vendor}
	}
	return out, nil
}
