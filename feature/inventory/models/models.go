package models

import "time"

// Session statuses. A session is created in preparing, promoted to active
// by start (which demotes any other active session), and ends in closed.
// There is no transition out of closed.
const (
	StatusPreparing = "preparing"
	StatusActive    = "active"
	StatusClosed    = "closed"
)

// Session is one inventory counting exercise for one store.
type Session struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StoreCode string    `gorm:"size:10" json:"store_code"`
	StoreName string    `gorm:"size:100" json:"store_name"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `gorm:"size:20;default:preparing" json:"status"`
}

// TableName overrides the table name.
func (Session) TableName() string {
	return "inv_sessions"
}

// StockLine is one frozen baseline row: the theoretical on-hand quantity
// for a SKU at the moment the session was created. Immutable after creation
// except for operator deletion.
type StockLine struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	SessionID   uint   `gorm:"index" json:"session_id"`
	SKU         string `gorm:"size:50" json:"sku"`
	Alu         string `gorm:"size:50" json:"alu"`
	Description string `gorm:"size:200" json:"description"`
	Department  string `gorm:"size:100" json:"department"`
	Model       string `gorm:"size:100" json:"model"`
	Vendor      string `gorm:"size:100" json:"vendor"`
	Season      string `gorm:"size:100" json:"season"`
	Theoretical int    `json:"theoretical"`
}

// TableName overrides the table name.
func (StockLine) TableName() string {
	return "inv_stock_lines"
}

// Reading is a single scan or manual-entry event from a device. Multiple
// readings per SKU are expected and are summed, never merged in place.
type Reading struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SessionID   uint      `gorm:"index" json:"session_id"`
	SKU         string    `gorm:"size:50" json:"sku"`
	Alu         string    `gorm:"size:50" json:"alu"`
	Description string    `gorm:"size:200" json:"description"`
	Quantity    int       `json:"quantity"`
	Location    string    `gorm:"size:10" json:"location"`
	Device      string    `gorm:"size:50;index" json:"device"`
	Origin      string    `gorm:"size:10;default:scanner" json:"origin"`
	CapturedAt  time.Time `gorm:"autoCreateTime" json:"captured_at"`
}

// TableName overrides the table name.
func (Reading) TableName() string {
	return "inv_readings"
}

// SessionSummary is a session annotated with derived counts for listings:
// the number of baseline lines and the units scanned across all devices.
type SessionSummary struct {
	Session
	TotalLines int `json:"total_lines"`
	TotalUnits int `json:"total_units"`
}
