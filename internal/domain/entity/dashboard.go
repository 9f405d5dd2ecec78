package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats aggregates the landing-page KPIs.
type DashboardStats struct {
	TotalStockValue decimal.Decimal
	PendingRequests int // pending borrow requests + pending requisitions
	LowStockItems   int
	ActiveVendors   int
}

// Activity is one entry in the recent-activity feed, merged from borrow
// requests and purchase requisitions.
type Activity struct {
	ID          string
	Type        string // borrow_request or purchase_requisition
	Title       string
	Description string
	User        string
	Status      Status
	Timestamp   time.Time
}
