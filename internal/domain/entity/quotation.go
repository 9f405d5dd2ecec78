package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quotation is a vendor's offer against a purchase requisition.
type Quotation struct {
	ID               string
	RequisitionID    string
	VendorID         string
	UnitPrice        decimal.Decimal
	TotalPrice       decimal.Decimal
	DeliveryTimeline string
	ValidUntil       *time.Time
	IsSelected       bool
	CreatedAt        time.Time
}

// QuotationDetail joins the vendor name for listings.
type QuotationDetail struct {
	Quotation
	VendorName string
}
