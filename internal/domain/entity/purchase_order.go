package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder is placed with a vendor after a requisition is approved.
type PurchaseOrder struct {
	ID               string
	RequisitionID    string
	VendorID         string
	TotalAmount      decimal.Decimal
	Status           Status
	ExpectedDelivery *time.Time
	ActualDelivery   *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PurchaseOrderDetail joins vendor and requisition context for listings.
type PurchaseOrderDetail struct {
	PurchaseOrder
	VendorName string
	ItemName   string
}
