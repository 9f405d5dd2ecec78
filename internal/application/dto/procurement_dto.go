package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateQuotationRequest body for POST /api/quotations. Records a vendor
// offer against an approved requisition.
type CreateQuotationRequest struct {
	RequisitionID    string          `json:"requisition_id" validate:"required"`
	VendorID         string          `json:"vendor_id" validate:"required"`
	UnitPrice        decimal.Decimal `json:"unit_price" validate:"required"`
	DeliveryTimeline string          `json:"delivery_timeline"`
	ValidUntil       *time.Time      `json:"valid_until"`
}

// CreatePurchaseOrderRequest body for POST /api/purchase-orders. The selected
// quotation fixes vendor and amount.
type CreatePurchaseOrderRequest struct {
	QuotationID      string     `json:"quotation_id" validate:"required"`
	ExpectedDelivery *time.Time `json:"expected_delivery"`
}
