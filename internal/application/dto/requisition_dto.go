package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRequisitionRequest body for POST /api/purchase-requisitions.
type CreateRequisitionRequest struct {
	ItemName      string          `json:"item_name" validate:"required"`
	Description   string          `json:"description"`
	Quantity      int             `json:"quantity" validate:"required,min=1"`
	EstimatedCost decimal.Decimal `json:"estimated_cost" validate:"required"`
	Justification string          `json:"justification" validate:"required"`
	RequiredDate  time.Time       `json:"required_date"`
}

// ApproveRequisitionRequest body for PATCH /api/purchase-requisitions/:id/approve.
type ApproveRequisitionRequest struct {
	ApprovalType string `json:"approval_type" validate:"required,oneof=hod procurement finance"`
}

// RejectRequisitionRequest body for PATCH /api/purchase-requisitions/:id/reject.
type RejectRequisitionRequest struct {
	ApprovalType string `json:"approval_type" validate:"required,oneof=hod procurement finance"`
	Reason       string `json:"reason" validate:"required"`
}
