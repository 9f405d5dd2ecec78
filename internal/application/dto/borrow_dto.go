package dto

import "time"

// CreateBorrowRequest body for POST /api/borrow-requests.
type CreateBorrowRequest struct {
	ItemID             string    `json:"item_id" validate:"required"`
	OwningDepartmentID string    `json:"owning_department_id" validate:"required"`
	QuantityRequested  int       `json:"quantity_requested" validate:"required,min=1"`
	Justification      string    `json:"justification" validate:"required"`
	RequiredDate       time.Time `json:"required_date"`
}

// ApproveBorrowRequest body for PATCH /api/borrow-requests/:id/approve.
// approval_type selects which HOD gate the caller is closing.
type ApproveBorrowRequest struct {
	ApprovalType string `json:"approval_type" validate:"required,oneof=requester_hod owner_hod"`
}

// RejectBorrowRequest body for PATCH /api/borrow-requests/:id/reject.
type RejectBorrowRequest struct {
	ApprovalType string `json:"approval_type" validate:"required,oneof=requester_hod owner_hod"`
	Reason       string `json:"reason" validate:"required"`
}
