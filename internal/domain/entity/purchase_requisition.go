package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oseikofi/procure-track/internal/domain"
)

// RequisitionApprovalType identifies one of the three sign-off gates.
type RequisitionApprovalType string

const (
	RequisitionApprovalHOD         RequisitionApprovalType = "hod"
	RequisitionApprovalProcurement RequisitionApprovalType = "procurement"
	RequisitionApprovalFinance     RequisitionApprovalType = "finance"
)

// ParseRequisitionApprovalType converts the wire value into the closed enum.
func ParseRequisitionApprovalType(s string) (RequisitionApprovalType, error) {
	switch t := RequisitionApprovalType(s); t {
	case RequisitionApprovalHOD, RequisitionApprovalProcurement, RequisitionApprovalFinance:
		return t, nil
	}
	return "", domain.ErrInvalidInput
}

// PurchaseRequisition is a new-purchase request passing a three-gate
// sign-off: HOD, procurement, finance. Finance commits funds last, so
// completion is detected when the finance gate closes. Purchased goods are
// not yet owned stock; the requisition never touches the ledger.
type PurchaseRequisition struct {
	ID                  string
	RequesterID         string
	DepartmentID        string
	ItemName            string
	Description         string
	Quantity            int
	EstimatedCost       decimal.Decimal
	Justification       string
	RequiredDate        time.Time
	Status              Status
	HODApproval         Status
	ProcurementApproval Status
	FinanceApproval     Status
	ApprovedBy          string
	RejectionReason     string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Gate returns the approval field addressed by t.
func (r *PurchaseRequisition) Gate(t RequisitionApprovalType) Status {
	switch t {
	case RequisitionApprovalProcurement:
		return r.ProcurementApproval
	case RequisitionApprovalFinance:
		return r.FinanceApproval
	}
	return r.HODApproval
}

// SetGate sets the approval field addressed by t.
func (r *PurchaseRequisition) SetGate(t RequisitionApprovalType, s Status) {
	switch t {
	case RequisitionApprovalProcurement:
		r.ProcurementApproval = s
	case RequisitionApprovalFinance:
		r.FinanceApproval = s
	default:
		r.HODApproval = s
	}
}

// PurchaseRequisitionDetail joins requester and department names.
type PurchaseRequisitionDetail struct {
	PurchaseRequisition
	RequesterName  string
	DepartmentName string
}
