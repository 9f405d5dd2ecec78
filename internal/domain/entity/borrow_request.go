package entity

import (
	"time"

	"github.com/oseikofi/procure-track/internal/domain"
)

// BorrowApprovalType identifies which HOD gate an approval or rejection
// targets.
type BorrowApprovalType string

const (
	BorrowApprovalRequesterHOD BorrowApprovalType = "requester_hod"
	BorrowApprovalOwnerHOD     BorrowApprovalType = "owner_hod"
)

// ParseBorrowApprovalType converts the wire value into the closed enum.
// Unknown values are an input error, not a silent no-op.
func ParseBorrowApprovalType(s string) (BorrowApprovalType, error) {
	switch t := BorrowApprovalType(s); t {
	case BorrowApprovalRequesterHOD, BorrowApprovalOwnerHOD:
		return t, nil
	}
	return "", domain.ErrInvalidInput
}

// BorrowRequest is an inter-department transfer request. Two independent HOD
// gates feed the overall status; both must approve before stock moves.
type BorrowRequest struct {
	ID                    string
	RequesterID           string
	RequesterDepartmentID string
	ItemID                string
	OwningDepartmentID    string
	QuantityRequested     int
	Justification         string
	RequiredDate          time.Time
	Status                Status
	RequesterHODApproval  Status
	OwnerHODApproval      Status
	ApprovedBy            string // last actor
	RejectionReason       string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Gate returns the approval field addressed by t.
func (r *BorrowRequest) Gate(t BorrowApprovalType) Status {
	if t == BorrowApprovalOwnerHOD {
		return r.OwnerHODApproval
	}
	return r.RequesterHODApproval
}

// SetGate sets the approval field addressed by t.
func (r *BorrowRequest) SetGate(t BorrowApprovalType, s Status) {
	if t == BorrowApprovalOwnerHOD {
		r.OwnerHODApproval = s
		return
	}
	r.RequesterHODApproval = s
}

// BothGatesApproved reports whether the transfer may fire.
func (r *BorrowRequest) BothGatesApproved() bool {
	return r.RequesterHODApproval == StatusApproved && r.OwnerHODApproval == StatusApproved
}

// BorrowRequestDetail is the read projection joining requester, item and
// department names.
type BorrowRequestDetail struct {
	BorrowRequest
	RequesterName           string
	ItemCode                string
	ItemName                string
	Unit                    string
	RequesterDepartmentName string
	OwningDepartmentName    string
}
