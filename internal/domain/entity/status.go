package entity

// Status values shared by borrow requests, purchase requisitions and their
// approval gates.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCompleted Status = "COMPLETED"
)

// IsTerminal reports whether no further approve/reject may touch the record.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCompleted
}

// User roles.
const (
	RoleGeneralUser        = "GENERAL_USER"
	RoleHOD                = "HOD"
	RoleProcurementManager = "PROCUREMENT_MANAGER"
	RoleFinanceOfficer     = "FINANCE_OFFICER"
)

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool {
	switch s {
	case RoleGeneralUser, RoleHOD, RoleProcurementManager, RoleFinanceOfficer:
		return true
	}
	return false
}
