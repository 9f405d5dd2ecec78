package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oseikofi/procure-track/internal/domain"
)

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleGeneralUser, RoleHOD, RoleProcurementManager, RoleFinanceOfficer} {
		assert.True(t, ValidRole(role), role)
	}
	assert.False(t, ValidRole(""))
	assert.False(t, ValidRole("ADMIN"))
}

func TestParseBorrowApprovalType(t *testing.T) {
	got, err := ParseBorrowApprovalType("owner_hod")
	require.NoError(t, err)
	assert.Equal(t, BorrowApprovalOwnerHOD, got)

	_, err = ParseBorrowApprovalType("OWNER_HOD")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseRequisitionApprovalType(t *testing.T) {
	for _, s := range []string{"hod", "procurement", "finance"} {
		_, err := ParseRequisitionApprovalType(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseRequisitionApprovalType("ceo")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBorrowRequestGates(t *testing.T) {
	r := &BorrowRequest{
		RequesterHODApproval: StatusPending,
		OwnerHODApproval:     StatusPending,
	}
	assert.False(t, r.BothGatesApproved())

	r.SetGate(BorrowApprovalOwnerHOD, StatusApproved)
	assert.Equal(t, StatusApproved, r.Gate(BorrowApprovalOwnerHOD))
	assert.Equal(t, StatusPending, r.Gate(BorrowApprovalRequesterHOD))
	assert.False(t, r.BothGatesApproved())

	r.SetGate(BorrowApprovalRequesterHOD, StatusApproved)
	assert.True(t, r.BothGatesApproved())
}

func TestRequisitionGates(t *testing.T) {
	r := &PurchaseRequisition{
		HODApproval:         StatusPending,
		ProcurementApproval: StatusPending,
		FinanceApproval:     StatusPending,
	}
	r.SetGate(RequisitionApprovalProcurement, StatusApproved)
	assert.Equal(t, StatusApproved, r.Gate(RequisitionApprovalProcurement))
	assert.Equal(t, StatusPending, r.Gate(RequisitionApprovalHOD))
	assert.Equal(t, StatusPending, r.Gate(RequisitionApprovalFinance))
}

func TestStockUnreserved(t *testing.T) {
	s := &Stock{QuantityAvailable: 10, QuantityReserved: 4}
	assert.Equal(t, 6, s.Unreserved())
}
