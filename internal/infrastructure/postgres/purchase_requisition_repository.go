package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/internal/domain/repository"
)

var _ repository.PurchaseRequisitionRepository = (*PurchaseRequisitionRepo)(nil)

// PurchaseRequisitionRepo implements the PurchaseRequisitionRepository port
// on PostgreSQL (pool or tx).
type PurchaseRequisitionRepo struct {
	q Querier
}

// NewPurchaseRequisitionRepository builds the persistence adapter for
// purchase requisitions.
func NewPurchaseRequisitionRepository(q Querier) *PurchaseRequisitionRepo {
	return &PurchaseRequisitionRepo{q: q}
}

const requisitionColumns = `id, requester_id, department_id, item_name, description, quantity,
	estimated_cost, justification, required_date, status,
	hod_approval, procurement_approval, finance_approval, approved_by, rejection_reason,
	created_at, updated_at`

// Create persists a new requisition.
func (r *PurchaseRequisitionRepo) Create(requisition *entity.PurchaseRequisition) error {
	query := `
		INSERT INTO purchase_requisitions (` + requisitionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		requisition.ID, requisition.RequesterID, requisition.DepartmentID,
		requisition.ItemName, requisition.Description, requisition.Quantity,
		requisition.EstimatedCost, requisition.Justification, requisition.RequiredDate,
		requisition.Status, requisition.HODApproval, requisition.ProcurementApproval,
		requisition.FinanceApproval, requisition.ApprovedBy, requisition.RejectionReason,
		requisition.CreatedAt, requisition.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase requisition: %w", err)
	}
	return nil
}

// GetByID fetches one requisition.
func (r *PurchaseRequisitionRepo) GetByID(id string) (*entity.PurchaseRequisition, error) {
	query := `SELECT ` + requisitionColumns + ` FROM purchase_requisitions WHERE id = $1`
	return r.getOne(query, id)
}

// GetForUpdate locks the requisition row to serialize concurrent approvals.
func (r *PurchaseRequisitionRepo) GetForUpdate(id string) (*entity.PurchaseRequisition, error) {
	query := `SELECT ` + requisitionColumns + ` FROM purchase_requisitions WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

func (r *PurchaseRequisitionRepo) getOne(query string, args ...any) (*entity.PurchaseRequisition, error) {
	var p entity.PurchaseRequisition
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.RequesterID, &p.DepartmentID, &p.ItemName, &p.Description, &p.Quantity,
		&p.EstimatedCost, &p.Justification, &p.RequiredDate, &p.Status,
		&p.HODApproval, &p.ProcurementApproval, &p.FinanceApproval, &p.ApprovedBy, &p.RejectionReason,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase requisition: %w", err)
	}
	return &p, nil
}

// Update writes back status, gates and decision metadata.
func (r *PurchaseRequisitionRepo) Update(requisition *entity.PurchaseRequisition) error {
	query := `
		UPDATE purchase_requisitions
		SET status = $2, hod_approval = $3, procurement_approval = $4, finance_approval = $5,
		    approved_by = $6, rejection_reason = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		requisition.ID, requisition.Status, requisition.HODApproval,
		requisition.ProcurementApproval, requisition.FinanceApproval,
		requisition.ApprovedBy, requisition.RejectionReason, requisition.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase requisition: %w", err)
	}
	return nil
}

const requisitionDetailQuery = `
	SELECT p.id, p.requester_id, p.department_id, p.item_name, p.description, p.quantity,
	       p.estimated_cost, p.justification, p.required_date, p.status,
	       p.hod_approval, p.procurement_approval, p.finance_approval, p.approved_by, p.rejection_reason,
	       p.created_at, p.updated_at,
	       u.full_name, d.name
	FROM purchase_requisitions p
	JOIN users u ON u.id = p.requester_id
	JOIN departments d ON d.id = p.department_id`

// GetDetail fetches one requisition with names joined.
func (r *PurchaseRequisitionRepo) GetDetail(id string) (*entity.PurchaseRequisitionDetail, error) {
	details, err := r.queryDetails(requisitionDetailQuery+` WHERE p.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return details[0], nil
}

// List returns all requisitions, newest first.
func (r *PurchaseRequisitionRepo) List() ([]*entity.PurchaseRequisitionDetail, error) {
	return r.queryDetails(requisitionDetailQuery + ` ORDER BY p.created_at DESC`)
}

// ListByRequester filters by the submitting user, newest first.
func (r *PurchaseRequisitionRepo) ListByRequester(requesterID string) ([]*entity.PurchaseRequisitionDetail, error) {
	return r.queryDetails(requisitionDetailQuery+` WHERE p.requester_id = $1 ORDER BY p.created_at DESC`, requesterID)
}

// ListByDepartment filters by the requesting department, newest first.
func (r *PurchaseRequisitionRepo) ListByDepartment(departmentID string) ([]*entity.PurchaseRequisitionDetail, error) {
	return r.queryDetails(requisitionDetailQuery+` WHERE p.department_id = $1 ORDER BY p.created_at DESC`, departmentID)
}

// ListPending returns requisitions still awaiting a decision, oldest first.
func (r *PurchaseRequisitionRepo) ListPending() ([]*entity.PurchaseRequisitionDetail, error) {
	return r.queryDetails(requisitionDetailQuery + ` WHERE p.status = 'PENDING' ORDER BY p.created_at`)
}

func (r *PurchaseRequisitionRepo) queryDetails(query string, args ...any) ([]*entity.PurchaseRequisitionDetail, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query purchase requisitions: %w", err)
	}
	defer rows.Close()

	var out []*entity.PurchaseRequisitionDetail
	for rows.Next() {
		var d entity.PurchaseRequisitionDetail
		if err := rows.Scan(
			&d.ID, &d.RequesterID, &d.DepartmentID, &d.ItemName, &d.Description, &d.Quantity,
			&d.EstimatedCost, &d.Justification, &d.RequiredDate, &d.Status,
			&d.HODApproval, &d.ProcurementApproval, &d.FinanceApproval, &d.ApprovedBy, &d.RejectionReason,
			&d.CreatedAt, &d.UpdatedAt,
			&d.RequesterName, &d.DepartmentName,
		); err != nil {
			return nil, fmt.Errorf("scan purchase requisition: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}
