package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/internal/domain/repository"
)

var _ repository.BorrowRequestRepository = (*BorrowRequestRepo)(nil)

// BorrowRequestRepo implements the BorrowRequestRepository port on
// PostgreSQL (pool or tx).
type BorrowRequestRepo struct {
	q Querier
}

// NewBorrowRequestRepository builds the persistence adapter for borrow
// requests.
func NewBorrowRequestRepository(q Querier) *BorrowRequestRepo {
	return &BorrowRequestRepo{q: q}
}

const borrowColumns = `id, requester_id, requester_department_id, item_id, owning_department_id,
	quantity_requested, justification, required_date, status,
	requester_hod_approval, owner_hod_approval, approved_by, rejection_reason,
	created_at, updated_at`

// Create persists a new borrow request.
func (r *BorrowRequestRepo) Create(request *entity.BorrowRequest) error {
	query := `
		INSERT INTO borrow_requests (` + borrowColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.RequesterID, request.RequesterDepartmentID, request.ItemID,
		request.OwningDepartmentID, request.QuantityRequested, request.Justification,
		request.RequiredDate, request.Status, request.RequesterHODApproval,
		request.OwnerHODApproval, request.ApprovedBy, request.RejectionReason,
		request.CreatedAt, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert borrow request: %w", err)
	}
	return nil
}

// GetByID fetches one borrow request.
func (r *BorrowRequestRepo) GetByID(id string) (*entity.BorrowRequest, error) {
	query := `SELECT ` + borrowColumns + ` FROM borrow_requests WHERE id = $1`
	return r.getOne(query, id)
}

// GetForUpdate locks the request row so concurrent approvals serialize.
func (r *BorrowRequestRepo) GetForUpdate(id string) (*entity.BorrowRequest, error) {
	query := `SELECT ` + borrowColumns + ` FROM borrow_requests WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

func (r *BorrowRequestRepo) getOne(query string, args ...any) (*entity.BorrowRequest, error) {
	var b entity.BorrowRequest
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&b.ID, &b.RequesterID, &b.RequesterDepartmentID, &b.ItemID, &b.OwningDepartmentID,
		&b.QuantityRequested, &b.Justification, &b.RequiredDate, &b.Status,
		&b.RequesterHODApproval, &b.OwnerHODApproval, &b.ApprovedBy, &b.RejectionReason,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get borrow request: %w", err)
	}
	return &b, nil
}

// Update writes back status, gates and decision metadata.
func (r *BorrowRequestRepo) Update(request *entity.BorrowRequest) error {
	query := `
		UPDATE borrow_requests
		SET status = $2, requester_hod_approval = $3, owner_hod_approval = $4,
		    approved_by = $5, rejection_reason = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.Status, request.RequesterHODApproval, request.OwnerHODApproval,
		request.ApprovedBy, request.RejectionReason, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update borrow request: %w", err)
	}
	return nil
}

const borrowDetailQuery = `
	SELECT b.id, b.requester_id, b.requester_department_id, b.item_id, b.owning_department_id,
	       b.quantity_requested, b.justification, b.required_date, b.status,
	       b.requester_hod_approval, b.owner_hod_approval, b.approved_by, b.rejection_reason,
	       b.created_at, b.updated_at,
	       u.full_name, i.code, i.name, i.unit, rd.name, od.name
	FROM borrow_requests b
	JOIN users u ON u.id = b.requester_id
	JOIN items i ON i.id = b.item_id
	JOIN departments rd ON rd.id = b.requester_department_id
	JOIN departments od ON od.id = b.owning_department_id`

// GetDetail fetches one request with names joined.
func (r *BorrowRequestRepo) GetDetail(id string) (*entity.BorrowRequestDetail, error) {
	details, err := r.queryDetails(borrowDetailQuery+` WHERE b.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return details[0], nil
}

// List returns all requests, newest first.
func (r *BorrowRequestRepo) List() ([]*entity.BorrowRequestDetail, error) {
	return r.queryDetails(borrowDetailQuery + ` ORDER BY b.created_at DESC`)
}

// ListByRequester filters by the submitting user, newest first.
func (r *BorrowRequestRepo) ListByRequester(requesterID string) ([]*entity.BorrowRequestDetail, error) {
	return r.queryDetails(borrowDetailQuery+` WHERE b.requester_id = $1 ORDER BY b.created_at DESC`, requesterID)
}

// ListByDepartment returns requests where the department is on either side
// of the transfer.
func (r *BorrowRequestRepo) ListByDepartment(departmentID string) ([]*entity.BorrowRequestDetail, error) {
	return r.queryDetails(borrowDetailQuery+`
		WHERE b.requester_department_id = $1 OR b.owning_department_id = $1
		ORDER BY b.created_at DESC`, departmentID)
}

// ListPending returns requests still awaiting a decision, oldest first.
func (r *BorrowRequestRepo) ListPending() ([]*entity.BorrowRequestDetail, error) {
	return r.queryDetails(borrowDetailQuery + ` WHERE b.status = 'PENDING' ORDER BY b.created_at`)
}

func (r *BorrowRequestRepo) queryDetails(query string, args ...any) ([]*entity.BorrowRequestDetail, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query borrow requests: %w", err)
	}
	defer rows.Close()

	var out []*entity.BorrowRequestDetail
	for rows.Next() {
		var d entity.BorrowRequestDetail
		if err := rows.Scan(
			&d.ID, &d.RequesterID, &d.RequesterDepartmentID, &d.ItemID, &d.OwningDepartmentID,
			&d.QuantityRequested, &d.Justification, &d.RequiredDate, &d.Status,
			&d.RequesterHODApproval, &d.OwnerHODApproval, &d.ApprovedBy, &d.RejectionReason,
			&d.CreatedAt, &d.UpdatedAt,
			&d.RequesterName, &d.ItemCode, &d.ItemName, &d.Unit,
			&d.RequesterDepartmentName, &d.OwningDepartmentName,
		); err != nil {
			return nil, fmt.Errorf("scan borrow request: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}
