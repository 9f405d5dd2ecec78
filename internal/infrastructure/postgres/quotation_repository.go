package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implements the QuotationRepository port on PostgreSQL.
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository builds the persistence adapter for quotations.
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

// Create persists a new quotation.
func (r *QuotationRepo) Create(quotation *entity.Quotation) error {
	query := `
		INSERT INTO quotations (id, requisition_id, vendor_id, unit_price, total_price, delivery_timeline, valid_until, is_selected, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		quotation.ID, quotation.RequisitionID, quotation.VendorID,
		quotation.UnitPrice, quotation.TotalPrice, quotation.DeliveryTimeline,
		quotation.ValidUntil, quotation.IsSelected, quotation.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quotation: %w", err)
	}
	return nil
}

// GetByID fetches one quotation.
func (r *QuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	query := `
		SELECT id, requisition_id, vendor_id, unit_price, total_price, delivery_timeline, valid_until, is_selected, created_at
		FROM quotations WHERE id = $1`
	var q entity.Quotation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&q.ID, &q.RequisitionID, &q.VendorID, &q.UnitPrice, &q.TotalPrice,
		&q.DeliveryTimeline, &q.ValidUntil, &q.IsSelected, &q.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	return &q, nil
}

// Update writes back the selection flag and pricing.
func (r *QuotationRepo) Update(quotation *entity.Quotation) error {
	query := `
		UPDATE quotations
		SET unit_price = $2, total_price = $3, delivery_timeline = $4, valid_until = $5, is_selected = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		quotation.ID, quotation.UnitPrice, quotation.TotalPrice,
		quotation.DeliveryTimeline, quotation.ValidUntil, quotation.IsSelected,
	)
	if err != nil {
		return fmt.Errorf("update quotation: %w", err)
	}
	return nil
}

const quotationDetailQuery = `
	SELECT q.id, q.requisition_id, q.vendor_id, q.unit_price, q.total_price,
	       q.delivery_timeline, q.valid_until, q.is_selected, q.created_at,
	       v.name
	FROM quotations q
	JOIN vendors v ON v.id = q.vendor_id`

// List returns all quotations, newest first.
func (r *QuotationRepo) List() ([]*entity.QuotationDetail, error) {
	return r.queryDetails(quotationDetailQuery + ` ORDER BY q.created_at DESC`)
}

// ListByRequisition returns one requisition's quotations, cheapest first.
func (r *QuotationRepo) ListByRequisition(requisitionID string) ([]*entity.QuotationDetail, error) {
	return r.queryDetails(quotationDetailQuery+` WHERE q.requisition_id = $1 ORDER BY q.total_price`, requisitionID)
}

func (r *QuotationRepo) queryDetails(query string, args ...any) ([]*entity.QuotationDetail, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query quotations: %w", err)
	}
	defer rows.Close()

	var out []*entity.QuotationDetail
	for rows.Next() {
		var d entity.QuotationDetail
		if err := rows.Scan(
			&d.ID, &d.RequisitionID, &d.VendorID, &d.UnitPrice, &d.TotalPrice,
			&d.DeliveryTimeline, &d.ValidUntil, &d.IsSelected, &d.CreatedAt,
			&d.VendorName,
		); err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}
