package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implements the PurchaseOrderRepository port on
// PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository builds the persistence adapter for purchase
// orders.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persists a new purchase order.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (id, requisition_id, vendor_id, total_amount, status, expected_delivery, actual_delivery, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.RequisitionID, order.VendorID, order.TotalAmount, order.Status,
		order.ExpectedDelivery, order.ActualDelivery, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

const orderDetailQuery = `
	SELECT o.id, o.requisition_id, o.vendor_id, o.total_amount, o.status,
	       o.expected_delivery, o.actual_delivery, o.created_at, o.updated_at,
	       v.name, p.item_name
	FROM purchase_orders o
	JOIN vendors v ON v.id = o.vendor_id
	JOIN purchase_requisitions p ON p.id = o.requisition_id`

// GetByID fetches one order with vendor and item context.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrderDetail, error) {
	var d entity.PurchaseOrderDetail
	err := r.q.QueryRow(context.Background(), orderDetailQuery+` WHERE o.id = $1`, id).Scan(
		&d.ID, &d.RequisitionID, &d.VendorID, &d.TotalAmount, &d.Status,
		&d.ExpectedDelivery, &d.ActualDelivery, &d.CreatedAt, &d.UpdatedAt,
		&d.VendorName, &d.ItemName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return &d, nil
}

// List returns all orders, newest first.
func (r *PurchaseOrderRepo) List() ([]*entity.PurchaseOrderDetail, error) {
	rows, err := r.q.Query(context.Background(), orderDetailQuery+` ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query purchase orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.PurchaseOrderDetail
	for rows.Next() {
		var d entity.PurchaseOrderDetail
		if err := rows.Scan(
			&d.ID, &d.RequisitionID, &d.VendorID, &d.TotalAmount, &d.Status,
			&d.ExpectedDelivery, &d.ActualDelivery, &d.CreatedAt, &d.UpdatedAt,
			&d.VendorName, &d.ItemName,
		); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}
