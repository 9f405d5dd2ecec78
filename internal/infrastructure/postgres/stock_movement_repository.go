package postgres

import (
	"context"
	"fmt"

	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implements the StockMovementRepository port on
// PostgreSQL. The table is append-only.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository builds the persistence adapter for movements.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create appends one movement row.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, stock_id, movement_type, quantity, reason, reference_id, performed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.StockID, movement.MovementType, movement.Quantity,
		movement.Reason, movement.ReferenceID, movement.PerformedBy, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

const movementDetailQuery = `
	SELECT m.id, m.stock_id, m.movement_type, m.quantity, m.reason, m.reference_id, m.performed_by, m.created_at,
	       i.name, d.name, COALESCE(u.full_name, '')
	FROM stock_movements m
	JOIN stocks s ON s.id = m.stock_id
	JOIN items i ON i.id = s.item_id
	JOIN departments d ON d.id = s.department_id
	LEFT JOIN users u ON u.id = NULLIF(m.performed_by, '')`

// List returns the newest movements up to limit.
func (r *StockMovementRepo) List(limit int) ([]*entity.StockMovementDetail, error) {
	return r.queryDetails(movementDetailQuery+` ORDER BY m.created_at DESC LIMIT $1`, limit)
}

// ListByStock returns the movement history of one stock record, newest
// first.
func (r *StockMovementRepo) ListByStock(stockID string) ([]*entity.StockMovementDetail, error) {
	return r.queryDetails(movementDetailQuery+` WHERE m.stock_id = $1 ORDER BY m.created_at DESC`, stockID)
}

// CountByReference counts movements caused by one request.
func (r *StockMovementRepo) CountByReference(referenceID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM stock_movements WHERE reference_id = $1`, referenceID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count stock movements: %w", err)
	}
	return n, nil
}

func (r *StockMovementRepo) queryDetails(query string, args ...any) ([]*entity.StockMovementDetail, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query stock movements: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockMovementDetail
	for rows.Next() {
		var d entity.StockMovementDetail
		if err := rows.Scan(
			&d.ID, &d.StockID, &d.MovementType, &d.Quantity, &d.Reason,
			&d.ReferenceID, &d.PerformedBy, &d.CreatedAt,
			&d.ItemName, &d.DepartmentName, &d.PerformedByName,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}
