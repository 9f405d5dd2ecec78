package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oseikofi/procure-track/internal/domain"
	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implements the StockRepository port on PostgreSQL (pool or tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository builds the persistence adapter for stock records.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id, item_id, department_id, quantity_available, quantity_reserved, last_updated`

// Get fetches the stock record for an (item, department) pair. Returns
// nil, nil when the pair has no record yet.
func (r *StockRepo) Get(itemID, departmentID string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE item_id = $1 AND department_id = $2`
	return r.getOne(query, itemID, departmentID)
}

// GetForUpdate locks the row (SELECT FOR UPDATE). Only meaningful inside a
// transaction.
func (r *StockRepo) GetForUpdate(itemID, departmentID string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE item_id = $1 AND department_id = $2 FOR UPDATE`
	return r.getOne(query, itemID, departmentID)
}

func (r *StockRepo) getOne(query string, args ...any) (*entity.Stock, error) {
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&s.ID, &s.ItemID, &s.DepartmentID, &s.QuantityAvailable, &s.QuantityReserved, &s.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Create persists a new stock record. The (item, department) pair is unique.
func (r *StockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO stocks (id, item_id, department_id, quantity_available, quantity_reserved, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.ItemID, stock.DepartmentID,
		stock.QuantityAvailable, stock.QuantityReserved, stock.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// Update writes back the quantities.
func (r *StockRepo) Update(stock *entity.Stock) error {
	query := `
		UPDATE stocks SET quantity_available = $2, quantity_reserved = $3, last_updated = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.QuantityAvailable, stock.QuantityReserved, stock.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

const stockDetailQuery = `
	SELECT s.id, s.item_id, s.department_id, s.quantity_available, s.quantity_reserved, s.last_updated,
	       i.code, i.name, i.unit, i.min_reorder_level, d.name
	FROM stocks s
	JOIN items i ON i.id = s.item_id
	JOIN departments d ON d.id = s.department_id`

// List returns all stock records with item and department names.
func (r *StockRepo) List() ([]*entity.StockDetail, error) {
	return r.queryDetails(stockDetailQuery + ` ORDER BY d.name, i.code`)
}

// ListByDepartment filters by owning department.
func (r *StockRepo) ListByDepartment(departmentID string) ([]*entity.StockDetail, error) {
	return r.queryDetails(stockDetailQuery+` WHERE s.department_id = $1 ORDER BY i.code`, departmentID)
}

// ListByItem filters by item across departments.
func (r *StockRepo) ListByItem(itemID string) ([]*entity.StockDetail, error) {
	return r.queryDetails(stockDetailQuery+` WHERE s.item_id = $1 ORDER BY d.name`, itemID)
}

// ListLow returns records at or below the item's minimum reorder level.
func (r *StockRepo) ListLow() ([]*entity.StockDetail, error) {
	return r.queryDetails(stockDetailQuery + ` WHERE s.quantity_available <= i.min_reorder_level ORDER BY d.name, i.code`)
}

func (r *StockRepo) queryDetails(query string, args ...any) ([]*entity.StockDetail, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query stocks: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockDetail
	for rows.Next() {
		var d entity.StockDetail
		if err := rows.Scan(
			&d.ID, &d.ItemID, &d.DepartmentID, &d.QuantityAvailable, &d.QuantityReserved, &d.LastUpdated,
			&d.ItemCode, &d.ItemName, &d.Unit, &d.MinReorderLevel, &d.DepartmentName,
		); err != nil {
			return nil, fmt.Errorf("scan stock detail: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}
