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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implements the ItemRepository port on PostgreSQL.
type ItemRepo struct {
	q Querier
}

// NewItemRepository builds the persistence adapter for catalog items.
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persists a new item.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, code, name, description, category_id, unit, min_reorder_level, unit_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Name, item.Description, item.CategoryID,
		item.Unit, item.MinReorderLevel, item.UnitPrice, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID fetches one item by id.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.getBy("id", id)
}

// GetByCode fetches one item by its unique code.
func (r *ItemRepo) GetByCode(code string) (*entity.Item, error) {
	return r.getBy("code", code)
}

func (r *ItemRepo) getBy(column, value string) (*entity.Item, error) {
	query := fmt.Sprintf(`
		SELECT id, code, name, description, category_id, unit, min_reorder_level, unit_price, created_at, updated_at
		FROM items WHERE %s = $1`, column)
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&it.ID, &it.Code, &it.Name, &it.Description, &it.CategoryID,
		&it.Unit, &it.MinReorderLevel, &it.UnitPrice, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by %s: %w", column, err)
	}
	return &it, nil
}

// Update modifies an existing item. Code is immutable.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, description = $3, category_id = $4, unit = $5, min_reorder_level = $6, unit_price = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.CategoryID, item.Unit,
		item.MinReorderLevel, item.UnitPrice, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// List returns all items ordered by code.
func (r *ItemRepo) List() ([]*entity.Item, error) {
	query := `
		SELECT id, code, name, description, category_id, unit, min_reorder_level, unit_price, created_at, updated_at
		FROM items ORDER BY code`
	return r.queryItems(query)
}

// Search filters items by code or name, case-insensitive.
func (r *ItemRepo) Search(q string) ([]*entity.Item, error) {
	query := `
		SELECT id, code, name, description, category_id, unit, min_reorder_level, unit_price, created_at, updated_at
		FROM items WHERE code ILIKE $1 OR name ILIKE $1 ORDER BY code`
	return r.queryItems(query, "%"+q+"%")
}

func (r *ItemRepo) queryItems(query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var out []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(
			&it.ID, &it.Code, &it.Name, &it.Description, &it.CategoryID,
			&it.Unit, &it.MinReorderLevel, &it.UnitPrice, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}
