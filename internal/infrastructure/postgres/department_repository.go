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

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo implements the DepartmentRepository port on PostgreSQL.
type DepartmentRepo struct {
	q Querier
}

// NewDepartmentRepository builds the persistence adapter for departments.
func NewDepartmentRepository(q Querier) *DepartmentRepo {
	return &DepartmentRepo{q: q}
}

// Create persists a new department.
func (r *DepartmentRepo) Create(department *entity.Department) error {
	query := `
		INSERT INTO departments (id, name, hod_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		department.ID, department.Name, department.HODID, department.CreatedAt, department.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert department: %w", err)
	}
	return nil
}

// GetByID fetches one department by id.
func (r *DepartmentRepo) GetByID(id string) (*entity.Department, error) {
	query := `
		SELECT id, name, hod_id, created_at, updated_at
		FROM departments WHERE id = $1`
	var d entity.Department
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Name, &d.HODID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get department: %w", err)
	}
	return &d, nil
}

// List returns all departments ordered by name.
func (r *DepartmentRepo) List() ([]*entity.Department, error) {
	query := `
		SELECT id, name, hod_id, created_at, updated_at
		FROM departments ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var out []*entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.HODID, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// Update modifies an existing department.
func (r *DepartmentRepo) Update(department *entity.Department) error {
	query := `
		UPDATE departments SET name = $2, hod_id = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		department.ID, department.Name, department.HODID, department.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update department: %w", err)
	}
	return nil
}
