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

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implements the VendorRepository port on PostgreSQL.
type VendorRepo struct {
	q Querier
}

// NewVendorRepository builds the persistence adapter for vendors.
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

const vendorColumns = `id, name, registration_number, email, phone, address, contact_person,
	status, categories, rating, created_at, updated_at`

// Create persists a new vendor.
func (r *VendorRepo) Create(vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		vendor.ID, vendor.Name, vendor.RegistrationNumber, vendor.Email, vendor.Phone,
		vendor.Address, vendor.ContactPerson, vendor.Status, vendor.Categories,
		vendor.Rating, vendor.CreatedAt, vendor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID fetches one vendor.
func (r *VendorRepo) GetByID(id string) (*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1`
	var v entity.Vendor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.Name, &v.RegistrationNumber, &v.Email, &v.Phone, &v.Address,
		&v.ContactPerson, &v.Status, &v.Categories, &v.Rating, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

// Update writes back the mutable vendor fields.
func (r *VendorRepo) Update(vendor *entity.Vendor) error {
	query := `
		UPDATE vendors
		SET name = $2, email = $3, phone = $4, address = $5, contact_person = $6,
		    status = $7, categories = $8, rating = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		vendor.ID, vendor.Name, vendor.Email, vendor.Phone, vendor.Address,
		vendor.ContactPerson, vendor.Status, vendor.Categories, vendor.Rating, vendor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	return nil
}

// List returns all vendors ordered by name.
func (r *VendorRepo) List() ([]*entity.Vendor, error) {
	return r.queryVendors(`SELECT ` + vendorColumns + ` FROM vendors ORDER BY name`)
}

// ListActive returns ACTIVE vendors ordered by name.
func (r *VendorRepo) ListActive() ([]*entity.Vendor, error) {
	return r.queryVendors(`SELECT ` + vendorColumns + ` FROM vendors WHERE status = 'ACTIVE' ORDER BY name`)
}

func (r *VendorRepo) queryVendors(query string, args ...any) ([]*entity.Vendor, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query vendors: %w", err)
	}
	defer rows.Close()

	var out []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(
			&v.ID, &v.Name, &v.RegistrationNumber, &v.Email, &v.Phone, &v.Address,
			&v.ContactPerson, &v.Status, &v.Categories, &v.Rating, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}
