package repository

import "github.com/oseikofi/procure-track/internal/domain/entity"

// VendorRepository is the persistence port for vendors.
type VendorRepository interface {
	Create(vendor *entity.Vendor) error
	GetByID(id string) (*entity.Vendor, error)
	Update(vendor *entity.Vendor) error
	List() ([]*entity.Vendor, error)
	ListActive() ([]*entity.Vendor, error)
}
