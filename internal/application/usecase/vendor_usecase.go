package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oseikofi/procure-track/internal/application/audit"
	"github.com/oseikofi/procure-track/internal/application/dto"
	"github.com/oseikofi/procure-track/internal/domain"
	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/internal/domain/repository"
)

// VendorUseCase manages the supplier registry. Writes are restricted to
// procurement at the HTTP layer.
type VendorUseCase struct {
	txRunner   TxRunner
	vendorRepo repository.VendorRepository
}

// NewVendorUseCase builds the vendor service.
func NewVendorUseCase(txRunner TxRunner, vendorRepo repository.VendorRepository) *VendorUseCase {
	return &VendorUseCase{txRunner: txRunner, vendorRepo: vendorRepo}
}

// CreateVendorInput carries the registration fields plus the acting user.
type CreateVendorInput struct {
	dto.CreateVendorRequest
	ActorID   string
	IPAddress string
	UserAgent string
}

// Create registers a vendor. New vendors start PENDING.
func (uc *VendorUseCase) Create(ctx context.Context, in CreateVendorInput) (*entity.Vendor, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	vendor := &entity.Vendor{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		RegistrationNumber: in.RegistrationNumber,
		Email:              in.Email,
		Phone:              in.Phone,
		Address:            in.Address,
		ContactPerson:      in.ContactPerson,
		Status:             entity.VendorStatusPending,
		Categories:         in.Categories,
		Rating:             decimal.Zero,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err := uc.txRunner.RunVendor(ctx, func(
		vendorRepo repository.VendorRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		if err := vendorRepo.Create(vendor); err != nil {
			return err
		}
		return audit.Record(auditRepo, audit.Entry{
			ActorID:    in.ActorID,
			Action:     audit.ActionCreateVendor,
			EntityType: "Vendor",
			EntityID:   vendor.ID,
			After:      vendor,
			IPAddress:  in.IPAddress,
			UserAgent:  in.UserAgent,
		})
	})
	if err != nil {
		return nil, err
	}
	return vendor, nil
}

// UpdateVendorInput carries the patch fields plus the acting user.
type UpdateVendorInput struct {
	dto.UpdateVendorRequest
	VendorID  string
	ActorID   string
	IPAddress string
	UserAgent string
}

// Update applies a partial update and audits the change with before and
// after snapshots.
func (uc *VendorUseCase) Update(ctx context.Context, in UpdateVendorInput) (*entity.Vendor, error) {
	vendor, err := uc.vendorRepo.GetByID(in.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}

	before := *vendor
	if in.Name != nil {
		vendor.Name = *in.Name
	}
	if in.Email != nil {
		vendor.Email = *in.Email
	}
	if in.Phone != nil {
		vendor.Phone = *in.Phone
	}
	if in.Address != nil {
		vendor.Address = *in.Address
	}
	if in.ContactPerson != nil {
		vendor.ContactPerson = *in.ContactPerson
	}
	if in.Status != nil {
		vendor.Status = *in.Status
	}
	if in.Categories != nil {
		vendor.Categories = in.Categories
	}
	vendor.UpdatedAt = time.Now()

	err = uc.txRunner.RunVendor(ctx, func(
		vendorRepo repository.VendorRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		if err := vendorRepo.Update(vendor); err != nil {
			return err
		}
		return audit.Record(auditRepo, audit.Entry{
			ActorID:    in.ActorID,
			Action:     audit.ActionUpdateVendor,
			EntityType: "Vendor",
			EntityID:   vendor.ID,
			Before:     before,
			After:      vendor,
			IPAddress:  in.IPAddress,
			UserAgent:  in.UserAgent,
		})
	})
	if err != nil {
		return nil, err
	}
	return vendor, nil
}

// Get returns one vendor.
func (uc *VendorUseCase) Get(ctx context.Context, id string) (*entity.Vendor, error) {
	vendor, err := uc.vendorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	return vendor, nil
}

// List returns vendors; activeOnly restricts to ACTIVE status.
func (uc *VendorUseCase) List(ctx context.Context, activeOnly bool) ([]*entity.Vendor, error) {
	if activeOnly {
		return uc.vendorRepo.ListActive()
	}
	return uc.vendorRepo.List()
}
