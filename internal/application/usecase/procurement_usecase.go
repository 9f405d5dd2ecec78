package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oseikofi/procure-track/internal/application/audit"
	"github.com/oseikofi/procure-track/internal/application/dto"
	"github.com/oseikofi/procure-track/internal/domain"
	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/internal/domain/repository"
)

// ProcurementUseCase handles what happens after a requisition clears its
// gates: collecting vendor quotations and placing the purchase order.
type ProcurementUseCase struct {
	txRunner        TxRunner
	quotationRepo   repository.QuotationRepository
	orderRepo       repository.PurchaseOrderRepository
	requisitionRepo repository.PurchaseRequisitionRepository
	vendorRepo      repository.VendorRepository
}

// NewProcurementUseCase builds the procurement service.
func NewProcurementUseCase(
	txRunner TxRunner,
	quotationRepo repository.QuotationRepository,
	orderRepo repository.PurchaseOrderRepository,
	requisitionRepo repository.PurchaseRequisitionRepository,
	vendorRepo repository.VendorRepository,
) *ProcurementUseCase {
	return &ProcurementUseCase{
		txRunner:        txRunner,
		quotationRepo:   quotationRepo,
		orderRepo:       orderRepo,
		requisitionRepo: requisitionRepo,
		vendorRepo:      vendorRepo,
	}
}

// CreateQuotationInput carries the offer fields plus the acting user.
type CreateQuotationInput struct {
	dto.CreateQuotationRequest
	ActorID   string
	IPAddress string
	UserAgent string
}

// CreateQuotation records a vendor offer against an approved requisition.
// Total price is derived from the requisition quantity.
func (uc *ProcurementUseCase) CreateQuotation(ctx context.Context, in CreateQuotationInput) (*entity.Quotation, error) {
	if in.UnitPrice.Sign() <= 0 {
		return nil, domain.ErrInvalidInput
	}
	req, err := uc.requisitionRepo.GetByID(in.RequisitionID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("requisition %s: %w", in.RequisitionID, domain.ErrNotFound)
	}
	if req.Status != entity.StatusApproved {
		return nil, fmt.Errorf("requisition %s is %s, quotations need an approved requisition: %w",
			req.ID, req.Status, domain.ErrInvalidTransition)
	}
	vendor, err := uc.vendorRepo.GetByID(in.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, fmt.Errorf("vendor %s: %w", in.VendorID, domain.ErrNotFound)
	}

	quotation := &entity.Quotation{
		ID:               uuid.New().String(),
		RequisitionID:    req.ID,
		VendorID:         vendor.ID,
		UnitPrice:        in.UnitPrice,
		TotalPrice:       in.UnitPrice.Mul(decimal.NewFromInt(int64(req.Quantity))),
		DeliveryTimeline: in.DeliveryTimeline,
		ValidUntil:       in.ValidUntil,
		CreatedAt:        time.Now(),
	}

	err = uc.txRunner.RunProcurement(ctx, func(
		quotationRepo repository.QuotationRepository,
		orderRepo repository.PurchaseOrderRepository,
		requisitionRepo repository.PurchaseRequisitionRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		if err := quotationRepo.Create(quotation); err != nil {
			return err
		}
		return audit.Record(auditRepo, audit.Entry{
			ActorID:    in.ActorID,
			Action:     audit.ActionCreateQuotation,
			EntityType: "Quotation",
			EntityID:   quotation.ID,
			After:      quotation,
			IPAddress:  in.IPAddress,
			UserAgent:  in.UserAgent,
		})
	})
	if err != nil {
		return nil, err
	}
	return quotation, nil
}

// ListQuotations returns quotations; a non-empty requisitionID filters to
// one requisition, cheapest first.
func (uc *ProcurementUseCase) ListQuotations(ctx context.Context, requisitionID string) ([]*entity.QuotationDetail, error) {
	if requisitionID != "" {
		return uc.quotationRepo.ListByRequisition(requisitionID)
	}
	return uc.quotationRepo.List()
}

// CreateOrderInput carries the order fields plus the acting user.
type CreateOrderInput struct {
	dto.CreatePurchaseOrderRequest
	ActorID   string
	IPAddress string
	UserAgent string
}

// CreateOrder places a purchase order from a selected quotation. The
// quotation is marked selected and the requisition moves to COMPLETED,
// all in one transaction.
func (uc *ProcurementUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (*entity.PurchaseOrder, error) {
	var order *entity.PurchaseOrder
	err := uc.txRunner.RunProcurement(ctx, func(
		quotationRepo repository.QuotationRepository,
		orderRepo repository.PurchaseOrderRepository,
		requisitionRepo repository.PurchaseRequisitionRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		quotation, err := quotationRepo.GetByID(in.QuotationID)
		if err != nil {
			return err
		}
		if quotation == nil {
			return fmt.Errorf("quotation %s: %w", in.QuotationID, domain.ErrNotFound)
		}
		req, err := requisitionRepo.GetForUpdate(quotation.RequisitionID)
		if err != nil {
			return err
		}
		if req == nil {
			return fmt.Errorf("requisition %s: %w", quotation.RequisitionID, domain.ErrNotFound)
		}
		if req.Status != entity.StatusApproved {
			return fmt.Errorf("requisition %s is %s, orders need an approved requisition: %w",
				req.ID, req.Status, domain.ErrInvalidTransition)
		}

		now := time.Now()
		order = &entity.PurchaseOrder{
			ID:               uuid.New().String(),
			RequisitionID:    req.ID,
			VendorID:         quotation.VendorID,
			TotalAmount:      quotation.TotalPrice,
			Status:           entity.StatusPending,
			ExpectedDelivery: in.ExpectedDelivery,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}

		quotation.IsSelected = true
		if err := quotationRepo.Update(quotation); err != nil {
			return err
		}

		req.Status = entity.StatusCompleted
		req.UpdatedAt = now
		if err := requisitionRepo.Update(req); err != nil {
			return err
		}

		return audit.Record(auditRepo, audit.Entry{
			ActorID:    in.ActorID,
			Action:     audit.ActionCreatePurchaseOrder,
			EntityType: "PurchaseOrder",
			EntityID:   order.ID,
			After:      order,
			IPAddress:  in.IPAddress,
			UserAgent:  in.UserAgent,
		})
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder returns one purchase order with vendor and item context.
func (uc *ProcurementUseCase) GetOrder(ctx context.Context, id string) (*entity.PurchaseOrderDetail, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// ListOrders returns all purchase orders, newest first.
func (uc *ProcurementUseCase) ListOrders(ctx context.Context) ([]*entity.PurchaseOrderDetail, error) {
	return uc.orderRepo.List()
}
