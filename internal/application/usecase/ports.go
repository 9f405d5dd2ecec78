package usecase

import (
	"context"

	"github.com/oseikofi/procure-track/internal/domain/repository"
)

// TxRunner runs fn inside one database transaction with repositories bound
// to that transaction, so each mutation commits together with its audit
// entry.
type TxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		auditRepo repository.AuditLogRepository,
	) error) error

	RunVendor(ctx context.Context, fn func(
		vendorRepo repository.VendorRepository,
		auditRepo repository.AuditLogRepository,
	) error) error

	RunProcurement(ctx context.Context, fn func(
		quotationRepo repository.QuotationRepository,
		orderRepo repository.PurchaseOrderRepository,
		requisitionRepo repository.PurchaseRequisitionRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}
