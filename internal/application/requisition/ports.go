package requisition

import (
	"context"

	"github.com/oseikofi/procure-track/internal/domain/repository"
)

// TxRunner runs fn inside one database transaction with repositories bound
// to that transaction, so the requisition update and its audit entry commit
// together.
type TxRunner interface {
	RunRequisition(ctx context.Context, fn func(
		requisitionRepo repository.PurchaseRequisitionRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}
