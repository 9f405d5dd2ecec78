package borrow

import (
	"context"

	"github.com/oseikofi/procure-track/internal/domain/repository"
)

// TxRunner runs fn inside one database transaction with repositories bound
// to that transaction. The request row update, the ledger mutations and the
// audit entry commit together or not at all.
type TxRunner interface {
	RunBorrow(ctx context.Context, fn func(
		borrowRepo repository.BorrowRequestRepository,
		stockRepo repository.StockRepository,
		movementRepo repository.StockMovementRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}
