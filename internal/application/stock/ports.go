package stock

import (
	"context"

	"github.com/oseikofi/procure-track/internal/domain/repository"
)

// TxRunner runs fn inside one database transaction, handing it repositories
// bound to that transaction. Guarantees atomicity for ledger operations and
// their audit entries.
type TxRunner interface {
	RunStock(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movementRepo repository.StockMovementRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}
