package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oseikofi/procure-track/internal/application/borrow"
	"github.com/oseikofi/procure-track/internal/application/requisition"
	"github.com/oseikofi/procure-track/internal/application/stock"
	"github.com/oseikofi/procure-track/internal/application/usecase"
	"github.com/oseikofi/procure-track/internal/domain/repository"
)

// Ensure TxRunner satisfies every application-layer transaction port.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ borrow.TxRunner = (*TxRunner)(nil)
var _ requisition.TxRunner = (*TxRunner)(nil)
var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner on top of the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunStock starts a transaction, runs fn with tx-bound ledger repositories
// and commits or rolls back.
func (r *TxRunner) RunStock(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockRepository(tx), NewStockMovementRepository(tx), NewAuditLogRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunBorrow starts a transaction spanning the borrow request, the ledger
// and the audit trail.
func (r *TxRunner) RunBorrow(ctx context.Context, fn func(
	borrowRepo repository.BorrowRequestRepository,
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewBorrowRequestRepository(tx),
		NewStockRepository(tx),
		NewStockMovementRepository(tx),
		NewAuditLogRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRequisition starts a transaction over the requisition and the audit
// trail.
func (r *TxRunner) RunRequisition(ctx context.Context, fn func(
	requisitionRepo repository.PurchaseRequisitionRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPurchaseRequisitionRepository(tx), NewAuditLogRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCatalog starts a transaction over the item catalog and the audit trail.
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewItemRepository(tx), NewAuditLogRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunVendor starts a transaction over the vendor registry and the audit
// trail.
func (r *TxRunner) RunVendor(ctx context.Context, fn func(
	vendorRepo repository.VendorRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewVendorRepository(tx), NewAuditLogRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProcurement starts a transaction spanning quotations, purchase orders,
// the requisition and the audit trail (used when placing an order).
func (r *TxRunner) RunProcurement(ctx context.Context, fn func(
	quotationRepo repository.QuotationRepository,
	orderRepo repository.PurchaseOrderRepository,
	requisitionRepo repository.PurchaseRequisitionRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewQuotationRepository(tx),
		NewPurchaseOrderRepository(tx),
		NewPurchaseRequisitionRepository(tx),
		NewAuditLogRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
