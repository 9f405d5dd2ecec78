package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/oseikofi/procure-track/internal/application/audit"
	"github.com/oseikofi/procure-track/internal/domain"
	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/internal/domain/repository"
)

// InitialStockReason is recorded on the movement written when a stock
// record is first created by hand.
const InitialStockReason = "Initial stock creation"

// UseCase exposes stocking operations and the ledger's read projections.
type UseCase struct {
	txRunner     TxRunner
	stockRepo    repository.StockRepository
	movementRepo repository.StockMovementRepository
	itemRepo     repository.ItemRepository
	deptRepo     repository.DepartmentRepository
	ledger       Ledger
}

// NewUseCase builds the stock use case. stockRepo and movementRepo here are
// pool-bound and used for reads only; mutations run through txRunner.
func NewUseCase(
	txRunner TxRunner,
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
	itemRepo repository.ItemRepository,
	deptRepo repository.DepartmentRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		stockRepo:    stockRepo,
		movementRepo: movementRepo,
		itemRepo:     itemRepo,
		deptRepo:     deptRepo,
	}
}

// CreateInitialInput parameters for stocking a department for the first time.
type CreateInitialInput struct {
	ItemID       string
	DepartmentID string
	Quantity     int
	ActorID      string
	IPAddress    string
	UserAgent    string
}

// CreateInitial creates a stock record with the full quantity available and
// nothing reserved, appends the initial IN movement and audits the creation,
// all in one transaction. Fails with ErrDuplicate when the pair already has
// a record.
func (uc *UseCase) CreateInitial(ctx context.Context, in CreateInitialInput) (*entity.Stock, error) {
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	dept, err := uc.deptRepo.GetByID(in.DepartmentID)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	rec := &entity.Stock{
		ID:                uuid.New().String(),
		ItemID:            in.ItemID,
		DepartmentID:      in.DepartmentID,
		QuantityAvailable: in.Quantity,
		QuantityReserved:  0,
		LastUpdated:       now,
	}

	err = uc.txRunner.RunStock(ctx, func(
		stockRepo repository.StockRepository,
		movementRepo repository.StockMovementRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		existing, err := stockRepo.GetForUpdate(in.ItemID, in.DepartmentID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		if err := stockRepo.Create(rec); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:           uuid.New().String(),
			StockID:      rec.ID,
			MovementType: entity.MovementTypeIN,
			Quantity:     in.Quantity,
			Reason:       InitialStockReason,
			PerformedBy:  in.ActorID,
			CreatedAt:    now,
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}
		return audit.Record(auditRepo, audit.Entry{
			ActorID:    in.ActorID,
			Action:     audit.ActionCreateStock,
			EntityType: "Stock",
			EntityID:   rec.ID,
			After:      rec,
			IPAddress:  in.IPAddress,
			UserAgent:  in.UserAgent,
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns the stock record for the pair, or nil when none exists.
func (uc *UseCase) Get(ctx context.Context, itemID, departmentID string) (*entity.Stock, error) {
	return uc.stockRepo.Get(itemID, departmentID)
}

// List returns all stock records with item and department names joined.
func (uc *UseCase) List(ctx context.Context) ([]*entity.StockDetail, error) {
	return uc.stockRepo.List()
}

// ListByDepartment filters the stock projection by holding department.
func (uc *UseCase) ListByDepartment(ctx context.Context, departmentID string) ([]*entity.StockDetail, error) {
	return uc.stockRepo.ListByDepartment(departmentID)
}

// ListByItem filters the stock projection by item.
func (uc *UseCase) ListByItem(ctx context.Context, itemID string) ([]*entity.StockDetail, error) {
	return uc.stockRepo.ListByItem(itemID)
}

// LowStock returns records at or below the item's minimum reorder level.
func (uc *UseCase) LowStock(ctx context.Context) ([]*entity.StockDetail, error) {
	return uc.stockRepo.ListLow()
}

// Movements returns movement history, optionally scoped to one stock record.
func (uc *UseCase) Movements(ctx context.Context, stockID string) ([]*entity.StockMovementDetail, error) {
	if stockID != "" {
		return uc.movementRepo.ListByStock(stockID)
	}
	return uc.movementRepo.List(100)
}
