package stock

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oseikofi/procure-track/internal/domain"
	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/internal/domain/repository"
)

// Ledger applies quantity changes to stock records through repositories
// bound to the caller's transaction, so workflows can combine ledger calls
// with their own writes atomically. Every method locks the stock row
// (SELECT FOR UPDATE) before mutating it.
//
// Reserve and Release manage holds and write no movement rows; TransferOut
// and TransferIn are physical movements and append exactly one row each.
type Ledger struct{}

// Reserve places a hold of qty units on (itemID, departmentID). Fails with
// ErrInsufficientStock when the unreserved quantity is smaller than qty.
func (Ledger) Reserve(stockRepo repository.StockRepository, itemID, departmentID string, qty int) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	rec, err := stockRepo.GetForUpdate(itemID, departmentID)
	if err != nil {
		return err
	}
	if rec == nil || rec.Unreserved() < qty {
		return domain.ErrInsufficientStock
	}
	rec.QuantityReserved += qty
	rec.LastUpdated = time.Now()
	return stockRepo.Update(rec)
}

// Release drops a hold of qty units. Driving the reservation negative means
// reserve/transfer calls were not paired correctly upstream; that surfaces
// as ErrInvariantViolation and must never happen in a correct sequence.
func (Ledger) Release(stockRepo repository.StockRepository, itemID, departmentID string, qty int) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	rec, err := stockRepo.GetForUpdate(itemID, departmentID)
	if err != nil {
		return err
	}
	if rec == nil || rec.QuantityReserved < qty {
		return fmt.Errorf("release %d from %s/%s: %w", qty, itemID, departmentID, domain.ErrInvariantViolation)
	}
	rec.QuantityReserved -= qty
	rec.LastUpdated = time.Now()
	return stockRepo.Update(rec)
}

// TransferOut removes qty previously reserved units: available and reserved
// both drop by qty, and an OUT movement is appended.
func (Ledger) TransferOut(
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
	itemID, fromDepartmentID string,
	qty int,
	reason, referenceID, actorID string,
) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	rec, err := stockRepo.GetForUpdate(itemID, fromDepartmentID)
	if err != nil {
		return err
	}
	if rec == nil || rec.QuantityAvailable < qty || rec.QuantityReserved < qty {
		return fmt.Errorf("transfer out %d from %s/%s: %w", qty, itemID, fromDepartmentID, domain.ErrInvariantViolation)
	}
	rec.QuantityAvailable -= qty
	rec.QuantityReserved -= qty
	rec.LastUpdated = time.Now()
	if err := stockRepo.Update(rec); err != nil {
		return err
	}
	return movementRepo.Create(&entity.StockMovement{
		ID:           uuid.New().String(),
		StockID:      rec.ID,
		MovementType: entity.MovementTypeOUT,
		Quantity:     qty,
		Reason:       reason,
		ReferenceID:  referenceID,
		PerformedBy:  actorID,
		CreatedAt:    time.Now(),
	})
}

// TransferIn adds qty units to (itemID, toDepartmentID), creating the stock
// record if the department has never held the item, and appends an IN
// movement.
func (Ledger) TransferIn(
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
	itemID, toDepartmentID string,
	qty int,
	reason, referenceID, actorID string,
) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	rec, err := stockRepo.GetForUpdate(itemID, toDepartmentID)
	if err != nil {
		return err
	}
	if rec == nil {
		rec = &entity.Stock{
			ID:           uuid.New().String(),
			ItemID:       itemID,
			DepartmentID: toDepartmentID,
			LastUpdated:  now,
		}
		if err := stockRepo.Create(rec); err != nil {
			return err
		}
	}
	rec.QuantityAvailable += qty
	rec.LastUpdated = now
	if err := stockRepo.Update(rec); err != nil {
		return err
	}
	return movementRepo.Create(&entity.StockMovement{
		ID:           uuid.New().String(),
		StockID:      rec.ID,
		MovementType: entity.MovementTypeIN,
		Quantity:     qty,
		Reason:       reason,
		ReferenceID:  referenceID,
		PerformedBy:  actorID,
		CreatedAt:    now,
	})
}
