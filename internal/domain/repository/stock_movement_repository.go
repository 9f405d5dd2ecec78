package repository

import "github.com/oseikofi/procure-track/internal/domain/entity"

// StockMovementRepository is the persistence port for the append-only
// movement log. Rows are only ever inserted.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	List(limit int) ([]*entity.StockMovementDetail, error)
	ListByStock(stockID string) ([]*entity.StockMovementDetail, error)
	CountByReference(referenceID string) (int, error)
}
