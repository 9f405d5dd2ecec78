package repository

import "github.com/oseikofi/procure-track/internal/domain/entity"

// StockRepository is the persistence port for per-item-per-department stock.
// Get and GetForUpdate return nil, nil when no record exists for the pair.
type StockRepository interface {
	Get(itemID, departmentID string) (*entity.Stock, error)
	// GetForUpdate locks the row (SELECT FOR UPDATE). Use inside a
	// transaction before any quantity mutation.
	GetForUpdate(itemID, departmentID string) (*entity.Stock, error)
	Create(stock *entity.Stock) error
	Update(stock *entity.Stock) error
	List() ([]*entity.StockDetail, error)
	ListByDepartment(departmentID string) ([]*entity.StockDetail, error)
	ListByItem(itemID string) ([]*entity.StockDetail, error)
	// ListLow returns records with quantityAvailable <= the item's
	// minimum reorder level.
	ListLow() ([]*entity.StockDetail, error)
}
