package repository

import "github.com/oseikofi/procure-track/internal/domain/entity"

// PurchaseOrderRepository is the persistence port for purchase orders.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrderDetail, error)
	List() ([]*entity.PurchaseOrderDetail, error)
}
