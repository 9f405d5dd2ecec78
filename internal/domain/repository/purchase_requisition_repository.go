package repository

import "github.com/oseikofi/procure-track/internal/domain/entity"

// PurchaseRequisitionRepository is the persistence port for purchase
// requisitions.
type PurchaseRequisitionRepository interface {
	Create(requisition *entity.PurchaseRequisition) error
	GetByID(id string) (*entity.PurchaseRequisition, error)
	// GetForUpdate locks the requisition row to serialize concurrent
	// approvals.
	GetForUpdate(id string) (*entity.PurchaseRequisition, error)
	Update(requisition *entity.PurchaseRequisition) error
	GetDetail(id string) (*entity.PurchaseRequisitionDetail, error)
	List() ([]*entity.PurchaseRequisitionDetail, error)
	ListByRequester(requesterID string) ([]*entity.PurchaseRequisitionDetail, error)
	ListByDepartment(departmentID string) ([]*entity.PurchaseRequisitionDetail, error)
	ListPending() ([]*entity.PurchaseRequisitionDetail, error)
}
