package repository

import "github.com/oseikofi/procure-track/internal/domain/entity"

// BorrowRequestRepository is the persistence port for borrow requests.
type BorrowRequestRepository interface {
	Create(request *entity.BorrowRequest) error
	GetByID(id string) (*entity.BorrowRequest, error)
	// GetForUpdate locks the request row so concurrent approvals of the
	// same request serialize instead of double-firing the transfer.
	GetForUpdate(id string) (*entity.BorrowRequest, error)
	Update(request *entity.BorrowRequest) error
	GetDetail(id string) (*entity.BorrowRequestDetail, error)
	List() ([]*entity.BorrowRequestDetail, error)
	ListByRequester(requesterID string) ([]*entity.BorrowRequestDetail, error)
	// ListByDepartment returns requests where the department is on either
	// side of the transfer.
	ListByDepartment(departmentID string) ([]*entity.BorrowRequestDetail, error)
	ListPending() ([]*entity.BorrowRequestDetail, error)
}
