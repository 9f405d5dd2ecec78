package repository

import "github.com/oseikofi/procure-track/internal/domain/entity"

// QuotationRepository is the persistence port for vendor quotations.
type QuotationRepository interface {
	Create(quotation *entity.Quotation) error
	GetByID(id string) (*entity.Quotation, error)
	Update(quotation *entity.Quotation) error
	List() ([]*entity.QuotationDetail, error)
	ListByRequisition(requisitionID string) ([]*entity.QuotationDetail, error)
}
