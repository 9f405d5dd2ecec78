package repository

import "github.com/oseikofi/procure-track/internal/domain/entity"

// DepartmentRepository is the persistence port for departments.
type DepartmentRepository interface {
	Create(department *entity.Department) error
	GetByID(id string) (*entity.Department, error)
	List() ([]*entity.Department, error)
	Update(department *entity.Department) error
}
