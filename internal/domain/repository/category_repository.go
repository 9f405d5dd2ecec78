package repository

import "github.com/oseikofi/procure-track/internal/domain/entity"

// CategoryRepository is the persistence port for item categories.
type CategoryRepository interface {
	Create(category *entity.Category) error
	List() ([]*entity.Category, error)
}
