package dto

import "github.com/shopspring/decimal"

// CreateDepartmentRequest body for POST /api/departments.
type CreateDepartmentRequest struct {
	Name  string `json:"name" validate:"required"`
	HODID string `json:"hod_id"`
}

// CreateCategoryRequest body for POST /api/categories.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// CreateItemRequest body for POST /api/items.
type CreateItemRequest struct {
	Code            string           `json:"code" validate:"required"`
	Name            string           `json:"name" validate:"required"`
	Description     string           `json:"description"`
	CategoryID      string           `json:"category_id"`
	Unit            string           `json:"unit" validate:"required"`
	MinReorderLevel int              `json:"min_reorder_level" validate:"min=0"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
}

// UpdateItemRequest body for PUT /api/items/:id. Identity fields (code) are
// immutable and absent here.
type UpdateItemRequest struct {
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	CategoryID      *string          `json:"category_id"`
	Unit            *string          `json:"unit"`
	MinReorderLevel *int             `json:"min_reorder_level" validate:"omitempty,min=0"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
}
