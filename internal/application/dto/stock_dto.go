package dto

// CreateStockRequest body for POST /api/stocks. Registers the initial
// quantity of an item inside a department.
type CreateStockRequest struct {
	ItemID       string `json:"item_id" validate:"required"`
	DepartmentID string `json:"department_id" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,min=1"`
}
