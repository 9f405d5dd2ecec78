package entity

import "time"

// Stock movement types. A reservation is a hold, not a movement; only
// physical quantity changes produce a row.
const (
	MovementTypeIN  = "IN"
	MovementTypeOUT = "OUT"
)

// StockMovement is an immutable append-only record of one quantity change.
// Never updated or deleted.
type StockMovement struct {
	ID           string
	StockID      string
	MovementType string // IN or OUT
	Quantity     int    // always positive; direction comes from MovementType
	Reason       string
	ReferenceID  string // causing request id, if any
	PerformedBy  string // user id, empty for system actions
	CreatedAt    time.Time
}

// StockMovementDetail joins the movement with item and department names for
// history listings.
type StockMovementDetail struct {
	StockMovement
	ItemName        string
	DepartmentName  string
	PerformedByName string
}
