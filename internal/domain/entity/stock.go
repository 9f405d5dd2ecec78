package entity

import "time"

// Stock holds the quantities of one item in one department. The
// (ItemID, DepartmentID) pair is unique; the row is created lazily the
// first time the department receives the item.
//
// Invariant: 0 <= QuantityReserved <= QuantityAvailable, except inside the
// transactional window of a borrow approval.
type Stock struct {
	ID                string
	ItemID            string
	DepartmentID      string
	QuantityAvailable int
	QuantityReserved  int
	LastUpdated       time.Time
}

// Unreserved returns the quantity that can still be placed on hold.
func (s *Stock) Unreserved() int {
	return s.QuantityAvailable - s.QuantityReserved
}

// StockDetail is the read projection joining item and department names.
type StockDetail struct {
	Stock
	ItemCode        string
	ItemName        string
	Unit            string
	MinReorderLevel int
	DepartmentName  string
}
