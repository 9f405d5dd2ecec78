package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a catalog entry. Code and identity are immutable; price and
// reorder level may change over time.
type Item struct {
	ID              string
	Code            string
	Name            string
	Description     string
	CategoryID      string
	Unit            string // e.g. pieces, liters, kg
	MinReorderLevel int
	UnitPrice       *decimal.Decimal // nil when no price is recorded
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
