package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vendor statuses. New vendors start PENDING until an administrator
// activates them.
const (
	VendorStatusActive   = "ACTIVE"
	VendorStatusInactive = "INACTIVE"
	VendorStatusPending  = "PENDING"
)

// Vendor is a supplier record managed by procurement.
type Vendor struct {
	ID                 string
	Name               string
	RegistrationNumber string
	Email              string
	Phone              string
	Address            string
	ContactPerson      string
	Status             string
	Categories         []string
	Rating             decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
