package dto

// CreateVendorRequest body for POST /api/vendors.
type CreateVendorRequest struct {
	Name               string   `json:"name" validate:"required"`
	RegistrationNumber string   `json:"registration_number"`
	Email              string   `json:"email" validate:"omitempty,email"`
	Phone              string   `json:"phone"`
	Address            string   `json:"address"`
	ContactPerson      string   `json:"contact_person"`
	Categories         []string `json:"categories"`
}

// UpdateVendorRequest body for PATCH /api/vendors/:id. Only the fields sent
// are changed.
type UpdateVendorRequest struct {
	Name          *string  `json:"name"`
	Email         *string  `json:"email" validate:"omitempty,email"`
	Phone         *string  `json:"phone"`
	Address       *string  `json:"address"`
	ContactPerson *string  `json:"contact_person"`
	Status        *string  `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE PENDING"`
	Categories    []string `json:"categories"`
}
