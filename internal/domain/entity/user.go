package entity

import "time"

// User is an authenticated account belonging to a department.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Email        string
	FullName     string
	Role         string // GENERAL_USER, HOD, PROCUREMENT_MANAGER, FINANCE_OFFICER
	DepartmentID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
