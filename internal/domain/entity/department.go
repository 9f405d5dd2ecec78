package entity

import "time"

// Department owns stock and users. HODID points at its head of department.
type Department struct {
	ID        string
	Name      string
	HODID     string // empty until a head is assigned
	CreatedAt time.Time
	UpdatedAt time.Time
}
