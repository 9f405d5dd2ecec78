package entity

import "time"

// Category groups items in the catalog.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
