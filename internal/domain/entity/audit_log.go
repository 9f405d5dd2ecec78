package entity

import "time"

// AuditLog is an immutable record of one mutating operation. Snapshots are
// opaque JSON strings so the audit schema never couples to entity shapes.
type AuditLog struct {
	ID         string
	UserID     string // empty for system actions
	Action     string
	EntityType string
	EntityID   string
	OldValues  string // JSON snapshot before the change, empty on create
	NewValues  string // JSON snapshot after the change
	IPAddress  string
	UserAgent  string
	CreatedAt  time.Time
}
