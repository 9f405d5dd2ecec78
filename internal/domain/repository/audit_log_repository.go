package repository

import "github.com/oseikofi/procure-track/internal/domain/entity"

// AuditLogRepository is the persistence port for the audit trail. Entries
// are insert-only; List returns newest first.
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	List(limit int) ([]*entity.AuditLog, error)
}
