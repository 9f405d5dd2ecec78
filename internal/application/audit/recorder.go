package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/internal/domain/repository"
)

// Action codes recorded in the audit trail.
const (
	ActionCreateItem               = "CREATE_ITEM"
	ActionCreateStock              = "CREATE_STOCK"
	ActionCreateBorrowRequest      = "CREATE_BORROW_REQUEST"
	ActionApproveBorrowRequest     = "APPROVE_BORROW_REQUEST"
	ActionRejectBorrowRequest      = "REJECT_BORROW_REQUEST"
	ActionCreatePurchaseRequest    = "CREATE_PURCHASE_REQUISITION"
	ActionApprovePurchaseRequest   = "APPROVE_PURCHASE_REQUISITION"
	ActionRejectPurchaseRequest    = "REJECT_PURCHASE_REQUISITION"
	ActionCreateVendor             = "CREATE_VENDOR"
	ActionUpdateVendor             = "UPDATE_VENDOR"
	ActionCreateQuotation          = "CREATE_QUOTATION"
	ActionCreatePurchaseOrder      = "CREATE_PURCHASE_ORDER"
)

// Entry is one audit event. Before and After are serialized to opaque JSON;
// nil means no snapshot on that side.
type Entry struct {
	ActorID    string // empty for system actions
	Action     string
	EntityType string
	EntityID   string
	Before     any
	After      any
	IPAddress  string
	UserAgent  string
}

// Record appends an immutable audit row through the given repository. The
// caller passes a tx-bound repository so the entry commits (or rolls back)
// together with the mutation it describes: a failed audit write aborts the
// whole operation.
func Record(auditRepo repository.AuditLogRepository, e Entry) error {
	row := &entity.AuditLog{
		ID:         uuid.New().String(),
		UserID:     e.ActorID,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		IPAddress:  e.IPAddress,
		UserAgent:  e.UserAgent,
		CreatedAt:  time.Now(),
	}
	if e.Before != nil {
		b, err := json.Marshal(e.Before)
		if err != nil {
			return fmt.Errorf("marshal audit before-snapshot: %w", err)
		}
		row.OldValues = string(b)
	}
	if e.After != nil {
		b, err := json.Marshal(e.After)
		if err != nil {
			return fmt.Errorf("marshal audit after-snapshot: %w", err)
		}
		row.NewValues = string(b)
	}
	return auditRepo.Create(row)
}

// Service exposes the read side of the audit trail.
type Service struct {
	auditRepo repository.AuditLogRepository
}

// NewService builds the audit read service.
func NewService(auditRepo repository.AuditLogRepository) *Service {
	return &Service{auditRepo: auditRepo}
}

// List returns entries newest-first. A non-positive limit falls back to 100.
func (s *Service) List(limit int) ([]*entity.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.auditRepo.List(limit)
}
