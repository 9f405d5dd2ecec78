package requisition

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oseikofi/procure-track/internal/application/audit"
	"github.com/oseikofi/procure-track/internal/domain"
	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/internal/domain/repository"
)

var minEstimatedCost = decimal.NewFromFloat(0.01)

// UseCase drives the three-gate purchase requisition workflow: HOD,
// procurement and finance all sign off, finance last. No stock is touched;
// the goods do not exist yet.
type UseCase struct {
	txRunner        TxRunner
	requisitionRepo repository.PurchaseRequisitionRepository
	deptRepo        repository.DepartmentRepository
}

// NewUseCase builds the requisition workflow. requisitionRepo here is
// pool-bound and serves the read projections.
func NewUseCase(
	txRunner TxRunner,
	requisitionRepo repository.PurchaseRequisitionRepository,
	deptRepo repository.DepartmentRepository,
) *UseCase {
	return &UseCase{
		txRunner:        txRunner,
		requisitionRepo: requisitionRepo,
		deptRepo:        deptRepo,
	}
}

// CreateInput parameters for submitting a requisition. Requester identity
// comes from the authenticated caller.
type CreateInput struct {
	RequesterID   string
	DepartmentID  string
	ItemName      string
	Description   string
	Quantity      int
	EstimatedCost decimal.Decimal
	Justification string
	RequiredDate  time.Time
	IPAddress     string
	UserAgent     string
}

// Create persists the requisition PENDING with all three gates PENDING and
// audits the creation in the same transaction.
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*entity.PurchaseRequisition, error) {
	if in.Quantity < 1 ||
		strings.TrimSpace(in.ItemName) == "" ||
		strings.TrimSpace(in.Justification) == "" ||
		in.EstimatedCost.LessThan(minEstimatedCost) {
		return nil, domain.ErrInvalidInput
	}
	dept, err := uc.deptRepo.GetByID(in.DepartmentID)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	req := &entity.PurchaseRequisition{
		ID:                  uuid.New().String(),
		RequesterID:         in.RequesterID,
		DepartmentID:        in.DepartmentID,
		ItemName:            in.ItemName,
		Description:         in.Description,
		Quantity:            in.Quantity,
		EstimatedCost:       in.EstimatedCost,
		Justification:       in.Justification,
		RequiredDate:        in.RequiredDate,
		Status:              entity.StatusPending,
		HODApproval:         entity.StatusPending,
		ProcurementApproval: entity.StatusPending,
		FinanceApproval:     entity.StatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	err = uc.txRunner.RunRequisition(ctx, func(
		requisitionRepo repository.PurchaseRequisitionRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		if err := requisitionRepo.Create(req); err != nil {
			return err
		}
		return audit.Record(auditRepo, audit.Entry{
			ActorID:    in.RequesterID,
			Action:     audit.ActionCreatePurchaseRequest,
			EntityType: "PurchaseRequisition",
			EntityID:   req.ID,
			After:      req,
			IPAddress:  in.IPAddress,
			UserAgent:  in.UserAgent,
		})
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// DecisionInput identifies the actor taking an approve/reject decision.
type DecisionInput struct {
	RequisitionID string
	ApprovalType  entity.RequisitionApprovalType
	ActorID       string
	Reason        string // rejections only
	IPAddress     string
	UserAgent     string
}

// Approve closes one gate. The requisition becomes APPROVED only when the
// finance gate closes with HOD and procurement already APPROVED: finance
// commits funds last, so approving finance first leaves the overall status
// PENDING. Terminal requisitions and already-decided gates are refused.
func (uc *UseCase) Approve(ctx context.Context, in DecisionInput) (*entity.PurchaseRequisition, error) {
	var updated *entity.PurchaseRequisition
	err := uc.txRunner.RunRequisition(ctx, func(
		requisitionRepo repository.PurchaseRequisitionRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		req, err := requisitionRepo.GetForUpdate(in.RequisitionID)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrNotFound
		}
		if req.Status.IsTerminal() {
			return fmt.Errorf("requisition %s is %s: %w", req.ID, req.Status, domain.ErrInvalidTransition)
		}
		if req.Gate(in.ApprovalType) != entity.StatusPending {
			return fmt.Errorf("gate %s already decided: %w", in.ApprovalType, domain.ErrInvalidTransition)
		}

		before := *req
		req.SetGate(in.ApprovalType, entity.StatusApproved)
		req.ApprovedBy = in.ActorID
		req.UpdatedAt = time.Now()

		if in.ApprovalType == entity.RequisitionApprovalFinance &&
			req.HODApproval == entity.StatusApproved &&
			req.ProcurementApproval == entity.StatusApproved {
			req.Status = entity.StatusApproved
		}

		if err := requisitionRepo.Update(req); err != nil {
			return err
		}
		if err := audit.Record(auditRepo, audit.Entry{
			ActorID:    in.ActorID,
			Action:     audit.ActionApprovePurchaseRequest,
			EntityType: "PurchaseRequisition",
			EntityID:   req.ID,
			Before:     before,
			After:      req,
			IPAddress:  in.IPAddress,
			UserAgent:  in.UserAgent,
		}); err != nil {
			return err
		}
		updated = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Reject closes one gate as REJECTED and makes the whole requisition
// REJECTED. Final; no later approval can revive it.
func (uc *UseCase) Reject(ctx context.Context, in DecisionInput) (*entity.PurchaseRequisition, error) {
	if strings.TrimSpace(in.Reason) == "" {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.PurchaseRequisition
	err := uc.txRunner.RunRequisition(ctx, func(
		requisitionRepo repository.PurchaseRequisitionRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		req, err := requisitionRepo.GetForUpdate(in.RequisitionID)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrNotFound
		}
		if req.Status.IsTerminal() {
			return fmt.Errorf("requisition %s is %s: %w", req.ID, req.Status, domain.ErrInvalidTransition)
		}

		before := *req
		req.SetGate(in.ApprovalType, entity.StatusRejected)
		req.Status = entity.StatusRejected
		req.RejectionReason = in.Reason
		req.ApprovedBy = in.ActorID
		req.UpdatedAt = time.Now()

		if err := requisitionRepo.Update(req); err != nil {
			return err
		}
		if err := audit.Record(auditRepo, audit.Entry{
			ActorID:    in.ActorID,
			Action:     audit.ActionRejectPurchaseRequest,
			EntityType: "PurchaseRequisition",
			EntityID:   req.ID,
			Before:     before,
			After:      req,
			IPAddress:  in.IPAddress,
			UserAgent:  in.UserAgent,
		}); err != nil {
			return err
		}
		updated = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetDetail returns one requisition with names joined.
func (uc *UseCase) GetDetail(ctx context.Context, id string) (*entity.PurchaseRequisitionDetail, error) {
	detail, err := uc.requisitionRepo.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return detail, nil
}

// List returns all requisitions, newest first.
func (uc *UseCase) List(ctx context.Context) ([]*entity.PurchaseRequisitionDetail, error) {
	return uc.requisitionRepo.List()
}

// ListByRequester filters by the submitting user.
func (uc *UseCase) ListByRequester(ctx context.Context, requesterID string) ([]*entity.PurchaseRequisitionDetail, error) {
	return uc.requisitionRepo.ListByRequester(requesterID)
}

// ListByDepartment filters by the requesting department.
func (uc *UseCase) ListByDepartment(ctx context.Context, departmentID string) ([]*entity.PurchaseRequisitionDetail, error) {
	return uc.requisitionRepo.ListByDepartment(departmentID)
}

// ListPending returns requisitions still awaiting a decision.
func (uc *UseCase) ListPending(ctx context.Context) ([]*entity.PurchaseRequisitionDetail, error) {
	return uc.requisitionRepo.ListPending()
}
