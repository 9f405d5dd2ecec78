package borrow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oseikofi/procure-track/internal/application/audit"
	appstock "github.com/oseikofi/procure-track/internal/application/stock"
	"github.com/oseikofi/procure-track/internal/domain"
	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/internal/domain/repository"
)

// UseCase drives the two-gate borrow request workflow. Both HOD gates must
// approve before the stock transfer fires; either gate rejecting is final.
type UseCase struct {
	txRunner   TxRunner
	borrowRepo repository.BorrowRequestRepository
	itemRepo   repository.ItemRepository
	deptRepo   repository.DepartmentRepository
	ledger     appstock.Ledger
}

// NewUseCase builds the borrow workflow. borrowRepo here is pool-bound and
// serves the read projections; mutations run through txRunner.
func NewUseCase(
	txRunner TxRunner,
	borrowRepo repository.BorrowRequestRepository,
	itemRepo repository.ItemRepository,
	deptRepo repository.DepartmentRepository,
) *UseCase {
	return &UseCase{
		txRunner:   txRunner,
		borrowRepo: borrowRepo,
		itemRepo:   itemRepo,
		deptRepo:   deptRepo,
	}
}

// CreateInput parameters for submitting a borrow request. Requester identity
// comes from the authenticated caller, never the body.
type CreateInput struct {
	RequesterID           string
	RequesterDepartmentID string
	ItemID                string
	OwningDepartmentID    string
	Quantity              int
	Justification         string
	RequiredDate          time.Time
	IPAddress             string
	UserAgent             string
}

// Create validates the request, reserves the quantity against the owning
// department's stock and audits the creation, all in one transaction. A
// department may not borrow from itself.
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*entity.BorrowRequest, error) {
	if in.Quantity < 1 || strings.TrimSpace(in.Justification) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.OwningDepartmentID == in.RequesterDepartmentID {
		return nil, fmt.Errorf("department cannot borrow from itself: %w", domain.ErrInvalidInput)
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	for _, id := range []string{in.OwningDepartmentID, in.RequesterDepartmentID} {
		dept, err := uc.deptRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if dept == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	req := &entity.BorrowRequest{
		ID:                    uuid.New().String(),
		RequesterID:           in.RequesterID,
		RequesterDepartmentID: in.RequesterDepartmentID,
		ItemID:                in.ItemID,
		OwningDepartmentID:    in.OwningDepartmentID,
		QuantityRequested:     in.Quantity,
		Justification:         in.Justification,
		RequiredDate:          in.RequiredDate,
		Status:                entity.StatusPending,
		RequesterHODApproval:  entity.StatusPending,
		OwnerHODApproval:      entity.StatusPending,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	err = uc.txRunner.RunBorrow(ctx, func(
		borrowRepo repository.BorrowRequestRepository,
		stockRepo repository.StockRepository,
		_ repository.StockMovementRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		if err := borrowRepo.Create(req); err != nil {
			return err
		}
		if err := uc.ledger.Reserve(stockRepo, in.ItemID, in.OwningDepartmentID, in.Quantity); err != nil {
			return err
		}
		return audit.Record(auditRepo, audit.Entry{
			ActorID:    in.RequesterID,
			Action:     audit.ActionCreateBorrowRequest,
			EntityType: "BorrowRequest",
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
	RequestID    string
	ApprovalType entity.BorrowApprovalType
	ActorID      string
	Reason       string // rejections only
	IPAddress    string
	UserAgent    string
}

// Approve closes one HOD gate. When it is the second gate to close the
// request becomes APPROVED and the stock moves: one OUT from the owner, one
// IN to the requester, synchronously in the same transaction. Approving a
// terminal request, or a gate already decided, fails with
// ErrInvalidTransition.
func (uc *UseCase) Approve(ctx context.Context, in DecisionInput) (*entity.BorrowRequest, error) {
	var updated *entity.BorrowRequest
	err := uc.txRunner.RunBorrow(ctx, func(
		borrowRepo repository.BorrowRequestRepository,
		stockRepo repository.StockRepository,
		movementRepo repository.StockMovementRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		req, err := borrowRepo.GetForUpdate(in.RequestID)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrNotFound
		}
		if req.Status.IsTerminal() {
			return fmt.Errorf("request %s is %s: %w", req.ID, req.Status, domain.ErrInvalidTransition)
		}
		if req.Gate(in.ApprovalType) != entity.StatusPending {
			return fmt.Errorf("gate %s already decided: %w", in.ApprovalType, domain.ErrInvalidTransition)
		}

		before := *req
		req.SetGate(in.ApprovalType, entity.StatusApproved)
		req.ApprovedBy = in.ActorID
		req.UpdatedAt = time.Now()

		if req.BothGatesApproved() {
			req.Status = entity.StatusApproved
			requesterName := uc.departmentName(req.RequesterDepartmentID)
			ownerName := uc.departmentName(req.OwningDepartmentID)
			if err := uc.ledger.TransferOut(stockRepo, movementRepo,
				req.ItemID, req.OwningDepartmentID, req.QuantityRequested,
				fmt.Sprintf("Borrowed by %s", requesterName), req.ID, in.ActorID,
			); err != nil {
				return err
			}
			if err := uc.ledger.TransferIn(stockRepo, movementRepo,
				req.ItemID, req.RequesterDepartmentID, req.QuantityRequested,
				fmt.Sprintf("Borrowed from %s", ownerName), req.ID, in.ActorID,
			); err != nil {
				return err
			}
		}

		if err := borrowRepo.Update(req); err != nil {
			return err
		}
		if err := audit.Record(auditRepo, audit.Entry{
			ActorID:    in.ActorID,
			Action:     audit.ActionApproveBorrowRequest,
			EntityType: "BorrowRequest",
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

// Reject closes one gate as REJECTED, makes the whole request REJECTED and
// releases the reservation. Rejection by either gate is final.
func (uc *UseCase) Reject(ctx context.Context, in DecisionInput) (*entity.BorrowRequest, error) {
	if strings.TrimSpace(in.Reason) == "" {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.BorrowRequest
	err := uc.txRunner.RunBorrow(ctx, func(
		borrowRepo repository.BorrowRequestRepository,
		stockRepo repository.StockRepository,
		_ repository.StockMovementRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		req, err := borrowRepo.GetForUpdate(in.RequestID)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrNotFound
		}
		if req.Status.IsTerminal() {
			return fmt.Errorf("request %s is %s: %w", req.ID, req.Status, domain.ErrInvalidTransition)
		}

		before := *req
		req.SetGate(in.ApprovalType, entity.StatusRejected)
		req.Status = entity.StatusRejected
		req.RejectionReason = in.Reason
		req.ApprovedBy = in.ActorID
		req.UpdatedAt = time.Now()

		if err := uc.ledger.Release(stockRepo, req.ItemID, req.OwningDepartmentID, req.QuantityRequested); err != nil {
			return err
		}
		if err := borrowRepo.Update(req); err != nil {
			return err
		}
		if err := audit.Record(auditRepo, audit.Entry{
			ActorID:    in.ActorID,
			Action:     audit.ActionRejectBorrowRequest,
			EntityType: "BorrowRequest",
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

// departmentName resolves a department's display name for movement reasons,
// falling back to the id when the lookup fails.
func (uc *UseCase) departmentName(id string) string {
	dept, err := uc.deptRepo.GetByID(id)
	if err != nil || dept == nil {
		return id
	}
	return dept.Name
}

// GetDetail returns one request with names joined.
func (uc *UseCase) GetDetail(ctx context.Context, id string) (*entity.BorrowRequestDetail, error) {
	detail, err := uc.borrowRepo.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return detail, nil
}

// List returns all requests, newest first.
func (uc *UseCase) List(ctx context.Context) ([]*entity.BorrowRequestDetail, error) {
	return uc.borrowRepo.List()
}

// ListByRequester filters by the submitting user.
func (uc *UseCase) ListByRequester(ctx context.Context, requesterID string) ([]*entity.BorrowRequestDetail, error) {
	return uc.borrowRepo.ListByRequester(requesterID)
}

// ListByDepartment returns requests touching the department on either side.
func (uc *UseCase) ListByDepartment(ctx context.Context, departmentID string) ([]*entity.BorrowRequestDetail, error) {
	return uc.borrowRepo.ListByDepartment(departmentID)
}

// ListPending returns requests still awaiting a decision.
func (uc *UseCase) ListPending(ctx context.Context) ([]*entity.BorrowRequestDetail, error) {
	return uc.borrowRepo.ListPending()
}
