package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oseikofi/procure-track/internal/application/borrow"
	"github.com/oseikofi/procure-track/internal/application/dto"
	"github.com/oseikofi/procure-track/internal/domain/entity"
)

// BorrowHandler handles the borrow request workflow.
type BorrowHandler struct {
	uc *borrow.UseCase
}

// NewBorrowHandler builds the borrow handler.
func NewBorrowHandler(uc *borrow.UseCase) *BorrowHandler {
	return &BorrowHandler{uc: uc}
}

// Create godoc
// @Summary      Submit a borrow request
// @Tags         borrow-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBorrowRequest  true  "request"
// @Success      201   {object}  entity.BorrowRequest
// @Failure      409   {object}  dto.ErrorResponse  "insufficient stock"
// @Router       /api/borrow-requests [post]
func (h *BorrowHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBorrowRequest
	if !parseBody(c, &in) {
		return nil
	}
	req, err := h.uc.Create(c.UserContext(), borrow.CreateInput{
		RequesterID:           GetUserID(c),
		RequesterDepartmentID: GetDepartmentID(c),
		ItemID:                in.ItemID,
		OwningDepartmentID:    in.OwningDepartmentID,
		Quantity:              in.QuantityRequested,
		Justification:         in.Justification,
		RequiredDate:          in.RequiredDate,
		IPAddress:             c.IP(),
		UserAgent:             c.Get("User-Agent"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(req)
}

// List godoc
// @Summary      List borrow requests
// @Tags         borrow-requests
// @Security     Bearer
// @Produce      json
// @Param        mine           query  bool    false  "only my requests"
// @Param        department_id  query  string  false  "requests touching a department"
// @Param        pending        query  bool    false  "only pending requests"
// @Router       /api/borrow-requests [get]
func (h *BorrowHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	switch {
	case c.QueryBool("mine"):
		out, err := h.uc.ListByRequester(ctx, GetUserID(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	case c.Query("department_id") != "":
		out, err := h.uc.ListByDepartment(ctx, c.Query("department_id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	case c.QueryBool("pending"):
		out, err := h.uc.ListPending(ctx)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	default:
		out, err := h.uc.List(ctx)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
}

// GetByID godoc
// @Summary      Get a borrow request
// @Tags         borrow-requests
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "request id"
// @Router       /api/borrow-requests/{id} [get]
func (h *BorrowHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetDetail(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Approve one HOD gate of a borrow request
// @Tags         borrow-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "request id"
// @Param        body  body  dto.ApproveBorrowRequest  true  "which gate"
// @Failure      409   {object}  dto.ErrorResponse  "already decided"
// @Router       /api/borrow-requests/{id}/approve [patch]
func (h *BorrowHandler) Approve(c *fiber.Ctx) error {
	var in dto.ApproveBorrowRequest
	if !parseBody(c, &in) {
		return nil
	}
	approvalType, err := entity.ParseBorrowApprovalType(in.ApprovalType)
	if err != nil {
		return respondError(c, err)
	}
	req, err := h.uc.Approve(c.UserContext(), borrow.DecisionInput{
		RequestID:    c.Params("id"),
		ApprovalType: approvalType,
		ActorID:      GetUserID(c),
		IPAddress:    c.IP(),
		UserAgent:    c.Get("User-Agent"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(req)
}

// Reject godoc
// @Summary      Reject a borrow request
// @Tags         borrow-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "request id"
// @Param        body  body  dto.RejectBorrowRequest  true  "which gate and why"
// @Router       /api/borrow-requests/{id}/reject [patch]
func (h *BorrowHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectBorrowRequest
	if !parseBody(c, &in) {
		return nil
	}
	approvalType, err := entity.ParseBorrowApprovalType(in.ApprovalType)
	if err != nil {
		return respondError(c, err)
	}
	req, err := h.uc.Reject(c.UserContext(), borrow.DecisionInput{
		RequestID:    c.Params("id"),
		ApprovalType: approvalType,
		ActorID:      GetUserID(c),
		Reason:       in.Reason,
		IPAddress:    c.IP(),
		UserAgent:    c.Get("User-Agent"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(req)
}
