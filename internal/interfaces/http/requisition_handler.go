package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oseikofi/procure-track/internal/application/dto"
	"github.com/oseikofi/procure-track/internal/application/requisition"
	"github.com/oseikofi/procure-track/internal/domain/entity"
)

// RequisitionHandler handles the purchase requisition workflow.
type RequisitionHandler struct {
	uc *requisition.UseCase
}

// NewRequisitionHandler builds the requisition handler.
func NewRequisitionHandler(uc *requisition.UseCase) *RequisitionHandler {
	return &RequisitionHandler{uc: uc}
}

// Create godoc
// @Summary      Submit a purchase requisition
// @Tags         purchase-requisitions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRequisitionRequest  true  "requisition"
// @Success      201   {object}  entity.PurchaseRequisition
// @Router       /api/purchase-requisitions [post]
func (h *RequisitionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRequisitionRequest
	if !parseBody(c, &in) {
		return nil
	}
	req, err := h.uc.Create(c.UserContext(), requisition.CreateInput{
		RequesterID:   GetUserID(c),
		DepartmentID:  GetDepartmentID(c),
		ItemName:      in.ItemName,
		Description:   in.Description,
		Quantity:      in.Quantity,
		EstimatedCost: in.EstimatedCost,
		Justification: in.Justification,
		RequiredDate:  in.RequiredDate,
		IPAddress:     c.IP(),
		UserAgent:     c.Get("User-Agent"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(req)
}

// List godoc
// @Summary      List purchase requisitions
// @Tags         purchase-requisitions
// @Security     Bearer
// @Produce      json
// @Param        mine           query  bool    false  "only my requisitions"
// @Param        department_id  query  string  false  "filter by department"
// @Param        pending        query  bool    false  "only pending requisitions"
// @Router       /api/purchase-requisitions [get]
func (h *RequisitionHandler) List(c *fiber.Ctx) error {
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
// @Summary      Get a purchase requisition
// @Tags         purchase-requisitions
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "requisition id"
// @Router       /api/purchase-requisitions/{id} [get]
func (h *RequisitionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetDetail(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Approve one gate of a purchase requisition
// @Tags         purchase-requisitions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "requisition id"
// @Param        body  body  dto.ApproveRequisitionRequest  true  "which gate"
// @Failure      409   {object}  dto.ErrorResponse  "already decided"
// @Router       /api/purchase-requisitions/{id}/approve [patch]
func (h *RequisitionHandler) Approve(c *fiber.Ctx) error {
	var in dto.ApproveRequisitionRequest
	if !parseBody(c, &in) {
		return nil
	}
	approvalType, err := entity.ParseRequisitionApprovalType(in.ApprovalType)
	if err != nil {
		return respondError(c, err)
	}
	req, err := h.uc.Approve(c.UserContext(), requisition.DecisionInput{
		RequisitionID: c.Params("id"),
		ApprovalType:  approvalType,
		ActorID:       GetUserID(c),
		IPAddress:     c.IP(),
		UserAgent:     c.Get("User-Agent"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(req)
}

// Reject godoc
// @Summary      Reject a purchase requisition
// @Tags         purchase-requisitions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "requisition id"
// @Param        body  body  dto.RejectRequisitionRequest  true  "which gate and why"
// @Router       /api/purchase-requisitions/{id}/reject [patch]
func (h *RequisitionHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectRequisitionRequest
	if !parseBody(c, &in) {
		return nil
	}
	approvalType, err := entity.ParseRequisitionApprovalType(in.ApprovalType)
	if err != nil {
		return respondError(c, err)
	}
	req, err := h.uc.Reject(c.UserContext(), requisition.DecisionInput{
		RequisitionID: c.Params("id"),
		ApprovalType:  approvalType,
		ActorID:       GetUserID(c),
		Reason:        in.Reason,
		IPAddress:     c.IP(),
		UserAgent:     c.Get("User-Agent"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(req)
}
