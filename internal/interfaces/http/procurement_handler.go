package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oseikofi/procure-track/internal/application/dto"
	"github.com/oseikofi/procure-track/internal/application/usecase"
)

// ProcurementHandler handles quotations and purchase orders.
type ProcurementHandler struct {
	uc *usecase.ProcurementUseCase
}

// NewProcurementHandler builds the procurement handler.
func NewProcurementHandler(uc *usecase.ProcurementUseCase) *ProcurementHandler {
	return &ProcurementHandler{uc: uc}
}

// CreateQuotation godoc
// @Summary      Record a vendor quotation
// @Tags         quotations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuotationRequest  true  "quotation"
// @Success      201   {object}  entity.Quotation
// @Router       /api/quotations [post]
func (h *ProcurementHandler) CreateQuotation(c *fiber.Ctx) error {
	var in dto.CreateQuotationRequest
	if !parseBody(c, &in) {
		return nil
	}
	quotation, err := h.uc.CreateQuotation(c.UserContext(), usecase.CreateQuotationInput{
		CreateQuotationRequest: in,
		ActorID:                GetUserID(c),
		IPAddress:              c.IP(),
		UserAgent:              c.Get("User-Agent"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(quotation)
}

// ListQuotations godoc
// @Summary      List quotations
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        requisition_id  query  string  false  "scope to one requisition, cheapest first"
// @Router       /api/quotations [get]
func (h *ProcurementHandler) ListQuotations(c *fiber.Ctx) error {
	out, err := h.uc.ListQuotations(c.UserContext(), c.Query("requisition_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateOrder godoc
// @Summary      Place a purchase order from a quotation
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "selected quotation"
// @Success      201   {object}  entity.PurchaseOrder
// @Router       /api/purchase-orders [post]
func (h *ProcurementHandler) CreateOrder(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if !parseBody(c, &in) {
		return nil
	}
	order, err := h.uc.CreateOrder(c.UserContext(), usecase.CreateOrderInput{
		CreatePurchaseOrderRequest: in,
		ActorID:                    GetUserID(c),
		IPAddress:                  c.IP(),
		UserAgent:                  c.Get("User-Agent"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// GetOrder godoc
// @Summary      Get a purchase order
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "order id"
// @Router       /api/purchase-orders/{id} [get]
func (h *ProcurementHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.uc.GetOrder(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// ListOrders godoc
// @Summary      List purchase orders
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Router       /api/purchase-orders [get]
func (h *ProcurementHandler) ListOrders(c *fiber.Ctx) error {
	out, err := h.uc.ListOrders(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
