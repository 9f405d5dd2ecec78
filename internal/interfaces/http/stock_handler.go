package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oseikofi/procure-track/internal/application/dto"
	"github.com/oseikofi/procure-track/internal/application/stock"
)

// StockHandler handles stock records and movement history.
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler builds the stock handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Create godoc
// @Summary      Register initial stock for an item in a department
// @Tags         stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockRequest  true  "item, department, quantity"
// @Success      201   {object}  entity.Stock
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stocks [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockRequest
	if !parseBody(c, &in) {
		return nil
	}
	rec, err := h.uc.CreateInitial(c.UserContext(), stock.CreateInitialInput{
		ItemID:       in.ItemID,
		DepartmentID: in.DepartmentID,
		Quantity:     in.Quantity,
		ActorID:      GetUserID(c),
		IPAddress:    c.IP(),
		UserAgent:    c.Get("User-Agent"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// List godoc
// @Summary      List stock records
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        department_id  query  string  false  "filter by department"
// @Param        item_id        query  string  false  "filter by item"
// @Param        low            query  bool    false  "only records at or below reorder level"
// @Router       /api/stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	switch {
	case c.QueryBool("low"):
		out, err := h.uc.LowStock(ctx)
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
	case c.Query("item_id") != "":
		out, err := h.uc.ListByItem(ctx, c.Query("item_id"))
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

// Movements godoc
// @Summary      List stock movements
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        stock_id  query  string  false  "scope to one stock record"
// @Router       /api/stock-movements [get]
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	out, err := h.uc.Movements(c.UserContext(), c.Query("stock_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
