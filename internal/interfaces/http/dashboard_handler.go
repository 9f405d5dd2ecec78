package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oseikofi/procure-track/internal/application/usecase"
)

// DashboardHandler serves the landing-page aggregates.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler builds the dashboard handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Dashboard KPIs
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RecentActivities godoc
// @Summary      Recent activity feed
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "max entries"  default(10)
// @Router       /api/dashboard/activities [get]
func (h *DashboardHandler) RecentActivities(c *fiber.Ctx) error {
	out, err := h.uc.RecentActivities(c.UserContext(), c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
