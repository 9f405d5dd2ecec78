package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oseikofi/procure-track/internal/application/audit"
)

// AuditHandler exposes the audit trail read side.
type AuditHandler struct {
	svc *audit.Service
}

// NewAuditHandler builds the audit handler.
func NewAuditHandler(svc *audit.Service) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// List godoc
// @Summary      List audit log entries
// @Tags         audit-logs
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "max entries"  default(100)
// @Router       /api/audit-logs [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.QueryInt("limit", 100))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
