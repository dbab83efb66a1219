package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/almacen/stock-api/internal/core/ports"
)

// AuditHandler exposes the audit trail to administrators.
type AuditHandler struct {
	service ports.AuditService
}

func NewAuditHandler(service ports.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// Recent handles GET /api/audit (admin only).
//
// @Summary      List recent audit events
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum number of events (default 50)"
// @Success      200    {array}   domain.AuditEvent
// @Failure      500    {object}  errorResponse
// @Router       /api/audit [get]
func (h *AuditHandler) Recent(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	events, err := h.service.Recent(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list audit events"})
	}
	return c.JSON(http.StatusOK, events)
}
