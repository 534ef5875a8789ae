package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stockpro/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	now func() time.Time
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, now func() time.Time) *DashboardHandler {
	return &DashboardHandler{uc: uc, now: now}
}

// GetSummary godoc
// @Summary      Resumen del inventario
// @Description  Totales, stock bajo, entradas/salidas de los últimos 7 días y stock por categoría.
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext(), GetUser(c), h.now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
