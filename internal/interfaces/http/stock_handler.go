package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockpro/internal/application/dto"
	"github.com/jhoicas/stockpro/internal/application/inventory"
	"github.com/jhoicas/stockpro/internal/domain/access"
)

// StockHandler reconciliación del stock cacheado y lista de reposición.
type StockHandler struct {
	reconcile     *inventory.ReconcileUseCase
	replenishment *inventory.ReplenishmentUseCase
	now           func() time.Time
}

// NewStockHandler construye el handler.
func NewStockHandler(reconcile *inventory.ReconcileUseCase, replenishment *inventory.ReplenishmentUseCase, now func() time.Time) *StockHandler {
	return &StockHandler{reconcile: reconcile, replenishment: replenishment, now: now}
}

// Reconcile godoc
// @Summary      Reconciliar stock con el ledger
// @Description  Recalcula cada producto desde su línea base y sus movimientos y lista las diferencias.
// @Description  Con fix=true reescribe el stock cacheado. Solo admin.
// @Tags         stock
// @Security     BearerAuth
// @Produce      json
// @Param        fix  query  bool  false  "Corregir el stock cacheado"
// @Success      200  {object}  dto.ReconcileResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stock/reconcile [get]
func (h *StockHandler) Reconcile(c *fiber.Ctx) error {
	out, err := h.reconcile.Reconcile(c.UserContext(), c.QueryBool("fix", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Replenishment godoc
// @Summary      Lista de reposición
// @Description  Productos visibles con stock bajo, cantidad sugerida hasta el stock ideal y prioridad.
// @Tags         stock
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.ReplenishmentListResponse
// @Router       /api/stock/replenishment [get]
func (h *StockHandler) Replenishment(c *fiber.Ctx) error {
	list, err := h.replenishment.GenerateReplenishmentList(c.UserContext(), access.ScopeFor(GetUser(c)), h.now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ReplenishmentListResponse{Items: list, Total: len(list)})
}
