package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockpro/internal/application/dto"
	"github.com/jhoicas/stockpro/internal/application/inventory"
	"github.com/jhoicas/stockpro/internal/domain/entity"
)

// MovementHandler registro y consulta del ledger de movimientos (protegido).
type MovementHandler struct {
	uc *inventory.RegisterMovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.RegisterMovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar movimiento
// @Description  Entrada o salida según el campo type. El stock puede quedar negativo.
// @Tags         movements
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "productId, type, quantity, reason, date, observations"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	return h.register(c, "")
}

// Entry godoc
// @Summary      Registrar entrada
// @Tags         movements
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "productId, quantity, reason, date, observations"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/entry [post]
func (h *MovementHandler) Entry(c *fiber.Ctx) error {
	return h.register(c, entity.MovementTypeEntry)
}

// Exit godoc
// @Summary      Registrar salida
// @Tags         movements
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "productId, quantity, reason, date, observations"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/exit [post]
func (h *MovementHandler) Exit(c *fiber.Ctx) error {
	return h.register(c, entity.MovementTypeExit)
}

func (h *MovementHandler) register(c *fiber.Ctx, movementType string) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RegisterMovementFromRequest(c.UserContext(), GetUser(c), movementType, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos
// @Description  Del más reciente al más antiguo. Fechas inclusivas (AAAA-MM-DD).
// @Tags         movements
// @Security     BearerAuth
// @Produce      json
// @Param        productId  query  string  false  "ID del producto (all = todos)"
// @Param        type       query  string  false  "entry | exit | all"
// @Param        startDate  query  string  false  "Desde (AAAA-MM-DD)"
// @Param        endDate    query  string  false  "Hasta (AAAA-MM-DD)"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var filter dto.MovementFilterRequest
	if err := c.QueryParser(&filter); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ListFromRequest(c.UserContext(), GetUser(c), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reasons godoc
// @Summary      Catálogo de motivos
// @Tags         movements
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.MovementReasonsResponse
// @Router       /api/movements/reasons [get]
func (h *MovementHandler) Reasons(c *fiber.Ctx) error {
	return c.JSON(inventory.Reasons())
}
