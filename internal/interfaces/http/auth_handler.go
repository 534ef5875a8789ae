package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockpro/internal/application/auth"
	"github.com/jhoicas/stockpro/internal/application/dto"
)

// AuthHandler maneja login, logout y la sesión actual.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "usuario, senha"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Finaliza la sesión; el token deja de ser aceptado.
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if s := GetSession(c); s != nil {
		h.uc.Logout(s.ID)
	}
	return c.JSON(dto.MessageResponse{Message: "sesión finalizada"})
}

// Me godoc
// @Summary      Usuario de la sesión
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.SessionUserDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
