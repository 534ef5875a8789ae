package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockpro/internal/application/auth"
	"github.com/jhoicas/stockpro/internal/application/dto"
	"github.com/jhoicas/stockpro/internal/domain/entity"
)

// Locals keys de la sesión autenticada en Fiber.
const (
	LocalSession = "session"
	LocalUser    = "user"
)

// AuthMiddleware valida el Bearer Token contra el registro de sesiones y carga
// la sesión y la credencial en c.Locals. Un token de una sesión cerrada es 401.
func AuthMiddleware(uc *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		session, err := uc.Authenticate(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido, expirado o sesión finalizada"})
		}
		c.Locals(LocalSession, session)
		c.Locals(LocalUser, session.User())
		return c.Next()
	}
}

// RequireRole permite el acceso solo a los niveles indicados.
// Sin nivel en la sesión = 401 MISSING_ROLE; nivel no permitido = 403 FORBIDDEN.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "sesión sin nivel de acceso"})
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "nivel de acceso insuficiente"})
	}
}

// GetSession devuelve la sesión del contexto (después del middleware de auth).
func GetSession(c *fiber.Ctx) *auth.Session {
	s, _ := c.Locals(LocalSession).(*auth.Session)
	return s
}

// GetUser devuelve la credencial autenticada o nil.
func GetUser(c *fiber.Ctx) *entity.Credential {
	u, _ := c.Locals(LocalUser).(*entity.Credential)
	return u
}

// GetUsername devuelve el usuario autenticado o "".
func GetUsername(c *fiber.Ctx) string {
	if u := GetUser(c); u != nil {
		return u.Username
	}
	return ""
}

// GetRole devuelve el nivel (admin, usuario) o "".
func GetRole(c *fiber.Ctx) string {
	if u := GetUser(c); u != nil {
		return u.Role
	}
	return ""
}
