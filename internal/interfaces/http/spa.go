package http

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockpro/internal/application/dto"
)

// MountSPA sirve el build del frontend desde dir. Las rutas GET desconocidas fuera de
// /api devuelven index.html (enrutamiento del lado del cliente).
// Devuelve false si dir no contiene index.html; en ese caso no registra nada.
func MountSPA(app *fiber.App, dir string) bool {
	if dir == "" {
		return false
	}
	index := filepath.Join(dir, "index.html")
	if info, err := os.Stat(index); err != nil || info.IsDir() {
		return false
	}
	app.Static("/", dir)
	app.Get("/*", func(c *fiber.Ctx) error {
		if c.Path() == "/api" || strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ruta no encontrada"})
		}
		return c.SendFile(index)
	})
	return true
}
