package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// NewApp crea la aplicación fiber con el manejador de errores JSON y el límite de cuerpo indicado
// (bodyLimit <= 0 usa el valor por defecto de fiber).
func NewApp(name string, bodyLimit int) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      name,
		ErrorHandler: ErrorHandler,
		BodyLimit:    bodyLimit,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
}
