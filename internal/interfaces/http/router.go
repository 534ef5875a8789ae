package http

import (
	stdhttp "net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	appanalytics "github.com/jhoicas/stockpro/internal/application/analytics"
	"github.com/jhoicas/stockpro/internal/application/auth"
	"github.com/jhoicas/stockpro/internal/application/inventory"
	"github.com/jhoicas/stockpro/internal/application/usecase"
	"github.com/jhoicas/stockpro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	Reconcile        *inventory.ReconcileUseCase
	Replenishment    *inventory.ReplenishmentUseCase
	DashboardUC      *appanalytics.DashboardUseCase
	ReportUC         *appanalytics.ReportUseCase
	UserUC           *usecase.UserUseCase
	ServiceName      string
	Metrics          stdhttp.Handler // nil = sin /metrics
	Now              func() time.Time
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token de una sesión abierta). El middleware se
	// monta por prefijo conocido: una ruta inexistente bajo /api responde 404, no 401.
	authMW := AuthMiddleware(deps.AuthUC)
	adminOnly := RequireRole(entity.RoleAdmin)

	api.Post("/auth/logout", authMW, authHandler.Logout)
	api.Get("/auth/me", authMW, authHandler.Me)

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products", authMW)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/categories", productHandler.Categories)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Movements (ledger: sin PUT ni DELETE)
	movementHandler := NewMovementHandler(deps.RegisterMovement)
	movements := api.Group("/movements", authMW)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Register)
	movements.Get("/reasons", movementHandler.Reasons)
	movements.Post("/entry", movementHandler.Entry)
	movements.Post("/exit", movementHandler.Exit)

	// Dashboard y reportes
	api.Get("/dashboard/summary", authMW, NewDashboardHandler(deps.DashboardUC, now).GetSummary)
	reportHandler := NewReportHandler(deps.ReportUC, now)
	reports := api.Group("/reports", authMW)
	reports.Get("/movements", reportHandler.Movements)
	reports.Get("/movements/export", reportHandler.Export)

	// Stock
	stockHandler := NewStockHandler(deps.Reconcile, deps.Replenishment, now)
	stockRoutes := api.Group("/stock", authMW)
	stockRoutes.Get("/reconcile", adminOnly, stockHandler.Reconcile)
	stockRoutes.Get("/replenishment", stockHandler.Replenishment)

	// Users (solo admin)
	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/users", authMW, adminOnly)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:username", userHandler.Update)
	users.Delete("/:username", userHandler.Delete)
}
