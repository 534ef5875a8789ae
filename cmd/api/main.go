package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockpro/docs"
	appanalytics "github.com/jhoicas/stockpro/internal/application/analytics"
	"github.com/jhoicas/stockpro/internal/application/auth"
	"github.com/jhoicas/stockpro/internal/application/inventory"
	"github.com/jhoicas/stockpro/internal/application/usecase"
	"github.com/jhoicas/stockpro/internal/domain/repository"
	"github.com/jhoicas/stockpro/internal/infrastructure/csvexport"
	"github.com/jhoicas/stockpro/internal/infrastructure/jsonstore"
	"github.com/jhoicas/stockpro/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/stockpro/internal/infrastructure/pdf"
	"github.com/jhoicas/stockpro/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stockpro/internal/interfaces/http"
	"github.com/jhoicas/stockpro/pkg/config"
	"github.com/jhoicas/stockpro/pkg/logger"
)

// @title        StockPro API
// @version      1.0
// @description  Control de inventario multiusuario: productos, movimientos, dashboard y reportes.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	// Los importes salen como número en JSON (costPrice, totalValue)
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, cleanup, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer cleanup()

	recorder := metrics.NewPrometheusRecorder()
	sessions := auth.NewSessionRegistry()

	authUC := auth.NewAuthUseCase(st.creds, sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, recorder)
	productUC := usecase.NewProductUseCase(st.products, st.tx)
	registerMovementUC := inventory.NewRegisterMovementUseCase(st.tx, st.movements, recorder)
	reconcileUC := inventory.NewReconcileUseCase(st.tx)
	replenishmentUC := inventory.NewReplenishmentUseCase(st.products, st.movements)
	dashboardUC := appanalytics.NewDashboardUseCase(st.products, st.movements)
	reportUC := appanalytics.NewReportUseCase(st.products, st.movements, recorder,
		infrapdf.NewMarotoReportGenerator(cfg.App.Name),
		csvexport.New(),
	)
	userUC := usecase.NewUserUseCase(st.users)

	app := httpRouter.NewApp(cfg.App.Name, cfg.HTTP.BodyLimit())
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FilePath:    "./docs/swagger.json",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "StockPro API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProductUC:        productUC,
		RegisterMovement: registerMovementUC,
		Reconcile:        reconcileUC,
		Replenishment:    replenishmentUC,
		DashboardUC:      dashboardUC,
		ReportUC:         reportUC,
		UserUC:           userUC,
		ServiceName:      cfg.App.Name,
		Metrics:          recorder.Handler(),
	})

	if httpRouter.MountSPA(app, cfg.HTTP.StaticDir) {
		log.Info().Str("dir", cfg.HTTP.StaticDir).Msg("sirviendo build del frontend")
	}

	go sweepSessions(ctx, sessions, recorder, log)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// storage agrupa los repositorios del driver configurado.
type storage struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	creds     repository.CredentialRepository
	users     repository.UserDirectory
	tx        inventory.TxRunner
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage, func(), error) {
	if cfg.Storage.Driver == config.StoragePostgres {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return &storage{
			products:  postgres.NewProductRepository(pool),
			movements: postgres.NewMovementRepository(pool),
			creds:     postgres.NewCredentialRepository(pool),
			users:     postgres.NewUserDirectory(pool),
			tx:        postgres.NewTxRunner(pool),
		}, pool.Close, nil
	}

	store, err := jsonstore.Open(cfg.Storage.DBPath())
	if err != nil {
		return nil, nil, err
	}
	creds, err := jsonstore.OpenCredentialFile(cfg.Storage.UsersPath())
	if err != nil {
		return nil, nil, err
	}
	users, err := jsonstore.OpenUserDirectory(cfg.Storage.UsersOverridePath(), creds.All())
	if err != nil {
		return nil, nil, err
	}
	return &storage{
		products:  jsonstore.NewProductRepository(store),
		movements: jsonstore.NewMovementRepository(store),
		creds:     creds,
		users:     users,
		tx:        jsonstore.NewTxRunner(store),
	}, func() {}, nil
}

// sweepSessions purga las sesiones expiradas y publica el gauge de sesiones activas.
func sweepSessions(ctx context.Context, sessions *auth.SessionRegistry, recorder *metrics.PrometheusRecorder, log *logger.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Sweep(); n > 0 {
				log.Debug().Int("expired", n).Msg("sesiones expiradas purgadas")
			}
			recorder.ActiveSessions(sessions.Count())
		}
	}
}
