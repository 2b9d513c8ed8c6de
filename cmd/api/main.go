package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/smartstock-api/internal/application/auth"
	appreplenishment "github.com/jhoicas/smartstock-api/internal/application/replenishment"
	appstock "github.com/jhoicas/smartstock-api/internal/application/stock"
	domstock "github.com/jhoicas/smartstock-api/internal/domain/stock"
	"github.com/jhoicas/smartstock-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/smartstock-api/internal/interfaces/http"
	"github.com/jhoicas/smartstock-api/pkg/config"
	"github.com/jhoicas/smartstock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	policy := domstock.Policy{
		SalesLookbackDays:    cfg.Engine.SalesLookbackDays,
		ExpiryHorizonDays:    cfg.Engine.ExpiryHorizonDays,
		CriticalFraction:     cfg.Engine.CriticalFraction,
		OverstockMultiple:    cfg.Engine.OverstockMultiple,
		RefillTargetMultiple: cfg.Engine.RefillTargetMultiple,
		StockoutWarningDays:  cfg.Engine.StockoutWarningDays,
	}

	stockRepo := postgres.NewStockRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool)
	cadenceRepo := postgres.NewCadenceRepository(pool)
	logRepo := postgres.NewReplenishmentLogRepository(pool)
	listRepo := postgres.NewReplenishmentListRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	overviewUC := appstock.NewOverviewUseCase(stockRepo, salesRepo, cadenceRepo, storeRepo, policy)
	alertsUC := appstock.NewAlertsUseCase(stockRepo, salesRepo, policy)
	commitUC := appreplenishment.NewCommitUseCase(txRunner, stockRepo, batchRepo, logRepo, cadenceRepo)
	cadenceUC := appreplenishment.NewCadenceUseCase(cadenceRepo, productRepo, storeRepo)
	listUC := appreplenishment.NewListUseCase(stockRepo, salesRepo, cadenceRepo, listRepo, productRepo, storeRepo, policy)
	authUC := auth.NewAuthUseCase(userRepo, storeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SmartStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OverviewUC: overviewUC,
		AlertsUC:   alertsUC,
		CommitUC:   commitUC,
		CadenceUC:  cadenceUC,
		ListUC:     listUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
