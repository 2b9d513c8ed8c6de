package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/smartstock-api/internal/application/auth"
	appreplenishment "github.com/jhoicas/smartstock-api/internal/application/replenishment"
	appstock "github.com/jhoicas/smartstock-api/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OverviewUC *appstock.OverviewUseCase
	AlertsUC   *appstock.AlertsUseCase
	CommitUC   *appreplenishment.CommitUseCase
	CadenceUC  *appreplenishment.CadenceUseCase
	ListUC     *appreplenishment.ListUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Stock (protegido)
	stockHandler := NewStockHandler(deps.OverviewUC)
	stock := protected.Group("/stock")
	stock.Get("/overview/:store_id", stockHandler.Overview)
	stock.Get("/:store_id", stockHandler.Stock)
	stock.Get("/:store_id/product/:product_id/batches", stockHandler.ProductBatches)

	// Alertas (protegido)
	alertsHandler := NewAlertsHandler(deps.AlertsUC)
	protected.Get("/alerts/:store_id", alertsHandler.Alerts)

	// Reposición (protegido)
	replHandler := NewReplenishmentHandler(deps.OverviewUC, deps.CommitUC, deps.CadenceUC, deps.ListUC)
	repl := protected.Group("/replenishment")
	repl.Get("/next-batch/:store_id/:product_id", replHandler.NextBatch)
	repl.Post("/commit", replHandler.Commit)
	repl.Get("/logs/:store_id/:product_id", replHandler.History)

	repl.Post("/frequency", replHandler.SetFrequency)
	repl.Get("/frequency", replHandler.ListFrequencies)
	repl.Get("/frequency/:product_id/:store_id", replHandler.GetFrequency)
	repl.Put("/frequency/:product_id/:store_id", replHandler.UpdateFrequency)
	repl.Delete("/frequency/:product_id/:store_id", replHandler.DeleteFrequency)

	repl.Get("/list/:store_id", replHandler.DailyList)
	repl.Post("/lists/generate/:store_id", replHandler.GenerateList)
	repl.Get("/lists/:store_id/:list_date", replHandler.GetList)
	repl.Put("/lists/items/:item_id/override", replHandler.OverrideItem)
}
