package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/analytics"
	"github.com/jhoicas/Bodega-api/internal/application/auth"
	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Processor   *inventory.TransactionProcessor
	DashboardUC *analytics.DashboardUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ProductUC   *usecase.ProductUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
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

	// Products y categorías (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/categories", productHandler.ListCategories)
	products.Post("/categories", productHandler.CreateCategory)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Inventario (protegido). Las rutas estáticas van antes de /:id.
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Processor)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)

	invGroup.Get("/dashboard", dashboardHandler.GetSummary)

	invGroup.Get("/warehouses", warehouseHandler.List)
	invGroup.Post("/warehouses", warehouseHandler.Create)
	invGroup.Get("/warehouses/:id", warehouseHandler.GetByID)

	invGroup.Post("/receipt", inventoryHandler.CreateReceipt)
	invGroup.Post("/delivery", inventoryHandler.CreateDelivery)
	invGroup.Post("/transfer", inventoryHandler.CreateTransfer)
	invGroup.Post("/adjustment", inventoryHandler.CreateAdjustment)

	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/:id", inventoryHandler.GetByID)
	invGroup.Post("/:id/status", inventoryHandler.ChangeStatus)
	invGroup.Post("/:id/cancel", inventoryHandler.Cancel)
}
