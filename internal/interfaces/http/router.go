package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/auth"
	apphistory "github.com/jhoicas/Despensa-api/internal/application/history"
	"github.com/jhoicas/Despensa-api/internal/application/inventory"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.UseCase
	CategoryUC       *usecase.CategoryUseCase
	ProductUC        *usecase.ProductUseCase
	DashboardUC      *usecase.DashboardUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementList     *inventory.MovementListUseCase
	HistoryUC        *apphistory.HistoryUseCase
	JWTSecret        string
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
	adminOnly := RequireRole(entity.RoleAdmin)

	// Categories (lectura para todos; escritura solo admin)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", adminOnly, categoryHandler.Create)
	categories.Put("/:id", adminOnly, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Products (lectura para todos; escritura solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.RegisterMovement)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)
	// Forma absoluta del balance ("me quedan N"); cualquier usuario autenticado
	// puede registrar el cierre del día.
	products.Put("/:id/closing-stock", productHandler.SetClosingStock)

	// Stock: movimientos e histórico. El handler limita a staff a entradas (IN).
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.RegisterMovement, deps.MovementList, deps.HistoryUC)
	stock.Post("/", stockHandler.RegisterMovement)
	stock.Get("/", adminOnly, stockHandler.ListMovements)
	stock.Get("/history", adminOnly, stockHandler.History)

	// Dashboard (solo admin)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", adminOnly, dashboardHandler.Summary)
}
