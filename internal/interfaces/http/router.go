package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gabrielsouza/lojavirtual-api/internal/application/auth"
	"github.com/gabrielsouza/lojavirtual-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	StateUC    *usecase.StateUseCase
	CategoryUC *usecase.CategoryUseCase
	OrderUC    *usecase.OrderUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Catálogo de referência (público)
	stateHandler := NewStateHandler(deps.StateUC)
	states := api.Group("/states")
	states.Get("/", stateHandler.List)
	states.Get("/:id/cities", stateHandler.Cities)

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)

	// Clientes: cadastro é público; o restante exige Bearer Token.
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := api.Group("/customers")
	customers.Post("/", customerHandler.Register)

	protected := customers.Group("/", AuthMiddleware(deps.JWTSecret))
	// Listagens integrais são restritas a admin (a regra também é aplicada
	// dentro do caso de uso).
	protected.Get("/", RequireAdmin(), customerHandler.List)
	protected.Get("/page", RequireAdmin(), customerHandler.Page)
	protected.Get("/email", customerHandler.GetByEmail)
	protected.Get("/:id", customerHandler.GetByID)
	protected.Put("/:id", customerHandler.Update)
	protected.Delete("/:id", customerHandler.Delete)

	// Pedidos (protegido)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := api.Group("/orders", AuthMiddleware(deps.JWTSecret))
	orders.Get("/:id", orderHandler.GetByID)
}
