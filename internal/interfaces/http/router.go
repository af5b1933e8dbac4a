package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-core/internal/dispatch"
	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/store"
	"github.com/jhoicas/backoffice-core/pkg/config"
)

// RouterDeps dependencias para el router: el bus de intenciones más los
// stores de los que se leen los snapshots.
type RouterDeps struct {
	Bus        *dispatch.Bus
	Auth       *store.AuthState
	Products   *store.Store[entity.Product]
	Orders     *store.Store[entity.Order]
	Deliveries *store.Store[entity.Delivery]
	Settings   *store.SettingsState
	Dashboard  *store.DashboardState
	JWT        config.JWTConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login y signup públicos)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.Bus, deps.Auth, deps.JWT)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/clear-error", authHandler.ClearError)
	authGroup.Post("/logout", AuthMiddleware(deps.JWT.Secret), authHandler.Logout)
	authGroup.Get("/session", AuthMiddleware(deps.JWT.Secret), authHandler.Session)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWT.Secret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.Bus, deps.Products)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Post("/clear-error", productHandler.ClearError)
	products.Delete("/select", productHandler.Deselect)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/select", productHandler.Select)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.Bus, deps.Orders)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Post("/clear-error", orderHandler.ClearError)
	orders.Delete("/select", orderHandler.Deselect)
	orders.Put("/:id", orderHandler.Update)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Post("/:id/select", orderHandler.Select)

	// Deliveries (protegido)
	deliveries := protected.Group("/deliveries")
	deliveryHandler := NewDeliveryHandler(deps.Bus, deps.Deliveries)
	deliveries.Get("/", deliveryHandler.List)
	deliveries.Post("/", deliveryHandler.Create)
	deliveries.Post("/clear-error", deliveryHandler.ClearError)
	deliveries.Delete("/select", deliveryHandler.Deselect)
	deliveries.Put("/:id", deliveryHandler.Update)
	deliveries.Patch("/:id/status", deliveryHandler.UpdateStatus)
	deliveries.Delete("/:id", deliveryHandler.Delete)
	deliveries.Post("/:id/select", deliveryHandler.Select)

	// Settings (protegido)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.Bus, deps.Settings)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/profile", settingsHandler.UpdateProfile)
	settings.Post("/password", settingsHandler.ChangePassword)
	settings.Put("/notifications", settingsHandler.UpdateNotifications)
	settings.Put("/security", settingsHandler.UpdateSecurity)
	settings.Put("/billing", settingsHandler.UpdateBilling)
	settings.Put("/application", settingsHandler.UpdateApplication)
	settings.Post("/clear-error", settingsHandler.ClearError)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.Bus, deps.Dashboard)
	dashboard.Get("/", dashboardHandler.Get)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/revenue", dashboardHandler.Revenue)
	dashboard.Get("/distribution", dashboardHandler.Distribution)
	dashboard.Post("/clear-error", dashboardHandler.ClearError)
}
