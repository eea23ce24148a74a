package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/api/http/handlers"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/guard"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Products   *handlers.ProductsHandler
	Categories *handlers.CategoriesHandler
	Reviews    *handlers.ReviewsHandler
	Orders     *handlers.OrdersHandler
	Dashboard  *handlers.DashboardHandler
	Guard      *guard.Guard
}

// RegisterRoutes wires HTTP routes. Everything under /admin except the login
// entry point sits behind the route guard.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	admin := app.Group("/admin")
	admin.Post("/login", cfg.Auth.Login)
	admin.Post("/logout", cfg.Auth.Logout)

	protected := admin.Group("", cfg.Guard.RequireAdmin)
	protected.Get("/me", cfg.Auth.Me)

	protected.Get("/dashboard/stats", cfg.Dashboard.Stats)

	protected.Get("/products", cfg.Products.List)
	protected.Post("/products", cfg.Products.Create)
	protected.Get("/products/:id", cfg.Products.Get)
	protected.Put("/products/:id", cfg.Products.Update)
	protected.Delete("/products/:id", cfg.Products.Delete)
	protected.Post("/upload/images", cfg.Products.UploadImages)
	protected.Post("/upload/hover", cfg.Products.UploadHover)

	protected.Get("/categories", cfg.Categories.List)
	protected.Post("/categories", cfg.Categories.Create)
	protected.Put("/categories/:id", cfg.Categories.Update)
	protected.Delete("/categories/:id", cfg.Categories.Delete)

	protected.Get("/reviews/pending", cfg.Reviews.Pending)
	protected.Put("/reviews/:id/approve", cfg.Reviews.Approve)
	protected.Delete("/reviews/:id", cfg.Reviews.Reject)

	protected.Get("/orders", cfg.Orders.List)
	protected.Get("/orders/export", cfg.Orders.ExportCSV)
	protected.Get("/orders/:id", cfg.Orders.Get)
	protected.Put("/orders/:id/status", cfg.Orders.UpdateStatus)
}
