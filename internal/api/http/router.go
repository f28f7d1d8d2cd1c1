package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hinjavav/lan-chat-app/internal/api/http/handlers"
	"github.com/hinjavav/lan-chat-app/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Admin          *handlers.AdminHandler
	Tickets        *handlers.TicketsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/api/health", cfg.Health.Legacy)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/admin-login", cfg.Auth.AdminLogin)
	authGroup.Get("/verify", cfg.Auth.Verify)

	adminGroup := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	adminGroup.Get("/users", cfg.Admin.ListUsers)
	adminGroup.Get("/stats", cfg.Admin.Stats)
	adminGroup.Post("/create-user", cfg.Admin.CreateUser)

	tickets := api.Group("/tickets", cfg.AuthMiddleware.Handle)
	tickets.Post("/", cfg.Tickets.Create)
	tickets.Get("/", cfg.Tickets.List)
	tickets.Patch("/:id", auth.RequireSupport(), cfg.Tickets.UpdateStatus)
}
