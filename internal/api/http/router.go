package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/uktrade/help-desk-api/internal/api/http/handlers"
	"github.com/uktrade/help-desk-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Tickets        *handlers.TicketsHandler
	Users          *handlers.UsersHandler
	Groups         *handlers.GroupsHandler
	Agents         *handlers.AgentsHandler
	Uploads        *handlers.UploadsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires the Zendesk-compatible surface.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v2", cfg.AuthMiddleware.Handle)

	api.Get("/tickets", cfg.Tickets.ListTickets)
	api.Post("/tickets", cfg.Tickets.CreateTicket)
	api.Get("/tickets/:id", cfg.Tickets.GetTicket)
	api.Put("/tickets/:id", cfg.Tickets.UpdateTicket)
	api.Get("/tickets/:id/comments", cfg.Tickets.ListComments)

	api.Get("/users", cfg.Users.ListUsers)
	api.Post("/users", cfg.Users.SaveUser)
	api.Get("/users/me", cfg.Users.Me)
	api.Get("/users/:id", cfg.Users.GetUser)

	api.Get("/groups", cfg.Groups.ListGroups)
	api.Post("/groups", cfg.Groups.CreateGroup)

	api.Get("/agents", cfg.Agents.ListAgents)
	api.Post("/agents", cfg.Agents.CreateAgent)
	api.Get("/agents/:id", cfg.Agents.GetAgent)

	api.Post("/uploads", cfg.Uploads.Upload)
}
