package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/ticket-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/ticket-dashboard/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Dashboard *handlers.DashboardHandler
	Tickets   *handlers.TicketsHandler
	Metrics   *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	v := app.Group("/views")
	v.Get("/dashboard", cfg.Dashboard.Dashboard)
	v.Post("/dashboard/refresh", cfg.Dashboard.Refresh)
	v.Get("/users", cfg.Dashboard.Users)
	v.Post("/theme/toggle", cfg.Dashboard.ToggleTheme)

	v.Get("/new-ticket", cfg.Tickets.NewTicketForm)
	v.Get("/tickets", cfg.Tickets.ListTickets)
	v.Post("/tickets", cfg.Tickets.CreateTicket)
	v.Get("/tickets/:id", cfg.Tickets.GetTicket)
	v.Patch("/tickets/:id/status", cfg.Tickets.UpdateStatus)
	v.Delete("/tickets/:id", cfg.Tickets.DeleteTicket)
	v.Post("/tickets/:id/comments", cfg.Tickets.AddComment)
	v.Post("/tickets/:id/attachments", cfg.Tickets.UploadAttachment)
	v.Delete("/tickets/:id/attachments/:attachmentId", cfg.Tickets.DeleteAttachment)
	v.Get("/attachments/:id/download", cfg.Tickets.DownloadAttachment)
}
