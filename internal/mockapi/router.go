package mockapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/observability"
	apperrors "github.com/spec-kit/ticket-dashboard/pkg/util/errorutil"
)

// NewApp builds a Fiber app serving the backend API under /api.
func NewApp(store *Store, logger *zap.Logger) *fiber.App {
	if logger == nil {
		logger = zap.NewNop()
	}
	app := fiber.New(fiber.Config{
		AppName:               "ticket-mock-api",
		DisableStartupMessage: true,
		BodyLimit:             32 << 20,
		ErrorHandler:          errorHandler(logger),
	})
	app.Use(recover.New())
	app.Use(observability.RequestLogger(logger, nil))
	RegisterRoutes(app, NewHandler(store))
	return app
}

// RegisterRoutes wires the backend routes.
func RegisterRoutes(app *fiber.App, h *Handler) {
	api := app.Group("/api")

	api.Get("/tickets", h.ListTickets)
	api.Post("/tickets", h.CreateTicket)
	api.Get("/tickets/:id", h.GetTicket)
	api.Put("/tickets/:id", h.UpdateTicket)
	api.Patch("/tickets/:id/status", h.UpdateStatus)
	api.Delete("/tickets/:id", h.DeleteTicket)
	api.Post("/tickets/:id/comments", h.AddComment)
	api.Post("/tickets/:id/attachments", h.UploadAttachment)

	api.Get("/attachments/:id/download", h.DownloadAttachment)
	api.Delete("/attachments/:id", h.DeleteAttachment)

	api.Get("/stats", h.Stats)
	api.Get("/users", h.Users)
}

// errorHandler renders failures with the same envelope as the dashboard.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		domainErr := apperrors.ToDomainError(err)
		if domainErr.HTTPStatus >= 500 {
			logger.Error("request failed", zap.String("path", c.Path()), zap.Error(domainErr))
		}
		body := fiber.Map{
			"code":    domainErr.Code,
			"message": domainErr.Message,
		}
		if len(domainErr.Details) > 0 {
			body["details"] = domainErr.Details
		}
		return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": body})
	}
}
