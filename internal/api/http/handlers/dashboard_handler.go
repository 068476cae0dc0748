package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-dashboard/internal/service"
)

// DashboardHandler serves the landing page, the user list and the theme.
type DashboardHandler struct {
	tickets *service.TicketService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(ticketService *service.TicketService) *DashboardHandler {
	return &DashboardHandler{tickets: ticketService}
}

// Dashboard GET /views/dashboard.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.tickets.Dashboard(c.UserContext())})
}

// Refresh POST /views/dashboard/refresh.
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.tickets.RefreshDashboard(c.UserContext())})
}

// Users GET /views/users.
func (h *DashboardHandler) Users(c *fiber.Ctx) error {
	users, err := h.tickets.Users(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": users})
}

// ToggleTheme POST /views/theme/toggle.
func (h *DashboardHandler) ToggleTheme(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.tickets.ToggleTheme()})
}
