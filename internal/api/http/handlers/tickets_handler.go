package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-dashboard/internal/api/dto"
	"github.com/spec-kit/ticket-dashboard/internal/domain"
	"github.com/spec-kit/ticket-dashboard/internal/service"
	apperrors "github.com/spec-kit/ticket-dashboard/pkg/util/errorutil"
)

// TicketsHandler serves the ticket pages and their actions.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// ListTickets GET /views/tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	filters, err := parseTicketFilters(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.service.Tickets(c.UserContext(), filters)})
}

// GetTicket GET /views/tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	view, err := h.service.TicketDetails(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": view})
}

// NewTicketForm GET /views/new-ticket.
func (h *TicketsHandler) NewTicketForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.service.NewTicketForm(c.UserContext())})
}

// CreateTicket POST /views/tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.CreateTicket(c.UserContext(), req.Form())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": ticket})
}

// UpdateStatus PATCH /views/tickets/:id/status.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.UpdateStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticket})
}

// DeleteTicket DELETE /views/tickets/:id.
func (h *TicketsHandler) DeleteTicket(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteTicket(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// AddComment POST /views/tickets/:id/comments.
func (h *TicketsHandler) AddComment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	comment, err := h.service.AddComment(c.UserContext(), id, req.Content, req.AuthorName)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": comment})
}

// UploadAttachment POST /views/tickets/:id/attachments.
func (h *TicketsHandler) UploadAttachment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file required", nil)
	}
	f, err := fh.Open()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	defer f.Close()

	attachment, err := h.service.UploadAttachment(c.UserContext(), id, fh.Filename, f)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": attachment})
}

// DownloadAttachment GET /views/attachments/:id/download.
func (h *TicketsHandler) DownloadAttachment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	download, err := h.service.DownloadAttachment(c.UserContext(), id)
	if err != nil {
		return err
	}
	if download.Filename != "" {
		c.Attachment(download.Filename)
	}
	if download.ContentType != "" {
		c.Set(fiber.HeaderContentType, download.ContentType)
	}
	return c.Send(download.Data)
}

// DeleteAttachment DELETE /views/tickets/:id/attachments/:attachmentId.
func (h *TicketsHandler) DeleteAttachment(c *fiber.Ctx) error {
	ticketID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	attachmentID, err := paramID(c, "attachmentId")
	if err != nil {
		return err
	}
	if err := h.service.DeleteAttachment(c.UserContext(), ticketID, attachmentID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseTicketFilters(c *fiber.Ctx) (domain.TicketFilters, error) {
	q, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return domain.TicketFilters{}, apperrors.NewValidationError("invalid query", nil)
	}
	return domain.ParseTicketFilters(q), nil
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid "+name, map[string]any{name: raw})
	}
	return id, nil
}
