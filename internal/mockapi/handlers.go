package mockapi

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
	apperrors "github.com/spec-kit/ticket-dashboard/pkg/util/errorutil"
)

// Handler serves the backend REST surface from a Store.
type Handler struct {
	store *Store
}

// NewHandler constructs handler.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// ListTickets GET /tickets.
func (h *Handler) ListTickets(c *fiber.Ctx) error {
	q, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return apperrors.NewValidationError("invalid query", nil)
	}
	return c.JSON(h.store.ListTickets(domain.ParseTicketFilters(q)))
}

// GetTicket GET /tickets/:id.
func (h *Handler) GetTicket(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	ticket, err := h.store.GetTicket(id)
	if err != nil {
		return storeError("ticket", err)
	}
	return c.JSON(ticket)
}

// CreateTicket POST /tickets.
func (h *Handler) CreateTicket(c *fiber.Ctx) error {
	var req domain.NewTicket
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.store.CreateTicket(req)
	if err != nil {
		return storeError("ticket", err)
	}
	return c.Status(http.StatusCreated).JSON(ticket)
}

// UpdateTicket PUT /tickets/:id. Partial bodies are accepted.
func (h *Handler) UpdateTicket(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var patch domain.TicketPatch
	if err := c.BodyParser(&patch); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.store.UpdateTicket(id, patch)
	if err != nil {
		return storeError("ticket", err)
	}
	return c.JSON(ticket)
}

// UpdateStatus PATCH /tickets/:id/status.
func (h *Handler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Status domain.TicketStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}
	ticket, err := h.store.UpdateTicket(id, domain.TicketPatch{Status: &req.Status})
	if err != nil {
		return storeError("ticket", err)
	}
	return c.JSON(ticket)
}

// DeleteTicket DELETE /tickets/:id.
func (h *Handler) DeleteTicket(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.store.DeleteTicket(id); err != nil {
		return storeError("ticket", err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Stats GET /stats.
func (h *Handler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.store.Stats())
}

// Users GET /users.
func (h *Handler) Users(c *fiber.Ctx) error {
	return c.JSON(h.store.Users())
}

// AddComment POST /tickets/:id/comments.
func (h *Handler) AddComment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Content    string `json:"content"`
		AuthorName string `json:"authorName"`
	}
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	comment, err := h.store.AddComment(id, req.Content, req.AuthorName)
	if err != nil {
		return storeError("ticket", err)
	}
	return c.Status(http.StatusCreated).JSON(comment)
}

// UploadAttachment POST /tickets/:id/attachments.
func (h *Handler) UploadAttachment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	header, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file required", nil)
	}
	f, err := header.Open()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	attachment, err := h.store.AddAttachment(id, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		return storeError("ticket", err)
	}
	return c.Status(http.StatusCreated).JSON(attachment)
}

// DownloadAttachment GET /attachments/:id/download.
func (h *Handler) DownloadAttachment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	meta, data, err := h.store.Attachment(id)
	if err != nil {
		return storeError("attachment", err)
	}
	c.Attachment(meta.OriginalName)
	c.Set(fiber.HeaderContentType, meta.Mimetype)
	return c.Send(data)
}

// DeleteAttachment DELETE /attachments/:id.
func (h *Handler) DeleteAttachment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.store.DeleteAttachment(id); err != nil {
		return storeError("attachment", err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid "+name, nil)
	}
	return id, nil
}

func storeError(resource string, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperrors.NewNotFound(resource, nil)
	case errors.Is(err, ErrInvalid):
		return apperrors.NewValidationError(err.Error(), nil)
	default:
		return apperrors.NewInternalError(err)
	}
}
