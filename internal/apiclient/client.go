// Package apiclient maps ticket operations onto the backend REST API.
//
// The client performs no retries and no caching. Apart from CreateTicket
// and UpdateTicket, every operation fails with *Error when the backend
// answers with a non-2xx status.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
	"github.com/spec-kit/ticket-dashboard/internal/observability"
)

// Client talks to the ticket backend.
type Client struct {
	rc      *resty.Client
	baseURL string
	logger  *zap.Logger
	metrics *observability.Metrics
	strict  bool
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger sets the logger used for call diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics records every call on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithHTTPClient swaps the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.rc = resty.NewWithClient(hc) }
}

// WithStrictStatus makes CreateTicket and UpdateTicket check the response
// status before decoding, like every other operation.
func WithStrictStatus() Option {
	return func(c *Client) { c.strict = true }
}

// New builds a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		rc:      resty.New(),
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.rc.SetBaseURL(c.baseURL).
		SetRetryCount(0).
		SetLogger(c.logger.Sugar())
	return c
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type operation struct {
	name        string
	label       string
	checkStatus bool
}

var (
	opFetchTickets       = operation{"fetch_tickets", "failed to fetch tickets", true}
	opFetchTicket        = operation{"fetch_ticket", "failed to fetch ticket", true}
	opCreateTicket       = operation{"create_ticket", "failed to create ticket", false}
	opUpdateTicket       = operation{"update_ticket", "failed to update ticket", false}
	opUpdateStatus       = operation{"update_ticket_status", "failed to update status", true}
	opDeleteTicket       = operation{"delete_ticket", "failed to delete ticket", true}
	opFetchStats         = operation{"fetch_stats", "failed to fetch stats", true}
	opFetchUsers         = operation{"fetch_users", "failed to fetch users", true}
	opAddComment         = operation{"add_comment", "failed to add comment", true}
	opUploadAttachment   = operation{"upload_attachment", "failed to upload attachment", true}
	opDownloadAttachment = operation{"download_attachment", "failed to download attachment", true}
	opDeleteAttachment   = operation{"delete_attachment", "failed to delete attachment", true}
)

// FetchTickets lists tickets matching filters, in server order.
func (c *Client) FetchTickets(ctx context.Context, filters domain.TicketFilters) ([]domain.Ticket, error) {
	var tickets []domain.Ticket
	req := c.rc.R().SetQueryParamsFromValues(filters.Values())
	if _, err := c.execute(ctx, opFetchTickets, req, http.MethodGet, "/tickets", &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// FetchTicketByID returns one ticket, including comments and attachments
// when the backend embeds them.
func (c *Client) FetchTicketByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if _, err := c.execute(ctx, opFetchTicket, c.rc.R(), http.MethodGet, ticketPath(id), &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// CreateTicket submits a new ticket and returns it with server-assigned fields.
func (c *Client) CreateTicket(ctx context.Context, input domain.NewTicket) (*domain.Ticket, error) {
	var ticket domain.Ticket
	req := c.rc.R().SetHeader("Content-Type", "application/json").SetBody(input)
	if _, err := c.execute(ctx, opCreateTicket, req, http.MethodPost, "/tickets", &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// UpdateTicket sends partial fields through the full-resource PUT endpoint.
func (c *Client) UpdateTicket(ctx context.Context, id int64, patch domain.TicketPatch) (*domain.Ticket, error) {
	var ticket domain.Ticket
	req := c.rc.R().SetHeader("Content-Type", "application/json").SetBody(patch)
	if _, err := c.execute(ctx, opUpdateTicket, req, http.MethodPut, ticketPath(id), &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// UpdateTicketStatus changes only the status through the PATCH endpoint.
func (c *Client) UpdateTicketStatus(ctx context.Context, id int64, status domain.TicketStatus) (*domain.Ticket, error) {
	var ticket domain.Ticket
	req := c.rc.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]domain.TicketStatus{"status": status})
	if _, err := c.execute(ctx, opUpdateStatus, req, http.MethodPatch, ticketPath(id)+"/status", &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// DeleteTicket removes a ticket.
func (c *Client) DeleteTicket(ctx context.Context, id int64) error {
	_, err := c.execute(ctx, opDeleteTicket, c.rc.R(), http.MethodDelete, ticketPath(id), nil)
	return err
}

// FetchStats returns the raw aggregate counts. See domain.Stats.Normalize.
func (c *Client) FetchStats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	if _, err := c.execute(ctx, opFetchStats, c.rc.R(), http.MethodGet, "/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// FetchUsers lists backend users.
func (c *Client) FetchUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if _, err := c.execute(ctx, opFetchUsers, c.rc.R(), http.MethodGet, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AddComment posts a comment on a ticket.
func (c *Client) AddComment(ctx context.Context, ticketID int64, content, authorName string) (*domain.Comment, error) {
	var comment domain.Comment
	req := c.rc.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"content": content, "authorName": authorName})
	if _, err := c.execute(ctx, opAddComment, req, http.MethodPost, ticketPath(ticketID)+"/comments", &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// UploadAttachment sends r as the "file" part of a multipart form.
func (c *Client) UploadAttachment(ctx context.Context, ticketID int64, filename string, r io.Reader) (*domain.Attachment, error) {
	var attachment domain.Attachment
	req := c.rc.R().SetFileReader("file", filename, r)
	if _, err := c.execute(ctx, opUploadAttachment, req, http.MethodPost, ticketPath(ticketID)+"/attachments", &attachment); err != nil {
		return nil, err
	}
	return &attachment, nil
}

// Download is a raw attachment payload.
type Download struct {
	Data        []byte
	ContentType string
	Filename    string
}

// DownloadAttachment fetches the binary content of an attachment.
func (c *Client) DownloadAttachment(ctx context.Context, attachmentID int64) (*Download, error) {
	resp, err := c.execute(ctx, opDownloadAttachment, c.rc.R(), http.MethodGet, attachmentPath(attachmentID)+"/download", nil)
	if err != nil {
		return nil, err
	}
	d := &Download{
		Data:        resp.Body(),
		ContentType: resp.Header().Get("Content-Type"),
	}
	if _, params, err := mime.ParseMediaType(resp.Header().Get("Content-Disposition")); err == nil {
		d.Filename = params["filename"]
	}
	return d, nil
}

// DeleteAttachment removes an attachment.
func (c *Client) DeleteAttachment(ctx context.Context, attachmentID int64) error {
	_, err := c.execute(ctx, opDeleteAttachment, c.rc.R(), http.MethodDelete, attachmentPath(attachmentID), nil)
	return err
}

func (c *Client) execute(ctx context.Context, op operation, req *resty.Request, method, path string, out any) (*resty.Response, error) {
	start := time.Now()
	resp, err := req.SetContext(ctx).Execute(method, path)
	err = c.check(op, resp, err, out)
	duration := time.Since(start)
	c.metrics.RecordClientCall(op.name, err, duration)
	if err != nil {
		c.logger.Debug("ticket api call failed",
			zap.String("operation", op.name),
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("duration", duration),
			zap.Error(err))
		return resp, err
	}
	c.logger.Debug("ticket api call",
		zap.String("operation", op.name),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("duration", duration))
	return resp, nil
}

func (c *Client) check(op operation, resp *resty.Response, err error, out any) error {
	if err != nil {
		return &Error{Op: op.label, Err: err}
	}
	if (op.checkStatus || c.strict) && !resp.IsSuccess() {
		return &Error{Op: op.label, StatusCode: resp.StatusCode(), StatusText: statusText(resp)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &Error{
			Op:         op.label,
			StatusCode: resp.StatusCode(),
			StatusText: statusText(resp),
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}
	return nil
}

func ticketPath(id int64) string {
	return "/tickets/" + strconv.FormatInt(id, 10)
}

func attachmentPath(id int64) string {
	return "/attachments/" + strconv.FormatInt(id, 10)
}
