package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/apiclient"
	"github.com/spec-kit/ticket-dashboard/internal/domain"
	"github.com/spec-kit/ticket-dashboard/internal/events"
	"github.com/spec-kit/ticket-dashboard/internal/store"
	"github.com/spec-kit/ticket-dashboard/internal/views"
	apperrors "github.com/spec-kit/ticket-dashboard/pkg/util/errorutil"
)

// Backend is the ticket API as seen by the dashboard.
type Backend interface {
	store.TicketsAPI
	store.StatsAPI
	AddComment(ctx context.Context, ticketID int64, content, authorName string) (*domain.Comment, error)
	UploadAttachment(ctx context.Context, ticketID int64, filename string, r io.Reader) (*domain.Attachment, error)
	DownloadAttachment(ctx context.Context, attachmentID int64) (*apiclient.Download, error)
	DeleteAttachment(ctx context.Context, attachmentID int64) error
	FetchUsers(ctx context.Context) ([]domain.User, error)
}

// TicketService builds pages and runs ticket workflows. Every call works on
// fresh stores, so no state outlives a request.
type TicketService struct {
	backend  Backend
	activity *ActivityService
	theme    *views.Theme
	logger   *zap.Logger
	deps     store.Dependencies
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	Backend    Backend
	Activity   *ActivityService
	Theme      *views.Theme
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	theme := deps.Theme
	if theme == nil {
		theme = views.NewTheme(string(views.ThemeLight))
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketService{
		backend:  deps.Backend,
		activity: deps.Activity,
		theme:    theme,
		logger:   logger,
		deps:     store.Dependencies{Logger: logger, Dispatcher: deps.Dispatcher},
	}
}

// Dashboard loads the stats and renders the landing page.
func (s *TicketService) Dashboard(ctx context.Context) views.DashboardView {
	stats := store.NewStatsStore(s.backend, s.deps)
	stats.Load(ctx)
	return views.BuildDashboard(stats.Snapshot(), s.recentActivity(), s.theme.Palette())
}

// RefreshDashboard is the retry path of the landing page.
func (s *TicketService) RefreshDashboard(ctx context.Context) views.DashboardView {
	stats := store.NewStatsStore(s.backend, s.deps)
	stats.Refresh(ctx)
	return views.BuildDashboard(stats.Snapshot(), s.recentActivity(), s.theme.Palette())
}

// Tickets renders the list for filters. The search term is applied to the
// loaded list, not sent to the backend.
func (s *TicketService) Tickets(ctx context.Context, filters domain.TicketFilters) views.TicketsPageView {
	search := filters.Search
	filters.Search = ""
	tickets := store.NewTicketsStore(s.backend, filters, s.deps)
	tickets.Load(ctx)
	return views.BuildTicketsPage(tickets.Snapshot(), filters.Status, search, s.theme.Palette())
}

// TicketDetails renders one ticket with its comments and attachments. An
// unknown ticket is returned as an error; any other failure becomes the
// page's error panel.
func (s *TicketService) TicketDetails(ctx context.Context, id int64) (views.TicketDetailsView, error) {
	tickets := store.NewTicketsStore(s.backend, domain.TicketFilters{}, s.deps)
	ticket, err := tickets.GetTicket(ctx, id)
	if err != nil {
		var apiErr *apiclient.Error
		if errors.As(err, &apiErr) && apiErr.UpstreamStatus() == http.StatusNotFound {
			return views.TicketDetailsView{}, err
		}
		return views.BuildTicketDetails(nil, err, store.State[[]domain.Comment]{}, store.State[[]domain.Attachment]{}, false, s.theme.Palette()), nil
	}

	comments := store.NewCommentsStore(s.backend, id, s.deps)
	comments.Load(ctx)
	attachments := store.NewAttachmentsStore(s.backend, id, s.deps)
	attachments.SetAttachments(ticket.Attachments)

	return views.BuildTicketDetails(ticket, nil, comments.Snapshot(), attachments.Snapshot(), attachments.Uploading(), s.theme.Palette()), nil
}

// NewTicketForm renders the creation form. A failed user lookup leaves
// only the unassigned choice.
func (s *TicketService) NewTicketForm(ctx context.Context) views.NewTicketView {
	var names []string
	users, err := s.backend.FetchUsers(ctx)
	if err != nil {
		s.logger.Warn("failed to load assignees", zap.Error(err))
	}
	for _, u := range users {
		names = append(names, u.Name)
	}
	return views.BuildNewTicket(names, s.theme.Palette())
}

// CreateTicket validates form and creates the ticket.
func (s *TicketService) CreateTicket(ctx context.Context, form views.NewTicketForm) (*domain.Ticket, error) {
	input, fieldErrs := form.Validate()
	if fieldErrs != nil {
		return nil, apperrors.NewValidationError("invalid ticket", fieldErrs)
	}
	tickets := store.NewTicketsStore(s.backend, domain.TicketFilters{}, s.deps)
	return tickets.AddTicket(ctx, input)
}

// UpdateStatus moves a ticket to status.
func (s *TicketService) UpdateStatus(ctx context.Context, id int64, status domain.TicketStatus) (*domain.Ticket, error) {
	tickets := store.NewTicketsStore(s.backend, domain.TicketFilters{}, s.deps)
	ticket, err := tickets.UpdateTicketStatus(ctx, id, status)
	if errors.Is(err, store.ErrInvalidStatus) {
		return nil, apperrors.NewValidationError(err.Error(), map[string]any{"status": string(status)})
	}
	return ticket, err
}

// DeleteTicket removes a ticket.
func (s *TicketService) DeleteTicket(ctx context.Context, id int64) error {
	tickets := store.NewTicketsStore(s.backend, domain.TicketFilters{}, s.deps)
	return tickets.DeleteTicket(ctx, id)
}

// AddComment posts a comment on a ticket.
func (s *TicketService) AddComment(ctx context.Context, ticketID int64, content, authorName string) (*domain.Comment, error) {
	authorName = strings.TrimSpace(authorName)
	if authorName == "" {
		authorName = "Anonymous"
	}
	comments := store.NewCommentsStore(s.backend, ticketID, s.deps)
	comment, err := comments.SubmitComment(ctx, content, authorName)
	if errors.Is(err, store.ErrEmptyComment) {
		return nil, apperrors.NewValidationError(err.Error(), nil)
	}
	return comment, err
}

// UploadAttachment stores a file on a ticket.
func (s *TicketService) UploadAttachment(ctx context.Context, ticketID int64, filename string, r io.Reader) (*domain.Attachment, error) {
	attachments := store.NewAttachmentsStore(s.backend, ticketID, s.deps)
	return attachments.Upload(ctx, filename, r)
}

// DownloadAttachment fetches the content of an attachment.
func (s *TicketService) DownloadAttachment(ctx context.Context, attachmentID int64) (*apiclient.Download, error) {
	attachments := store.NewAttachmentsStore(s.backend, 0, s.deps)
	return attachments.Download(ctx, attachmentID)
}

// DeleteAttachment removes an attachment of a ticket.
func (s *TicketService) DeleteAttachment(ctx context.Context, ticketID, attachmentID int64) error {
	attachments := store.NewAttachmentsStore(s.backend, ticketID, s.deps)
	return attachments.Delete(ctx, attachmentID)
}

// Users lists the users known to the backend.
func (s *TicketService) Users(ctx context.Context) ([]domain.User, error) {
	return s.backend.FetchUsers(ctx)
}

// ToggleTheme flips the palette shared by all pages.
func (s *TicketService) ToggleTheme() views.Palette {
	return s.theme.Toggle()
}

// Palette returns the active palette.
func (s *TicketService) Palette() views.Palette {
	return s.theme.Palette()
}

func (s *TicketService) recentActivity() []events.Event {
	if s.activity == nil {
		return nil
	}
	return s.activity.Recent()
}
