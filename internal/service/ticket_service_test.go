package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/apiclient"
	"github.com/spec-kit/ticket-dashboard/internal/domain"
	"github.com/spec-kit/ticket-dashboard/internal/events"
	"github.com/spec-kit/ticket-dashboard/internal/mockapi"
	"github.com/spec-kit/ticket-dashboard/internal/views"
	apperrors "github.com/spec-kit/ticket-dashboard/pkg/util/errorutil"
)

func newTestService(t *testing.T) (*TicketService, *ActivityService) {
	t.Helper()
	backend := mockapi.NewStore()
	mockapi.Seed(backend)
	srv := httptest.NewServer(adaptor.FiberApp(mockapi.NewApp(backend, zap.NewNop())))
	t.Cleanup(srv.Close)

	dispatcher := events.NewInMemoryDispatcher()
	activity := NewActivityService(dispatcher, zap.NewNop(), 10)
	activity.RegisterHandlers()

	svc := NewTicketService(TicketDependencies{
		Backend:    apiclient.New(srv.URL + "/api"),
		Activity:   activity,
		Dispatcher: dispatcher,
		Logger:     zap.NewNop(),
	})
	return svc, activity
}

func TestTicketServiceDashboard(t *testing.T) {
	svc, _ := newTestService(t)

	v := svc.Dashboard(context.Background())
	require.Nil(t, v.Error)
	require.Len(t, v.Stats, 3)
	assert.Equal(t, 2, v.Stats[0].Value)
	assert.Equal(t, 1, v.Stats[1].Value)
	assert.Equal(t, 1, v.Stats[2].Value)
	assert.Equal(t, "4 tickets total", v.Header.Chips[1].Label)
}

func TestTicketServiceTicketsSearchIsLocal(t *testing.T) {
	svc, _ := newTestService(t)

	v := svc.Tickets(context.Background(), domain.TicketFilters{Status: domain.TicketStatusPending, Search: "DASHBOARD"})
	require.Nil(t, v.Error)
	require.Len(t, v.Tickets, 1)
	assert.Equal(t, int64(3), v.Tickets[0].ID)
	assert.Equal(t, "DASHBOARD", v.Search)
	assert.Equal(t, "1 ticket(s) found", v.Header.Subtitle)
}

func TestTicketServiceWorkflow(t *testing.T) {
	svc, activity := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateTicket(ctx, views.NewTicketForm{Title: "Printer jam", Description: "Tray 2", Priority: "urgent", CreatedBy: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, domain.TicketPriorityCritical, created.Priority)

	_, err = svc.UpdateStatus(ctx, created.ID, domain.TicketStatusPending)
	require.NoError(t, err)

	comment, err := svc.AddComment(ctx, created.ID, "Ordered a new roller", "")
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", comment.AuthorName)

	att, err := svc.UploadAttachment(ctx, created.ID, "photo.png", strings.NewReader("png"))
	require.NoError(t, err)

	details, err := svc.TicketDetails(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, details.Ticket)
	assert.Equal(t, domain.TicketStatusPending, details.Ticket.Status)
	assert.Equal(t, 1, details.CommentCount)
	require.Len(t, details.Attachments, 1)
	assert.Equal(t, "photo.png", details.Attachments[0].Name)

	download, err := svc.DownloadAttachment(ctx, att.ID)
	require.NoError(t, err)
	assert.Equal(t, "png", string(download.Data))

	require.NoError(t, svc.DeleteAttachment(ctx, created.ID, att.ID))
	require.NoError(t, svc.DeleteTicket(ctx, created.ID))

	types := []events.EventType{}
	for _, e := range activity.Recent() {
		types = append(types, e.Type)
	}
	assert.Equal(t, []events.EventType{
		events.EventTicketCreated,
		events.EventTicketStatusChanged,
		events.EventCommentAdded,
		events.EventAttachmentUploaded,
		events.EventAttachmentDeleted,
		events.EventTicketDeleted,
	}, types)

	v := svc.Dashboard(ctx)
	require.NotNil(t, v.Activity)
	assert.Equal(t, "Ticket #5 deleted", v.Activity.Items[0].Message)
}

func TestTicketServiceValidationErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	var domainErr *apperrors.DomainError

	_, err := svc.CreateTicket(ctx, views.NewTicketForm{Title: " "})
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
	assert.Contains(t, domainErr.Details, "title")

	_, err = svc.UpdateStatus(ctx, 1, "archived")
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)

	_, err = svc.AddComment(ctx, 1, "   ", "Alice")
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
}

func TestTicketServiceUnknownTicket(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.TicketDetails(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
}

func TestTicketServiceBackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	svc := NewTicketService(TicketDependencies{Backend: apiclient.New(srv.URL)})
	ctx := context.Background()

	dash := svc.Dashboard(ctx)
	require.NotNil(t, dash.Error)
	assert.Equal(t, "failed to load statistics: failed to fetch stats: Service Unavailable", dash.Error.Message)

	details, err := svc.TicketDetails(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, details.Error)

	form := svc.NewTicketForm(ctx)
	assert.Equal(t, []string{views.Unassigned}, form.Assignees)
}

func TestTicketServiceToggleTheme(t *testing.T) {
	svc := NewTicketService(TicketDependencies{Theme: views.NewTheme("dark")})
	assert.Equal(t, views.ThemeDark, svc.Palette().Mode)
	assert.Equal(t, views.ThemeLight, svc.ToggleTheme().Mode)
}
