package mockapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
)

func TestHandlersTicketRoutes(t *testing.T) {
	store := NewStore()
	Seed(store)
	app := NewApp(store, zap.NewNop())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/tickets?status=closed", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tickets []domain.Ticket
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tickets))
	require.Len(t, tickets, 1)
	assert.Equal(t, domain.TicketStatusClosed, tickets[0].Status)

	req := httptest.NewRequest(http.MethodPatch, "/api/tickets/2/status", strings.NewReader(`{"status":"pending"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated domain.Ticket
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, domain.TicketStatusPending, updated.Status)

	req = httptest.NewRequest(http.MethodPatch, "/api/tickets/2/status", strings.NewReader(`{"status":"archived"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandlersNotFoundUsesErrorEnvelope(t *testing.T) {
	app := NewApp(NewStore(), zap.NewNop())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/tickets/42", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"code":"NOT_FOUND"`)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/attachments/9", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/tickets/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandlersStatsAndUsers(t *testing.T) {
	store := NewStore()
	Seed(store)
	app := NewApp(store, zap.NewNop())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"openTickets":2,"pendingTickets":1,"closedTickets":1}`, string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/users", nil))
	require.NoError(t, err)
	var users []domain.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	assert.Len(t, users, 3)
}
