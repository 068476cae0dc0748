package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/mockapi"
)

func runCLI(t *testing.T, apiURL string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--api-url", apiURL}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func mockURL(t *testing.T) string {
	t.Helper()
	t.Setenv("TICKET_API_BASE_URL", "")
	t.Setenv("THEME_MODE", "")
	store := mockapi.NewStore()
	mockapi.Seed(store)
	srv := httptest.NewServer(adaptor.FiberApp(mockapi.NewApp(store, zap.NewNop())))
	t.Cleanup(srv.Close)
	return srv.URL + "/api"
}

func TestTicketsCommands(t *testing.T) {
	api := mockURL(t)

	out, err := runCLI(t, api, "tickets", "list", "--status", "open")
	require.NoError(t, err)
	assert.Contains(t, out, "Login page returns 500")
	assert.Contains(t, out, "2 ticket(s) found")

	out, err = runCLI(t, api, "tickets", "create", "--title", "Printer jam", "--description", "Tray 2", "--priority", "urgent")
	require.NoError(t, err)
	assert.Contains(t, out, `"priority": "critical"`)

	_, err = runCLI(t, api, "tickets", "create", "--title", "", "--description", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")

	out, err = runCLI(t, api, "tickets", "status", "5", "pending")
	require.NoError(t, err)
	assert.Equal(t, "ticket #5 is now pending\n", out)

	_, err = runCLI(t, api, "tickets", "status", "5", "archived")
	assert.Error(t, err)

	out, err = runCLI(t, api, "tickets", "show", "5")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Printer jam"`)

	out, err = runCLI(t, api, "tickets", "delete", "5")
	require.NoError(t, err)
	assert.Equal(t, "ticket #5 deleted\n", out)

	_, err = runCLI(t, api, "tickets", "show", "5")
	require.Error(t, err)
	assert.Equal(t, "failed to fetch ticket: Not Found", err.Error())
}

func TestCommentsAndAttachmentsCommands(t *testing.T) {
	api := mockURL(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "trace.log")
	require.NoError(t, os.WriteFile(src, []byte("panic: boom"), 0o644))

	out, err := runCLI(t, api, "comments", "add", "2", "Looking", "into", "it", "--author", "Bruno Diaz")
	require.NoError(t, err)
	assert.Contains(t, out, "added to ticket #2")

	_, err = runCLI(t, api, "comments", "add", "2", "  ")
	assert.Error(t, err)

	out, err = runCLI(t, api, "attachments", "upload", "2", src)
	require.NoError(t, err)
	assert.Equal(t, "attachment #1 uploaded (trace.log, 11 B)\n", out)

	out, err = runCLI(t, api, "attachments", "download", "1", "-o", "-")
	require.NoError(t, err)
	assert.Equal(t, "panic: boom", out)

	dst := filepath.Join(dir, "copy.log")
	_, err = runCLI(t, api, "attachments", "download", "1", "-o", dst)
	require.NoError(t, err)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "panic: boom", string(data))

	out, err = runCLI(t, api, "attachments", "delete", "1")
	require.NoError(t, err)
	assert.Equal(t, "attachment #1 deleted\n", out)
}

func TestStatsAndUsersCommands(t *testing.T) {
	api := mockURL(t)

	out, err := runCLI(t, api, "stats")
	require.NoError(t, err)
	assert.Equal(t, "open:    2\npending: 1\nclosed:  1\ntotal:   4\n", out)

	out, err = runCLI(t, api, "users")
	require.NoError(t, err)
	assert.Contains(t, out, "Alice Martin")
	assert.Contains(t, out, "agent")
}

func TestParseID(t *testing.T) {
	id, err := parseID("42", "ticket id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = parseID("0", "ticket id")
	assert.Error(t, err)
	_, err = parseID("x", "ticket id")
	assert.Error(t, err)
}
