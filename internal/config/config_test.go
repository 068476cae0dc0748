package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TICKET_API_BASE_URL", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("THEME_MODE", "")
	t.Setenv("API_STRICT_STATUS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.False(t, cfg.API.StrictStatus)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, "light", cfg.Theme.Mode)
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TICKET_API_BASE_URL", "https://tickets.example.com/api/")
	t.Setenv("API_STRICT_STATUS", "true")
	t.Setenv("THEME_MODE", "DARK")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")
	t.Setenv("MOCK_API_PORT", "4000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://tickets.example.com/api", cfg.API.BaseURL)
	assert.True(t, cfg.API.StrictStatus)
	assert.Equal(t, "dark", cfg.Theme.Mode)
	assert.Zero(t, cfg.App.RequestTimeout())
	assert.Equal(t, "0.0.0.0:4000", cfg.MockAPI.Addr())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("TICKET_API_BASE_URL", "localhost:3001/api")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("TICKET_API_BASE_URL", "")
	t.Setenv("THEME_MODE", "sepia")
	_, err = Load()
	assert.Error(t, err)
}

func TestGetEnvAsIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("ACTIVITY_FEED_SIZE", "many")
	assert.Equal(t, 20, getEnvAsInt("ACTIVITY_FEED_SIZE", 20))
}
