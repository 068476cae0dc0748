package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAPIBaseURL is the ticket backend the dashboard talks to when
// TICKET_API_BASE_URL is unset.
const DefaultAPIBaseURL = "http://localhost:3001/api"

// Config aggregates runtime configuration for the dashboard.
type Config struct {
	App     AppConfig
	API     APIConfig
	MockAPI MockAPIConfig
	Logger  LoggerConfig
	Theme   ThemeConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
	ActivityFeedSize      int
}

// APIConfig describes the external ticket backend.
type APIConfig struct {
	BaseURL string
	// StrictStatus makes create/update calls check the response status
	// before decoding.
	StrictStatus bool
}

// MockAPIConfig configures the in-memory backend used for development.
type MockAPIConfig struct {
	Host string
	Port string
	Seed bool
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level  string
	Format string
}

// ThemeConfig selects the initial palette.
type ThemeConfig struct {
	Mode string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	baseURL := strings.TrimRight(getEnv("TICKET_API_BASE_URL", DefaultAPIBaseURL), "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("invalid TICKET_API_BASE_URL %q: scheme must be http or https", baseURL)
	}

	mode := strings.ToLower(getEnv("THEME_MODE", "light"))
	if mode != "light" && mode != "dark" {
		return nil, fmt.Errorf("invalid THEME_MODE %q", mode)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "ticket-dashboard"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
			ActivityFeedSize:      getEnvAsInt("ACTIVITY_FEED_SIZE", 20),
		},
		API: APIConfig{
			BaseURL:      baseURL,
			StrictStatus: getEnvAsBool("API_STRICT_STATUS", false),
		},
		MockAPI: MockAPIConfig{
			Host: getEnv("MOCK_API_HOST", "0.0.0.0"),
			Port: getEnv("MOCK_API_PORT", "3001"),
			Seed: getEnvAsBool("MOCK_API_SEED", true),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Theme: ThemeConfig{
			Mode: mode,
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// Addr returns the bind address of the mock backend.
func (m MockAPIConfig) Addr() string {
	return fmt.Sprintf("%s:%s", m.Host, m.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
