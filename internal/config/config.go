package config

import (
	"os"
	"strconv"
	"time"
)

// UpstreamConfig holds settings for the remote posts API.
type UpstreamConfig struct {
	BaseURL    string
	TimeoutSec int
}

// Timeout returns the per-request timeout for upstream calls.
func (u UpstreamConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutSec) * time.Second
}

// UIConfig holds settings for the rendered page.
type UIConfig struct {
	PageSize     int
	PayloadsFile string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	AppHost        string
	Port           string
	Timezone       string
	MetricsEnabled bool
	Upstream       UpstreamConfig
	UI             UIConfig
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the file.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:        getEnv("APP_HOST", "localhost:8080"),
		Port:           getEnv("PORT", "8080"),
		Timezone:       getEnv("APP_TIMEZONE", "UTC"),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		Upstream: UpstreamConfig{
			BaseURL:    getEnv("API_BASE_URL", "https://jsonplaceholder.typicode.com"),
			TimeoutSec: getEnvInt("API_TIMEOUT_SEC", 10),
		},
		UI: UIConfig{
			PageSize:     getEnvInt("UI_PAGE_SIZE", 5),
			PayloadsFile: getEnv("DEMO_PAYLOADS_FILE", ""),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
