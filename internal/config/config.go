package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// BackendConfig holds settings for the external template search endpoint.
type BackendConfig struct {
	BaseURL    string
	SearchPath string
	TimeoutSec int
}

// SearchURL joins the base URL and search path into the endpoint address.
func (b BackendConfig) SearchURL() string {
	base := strings.TrimRight(b.BaseURL, "/")
	path := b.SearchPath
	if path == "" {
		return base
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// Timeout returns the per-request timeout as a duration.
func (b BackendConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutSec) * time.Second
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	AppHost     string
	Port        string
	Timezone    string
	Theme       string
	CORSOrigins string
	Backend     BackendConfig
}

// Location resolves the configured timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:     getEnv("APP_HOST", "localhost:8080"),
		Port:        getEnv("PORT", "8080"),
		Timezone:    getEnv("APP_TIMEZONE", "UTC"),
		Theme:       getEnv("UI_THEME", "dark"),
		CORSOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		Backend: BackendConfig{
			BaseURL:    getEnv("SEARCH_API_URL", "http://localhost:8000"),
			SearchPath: getEnv("SEARCH_API_PATH", "/api/search-templates"),
			TimeoutSec: getEnvInt("SEARCH_API_TIMEOUT_SEC", 60),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
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
