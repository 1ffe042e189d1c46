package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Optional backing services. Empty disables them.
	DatabaseURL string // resolution statistics
	RedisURL    string // rate limiter and session storage

	// TLS/mTLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)

	// Session
	SessionSecret string // Used for encrypting cookies (min 32 chars)
	HistorySize   int    // Exchanges kept in the chat transcript

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Rate limiting
	RateLimitMax int // Requests per minute per IP

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // text or json

	// Apply-link checker. Zero disables it.
	LinkCheckInterval time.Duration
	LinkCheckMaxAge   time.Duration

	// Site Branding
	SiteTitle       string // env: SITE_TITLE, default: "Government Scheme Assistance"
	SiteTagline     string // env: SITE_TAGLINE
	SiteFooter      string // env: SITE_FOOTER
	SiteLogoURL     string // env: SITE_LOGO_URL, default: "" (no logo, text only)
	Instruction     string // prompt shown above the query box
	FormWebsiteURL  string // link shown on the application form
	GreetingMessage string // response area text before the first query
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:               getEnv("ENV", "development"),
		ServerAddr:        getEnv("SERVER_ADDR", ":3000"),
		BaseURL:           getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		RedisURL:          getEnv("REDIS_URL", ""),
		TLSEnabled:        getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:       getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:        getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:         getEnv("TLS_CA_FILE", ""),
		SessionSecret:     getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		HistorySize:       getEnvInt("HISTORY_SIZE", 10),
		CORSOrigins:       getEnv("CORS_ORIGINS", ""),
		RateLimitMax:      getEnvInt("RATE_LIMIT_MAX", 100),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		LinkCheckInterval: getEnvDuration("LINK_CHECK_INTERVAL", 0),
		LinkCheckMaxAge:   getEnvDuration("LINK_CHECK_MAX_AGE", time.Hour),

		SiteTitle:       getEnv("SITE_TITLE", "Government Scheme Assistance"),
		SiteTagline:     getEnv("SITE_TAGLINE", "Find the right government scheme for you"),
		SiteFooter:      getEnv("SITE_FOOTER", "Government Scheme Assistance"),
		SiteLogoURL:     getEnv("SITE_LOGO_URL", ""),
		Instruction:     "Enter your query (e.g., farming scheme, unemployment scheme):",
		FormWebsiteURL:  "https://www.example.com/",
		GreetingMessage: "Awaiting your query...",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}

// StatsEnabled returns true if resolution statistics are persisted.
func (c *Config) StatsEnabled() bool {
	return c.DatabaseURL != ""
}

// LinkCheckEnabled returns true if the background apply-link checker runs.
func (c *Config) LinkCheckEnabled() bool {
	return c.LinkCheckInterval > 0
}
