package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration. Everything comes from the
// environment so the same binary runs locally and hosted.
type Config struct {
	// Environment
	Environment string
	Port        string

	// Storage
	DatabaseURL string
	RedisURL    string

	// Auth
	JWTSecret string
	// Auth mode
	// - "none": No auth (self-hosted, local dev)
	// - "jwt": Validate JWTs issued by this API
	// - "gateway": Trust X-User-* headers from an upstream gateway
	AuthMode string

	// Vocabulary enrichment (Datamuse-compatible lexical API)
	EnrichmentURL      string
	EnrichmentTimeout  time.Duration
	EnrichmentCacheTTL time.Duration

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	LangfusePublicKey string // Langfuse public key
	LangfuseSecretKey string // Langfuse secret key
	LangfuseHost      string // Langfuse host URL (cloud or self-hosted)
	LangfuseEnabled   bool   // Feature flag for Langfuse
}

func Load() *Config {
	return &Config{
		Environment:        getEnv("ENVIRONMENT", "development"),
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		AuthMode:           getEnv("AUTH_MODE", "jwt"),
		EnrichmentURL:      getEnv("ENRICHMENT_API_URL", "https://api.datamuse.com"),
		EnrichmentTimeout:  getDurationEnv("ENRICHMENT_TIMEOUT_SECONDS", 3),
		EnrichmentCacheTTL: getDurationEnv("ENRICHMENT_CACHE_TTL_SECONDS", 6*60*60),
		SentryDSN:          getEnv("SENTRY_DSN", ""),
		LangfusePublicKey:  getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey:  getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseHost:       getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		LangfuseEnabled:    getEnv("LANGFUSE_ENABLED", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return time.Duration(defaultSeconds) * time.Second
}

// IsGatewayMode returns true if running behind an auth-terminating gateway
func (c *Config) IsGatewayMode() bool {
	return c.AuthMode == "gateway"
}

// IsProduction returns true in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
