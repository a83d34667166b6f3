package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds service configuration loaded from environment variables.
// Provide sane defaults for local development; production deployments are
// expected to set every key explicitly, in particular SECRET_KEY, which must
// match between the auth and todo services for bearer tokens to verify.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Token signing contract shared by both services
	SecretKey                string
	Algorithm                string
	AccessTokenExpireMinutes int

	// Database; empty DatabaseURL selects the in-memory store
	DatabaseURL   string
	MigrationsDir string

	// CORS
	CORSAllowedOrigins string // comma-separated

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

// Load loads configuration from environment variables.
// appName and port are per-service defaults supplied by each main.
func Load(appName, port string) *Config {
	return &Config{
		AppName: getenv("APP_NAME", appName),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", port),
		GinMode: getenv("GIN_MODE", "release"),

		SecretKey:                getenv("SECRET_KEY", "dev-secret"),
		Algorithm:                getenv("ALGORITHM", "HS256"),
		AccessTokenExpireMinutes: getint("ACCESS_TOKEN_EXPIRE_MINUTES", 60),

		DatabaseURL:   getenv("DATABASE_URL", ""),
		MigrationsDir: getenv("MIGRATIONS_DIR", ""),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
