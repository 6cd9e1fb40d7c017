package config

import (
	"os"
	"strconv"
	"strings"

	"recruit-api/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port             string
	DatabaseURL      string
	DatabaseName     string
	Env              string
	CORSAllowOrigins []string
	LogLevel         string
	RateLimitRPS     float64
	RateLimitBurst   int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))

	if env == "production" && dbURL == "" {
		telemetry.Warn("config.database_url_missing", map[string]any{"env": env})
	}

	return Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      dbURL,
		DatabaseName:     getEnv("DATABASE_NAME", "recruit"),
		Env:              env,
		CORSAllowOrigins: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", "info")),
		RateLimitRPS:     getEnvFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst:   getEnvInt("RATE_LIMIT_BURST", 0),
	}
}

// IsDevLike reports whether the environment tolerates in-memory fallbacks.
func (c Config) IsDevLike() bool {
	switch c.Env {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		telemetry.Warn("config.invalid_float", map[string]any{"key": key, "error": err})
		return def
	}
	return val
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		telemetry.Warn("config.invalid_int", map[string]any{"key": key, "error": err})
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
