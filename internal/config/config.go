package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

const (
	defaultEnv          = "dev"
	defaultDBPath       = "./dev.db"
	defaultPort         = "8080"
	defaultTemplatesDir = "web/templates"
	defaultStaticDir    = "web/static"
	defaultScanInterval = 300 * time.Millisecond
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env           string
	AdminEmail    string
	AdminPassword string
	SessionSecret string
	DBPath        string
	Port          string
	TemplatesDir  string
	StaticDir     string
	ScanInterval  time.Duration
	LogLevel      slog.Level
}

// IsDev reports whether the server runs in local development mode.
func (c Config) IsDev() bool {
	return c.Env == "" || c.Env == defaultEnv
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: production should use real env injection.
	if err := loadDotEnv(".env"); err != nil {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg := Config{
		Env:           strings.ToLower(getEnvOrDefault("APP_ENV", defaultEnv)),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		DBPath:        getEnvOrDefault("DB_PATH", defaultDBPath),
		Port:          getEnvOrDefault("PORT", defaultPort),
		TemplatesDir:  getEnvOrDefault("TEMPLATES_DIR", defaultTemplatesDir),
		StaticDir:     getEnvOrDefault("STATIC_DIR", defaultStaticDir),
		ScanInterval:  getDurationOrDefault("SCAN_INTERVAL", defaultScanInterval),
		LogLevel:      getLevelOrDefault("LOG_LEVEL", slog.LevelInfo),
	}

	if cfg.AdminEmail == "" {
		slog.Warn("ADMIN_EMAIL is not set")
	}
	if cfg.AdminPassword == "" {
		slog.Warn("ADMIN_PASSWORD is not set")
	}
	if cfg.SessionSecret == "" {
		slog.Warn("SESSION_SECRET is not set")
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration, using default", "key", key, "value", value, "default", defaultValue)
		return defaultValue
	}
	return d
}

func getLevelOrDefault(key string, defaultValue slog.Level) slog.Level {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		slog.Warn("invalid log level, using default", "key", key, "value", value)
		return defaultValue
	}
	return level
}
