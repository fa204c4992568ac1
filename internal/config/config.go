package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

var ErrMissingSecret = errors.New("SESSION_SECRET is not set")

// Config holds process-wide settings loaded once at startup.
type Config struct {
	Addr          string // HTTP listen address
	DSN           string // path to the SQLite database file
	HTMLDir       string // path to HTML templates
	StaticDir     string // path to static assets
	SessionSecret string // key for signing the user_id cookie
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present.
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Addr:          getEnv("ADDR", ":4000"),
		DSN:           getEnv("DSN", "./blog.db"),
		HTMLDir:       getEnv("HTML_DIR", "./ui/html"),
		StaticDir:     getEnv("STATIC_DIR", "./ui/static"),
		SessionSecret: getEnv("SESSION_SECRET", ""),
	}

	if cfg.SessionSecret == "" {
		return nil, ErrMissingSecret
	}

	return cfg, nil
}

func loadEnvFile() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
