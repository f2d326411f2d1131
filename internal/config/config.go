package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings. Every field maps to one environment
// variable; all of them have development defaults so a bare `go run` works.
type Config struct {
	Env           string // "development" or "production"
	Addr          string // address the HTTP server binds to
	DatabaseURL   string // postgres URL or sqlite path
	SessionSecret string // cookie-session signing key (flash messages)
}

// Load reads the environment, consulting a .env file when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:           getenv("APP_ENV", "development"),
		Addr:          getenv("APP_ADDR", ":8080"),
		DatabaseURL:   getenv("DATABASE_URL", "gigbook.db"),
		SessionSecret: getenv("SESSION_SECRET", "gigbook-dev-secret"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
