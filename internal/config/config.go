package config

import (
	"os"
	"time"
)

// Config carries everything the server needs at startup. Values come from the
// environment with development-friendly defaults.
type Config struct {
	Addr            string
	DBPath          string
	SessionLifetime time.Duration
	AdminPassword   string
	CookieSecure    bool
}

func Load() Config {
	lifetime, err := time.ParseDuration(getenv("SESSION_LIFETIME", "336h"))
	if err != nil {
		lifetime = 14 * 24 * time.Hour
	}
	return Config{
		Addr:            getenv("ADDR", ":8080"),
		DBPath:          getenv("DB_PATH", "blog.db"),
		SessionLifetime: lifetime,
		AdminPassword:   getenv("ADMIN_PASSWORD", "admin"),
		CookieSecure:    getenv("COOKIE_SECURE", "") == "1",
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
