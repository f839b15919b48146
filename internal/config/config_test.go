package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "blog.db", cfg.DBPath)
	assert.Equal(t, 14*24*time.Hour, cfg.SessionLifetime)
	assert.False(t, cfg.CookieSecure)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("SESSION_LIFETIME", "24h")
	t.Setenv("COOKIE_SECURE", "1")
	cfg := Load()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 24*time.Hour, cfg.SessionLifetime)
	assert.True(t, cfg.CookieSecure)
}

func TestLoadBadLifetimeFallsBack(t *testing.T) {
	t.Setenv("SESSION_LIFETIME", "soon")
	cfg := Load()
	assert.Equal(t, 14*24*time.Hour, cfg.SessionLifetime)
}
