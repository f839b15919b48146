package main

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"blog/internal/auth"
	"blog/internal/config"
	"blog/internal/db"
	"blog/internal/models"
	"blog/internal/server"
	"blog/internal/session"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("database open failed", "error", err)
		os.Exit(1)
	}
	if err := ensureAdmin(database, cfg.AdminPassword); err != nil {
		logger.Error("admin seed failed", "error", err)
		os.Exit(1)
	}

	sessions := session.NewManager(session.NewSQLiteStore(database),
		cfg.SessionLifetime, cfg.CookieSecure, logger)
	srv := server.New(database, sessions, logger)

	logger.Info("listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// ensureAdmin creates the admin account on first startup so the content
// endpoints are usable out of the box.
func ensureAdmin(database *sql.DB, password string) error {
	_, err := models.GetUserByUsername(database, "admin")
	if err == nil {
		return nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return models.CreateUser(database, &models.User{
		Username:     "admin",
		PasswordHash: hash,
		DisplayName:  "Admin",
		Role:         auth.RoleAdmin,
	})
}
