package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const CookieName = "blog_session"

// Manager owns the session lifecycle: issuing on login, resolving on each
// request with a sliding expiration window, destroying on logout.
type Manager struct {
	store    Store
	lifetime time.Duration
	secure   bool
	logger   *slog.Logger
}

func NewManager(store Store, lifetime time.Duration, secure bool, logger *slog.Logger) *Manager {
	return &Manager{store: store, lifetime: lifetime, secure: secure, logger: logger}
}

func (m *Manager) Issue(ctx context.Context, w http.ResponseWriter, userID int64) (*Record, error) {
	now := time.Now()
	rec := &Record{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.lifetime),
	}
	if err := m.store.Set(ctx, rec); err != nil {
		return nil, err
	}
	m.setCookie(w, rec)
	return rec, nil
}

// Resolve maps the request's cookie to a live session. Missing, expired and
// unreadable sessions all come back as anonymous; a store failure fails closed
// rather than authenticating anyone. A hit slides the expiration forward and
// re-issues the cookie.
func (m *Manager) Resolve(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Record, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return nil, false
	}
	rec, err := m.store.Get(ctx, c.Value)
	if errors.Is(err, ErrNotFound) {
		return nil, false
	}
	if err != nil {
		m.logger.Error("session lookup failed", "error", err)
		return nil, false
	}
	if time.Now().After(rec.ExpiresAt) {
		if err := m.store.Delete(ctx, rec.ID); err != nil {
			m.logger.Warn("expired session cleanup failed", "error", err)
		}
		return nil, false
	}
	rec.ExpiresAt = time.Now().Add(m.lifetime)
	if err := m.store.Set(ctx, rec); err != nil {
		// The caller stays authenticated; only the refresh was lost.
		m.logger.Warn("session refresh failed", "error", err)
	}
	m.setCookie(w, rec)
	return rec, true
}

// Destroy is idempotent: logging out without a session is a no-op that still
// clears the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		if err := m.store.Delete(ctx, c.Value); err != nil {
			m.logger.Warn("session delete failed", "error", err)
		}
	}
	// Name and path must match the cookie set at issue time or browsers keep it.
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
	})
}

func (m *Manager) setCookie(w http.ResponseWriter, rec *Record) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    rec.ID,
		Path:     "/",
		Expires:  rec.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
	})
}
