package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(store Store, lifetime time.Duration) *Manager {
	return NewManager(store, lifetime, false, slog.Default())
}

func issueCookie(t *testing.T, m *Manager, userID int64) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	_, err := m.Issue(context.Background(), w, userID)
	require.NoError(t, err)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestIssueSetsCookie(t *testing.T) {
	m := newTestManager(NewMemoryStore(), time.Hour)
	c := issueCookie(t, m, 7)
	assert.Equal(t, CookieName, c.Name)
	assert.NotEmpty(t, c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.False(t, c.Secure)
}

func TestResolveValidSession(t *testing.T) {
	m := newTestManager(NewMemoryStore(), time.Hour)
	c := issueCookie(t, m, 7)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(c)
	w := httptest.NewRecorder()
	rec, ok := m.Resolve(context.Background(), w, r)
	require.True(t, ok)
	assert.Equal(t, int64(7), rec.UserID)
	assert.Equal(t, c.Value, rec.ID)
}

func TestResolveSlidesExpiration(t *testing.T) {
	store := NewMemoryStore()
	m := newTestManager(store, time.Hour)
	c := issueCookie(t, m, 7)

	before, err := store.Get(context.Background(), c.Value)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(c)
	w := httptest.NewRecorder()
	_, ok := m.Resolve(context.Background(), w, r)
	require.True(t, ok)

	after, err := store.Get(context.Background(), c.Value)
	require.NoError(t, err)
	assert.True(t, after.ExpiresAt.After(before.ExpiresAt))
	// refresh re-issues the cookie so the browser expiry slides too
	require.Len(t, w.Result().Cookies(), 1)
}

func TestResolveExpiredSession(t *testing.T) {
	store := NewMemoryStore()
	m := newTestManager(store, -time.Minute)
	c := issueCookie(t, m, 7)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(c)
	w := httptest.NewRecorder()
	_, ok := m.Resolve(context.Background(), w, r)
	assert.False(t, ok)
	// expired record is removed from the store
	_, err := store.Get(context.Background(), c.Value)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveNoCookie(t *testing.T) {
	m := newTestManager(NewMemoryStore(), time.Hour)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := m.Resolve(context.Background(), httptest.NewRecorder(), r)
	assert.False(t, ok)
}

func TestDestroyInvalidatesAndClearsCookie(t *testing.T) {
	m := newTestManager(NewMemoryStore(), time.Hour)
	c := issueCookie(t, m, 7)

	r := httptest.NewRequest(http.MethodPost, "/logout", nil)
	r.AddCookie(c)
	w := httptest.NewRecorder()
	m.Destroy(context.Background(), w, r)

	cleared := w.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, CookieName, cleared[0].Name)
	assert.Equal(t, "/", cleared[0].Path)
	assert.Negative(t, cleared[0].MaxAge)

	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(c)
	_, ok := m.Resolve(context.Background(), httptest.NewRecorder(), r2)
	assert.False(t, ok)
}

func TestDestroyIdempotent(t *testing.T) {
	m := newTestManager(NewMemoryStore(), time.Hour)
	r := httptest.NewRequest(http.MethodPost, "/logout", nil)
	w := httptest.NewRecorder()
	m.Destroy(context.Background(), w, r) // no session at all
	m.Destroy(context.Background(), httptest.NewRecorder(), r)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (*Record, error) {
	return nil, errors.New("store unavailable")
}
func (failingStore) Set(context.Context, *Record) error { return errors.New("store unavailable") }
func (failingStore) Delete(context.Context, string) error {
	return errors.New("store unavailable")
}

func TestResolveFailsClosedOnStoreError(t *testing.T) {
	m := newTestManager(failingStore{}, time.Hour)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "some-id"})
	_, ok := m.Resolve(context.Background(), httptest.NewRecorder(), r)
	assert.False(t, ok)
}
