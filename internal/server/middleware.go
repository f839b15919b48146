package server

import (
	"net/http"
	"time"

	"blog/internal/models"
)

// currentUser resolves the session cookie to a user. The resolution slides the
// session's expiration, so any authenticated request keeps the login alive.
func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) *models.User {
	rec, ok := s.sessions.Resolve(r.Context(), w, r)
	if !ok {
		return nil
	}
	user, err := models.GetUser(s.db, rec.UserID)
	if err != nil {
		return nil
	}
	return user
}

type authedHandler func(http.ResponseWriter, *http.Request, *models.User)

func (s *Server) requireAdmin(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := s.currentUser(w, r)
		if user == nil {
			s.writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !user.Role.IsAdmin() {
			s.writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		next(w, r, user)
	}
}

type statusRW struct {
	http.ResponseWriter
	status int
}

func (w *statusRW) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *Server) withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusRW{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start).Truncate(time.Millisecond))
	})
}
