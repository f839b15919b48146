package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"blog/internal/models"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"message": msg})
}

// fail translates model errors into the API taxonomy. Raw store errors are
// logged and never serialized into responses.
func (s *Server) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, models.ErrDuplicateUsername):
		s.writeError(w, http.StatusBadRequest, "username already exists")
	case errors.Is(err, models.ErrDuplicateSlug):
		s.writeError(w, http.StatusBadRequest, "slug already exists")
	case errors.Is(err, models.ErrDuplicateEmail):
		s.writeError(w, http.StatusBadRequest, "email already subscribed")
	case errors.Is(err, models.ErrInvalidParent):
		s.writeError(w, http.StatusBadRequest, "parent comment must belong to the same post")
	default:
		s.logger.Error("request failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	return id, err == nil && id > 0
}
