package server

import (
	"net/http"
	"strings"

	"blog/internal/models"
)

func (s *Server) handleCreateMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if !s.readJSON(w, r, &req) {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || strings.TrimSpace(req.Message) == "" {
		s.writeError(w, http.StatusBadRequest, "name, email and message are required")
		return
	}
	msg := &models.Message{Name: req.Name, Email: req.Email, Message: req.Message}
	if err := models.CreateMessage(s.db, msg); err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, msg)
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request, _ *models.User) {
	messages, err := models.ListMessages(s.db)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, messages)
}

func (s *Server) handleDeleteMessage(w http.ResponseWriter, r *http.Request, _ *models.User) {
	id, ok := pathID(r, "id")
	if !ok {
		s.writeError(w, http.StatusBadRequest, "invalid message id")
		return
	}
	if err := models.DeleteMessage(s.db, id); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateSubscriber(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !s.readJSON(w, r, &req) {
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		s.writeError(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	sub := &models.Subscriber{Email: req.Email}
	if err := models.CreateSubscriber(s.db, sub); err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, sub)
}

func (s *Server) handleListSubscribers(w http.ResponseWriter, r *http.Request, _ *models.User) {
	subs, err := models.ListSubscribers(s.db)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, subs)
}

func (s *Server) handleDeleteSubscriber(w http.ResponseWriter, r *http.Request, _ *models.User) {
	id, ok := pathID(r, "id")
	if !ok {
		s.writeError(w, http.StatusBadRequest, "invalid subscriber id")
		return
	}
	if err := models.DeleteSubscriber(s.db, id); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
