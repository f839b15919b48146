package server

import (
	"errors"
	"net/http"
	"strings"

	"blog/internal/auth"
	"blog/internal/models"
)

// The login failure message never distinguishes an unknown username from a
// wrong password.
const invalidCredentialsMsg = "Invalid username or password"

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username    string `json:"username"`
		Password    string `json:"password"`
		DisplayName string `json:"displayName"`
		Bio         string `json:"bio"`
		AvatarURL   string `json:"avatarUrl"`
		Email       string `json:"email"`
	}
	if !s.readJSON(w, r, &req) {
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		s.writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.fail(w, err)
		return
	}
	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
		Bio:          req.Bio,
		AvatarURL:    req.AvatarURL,
		Email:        req.Email,
		Role:         auth.RoleUser,
	}
	if err := models.CreateUser(s.db, user); err != nil {
		s.fail(w, err)
		return
	}
	if _, err := s.sessions.Issue(r.Context(), w, user.ID); err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, user)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !s.readJSON(w, r, &req) {
		return
	}
	user, err := models.GetUserByUsername(s.db, req.Username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.writeError(w, http.StatusUnauthorized, invalidCredentialsMsg)
			return
		}
		s.fail(w, err)
		return
	}
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		s.writeError(w, http.StatusUnauthorized, invalidCredentialsMsg)
		return
	}
	if _, err := s.sessions.Issue(r.Context(), w, user.ID); err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Destroy(r.Context(), w, r)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	user := s.currentUser(w, r)
	if user == nil {
		s.writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	s.writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	user := s.currentUser(w, r)
	if user == nil {
		s.writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		s.writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if id != user.ID {
		s.writeError(w, http.StatusForbidden, "you can only update your own profile")
		return
	}
	var req struct {
		DisplayName     *string `json:"displayName"`
		Bio             *string `json:"bio"`
		AvatarURL       *string `json:"avatarUrl"`
		Email           *string `json:"email"`
		Password        string  `json:"password"`
		CurrentPassword string  `json:"currentPassword"`
	}
	if !s.readJSON(w, r, &req) {
		return
	}
	if req.Password != "" {
		if req.CurrentPassword == "" {
			s.writeError(w, http.StatusBadRequest, "current password is required to change password")
			return
		}
		if !auth.CheckPassword(req.CurrentPassword, user.PasswordHash) {
			s.writeError(w, http.StatusBadRequest, "current password is incorrect")
			return
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			s.fail(w, err)
			return
		}
		user.PasswordHash = hash
	}
	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if err := models.UpdateUser(s.db, user); err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, user)
}
