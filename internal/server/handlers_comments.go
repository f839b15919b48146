package server

import (
	"net/http"
	"strings"

	"blog/internal/comments"
	"blog/internal/models"
)

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "postId")
	if !ok {
		s.writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}
	list, err := models.ListCommentsByPost(s.db, postID)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, comments.Build(list))
}

// Visitors comment without an account; only the name they sign with is stored.
func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PostID   int64  `json:"postId"`
		ParentID *int64 `json:"parentId"`
		Name     string `json:"name"`
		Content  string `json:"content"`
	}
	if !s.readJSON(w, r, &req) {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.PostID <= 0 || req.Name == "" || strings.TrimSpace(req.Content) == "" {
		s.writeError(w, http.StatusBadRequest, "postId, name and content are required")
		return
	}
	comment := &models.Comment{
		PostID:   req.PostID,
		ParentID: req.ParentID,
		Name:     req.Name,
		Content:  req.Content,
	}
	if err := models.CreateComment(s.db, comment); err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, comment)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request, _ *models.User) {
	id, ok := pathID(r, "id")
	if !ok {
		s.writeError(w, http.StatusBadRequest, "invalid comment id")
		return
	}
	if err := models.DeleteComment(s.db, id); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
