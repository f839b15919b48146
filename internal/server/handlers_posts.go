package server

import (
	"net/http"
	"strings"
	"time"

	"blog/internal/models"
)

type postRequest struct {
	Title       *string    `json:"title"`
	Slug        *string    `json:"slug"`
	Content     *string    `json:"content"`
	Excerpt     *string    `json:"excerpt"`
	CoverImage  *string    `json:"coverImage"`
	PublishedAt *time.Time `json:"publishedAt"`
	Tags        *[]string  `json:"tags"`
}

func (req *postRequest) apply(p *models.Post) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Slug != nil {
		p.Slug = *req.Slug
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.Excerpt != nil {
		p.Excerpt = *req.Excerpt
	}
	if req.CoverImage != nil {
		p.CoverImage = *req.CoverImage
	}
	if req.PublishedAt != nil {
		p.PublishedAt = *req.PublishedAt
	}
	if req.Tags != nil {
		p.Tags = *req.Tags
	}
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := models.ListPosts(s.db)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleListPostsByTag(w http.ResponseWriter, r *http.Request) {
	posts, err := models.ListPostsByTag(s.db, r.PathValue("tag"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	post, err := models.GetPostBySlug(s.db, r.PathValue("slug"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, post)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request, user *models.User) {
	var req postRequest
	if !s.readJSON(w, r, &req) {
		return
	}
	post := &models.Post{PublishedAt: time.Now(), AuthorID: user.ID, Tags: []string{}}
	req.apply(post)
	post.Title = strings.TrimSpace(post.Title)
	post.Slug = strings.TrimSpace(post.Slug)
	if post.Title == "" || post.Slug == "" || post.Content == "" {
		s.writeError(w, http.StatusBadRequest, "title, slug and content are required")
		return
	}
	if err := models.CreatePost(s.db, post); err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, post)
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request, _ *models.User) {
	id, ok := pathID(r, "id")
	if !ok {
		s.writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}
	post, err := models.GetPost(s.db, id)
	if err != nil {
		s.fail(w, err)
		return
	}
	var req postRequest
	if !s.readJSON(w, r, &req) {
		return
	}
	req.apply(post)
	if post.Title == "" || post.Slug == "" || post.Content == "" {
		s.writeError(w, http.StatusBadRequest, "title, slug and content are required")
		return
	}
	if err := models.UpdatePost(s.db, post); err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, post)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request, _ *models.User) {
	id, ok := pathID(r, "id")
	if !ok {
		s.writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}
	if err := models.DeletePost(s.db, id); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
