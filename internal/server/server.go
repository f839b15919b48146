// Package server exposes the JSON API consumed by the client-side router.
package server

import (
	"database/sql"
	"log/slog"
	"net/http"

	"blog/internal/session"
)

type Server struct {
	db       *sql.DB
	sessions *session.Manager
	logger   *slog.Logger
	handler  http.Handler
}

func New(db *sql.DB, sessions *session.Manager, logger *slog.Logger) *Server {
	s := &Server{db: db, sessions: sessions, logger: logger}
	s.handler = s.withAccessLog(s.routes())
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/logout", s.handleLogout)
	mux.HandleFunc("GET /api/user", s.handleCurrentUser)
	mux.HandleFunc("PUT /api/user/{id}", s.handleUpdateUser)

	mux.HandleFunc("GET /api/posts", s.handleListPosts)
	mux.HandleFunc("GET /api/posts/tag/{tag}", s.handleListPostsByTag)
	mux.HandleFunc("GET /api/posts/{slug}", s.handleGetPost)
	mux.HandleFunc("POST /api/posts", s.requireAdmin(s.handleCreatePost))
	mux.HandleFunc("PUT /api/posts/{id}", s.requireAdmin(s.handleUpdatePost))
	mux.HandleFunc("DELETE /api/posts/{id}", s.requireAdmin(s.handleDeletePost))

	mux.HandleFunc("GET /api/projects", s.handleListProjects)
	mux.HandleFunc("GET /api/projects/{id}", s.handleGetProject)
	mux.HandleFunc("POST /api/projects", s.requireAdmin(s.handleCreateProject))
	mux.HandleFunc("PUT /api/projects/{id}", s.requireAdmin(s.handleUpdateProject))
	mux.HandleFunc("DELETE /api/projects/{id}", s.requireAdmin(s.handleDeleteProject))

	mux.HandleFunc("GET /api/comments/post/{postId}", s.handleListComments)
	mux.HandleFunc("POST /api/comments", s.handleCreateComment)
	mux.HandleFunc("DELETE /api/comments/{id}", s.requireAdmin(s.handleDeleteComment))

	mux.HandleFunc("POST /api/messages", s.handleCreateMessage)
	mux.HandleFunc("GET /api/messages", s.requireAdmin(s.handleListMessages))
	mux.HandleFunc("DELETE /api/messages/{id}", s.requireAdmin(s.handleDeleteMessage))

	mux.HandleFunc("POST /api/subscribers", s.handleCreateSubscriber)
	mux.HandleFunc("GET /api/subscribers", s.requireAdmin(s.handleListSubscribers))
	mux.HandleFunc("DELETE /api/subscribers/{id}", s.requireAdmin(s.handleDeleteSubscriber))

	return mux
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
