package server

import (
	"net/http"
	"strings"

	"blog/internal/models"
)

type projectRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	ProjectURL  *string   `json:"projectUrl"`
	IsActive    *bool     `json:"isActive"`
	Tags        *[]string `json:"tags"`
}

func (req *projectRequest) apply(p *models.Project) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}
	if req.ProjectURL != nil {
		p.ProjectURL = *req.ProjectURL
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.Tags != nil {
		p.Tags = *req.Tags
	}
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := models.ListProjects(s.db)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}
	project, err := models.GetProject(s.db, id)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, project)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request, _ *models.User) {
	var req projectRequest
	if !s.readJSON(w, r, &req) {
		return
	}
	project := &models.Project{IsActive: true, Tags: []string{}}
	req.apply(project)
	project.Title = strings.TrimSpace(project.Title)
	if project.Title == "" || project.Description == "" {
		s.writeError(w, http.StatusBadRequest, "title and description are required")
		return
	}
	if err := models.CreateProject(s.db, project); err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, project)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request, _ *models.User) {
	id, ok := pathID(r, "id")
	if !ok {
		s.writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}
	project, err := models.GetProject(s.db, id)
	if err != nil {
		s.fail(w, err)
		return
	}
	var req projectRequest
	if !s.readJSON(w, r, &req) {
		return
	}
	req.apply(project)
	if project.Title == "" || project.Description == "" {
		s.writeError(w, http.StatusBadRequest, "title and description are required")
		return
	}
	if err := models.UpdateProject(s.db, project); err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, project)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request, _ *models.User) {
	id, ok := pathID(r, "id")
	if !ok {
		s.writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}
	if err := models.DeleteProject(s.db, id); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
