package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/todozi/tdz-gateway/internal/binary"
)

// CreateProjectRequest is the body of POST /projects.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateProjectRequest is the body of PUT /projects/{projectName}.
type UpdateProjectRequest struct {
	Description string `json:"description,omitempty"`
}

// mockProjects is the placeholder list served when the binary cannot
// answer. List and create are the only routes with this fallback;
// every other route surfaces failures. Kept route-local on purpose.
var mockProjects = []map[string]string{
	{"name": "general", "description": "General tasks", "status": "active"},
}

// listProjects handles GET /projects. Execution failure or empty
// output falls back to the mock list with a 200, never a 500.
func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	out, err := s.runner.Run(r.Context(), "list", "projects")
	if err != nil || strings.TrimSpace(out) == "" {
		if err != nil {
			s.log.Debug().Err(err).Msg("project list fell back to mock data")
		}
		writeJSON(w, http.StatusOK, map[string]any{"projects": mockProjects})
		return
	}
	writeRelay(w, http.StatusOK, "projects", out)
}

// createProject handles POST /projects. On execution failure the input
// is echoed back as if created, preserving the placeholder behavior.
func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: name")
		return
	}

	args := binary.Command("add", "project").
		Pos(req.Name).
		Flag("description", req.Description)

	out, err := s.runner.Run(r.Context(), args.Argv()...)
	if err != nil || strings.TrimSpace(out) == "" {
		if err != nil {
			s.log.Debug().Err(err).Msg("project create fell back to echoed input")
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"message": "Project created",
			"project": map[string]string{
				"name":        req.Name,
				"description": req.Description,
				"status":      "active",
			},
		})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Project created",
		"project": strings.TrimSpace(out),
	})
}

// getProject handles GET /projects/{projectName}
func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "projectName")
	s.run(w, r, http.StatusOK, "project", "Project not found", binary.Command("show", "project").Pos(name))
}

// updateProject handles PUT /projects/{projectName}
func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "projectName")

	var req UpdateProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	args := binary.Command("update", "project").Pos(name).Flag("description", req.Description)

	out, err := s.runner.Run(r.Context(), args.Argv()...)
	if err != nil {
		writeExecError(w, err, "Project not found")
		return
	}
	writeCreated(w, http.StatusOK, "Project updated", out)
}

// deleteProject handles DELETE /projects/{projectName}
func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "projectName")

	out, err := s.runner.Run(r.Context(), "delete", "project", name)
	if err != nil {
		writeExecError(w, err, "Project not found")
		return
	}
	writeCreated(w, http.StatusOK, "Project deleted", out)
}
