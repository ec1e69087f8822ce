package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/todozi/tdz-gateway/internal/binary"
)

// CreateIdeaRequest is the body of POST /ideas.
type CreateIdeaRequest struct {
	Idea       string `json:"idea"`
	Share      string `json:"share,omitempty"`
	Importance string `json:"importance,omitempty"`
}

// listIdeas handles GET /ideas
func (s *Server) listIdeas(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, http.StatusOK, "ideas", "", binary.Command("list", "ideas"))
}

// createIdea handles POST /ideas
func (s *Server) createIdea(w http.ResponseWriter, r *http.Request) {
	var req CreateIdeaRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Idea == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: idea")
		return
	}

	args := binary.Command("idea").
		Pos(req.Idea).
		Flag("share", req.Share).
		Flag("importance", req.Importance)

	s.runCreated(w, r, http.StatusCreated, "Idea created", args)
}

// getIdea handles GET /ideas/{ideaID}
func (s *Server) getIdea(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "ideaID")
	s.run(w, r, http.StatusOK, "idea", "Idea not found", binary.Command("show", "idea").Pos(id))
}
