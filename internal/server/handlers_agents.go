package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/todozi/tdz-gateway/internal/binary"
)

// CreateAgentRequest is the body of POST /agents. Name and description
// are both required; this route is one of the few that validates.
type CreateAgentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
}

// UpdateAgentRequest is the body of PUT /agents/{agentID}.
type UpdateAgentRequest struct {
	Status string `json:"status,omitempty"`
}

// listAgents handles GET /agents
func (s *Server) listAgents(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, http.StatusOK, "agents", "", binary.Command("list", "agents"))
}

// createAgent handles POST /agents
func (s *Server) createAgent(w http.ResponseWriter, r *http.Request) {
	var req CreateAgentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: name")
		return
	}
	if req.Description == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: description")
		return
	}

	args := binary.Command("add", "agent").
		Pos(req.Name).
		Flag("description", req.Description).
		Flag("category", req.Category)

	s.runCreated(w, r, http.StatusCreated, "Agent created", args)
}

// listAvailableAgents handles GET /agents/available
func (s *Server) listAvailableAgents(w http.ResponseWriter, r *http.Request) {
	args := binary.Command("list", "agents").Switch("available", true)
	s.run(w, r, http.StatusOK, "agents", "", args)
}

// getAgent handles GET /agents/{agentID}
func (s *Server) getAgent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "agentID")
	s.run(w, r, http.StatusOK, "agent", "Agent not found", binary.Command("show", "agent").Pos(id))
}

// updateAgent handles PUT /agents/{agentID}
func (s *Server) updateAgent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "agentID")

	var req UpdateAgentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	args := binary.Command("update", "agent").Pos(id).Flag("status", req.Status)

	out, err := s.runner.Run(r.Context(), args.Argv()...)
	if err != nil {
		writeExecError(w, err, "Agent not found")
		return
	}
	writeCreated(w, http.StatusOK, "Agent updated", out)
}

// deleteAgent handles DELETE /agents/{agentID}
func (s *Server) deleteAgent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "agentID")

	out, err := s.runner.Run(r.Context(), "delete", "agent", id)
	if err != nil {
		writeExecError(w, err, "Agent not found")
		return
	}
	writeCreated(w, http.StatusOK, "Agent deleted", out)
}

// agentStatus handles GET /agents/{agentID}/status
func (s *Server) agentStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "agentID")
	s.run(w, r, http.StatusOK, "status", "Agent not found", binary.Command("agent", "status").Pos(id))
}
