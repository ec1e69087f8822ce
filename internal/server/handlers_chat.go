package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/todozi/tdz-gateway/internal/binary"
)

// ChatRequest is the body of the chat routes. Message is required.
type ChatRequest struct {
	Message string `json:"message"`
}

// processChat handles POST /chat/process
func (s *Server) processChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: message")
		return
	}

	s.run(w, r, http.StatusOK, "result", "", binary.Command("chat").Pos(req.Message))
}

// agentChat handles POST /chat/agent/{agentID}
func (s *Server) agentChat(w http.ResponseWriter, r *http.Request) {
	agentID := chi.URLParam(r, "agentID")

	var req ChatRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: message")
		return
	}

	args := binary.Command("chat").Pos(req.Message).Flag("agent", agentID)
	s.run(w, r, http.StatusOK, "result", "Agent not found", args)
}
