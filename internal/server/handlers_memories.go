package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/todozi/tdz-gateway/internal/binary"
)

// CreateMemoryRequest is the body of POST /memories.
type CreateMemoryRequest struct {
	Moment     string `json:"moment"`
	Meaning    string `json:"meaning"`
	Reason     string `json:"reason,omitempty"`
	Importance string `json:"importance,omitempty"`
	Term       string `json:"term,omitempty"`
	Type       string `json:"type,omitempty"`
}

// memoryTypeNames is the fixed vocabulary answered by GET
// /memories/types without touching the binary.
var memoryTypeNames = []string{
	"standard", "secret", "human", "short", "long", "happy", "sad",
	"angry", "fearful", "surprised", "disgusted", "excited", "anxious",
	"confident", "frustrated", "motivated", "overwhelmed", "curious",
	"satisfied", "disappointed", "grateful", "proud", "ashamed",
	"hopeful", "resigned",
}

// listMemories handles GET /memories
func (s *Server) listMemories(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, http.StatusOK, "memories", "", binary.Command("list", "memories"))
}

// createMemory handles POST /memories
func (s *Server) createMemory(w http.ResponseWriter, r *http.Request) {
	var req CreateMemoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	args := binary.Command("remember").
		Pos(req.Moment, req.Meaning).
		Flag("reason", req.Reason).
		Flag("importance", req.Importance).
		Flag("term", req.Term).
		Flag("type", req.Type)

	s.runCreated(w, r, http.StatusCreated, "Memory created", args)
}

// memoryTypes handles GET /memories/types. Answered locally: the type
// vocabulary is fixed and served as a bare array, matching what the
// original server returned.
func (s *Server) memoryTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, memoryTypeNames)
}

// listMemoriesByType builds the handler behind the fixed sub-views
// /memories/secret, /memories/human, /memories/short, /memories/long.
func (s *Server) listMemoriesByType(memType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		args := binary.Command("list", "memories").Flag("type", memType)
		s.run(w, r, http.StatusOK, "memories", "", args)
	}
}

// listEmotionalMemories handles GET /memories/emotional/{emotion}
func (s *Server) listEmotionalMemories(w http.ResponseWriter, r *http.Request) {
	emotion := chi.URLParam(r, "emotion")
	args := binary.Command("list", "memories").
		Flag("type", "emotional").
		Flag("emotion", emotion)
	s.run(w, r, http.StatusOK, "memories", "", args)
}

// getMemory handles GET /memories/{memoryID}
func (s *Server) getMemory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "memoryID")
	s.run(w, r, http.StatusOK, "memory", "Memory not found", binary.Command("show", "memory").Pos(id))
}
