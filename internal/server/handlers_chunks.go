package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/todozi/tdz-gateway/internal/binary"
)

// CreateChunkRequest is the body of POST /chunks.
type CreateChunkRequest struct {
	ID           string `json:"id"`
	Level        string `json:"level,omitempty"`
	Dependencies string `json:"dependencies,omitempty"`
}

// UpdateChunkRequest is the body of PUT /chunks/{chunkID}.
type UpdateChunkRequest struct {
	Status string `json:"status,omitempty"`
}

// listChunks handles GET /chunks
func (s *Server) listChunks(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, http.StatusOK, "chunks", "", binary.Command("list", "chunks"))
}

// createChunk handles POST /chunks
func (s *Server) createChunk(w http.ResponseWriter, r *http.Request) {
	var req CreateChunkRequest
	if !decodeBody(w, r, &req) {
		return
	}

	args := binary.Command("add", "chunk").
		Pos(req.ID).
		Flag("level", req.Level).
		Flag("dependencies", req.Dependencies)

	s.runCreated(w, r, http.StatusCreated, "Chunk created", args)
}

// listReadyChunks handles GET /chunks/ready
func (s *Server) listReadyChunks(w http.ResponseWriter, r *http.Request) {
	args := binary.Command("list", "chunks").Switch("ready", true)
	s.run(w, r, http.StatusOK, "chunks", "", args)
}

// chunkGraph handles GET /chunks/graph
func (s *Server) chunkGraph(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, http.StatusOK, "graph", "", binary.Command("chunk", "graph"))
}

// getChunk handles GET /chunks/{chunkID}
func (s *Server) getChunk(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "chunkID")
	s.run(w, r, http.StatusOK, "chunk", "Chunk not found", binary.Command("show", "chunk").Pos(id))
}

// updateChunk handles PUT /chunks/{chunkID}
func (s *Server) updateChunk(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "chunkID")

	var req UpdateChunkRequest
	if !decodeBody(w, r, &req) {
		return
	}

	args := binary.Command("update", "chunk").Pos(id).Flag("status", req.Status)

	out, err := s.runner.Run(r.Context(), args.Argv()...)
	if err != nil {
		writeExecError(w, err, "Chunk not found")
		return
	}
	writeCreated(w, http.StatusOK, "Chunk updated", out)
}

// deleteChunk handles DELETE /chunks/{chunkID}
func (s *Server) deleteChunk(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "chunkID")

	out, err := s.runner.Run(r.Context(), "delete", "chunk", id)
	if err != nil {
		writeExecError(w, err, "Chunk not found")
		return
	}
	writeCreated(w, http.StatusOK, "Chunk deleted", out)
}
