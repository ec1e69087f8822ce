package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/todozi/tdz-gateway/internal/binary"
)

// CreateErrorRequest is the body of POST /errors. Title, description
// and source are all required.
type CreateErrorRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Severity    string `json:"severity,omitempty"`
}

// listErrors handles GET /errors
func (s *Server) listErrors(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, http.StatusOK, "errors", "", binary.Command("list", "errors"))
}

// createError handles POST /errors
func (s *Server) createError(w http.ResponseWriter, r *http.Request) {
	var req CreateErrorRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: title")
		return
	}
	if req.Description == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: description")
		return
	}
	if req.Source == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: source")
		return
	}

	args := binary.Command("add", "error").
		Pos(req.Title, req.Description, req.Source).
		Flag("severity", req.Severity)

	s.runCreated(w, r, http.StatusCreated, "Error record created", args)
}

// searchErrors handles GET /errors/search
func (s *Server) searchErrors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	s.run(w, r, http.StatusOK, "errors", "", binary.Command("find", "errors").Pos(q))
}

// getError handles GET /errors/{errorID}. The envelope key is
// error_record so a successful body can never be mistaken for the
// error envelope.
func (s *Server) getError(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "errorID")
	s.run(w, r, http.StatusOK, "error_record", "Error record not found", binary.Command("show", "error").Pos(id))
}

// deleteError handles DELETE /errors/{errorID}
func (s *Server) deleteError(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "errorID")

	out, err := s.runner.Run(r.Context(), "delete", "error", id)
	if err != nil {
		writeExecError(w, err, "Error record not found")
		return
	}
	writeCreated(w, http.StatusOK, "Error record deleted", out)
}
