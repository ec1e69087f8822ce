package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/todozi/tdz-gateway/internal/binary"
)

// PlanQueueItemRequest is the body of POST /queue/plan. Both the task
// name and description are required.
type PlanQueueItemRequest struct {
	TaskName        string `json:"task_name"`
	TaskDescription string `json:"task_description"`
	Priority        string `json:"priority,omitempty"`
	Project         string `json:"project,omitempty"`
}

// planQueueItem handles POST /queue/plan
func (s *Server) planQueueItem(w http.ResponseWriter, r *http.Request) {
	var req PlanQueueItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.TaskName == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: task_name")
		return
	}
	if req.TaskDescription == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: task_description")
		return
	}

	args := binary.Command("queue", "plan").
		Pos(req.TaskName, req.TaskDescription).
		Flag("priority", req.Priority).
		Flag("project", req.Project)

	s.runCreated(w, r, http.StatusCreated, "Queue item planned", args)
}

// listQueue handles GET /queue/list
func (s *Server) listQueue(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, http.StatusOK, "queue", "", binary.Command("queue", "list"))
}

// listQueueByStatus builds the handler behind the status sub-views
// /queue/list/{backlog,active,complete}.
func (s *Server) listQueueByStatus(status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		args := binary.Command("queue", "list").Flag("status", status)
		s.run(w, r, http.StatusOK, "queue", "", args)
	}
}

// startQueueSession handles POST /queue/start/{itemID}
func (s *Server) startQueueSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "itemID")

	out, err := s.runner.Run(r.Context(), "queue", "start", id)
	if err != nil {
		writeExecError(w, err, "Queue item not found")
		return
	}
	writeCreated(w, http.StatusOK, "Work session started", out)
}

// endQueueSession handles POST /queue/end/{sessionID}. Success is a
// bare 204 with no body.
func (s *Server) endQueueSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	if _, err := s.runner.Run(r.Context(), "queue", "end", id); err != nil {
		writeExecError(w, err, "Work session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
