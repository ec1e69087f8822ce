package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/todozi/tdz-gateway/internal/binary"
)

// CreateTaskRequest is the body of POST /tasks. Only action is
// required; the rest map to optional flags.
type CreateTaskRequest struct {
	Action   string `json:"action"`
	Time     string `json:"time,omitempty"`
	Priority string `json:"priority,omitempty"`
	Project  string `json:"project,omitempty"`
	Status   string `json:"status,omitempty"`
}

// UpdateTaskRequest is the body of PUT /tasks/{taskID}.
type UpdateTaskRequest struct {
	Action   string `json:"action,omitempty"`
	Time     string `json:"time,omitempty"`
	Priority string `json:"priority,omitempty"`
	Status   string `json:"status,omitempty"`
	Assignee string `json:"assignee,omitempty"`
	Progress *int   `json:"progress,omitempty"`
}

// listTasks handles GET /tasks
func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, http.StatusOK, "tasks", "", binary.Command("list", "tasks"))
}

// createTask handles POST /tasks
func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Action == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: action")
		return
	}

	args := binary.Command("add", "task").
		Pos(req.Action).
		Flag("time", req.Time).
		Flag("priority", req.Priority).
		Flag("project", req.Project).
		Flag("status", req.Status)

	s.runCreated(w, r, http.StatusCreated, "Task created", args)
}

// searchTasks handles GET /tasks/search
func (s *Server) searchTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	s.run(w, r, http.StatusOK, "tasks", "", binary.Command("find", "tasks").Pos(q))
}

// getTask handles GET /tasks/{taskID}
func (s *Server) getTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "taskID")
	s.run(w, r, http.StatusOK, "task", "Task not found", binary.Command("show", "task").Pos(id))
}

// updateTask handles PUT /tasks/{taskID}
func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "taskID")

	var req UpdateTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	args := binary.Command("update", "task").
		Pos(id).
		Flag("action", req.Action).
		Flag("time", req.Time).
		Flag("priority", req.Priority).
		Flag("status", req.Status).
		Flag("assignee", req.Assignee).
		IntFlag("progress", req.Progress)

	out, err := s.runner.Run(r.Context(), args.Argv()...)
	if err != nil {
		writeExecError(w, err, "Task not found")
		return
	}
	writeCreated(w, http.StatusOK, "Task updated", out)
}

// deleteTask handles DELETE /tasks/{taskID}
func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "taskID")

	out, err := s.runner.Run(r.Context(), "delete", "task", id)
	if err != nil {
		writeExecError(w, err, "Task not found")
		return
	}
	writeCreated(w, http.StatusOK, "Task deleted", out)
}
