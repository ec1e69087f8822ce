package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/todozi/tdz-gateway/internal/binary"
)

// analyticsFor builds the handler behind /analytics/{tasks,agents,performance}.
func (s *Server) analyticsFor(subject string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.run(w, r, http.StatusOK, "analytics", "", binary.Command("analytics", subject))
	}
}

// startTimeTracking handles POST /time/start/{taskID}
func (s *Server) startTimeTracking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "taskID")

	out, err := s.runner.Run(r.Context(), "time", "start", id)
	if err != nil {
		writeExecError(w, err, "Task not found")
		return
	}
	writeCreated(w, http.StatusOK, "Time tracking started", out)
}

// stopTimeTracking handles POST /time/stop/{taskID}
func (s *Server) stopTimeTracking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "taskID")

	out, err := s.runner.Run(r.Context(), "time", "stop", id)
	if err != nil {
		writeExecError(w, err, "Task not found")
		return
	}
	writeCreated(w, http.StatusOK, "Time tracking stopped", out)
}

// timeReport handles GET /time/report
func (s *Server) timeReport(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, http.StatusOK, "report", "", binary.Command("time", "report"))
}
