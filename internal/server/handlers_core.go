package server

import (
	"net/http"

	"github.com/todozi/tdz-gateway/internal/binary"
)

// health handles GET /health. It is answered locally so monitoring
// keeps working even while the binary is missing; the payload reports
// whether a candidate path is currently resolved.
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	resolved := s.binaryResolved()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "healthy",
		"service":         serviceName,
		"version":         serviceVersion,
		"port":            s.config.Port,
		"binary_resolved": resolved != "",
		"features":        []string{"enhanced_agents", "training_data", "analytics", "time_tracking"},
	})
}

// systemStats handles GET /stats.
func (s *Server) systemStats(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, http.StatusOK, "stats", "", binary.Command("stats"))
}

// initStorage handles GET /init.
func (s *Server) initStorage(w http.ResponseWriter, r *http.Request) {
	out, err := s.runner.Run(r.Context(), "init")
	if err != nil {
		writeExecError(w, err, "")
		return
	}
	writeCreated(w, http.StatusOK, "Todozi initialized", out)
}
