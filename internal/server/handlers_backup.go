package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/todozi/tdz-gateway/internal/binary"
)

// createBackup handles POST /backup
func (s *Server) createBackup(w http.ResponseWriter, r *http.Request) {
	s.runCreated(w, r, http.StatusCreated, "Backup created", binary.Command("backup", "create"))
}

// listBackups handles GET /backups
func (s *Server) listBackups(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, http.StatusOK, "backups", "", binary.Command("backup", "list"))
}

// restoreBackup handles POST /restore/{backupName}
func (s *Server) restoreBackup(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "backupName")

	out, err := s.runner.Run(r.Context(), "backup", "restore", name)
	if err != nil {
		writeExecError(w, err, "Backup not found")
		return
	}
	writeCreated(w, http.StatusOK, "Backup restored", out)
}
