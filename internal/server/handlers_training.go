package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/todozi/tdz-gateway/internal/binary"
)

// CreateTrainingRequest is the body of POST /training.
type CreateTrainingRequest struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
	Type       string `json:"type,omitempty"`
	Tags       string `json:"tags,omitempty"`
	Quality    *int   `json:"quality,omitempty"`
}

// UpdateTrainingRequest is the body of PUT /training/{trainingID}.
type UpdateTrainingRequest struct {
	Quality *int `json:"quality,omitempty"`
}

// listTraining handles GET /training
func (s *Server) listTraining(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, http.StatusOK, "training", "", binary.Command("list", "training"))
}

// createTraining handles POST /training
func (s *Server) createTraining(w http.ResponseWriter, r *http.Request) {
	var req CreateTrainingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	args := binary.Command("add", "training").
		Pos(req.Prompt, req.Completion).
		Flag("type", req.Type).
		Flag("tags", req.Tags).
		IntFlag("quality", req.Quality)

	s.runCreated(w, r, http.StatusCreated, "Training data created", args)
}

// exportTraining handles GET /training/export
func (s *Server) exportTraining(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, http.StatusOK, "export", "", binary.Command("export", "training"))
}

// trainingStats handles GET /training/stats
func (s *Server) trainingStats(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, http.StatusOK, "stats", "", binary.Command("training", "stats"))
}

// getTraining handles GET /training/{trainingID}
func (s *Server) getTraining(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "trainingID")
	s.run(w, r, http.StatusOK, "training", "Training data not found", binary.Command("show", "training").Pos(id))
}

// updateTraining handles PUT /training/{trainingID}
func (s *Server) updateTraining(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "trainingID")

	var req UpdateTrainingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	args := binary.Command("update", "training").Pos(id).IntFlag("quality", req.Quality)

	out, err := s.runner.Run(r.Context(), args.Argv()...)
	if err != nil {
		writeExecError(w, err, "Training data not found")
		return
	}
	writeCreated(w, http.StatusOK, "Training data updated", out)
}

// deleteTraining handles DELETE /training/{trainingID}
func (s *Server) deleteTraining(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "trainingID")

	out, err := s.runner.Run(r.Context(), "delete", "training", id)
	if err != nil {
		writeExecError(w, err, "Training data not found")
		return
	}
	writeCreated(w, http.StatusOK, "Training data deleted", out)
}
