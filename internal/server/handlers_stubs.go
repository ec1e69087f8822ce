package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Acknowledged stubs. These answer with a fixed payload and never call
// the binary; external clients depend on their exact shape, so they
// stay explicit rather than being dropped.

// taskSuggestions handles GET /tasks/suggest
func (s *Server) taskSuggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Task suggestions not yet implemented",
		"suggestions": []string{},
	})
}

// validateTask handles POST /tasks/validate
func (s *Server) validateTask(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Task validation not yet implemented",
		"valid":   true,
	})
}

// taskInsights handles GET /tasks/{taskID}/insights
func (s *Server) taskInsights(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Task insights not yet implemented",
		"task_id": chi.URLParam(r, "taskID"),
	})
}

// similarTasks handles GET /tasks/{taskID}/similar
func (s *Server) similarTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Similar task search not yet implemented",
		"task_id": chi.URLParam(r, "taskID"),
		"similar": []string{},
	})
}

// semanticSearch handles GET /semantic/search
func (s *Server) semanticSearch(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Semantic search not yet implemented",
		"results": []string{},
	})
}

// aiInsights handles GET /insights
func (s *Server) aiInsights(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "AI insights not yet implemented",
		"insights": []string{},
	})
}

// chatHistory handles GET /chat/history
func (s *Server) chatHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Chat history not yet implemented",
		"history": []string{},
	})
}

// mlProcess handles POST /ml/process
func (s *Server) mlProcess(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "ML processing not yet implemented",
	})
}

// maestroCollect handles POST /maestro/collect
func (s *Server) maestroCollect(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Maestro collection not yet implemented",
	})
}
