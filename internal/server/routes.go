package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupRoutes registers the canonical route table once and mounts it
// under every alias prefix the legacy clients use: unprefixed, /tdz
// and /todozi all resolve to the same handlers.
func (s *Server) setupRoutes() {
	canonical := s.routes()

	s.router.Mount("/tdz", canonical)
	s.router.Mount("/todozi", canonical)
	s.router.Mount("/", canonical)

	s.router.NotFound(s.routeNotFound)
	s.router.MethodNotAllowed(s.routeNotFound)
}

func (s *Server) routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Route not found")
}

// routes builds the canonical route table.
func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.NotFound(s.routeNotFound)
	r.MethodNotAllowed(s.routeNotFound)

	// Core
	r.Get("/health", s.health)
	r.Get("/stats", s.systemStats)
	r.Get("/init", s.initStorage)

	// Tasks
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", s.listTasks)
		r.Post("/", s.createTask)
		r.Get("/search", s.searchTasks)
		r.Get("/suggest", s.taskSuggestions)
		r.Post("/validate", s.validateTask)

		r.Route("/{taskID}", func(r chi.Router) {
			r.Get("/", s.getTask)
			r.Put("/", s.updateTask)
			r.Delete("/", s.deleteTask)
			r.Get("/insights", s.taskInsights)
			r.Get("/similar", s.similarTasks)
		})
	})

	// Memories
	r.Route("/memories", func(r chi.Router) {
		r.Get("/", s.listMemories)
		r.Post("/", s.createMemory)
		r.Get("/types", s.memoryTypes)
		r.Get("/secret", s.listMemoriesByType("secret"))
		r.Get("/human", s.listMemoriesByType("human"))
		r.Get("/short", s.listMemoriesByType("short"))
		r.Get("/long", s.listMemoriesByType("long"))
		r.Get("/emotional/{emotion}", s.listEmotionalMemories)
		r.Get("/{memoryID}", s.getMemory)
	})

	// Ideas
	r.Route("/ideas", func(r chi.Router) {
		r.Get("/", s.listIdeas)
		r.Post("/", s.createIdea)
		r.Get("/{ideaID}", s.getIdea)
	})

	// Agents
	r.Route("/agents", func(r chi.Router) {
		r.Get("/", s.listAgents)
		r.Post("/", s.createAgent)
		r.Get("/available", s.listAvailableAgents)

		r.Route("/{agentID}", func(r chi.Router) {
			r.Get("/", s.getAgent)
			r.Put("/", s.updateAgent)
			r.Delete("/", s.deleteAgent)
			r.Get("/status", s.agentStatus)
		})
	})

	// Code chunks
	r.Route("/chunks", func(r chi.Router) {
		r.Get("/", s.listChunks)
		r.Post("/", s.createChunk)
		r.Get("/ready", s.listReadyChunks)
		r.Get("/graph", s.chunkGraph)

		r.Route("/{chunkID}", func(r chi.Router) {
			r.Get("/", s.getChunk)
			r.Put("/", s.updateChunk)
			r.Delete("/", s.deleteChunk)
		})
	})

	// Training data
	r.Route("/training", func(r chi.Router) {
		r.Get("/", s.listTraining)
		r.Post("/", s.createTraining)
		r.Get("/export", s.exportTraining)
		r.Get("/stats", s.trainingStats)

		r.Route("/{trainingID}", func(r chi.Router) {
			r.Get("/", s.getTraining)
			r.Put("/", s.updateTraining)
			r.Delete("/", s.deleteTraining)
		})
	})

	// Error records
	r.Route("/errors", func(r chi.Router) {
		r.Get("/", s.listErrors)
		r.Post("/", s.createError)
		r.Get("/search", s.searchErrors)
		r.Get("/{errorID}", s.getError)
		r.Delete("/{errorID}", s.deleteError)
	})

	// Projects
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", s.listProjects)
		r.Post("/", s.createProject)

		r.Route("/{projectName}", func(r chi.Router) {
			r.Get("/", s.getProject)
			r.Put("/", s.updateProject)
			r.Delete("/", s.deleteProject)
		})
	})

	// Chat
	r.Route("/chat", func(r chi.Router) {
		r.Post("/process", s.processChat)
		r.Post("/agent/{agentID}", s.agentChat)
		r.Get("/history", s.chatHistory)
	})

	// Analytics and time tracking
	r.Get("/analytics/tasks", s.analyticsFor("tasks"))
	r.Get("/analytics/agents", s.analyticsFor("agents"))
	r.Get("/analytics/performance", s.analyticsFor("performance"))
	r.Post("/time/start/{taskID}", s.startTimeTracking)
	r.Post("/time/stop/{taskID}", s.stopTimeTracking)
	r.Get("/time/report", s.timeReport)

	// Queue
	r.Route("/queue", func(r chi.Router) {
		r.Post("/plan", s.planQueueItem)
		r.Get("/list", s.listQueue)
		r.Get("/list/backlog", s.listQueueByStatus("backlog"))
		r.Get("/list/active", s.listQueueByStatus("active"))
		r.Get("/list/complete", s.listQueueByStatus("complete"))
		r.Post("/start/{itemID}", s.startQueueSession)
		r.Post("/end/{sessionID}", s.endQueueSession)
	})

	// API keys
	r.Post("/api/register", s.registerAPIKey)
	r.Post("/api/check", s.checkAPIKey)

	// Backups
	r.Post("/backup", s.createBackup)
	r.Get("/backups", s.listBackups)
	r.Post("/restore/{backupName}", s.restoreBackup)

	// Stubs
	r.Get("/semantic/search", s.semanticSearch)
	r.Get("/insights", s.aiInsights)
	r.Post("/ml/process", s.mlProcess)
	r.Post("/maestro/collect", s.maestroCollect)

	return r
}
