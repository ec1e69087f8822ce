// Package server exposes the HTTP surface of the tdz gateway: a route
// table that turns REST requests into tdz invocations and relays the
// binary's stdout back inside JSON envelopes.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/todozi/tdz-gateway/internal/binary"
	"github.com/todozi/tdz-gateway/internal/logging"
)

const (
	serviceName    = "tdz-gateway"
	serviceVersion = "0.1.0"
)

// Config holds server configuration.
type Config struct {
	Port         int
	Hostname     string
	APIToken     string
	EnableCORS   bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns default server configuration.
func DefaultConfig() *Config {
	return &Config{
		Port:         8636,
		Hostname:     "0.0.0.0",
		EnableCORS:   true,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
	}
}

// resolver is implemented by runners that cache a winning binary path.
type resolver interface {
	Resolved() string
}

// Server is the HTTP gateway.
type Server struct {
	config  *Config
	router  *chi.Mux
	runner  binary.Runner
	httpSrv *http.Server
	log     zerolog.Logger
}

// New creates a Server that delegates every non-local route to runner.
func New(cfg *Config, runner binary.Runner) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	s := &Server{
		config: cfg,
		router: chi.NewRouter(),
		runner: runner,
		log:    logging.Component("server"),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures middleware for the server.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RealIP)

	if s.config.EnableCORS {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "x-api-token"},
			ExposedHeaders:   []string{"Link", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	s.router.Use(s.tokenGate)
}

// openRoutes can be called without a token even when one is configured,
// so health checks keep working and clients can register for a key.
var openRoutes = map[string]struct{}{
	"/health":       {},
	"/init":         {},
	"/api/register": {},
}

// tokenGate rejects requests without the configured x-api-token header.
// A server with no token configured accepts everything.
func (s *Server) tokenGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.config.APIToken == "" {
			next.ServeHTTP(w, r)
			return
		}

		if _, open := openRoutes[canonicalPath(r.URL.Path)]; open {
			next.ServeHTTP(w, r)
			return
		}

		if r.Header.Get("x-api-token") != s.config.APIToken {
			writeError(w, http.StatusUnauthorized, "Invalid or missing API token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// canonicalPath strips the namespace alias prefixes so token exemptions
// apply to /tdz/health and /todozi/health as well as /health.
func canonicalPath(path string) string {
	for _, prefix := range []string{"/tdz", "/todozi"} {
		if path == prefix {
			return "/"
		}
		if strings.HasPrefix(path, prefix+"/") {
			return strings.TrimPrefix(path, prefix)
		}
	}
	return path
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.httpSrv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Hostname, s.config.Port),
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	s.log.Info().Str("addr", s.httpSrv.Addr).Msg("gateway listening")
	return s.httpSrv.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// binaryResolved reports whether the runner currently has a cached
// winning candidate path.
func (s *Server) binaryResolved() string {
	if res, ok := s.runner.(resolver); ok {
		return res.Resolved()
	}
	return ""
}
