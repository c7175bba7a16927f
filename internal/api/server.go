// Package api exposes the document editor over HTTP: project
// lifecycle, per-section updates, markdown preview and export, and a
// websocket that pushes a fresh preview after every change.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/estevam5s/docgen/internal/config"
	"github.com/estevam5s/docgen/internal/session"
	"github.com/estevam5s/docgen/internal/templates"
)

// Server represents the HTTP API server
type Server struct {
	config         config.Config
	router         *chi.Mux
	store          session.Store
	templateLoader *templates.Loader
	sessions       *SessionMiddleware
	previews       *previewHub
}

// NewServer creates a new API server
func NewServer(cfg config.Config, store session.Store, loader *templates.Loader) *Server {
	s := &Server{
		config:         cfg,
		store:          store,
		templateLoader: loader,
		sessions:       NewSessionMiddleware(store, cfg.Session.CookieName, cfg.Session.TTL),
		previews:       newPreviewHub(),
	}
	s.setupRouter()
	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRouter configures all routes and middleware
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check (outside versioned API - public)
	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	// API v1 routes (session-scoped)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.sessions.Ensure)

		r.Get("/project-types", s.handleListProjectTypes)
		r.Get("/templates/{type}", s.handleGetTemplate)
		r.Get("/demo/{type}", s.handleDemo)

		r.Post("/projects", s.handleCreateProject)

		r.Route("/project", func(r chi.Router) {
			r.Get("/", s.handleGetProject)
			r.Delete("/", s.handleResetProject)
			r.Put("/sections/{id}", s.handleUpdateSection)
			r.Put("/theme", s.handleUpdateTheme)
			r.Get("/preview", s.handlePreview)
			r.Post("/structure", s.handleUploadStructure)
			r.Get("/export", s.handleExport)
			r.Get("/download", s.handleDownload)
		})
	})

	// Preview websocket (session-scoped, outside the versioned tree)
	r.With(s.sessions.Ensure).Get("/ws/preview", s.handlePreviewWS)

	s.router = r
}

// loggingMiddleware logs HTTP requests using slog
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			slog.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
				"remote_addr", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
