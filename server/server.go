// Package server exposes the operational HTTP surface: a health ping, the
// current bot settings and the recent audit trail. It serves operators and
// monitoring, not store customers.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/wootools/wooadmin/pkg/audit"
	"github.com/wootools/wooadmin/pkg/settings"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . SettingsProvider
//go:generate moq -out mocks/audit.go -pkg mocks -skip-ensure -fmt goimports . AuditReader

// recentEventsLimit caps the audit events returned by the status endpoint
const recentEventsLimit = 20

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	settings SettingsProvider
	audit    AuditReader
	version  string
	debug    bool
	started  time.Time

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// SettingsProvider exposes the current bot settings
type SettingsProvider interface {
	Get() settings.Settings
}

// AuditReader reads recent audit events, may be nil
type AuditReader interface {
	Recent(ctx context.Context, limit int) ([]audit.Event, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, st SettingsProvider, auditLog AuditReader, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		settings: st,
		audit:    auditLog,
		version:  version,
		debug:    debug,
		started:  time.Now(),
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("wooadmin", "wootools", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /events", s.eventsHandler)
	})
}

// statusHandler returns server status with the current bot settings
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":   "ok",
		"version":  s.version,
		"time":     time.Now().UTC(),
		"uptime":   time.Since(s.started).Round(time.Second).String(),
		"settings": s.settings.Get(),
	}

	if s.audit != nil {
		events, err := s.audit.Recent(r.Context(), recentEventsLimit)
		if err != nil {
			lgr.Printf("[WARN] failed to read audit events for status: %v", err)
		} else {
			status["recent_events"] = events
		}
	}

	RenderJSON(w, r, http.StatusOK, status)
}

// eventsHandler returns the most recent audit events
func (s *Server) eventsHandler(w http.ResponseWriter, r *http.Request) {
	if s.audit == nil {
		RenderJSON(w, r, http.StatusOK, []audit.Event{})
		return
	}

	events, err := s.audit.Recent(r.Context(), recentEventsLimit)
	if err != nil {
		lgr.Printf("[ERROR] failed to read audit events: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if events == nil {
		events = []audit.Event{}
	}
	RenderJSON(w, r, http.StatusOK, events)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
