package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"flightwatch-service/internal/usecase"
	"flightwatch-service/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Processor runs one processing cycle on demand
type Processor interface {
	ProcessCycle(ctx context.Context) (*usecase.ProcessSummary, error)
}

// Server exposes the scheduler trigger endpoint plus health and metrics
type Server struct {
	httpServer *http.Server
	processor  Processor
	cronSecret string
	logger     logger.Logger
}

// New creates a new HTTP server
func New(port string, readTimeout, writeTimeout time.Duration, cronSecret string, processor Processor, logger logger.Logger) *Server {
	s := &Server{
		processor:  processor,
		cronSecret: cronSecret,
		logger:     logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/api/v1/process", s.handleProcess)

	s.httpServer = &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	return s
}

// Handler returns the router, for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the HTTP server until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Healthy"))
}

// handleProcess is the external scheduler's trigger. Processing details
// are logged server-side only; the caller gets a summary or a generic
// failure.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		s.logger.Warn("Unauthorized process trigger", "remote", r.RemoteAddr)
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"error": "unauthorized",
		})
		return
	}

	summary, err := s.processor.ProcessCycle(r.Context())
	if err != nil {
		s.logger.Error("Processing cycle failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error": "processing failed",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"summary": summary,
	})
}

func (s *Server) authorized(r *http.Request) bool {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.cronSecret)) == 1
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
