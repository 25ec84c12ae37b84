// Package http exposes the ringdown catalogue and derivation endpoints,
// plus the usual health, readiness, and metrics routes.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/ringdown-toolkit/internal/domain"
	"github.com/couchcryptid/ringdown-toolkit/internal/observability"
	"github.com/couchcryptid/ringdown-toolkit/internal/report"
)

// Server serves read-only catalogue reports over HTTP.
type Server struct {
	httpServer *http.Server
	catalogue  domain.Catalogue
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewServer creates the catalogue server. The catalogue is captured once at
// startup; it is immutable, so no locking is needed.
func NewServer(addr string, catalogue domain.Catalogue, logger *slog.Logger, metrics *observability.Metrics) *Server {
	s := &Server{
		catalogue: catalogue,
		logger:    logger,
		metrics:   metrics,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/events", s.handleListEvents)
		r.Get("/events/{name}", s.handleGetEvent)
		r.Get("/derive", s.handleDerive)
	})

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// instrument records per-route request durations.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		s.metrics.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if s.catalogue.Len() == 0 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  "catalogue is empty",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleListEvents(w http.ResponseWriter, _ *http.Request) {
	rows := report.Rows(s.catalogue.Events())
	s.metrics.ReportsRendered.WithLabelValues("json").Add(float64(len(rows)))
	writeRows(w, rows)
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	event, ok := s.catalogue.Lookup(name)
	if !ok {
		s.metrics.CatalogueLookups.WithLabelValues("miss").Inc()
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":        (&domain.UnknownEventError{Name: name, Known: s.catalogue.Names()}).Error(),
			"known_events": s.catalogue.Names(),
		})
		return
	}
	s.metrics.CatalogueLookups.WithLabelValues("hit").Inc()
	s.metrics.ReportsRendered.WithLabelValues("json").Inc()
	writeRows(w, []domain.Report{event.Report()})
}

func (s *Server) handleDerive(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	tauMS, err := parseRequiredFloat(q.Get("tau_ms"), "tau_ms")
	if err != nil {
		s.metrics.DeriveRequests.WithLabelValues("bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	freqHz, err := parseRequiredFloat(q.Get("freq_hz"), "freq_hz")
	if err != nil {
		s.metrics.DeriveRequests.WithLabelValues("bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	event := domain.NewCustomEvent(q.Get("name"), tauMS, freqHz)
	s.metrics.DeriveRequests.WithLabelValues("success").Inc()
	s.metrics.ReportsRendered.WithLabelValues("json").Inc()
	writeRows(w, []domain.Report{event.Report()})
}

// parseRequiredFloat validates query parameters at the boundary; the domain
// layer itself accepts any value.
func parseRequiredFloat(raw, key string) (float64, error) {
	if raw == "" {
		return 0, &domain.MissingParamError{Missing: []string{key}}
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &badParamError{key: key, raw: raw}
	}
	return value, nil
}

type badParamError struct {
	key string
	raw string
}

func (e *badParamError) Error() string {
	return "parameter " + e.key + " is not a number: " + strconv.Quote(e.raw)
}

// writeRows writes a report array with the same two-space indentation as the
// CLI's --json output, stamping the generation time in a response header.
func writeRows(w http.ResponseWriter, rows []domain.Report) {
	w.Header().Set("Content-Type", "application/json")
	if len(rows) > 0 {
		w.Header().Set("X-Generated-At", rows[0].GeneratedAt.UTC().Format(time.RFC3339))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(rows) //nolint:errcheck // best-effort response write
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort error response
}
