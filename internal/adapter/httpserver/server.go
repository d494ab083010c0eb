// Package httpserver exposes the analysis results over HTTP alongside
// health, readiness, and metrics endpoints.
package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ds4stats/case-studies/internal/adapter/sqlite"
	"github.com/ds4stats/case-studies/internal/baseball"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// TeamDetailProvider returns per-team season detail. *sqlite.Store and
// *sqlite.CachedStore both satisfy it.
type TeamDetailProvider interface {
	TeamDetail(ctx context.Context, teamID string) (*sqlite.TeamDetail, error)
}

// Options configures a Server. Results is required; Teams, Inflation, and
// ChartDir are optional and disable their routes when unset.
type Options struct {
	Addr      string
	Results   *Results
	Teams     TeamDetailProvider
	Inflation *baseball.Inflation
	ChartDir  string
	Logger    *slog.Logger
}

// Server exposes the case-study API, charts, and operational endpoints.
type Server struct {
	httpServer *http.Server
	results    *Results
	teams      TeamDetailProvider
	infl       *baseball.Inflation
	logger     *slog.Logger
}

// NewServer creates an HTTP server with all routes registered.
func NewServer(opts Options) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         opts.Addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		results: opts.Results,
		teams:   opts.Teams,
		infl:    opts.Inflation,
		logger:  opts.Logger,
	}

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(opts.Results))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /api/tornado/summary", s.handleTornadoSummary)
	mux.HandleFunc("GET /api/baseball/summary", s.handleBaseballSummary)
	mux.HandleFunc("GET /api/baseball/teams/{id}", s.handleTeamDetail)
	if opts.ChartDir != "" {
		mux.Handle("GET /charts/", http.StripPrefix("/charts/", http.FileServer(http.Dir(opts.ChartDir))))
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

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "case-studies",
		"endpoints": []string{
			"/healthz",
			"/readyz",
			"/metrics",
			"/api/tornado/summary",
			"/api/baseball/summary",
			"/api/baseball/teams/{id}",
			"/charts/",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func (s *Server) handleTornadoSummary(w http.ResponseWriter, _ *http.Request) {
	summary := s.results.Tornado()
	if summary == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "tornado summary not available",
		})
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleBaseballSummary(w http.ResponseWriter, _ *http.Request) {
	summary := s.results.Baseball()
	if summary == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "baseball summary not available",
		})
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleTeamDetail(w http.ResponseWriter, r *http.Request) {
	if s.teams == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "team detail not available",
		})
		return
	}

	teamID := r.PathValue("id")
	detail, err := s.teams.TeamDetail(r.Context(), teamID)
	if errors.Is(err, sqlite.ErrTeamNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown team"})
		return
	}
	if err != nil {
		s.logger.Error("team detail failed", "team", teamID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "query failed"})
		return
	}

	// The cached detail is shared between requests; adjust a copy.
	out := *detail
	if s.infl != nil {
		out.Seasons = make([]baseball.PayrollSeason, len(detail.Seasons))
		copy(out.Seasons, detail.Seasons)
		for i := range out.Seasons {
			out.Seasons[i].AdjPayroll = s.infl.Adjust(out.Seasons[i].Year, out.Seasons[i].Payroll)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
