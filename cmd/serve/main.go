// Command serve runs both case-study analyses once at startup and serves the
// results over HTTP: summary endpoints, per-team detail, rendered charts, and
// the usual health, readiness, and metrics routes.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ds4stats/case-studies/internal/adapter/httpserver"
	"github.com/ds4stats/case-studies/internal/adapter/sqlite"
	"github.com/ds4stats/case-studies/internal/baseball"
	"github.com/ds4stats/case-studies/internal/chart"
	"github.com/ds4stats/case-studies/internal/config"
	"github.com/ds4stats/case-studies/internal/observability"
	"github.com/ds4stats/case-studies/internal/tornado"
)

// Analysis window defaults. Salary data starts in 1985; the recency share
// splits the tornado record at the 2000 season.
var (
	defaultCutoff = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	defaultSince  = 1985
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	results := &httpserver.Results{}
	infl := baseball.DefaultInflation()

	// Attach the database when present; the tornado analysis and charts
	// still serve without it.
	var store *sqlite.Store
	var teams httpserver.TeamDetailProvider
	if _, err := os.Stat(cfg.DBPath); err == nil {
		store, err = sqlite.Open(cfg.DBPath, metrics)
		if err != nil {
			logger.Error("failed to open database", "path", cfg.DBPath, "error", err)
			os.Exit(1)
		}
		teams = sqlite.NewCachedStore(store, cfg.CacheSize, metrics)
		logger.Info("database attached", "path", cfg.DBPath, "cache_size", cfg.CacheSize)
	} else {
		logger.Warn("database missing, baseball endpoints disabled", "path", cfg.DBPath)
	}

	srv := httpserver.NewServer(httpserver.Options{
		Addr:      cfg.HTTPAddr,
		Results:   results,
		Teams:     teams,
		Inflation: infl,
		ChartDir:  cfg.ChartDir,
		Logger:    logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Run the analyses; readiness flips once the first summary publishes.
	go func() {
		renderer := chart.NewRenderer(cfg.ChartDir, logger, metrics)
		analyzeTornado(cfg, logger, metrics, results, renderer)
		analyzeBaseball(ctx, logger, metrics, results, renderer, store, infl)
		metrics.AnalysisReady.Set(1)
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Error("database close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

func analyzeTornado(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics, results *httpserver.Results, renderer *chart.Renderer) {
	recs, stats, err := tornado.LoadFile(cfg.TornadoCSV)
	if err != nil {
		logger.Warn("tornado analysis skipped", "path", cfg.TornadoCSV, "error", err)
		return
	}
	metrics.RecordsLoaded.WithLabelValues("tornado").Add(float64(stats.Rows))
	metrics.ParseFailures.WithLabelValues("tornado").Add(float64(stats.Failures()))

	texas := tornado.FilterState(recs, "TX")
	summary := tornado.Summarize(texas, defaultCutoff)
	results.SetTornado(&summary)
	logger.Info("tornado analysis complete",
		"rows", summary.Total, "with_time", summary.WithTime, "field_problems", stats.Failures())

	if _, err := renderer.MonthlyBar(summary.MonthCounts); err != nil {
		logger.Error("render month chart", "error", err)
	}
	if _, err := renderer.ScaleBar(summary.ScaleCounts); err != nil {
		logger.Error("render rating chart", "error", err)
	}
	if _, err := renderer.HourBar(summary.HourCounts); err != nil {
		logger.Error("render hour chart", "error", err)
	}
	if _, err := renderer.TrackMap(tornado.MapPoints(texas), tornado.TexasOutline()); err != nil {
		logger.Error("render touchdown map", "error", err)
	}
}

func analyzeBaseball(ctx context.Context, logger *slog.Logger, metrics *observability.Metrics, results *httpserver.Results, renderer *chart.Renderer, store *sqlite.Store, infl *baseball.Inflation) {
	if store == nil {
		return
	}

	payrolls, err := store.TeamPayrolls(ctx, defaultSince)
	if err != nil {
		logger.Error("baseball analysis failed", "error", err)
		return
	}
	seasons, err := store.TeamSeasons(ctx, defaultSince)
	if err != nil {
		logger.Error("baseball analysis failed", "error", err)
		return
	}
	series, err := store.PostseasonSeries(ctx, defaultSince)
	if err != nil {
		logger.Error("baseball analysis failed", "error", err)
		return
	}
	metrics.RecordsLoaded.WithLabelValues("baseball").Add(float64(len(payrolls)))

	rows := baseball.Assemble(payrolls, seasons, series, infl)
	summary := baseball.Summarize(rows, baseball.Champions(series))
	results.SetBaseball(&summary)
	logger.Info("baseball analysis complete",
		"rows", summary.Rows, "teams", summary.Teams, "champions", len(summary.Champions))

	var points []chart.Point
	var missed, made []float64
	for _, row := range rows {
		if !row.Matched {
			continue
		}
		points = append(points, chart.Point{X: row.AdjPayroll / 1e6, Y: float64(row.Wins)})
		if row.MadePlayoffs {
			made = append(made, float64(row.Wins))
		} else {
			missed = append(missed, float64(row.Wins))
		}
	}
	if _, err := renderer.PayrollLines(chart.TimelineSeries(rows, 6)); err != nil {
		logger.Error("render payroll timeline", "error", err)
	}
	if _, err := renderer.WinsScatter(points, summary.Fit); err != nil {
		logger.Error("render wins scatter", "error", err)
	}
	if _, err := renderer.PlayoffBox(missed, made); err != nil {
		logger.Error("render playoff boxplot", "error", err)
	}
}
