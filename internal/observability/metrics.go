package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// case-study analyses.
type Metrics struct {
	RecordsLoaded *prometheus.CounterVec // labels: dataset={tornado,baseball}
	ParseFailures *prometheus.CounterVec // labels: dataset={tornado,baseball}
	AnalysisReady prometheus.Gauge

	// Chart rendering metrics.
	ChartsRendered      *prometheus.CounterVec // labels: chart
	ChartRenderDuration prometheus.Histogram

	// SQLite store metrics.
	QueryDuration *prometheus.HistogramVec // labels: query
	DetailCache   *prometheus.CounterVec   // labels: result={hit,miss}

	// Dataset download metrics.
	FetchBytes prometheus.Counter
}

// NewMetrics creates and registers all analysis metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RecordsLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "case_studies",
			Name:      "records_loaded_total",
			Help:      "Total records loaded per dataset.",
		}, []string{"dataset"}),
		ParseFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "case_studies",
			Name:      "record_parse_failures_total",
			Help:      "Total rows with at least one unparseable field, by dataset.",
		}, []string{"dataset"}),
		AnalysisReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "case_studies",
			Name:      "analysis_ready",
			Help:      "1 when both analyses have completed, 0 while computing.",
		}),
		ChartsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "case_studies",
			Name:      "charts_rendered_total",
			Help:      "Charts written to disk, by chart name.",
		}, []string{"chart"}),
		ChartRenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "case_studies",
			Name:      "chart_render_duration_seconds",
			Help:      "Duration of a single chart render and save.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		QueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "case_studies",
			Name:      "sqlite_query_duration_seconds",
			Help:      "SQLite query duration by query name.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"query"}),
		DetailCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "case_studies",
			Name:      "team_detail_cache_total",
			Help:      "Team detail cache lookups by result.",
		}, []string{"result"}),
		FetchBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "case_studies",
			Name:      "fetch_bytes_total",
			Help:      "Total bytes downloaded by the dataset fetcher.",
		}),
	}

	prometheus.MustRegister(
		m.RecordsLoaded,
		m.ParseFailures,
		m.AnalysisReady,
		m.ChartsRendered,
		m.ChartRenderDuration,
		m.QueryDuration,
		m.DetailCache,
		m.FetchBytes,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RecordsLoaded:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "case_studies", Name: "records_loaded_total"}, []string{"dataset"}),
		ParseFailures:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "case_studies", Name: "record_parse_failures_total"}, []string{"dataset"}),
		AnalysisReady:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "case_studies", Name: "analysis_ready"}),
		ChartsRendered:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "case_studies", Name: "charts_rendered_total"}, []string{"chart"}),
		ChartRenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "case_studies", Name: "chart_render_duration_seconds"}),
		QueryDuration:       prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "case_studies", Name: "sqlite_query_duration_seconds"}, []string{"query"}),
		DetailCache:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "case_studies", Name: "team_detail_cache_total"}, []string{"result"}),
		FetchBytes:          prometheus.NewCounter(prometheus.CounterOpts{Namespace: "case_studies", Name: "fetch_bytes_total"}),
	}
}
