package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const metricsNamespace = "isleprint"

// Metrics holds the server's Prometheus collectors. Each Server owns its
// registry so several can coexist in one process.
type Metrics struct {
	Registry *prometheus.Registry

	RequestsTotal     *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	RowsEvaluated     prometheus.Counter
	UnmatchedRows     prometheus.Counter
	FactorsFallback   prometheus.Gauge
	RateLimitExceeded prometheus.Counter
}

// NewMetrics registers every collector on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests processed",
			},
			[]string{"route", "method", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
			},
			[]string{"route"},
		),
		RowsEvaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "ledger_rows_evaluated_total",
			Help:      "Total number of ledger rows evaluated",
		}),
		UnmatchedRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "ledger_unmatched_rows_total",
			Help:      "Total number of ledger rows no emission rule matched",
		}),
		FactorsFallback: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "factors_fallback",
			Help:      "1 when the factors file was invalid and built-in defaults are in use",
		}),
		RateLimitExceeded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rate_limit_exceeded_total",
			Help:      "Total number of requests rejected by the rate limiter",
		}),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestsTotal,
		m.RequestDuration,
		m.RowsEvaluated,
		m.UnmatchedRows,
		m.FactorsFallback,
		m.RateLimitExceeded,
	)
	return m
}
