// Package metrics holds the Prometheus instrumentation for the engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics. Each engine instance owns its
// own registry so tests can create metrics independently.
type Metrics struct {
	registry *prometheus.Registry

	PredictionsTotal   *prometheus.CounterVec // labels: signal
	SyntheticFallbacks prometheus.Counter
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	CacheEvictions     prometheus.Counter
	FetchDuration      prometheus.Histogram
}

// New registers and returns all metrics on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		PredictionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stockseer_predictions_total",
			Help: "Total predictions served, by signal",
		}, []string{"signal"}),
		SyntheticFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockseer_synthetic_fallbacks_total",
			Help: "Series resolutions that fell back to the synthetic generator",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockseer_series_cache_hits_total",
			Help: "Series cache hits",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockseer_series_cache_misses_total",
			Help: "Series cache misses (including expired entries)",
		}),
		CacheEvictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockseer_series_cache_evictions_total",
			Help: "Entries evicted from the series cache at capacity",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stockseer_live_fetch_duration_seconds",
			Help:    "Duration of live quote fetches",
			Buckets: prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(
		m.PredictionsTotal,
		m.SyntheticFallbacks,
		m.CacheHits,
		m.CacheMisses,
		m.CacheEvictions,
		m.FetchDuration,
	)
	return m
}

// Handler returns the HTTP handler serving this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
