// Package observability provides the metrics collaborator for the
// debate referee, backed by Prometheus.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Swamyakshitha/debate-referee/internal/ports"
)

// PrometheusMetrics implements ports.MetricsCollector on the global
// Prometheus registry. It tracks analysis throughput, scoring-path
// fallbacks, judge request behavior, and final-score distributions.
type PrometheusMetrics struct {
	latency    *prometheus.HistogramVec
	counters   *prometheus.CounterVec
	histograms *prometheus.HistogramVec
}

var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)

// NewPrometheusMetrics creates a collector and registers its metric
// families with the default registry. Create at most one per process.
func NewPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "debate_operation_duration_seconds",
				Help:    "Execution time of debate referee operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "path"},
		),
		counters: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "debate_events_total",
				Help: "Counts of debate referee events by metric name and labels.",
			},
			[]string{"metric", "path", "reason", "model", "status", "direction"},
		),
		histograms: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "debate_values",
				Help:    "Value distributions (final scores, judge latencies).",
				Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			},
			[]string{"metric", "path", "model", "status"},
		),
	}
}

// RecordLatency records the execution time of an operation.
func (pm *PrometheusMetrics) RecordLatency(operation string, duration time.Duration, labels map[string]string) {
	pm.latency.WithLabelValues(operation, labels["path"]).Observe(duration.Seconds())
}

// RecordCounter increments a counter metric.
func (pm *PrometheusMetrics) RecordCounter(metric string, value float64, labels map[string]string) {
	pm.counters.WithLabelValues(
		metric, labels["path"], labels["reason"], labels["model"], labels["status"], labels["direction"],
	).Add(value)
}

// RecordHistogram records a value in a histogram.
func (pm *PrometheusMetrics) RecordHistogram(metric string, value float64, labels map[string]string) {
	pm.histograms.WithLabelValues(
		metric, labels["path"], labels["model"], labels["status"],
	).Observe(value)
}
