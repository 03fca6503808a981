package structurer

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CallMetricsRecorder records AI provider call metrics. Abstracted behind an
// interface so tests can inject a mock recorder instead of Prometheus.
type CallMetricsRecorder interface {
	// RecordDuration records the time taken by one provider call.
	RecordDuration(operation string, duration time.Duration)

	// RecordFailure increments the failure counter for one operation.
	RecordFailure(operation string)
}

// PrometheusCallMetrics implements CallMetricsRecorder using Prometheus.
type PrometheusCallMetrics struct {
	durationHistogram *prometheus.HistogramVec
	failureCounter    *prometheus.CounterVec
}

var (
	prometheusMetricsInstance *PrometheusCallMetrics
	prometheusMetricsOnce     sync.Once
)

// NewPrometheusCallMetrics creates the Prometheus-backed recorder.
// Uses a singleton to avoid duplicate metric registration in tests.
func NewPrometheusCallMetrics() *PrometheusCallMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusCallMetrics{
			durationHistogram: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "ai_provider_call_duration_seconds",
				Help:    "Time taken by AI provider calls",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			}, []string{"operation"}),
			failureCounter: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "ai_provider_call_failures_total",
				Help: "Total number of failed AI provider calls",
			}, []string{"operation"}),
		}
	})
	return prometheusMetricsInstance
}

// RecordDuration implements CallMetricsRecorder.RecordDuration
func (p *PrometheusCallMetrics) RecordDuration(operation string, duration time.Duration) {
	p.durationHistogram.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordFailure implements CallMetricsRecorder.RecordFailure
func (p *PrometheusCallMetrics) RecordFailure(operation string) {
	p.failureCounter.WithLabelValues(operation).Inc()
}
