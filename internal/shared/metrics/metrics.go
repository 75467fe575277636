package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "skribe"

var (
	registry = prometheus.NewRegistry()

	extractionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extractions_total",
		Help:      "Uploaded files processed by the text extractor.",
	}, []string{"format", "outcome"})

	completionRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "completion_requests_total",
		Help:      "Completion requests sent to the LLM provider.",
	}, []string{"provider", "outcome"})

	completionDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "completion_duration_seconds",
		Help:      "Completion request latency in seconds.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60, 120},
	}, []string{"provider"})

	generationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generations_total",
		Help:      "Pipeline runs by outcome.",
	}, []string{"outcome"})
)

func init() {
	registry.MustRegister(
		extractionsTotal,
		completionRequestsTotal,
		completionDuration,
		generationsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// ObserveExtraction counts one extractor run. outcome is "ok", "empty", "failed" or "unsupported".
func ObserveExtraction(format, outcome string) {
	extractionsTotal.WithLabelValues(format, outcome).Inc()
}

// ObserveCompletion records one completion call.
func ObserveCompletion(provider string, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	completionRequestsTotal.WithLabelValues(provider, outcome).Inc()
	completionDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// ObserveGeneration counts one pipeline run.
func ObserveGeneration(outcome string) {
	generationsTotal.WithLabelValues(outcome).Inc()
}

// Registry exposes the collectors for tests and custom exposition.
func Registry() *prometheus.Registry {
	return registry
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
}
