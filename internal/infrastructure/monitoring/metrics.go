// Package monitoring provides Prometheus metrics for the engine.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector handles Prometheus metrics collection
type MetricsCollector struct {
	feedbackProcessedTotal  prometheus.Counter
	feedbackFailedTotal     *prometheus.CounterVec
	substitutionsTotal      *prometheus.CounterVec
	recipesModifiedTotal    prometheus.Counter
	recommendationDuration  prometheus.Histogram
	recommendationBatchSize prometheus.Histogram
}

// NewMetricsCollector creates a new metrics collector registered on reg.
// A nil registerer falls back to the default registry.
func NewMetricsCollector(reg prometheus.Registerer) *MetricsCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &MetricsCollector{
		feedbackProcessedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "feedback_processed_total",
				Help: "Total number of feedback events folded into preference models",
			},
		),
		feedbackFailedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "feedback_failed_total",
				Help: "Total number of feedback events rejected, by error code",
			},
			[]string{"code"},
		),
		substitutionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "substitutions_total",
				Help: "Ingredient substitution resolutions, by outcome",
			},
			[]string{"outcome"},
		),
		recipesModifiedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "recipes_modified_total",
				Help: "Total number of recipe modification runs",
			},
		),
		recommendationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "recommendation_duration_seconds",
				Help:    "Latency of recommendation generation",
				Buckets: prometheus.DefBuckets,
			},
		),
		recommendationBatchSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "recommendation_batch_size",
				Help:    "Number of recipes returned per recommendation request",
				Buckets: prometheus.LinearBuckets(0, 5, 10),
			},
		),
	}
}

// RecordFeedbackProcessed counts one successfully folded feedback event.
func (m *MetricsCollector) RecordFeedbackProcessed() {
	m.feedbackProcessedTotal.Inc()
}

// RecordFeedbackFailed counts one rejected feedback event by error code.
func (m *MetricsCollector) RecordFeedbackFailed(code string) {
	m.feedbackFailedTotal.WithLabelValues(code).Inc()
}

// RecordSubstitution counts one resolver run. Outcome is "resolved" or
// "no_candidate".
func (m *MetricsCollector) RecordSubstitution(outcome string) {
	m.substitutionsTotal.WithLabelValues(outcome).Inc()
}

// RecordRecipeModified counts one modification run.
func (m *MetricsCollector) RecordRecipeModified() {
	m.recipesModifiedTotal.Inc()
}

// RecordRecommendation observes one recommendation request and the size
// of the batch it returned.
func (m *MetricsCollector) RecordRecommendation(duration time.Duration, batchSize int) {
	m.recommendationDuration.Observe(duration.Seconds())
	m.recommendationBatchSize.Observe(float64(batchSize))
}
