// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "json_schema_checker"

// Outcome labels for ChecksTotal.
const (
	OutcomeValid        = "valid"
	OutcomeFileNotFound = "file_not_found"
	OutcomeJSONSyntax   = "json_syntax"
	OutcomeSchemaFormat = "schema_format"
	OutcomeUnexpected   = "unexpected"
	OutcomeUsage        = "usage"
)

// Metrics holds all Prometheus metrics for the checker.
type Metrics struct {
	// Check metrics
	ChecksTotal   *prometheus.CounterVec
	CheckDuration prometheus.Histogram
	DocumentBytes prometheus.Histogram

	// Schema shape metrics
	PropertiesDeclared prometheus.Histogram

	// Kafka publish metrics
	KafkaPublishTotal   *prometheus.CounterVec
	KafkaPublishErrors  *prometheus.CounterVec
	KafkaPublishLatency *prometheus.HistogramVec
}

// DefaultMetrics is the global metrics instance.
var DefaultMetrics = NewMetrics(prometheus.DefaultRegisterer)

// NewMetrics creates all metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ChecksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checks_total",
			Help:      "Total number of schema checks by outcome",
		}, []string{"outcome"}),
		CheckDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "check_duration_seconds",
			Help:      "Duration of a schema check in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		DocumentBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "schema_document_bytes",
			Help:      "Size of checked schema documents in bytes",
			Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
		}),
		PropertiesDeclared: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "schema_properties_declared",
			Help:      "Number of top-level properties declared by valid schemas",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),

		KafkaPublishTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_total",
			Help:      "Total number of Kafka messages published",
		}, []string{"topic", "event_type"}),
		KafkaPublishErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_errors_total",
			Help:      "Total number of Kafka publish errors",
		}, []string{"topic", "event_type"}),
		KafkaPublishLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kafka_publish_latency_seconds",
			Help:      "Kafka publish latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"topic"}),
	}
}

// RecordCheck records a completed check.
func (m *Metrics) RecordCheck(outcome string, durationSeconds float64, size int) {
	m.ChecksTotal.WithLabelValues(outcome).Inc()
	m.CheckDuration.Observe(durationSeconds)
	if size >= 0 {
		m.DocumentBytes.Observe(float64(size))
	}
}

// RecordUsageError records an invocation rejected before any check ran.
func (m *Metrics) RecordUsageError() {
	m.ChecksTotal.WithLabelValues(OutcomeUsage).Inc()
}

// RecordProperties records the property count of a valid schema.
func (m *Metrics) RecordProperties(count int) {
	m.PropertiesDeclared.Observe(float64(count))
}

// RecordKafkaPublish records a Kafka publish attempt.
func (m *Metrics) RecordKafkaPublish(topic, eventType string, err error, latencySeconds float64) {
	m.KafkaPublishTotal.WithLabelValues(topic, eventType).Inc()
	m.KafkaPublishLatency.WithLabelValues(topic).Observe(latencySeconds)
	if err != nil {
		m.KafkaPublishErrors.WithLabelValues(topic, eventType).Inc()
	}
}

// WriteTextfile writes everything gathered by g to path in the text
// exposition format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
