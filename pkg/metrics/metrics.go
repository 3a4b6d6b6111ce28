package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Assistant (Gemini) call latency (milliseconds)
	AssistantCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assistant_call_latency_ms",
			Help:    "Assistant model call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"model", "status"},
	)

	// Drive API call latency (milliseconds)
	DriveCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "drive_call_latency_ms",
			Help:    "Drive API call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10),
		},
		[]string{"operation", "status"},
	)

	// Store mutation counts per collection
	StoreMutationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_mutation_count",
			Help: "Total number of store mutations",
		},
		[]string{"collection", "operation"},
	)

	// Notifications surfaced after relevance filtering
	NotificationFanoutCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_fanout_count",
			Help: "Total number of notifications delivered to user inboxes",
		},
		[]string{"type"},
	)

	// Collection persistence write failures (swallowed, but counted)
	PersistFailureCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "persist_failure_count",
			Help: "Total number of failed collection persistence writes",
		},
		[]string{"collection"},
	)
)

// RecordHTTPRequestDuration records HTTP request latency.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordAssistantCallLatency records one model call attempt.
func RecordAssistantCallLatency(model, status string, duration time.Duration) {
	AssistantCallLatency.WithLabelValues(model, status).Observe(float64(duration.Milliseconds()))
}

// RecordDriveCallLatency records one Drive API call.
func RecordDriveCallLatency(operation, status string, duration time.Duration) {
	DriveCallLatency.WithLabelValues(operation, status).Observe(float64(duration.Milliseconds()))
}

// IncrementStoreMutation counts a store mutation.
func IncrementStoreMutation(collection, operation string) {
	StoreMutationCount.WithLabelValues(collection, operation).Inc()
}

// IncrementNotificationFanout counts a delivered notification.
func IncrementNotificationFanout(notifType string) {
	NotificationFanoutCount.WithLabelValues(notifType).Inc()
}

// IncrementPersistFailure counts a swallowed persistence write failure.
func IncrementPersistFailure(collection string) {
	PersistFailureCount.WithLabelValues(collection).Inc()
}
