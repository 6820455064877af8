package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	transportHTTP  = "http"
	transportKafka = "kafka"
)

var (
	updatesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kory_delivery",
			Subsystem: "gateway",
			Name:      "updates_processed_total",
			Help:      "Total number of successfully processed gateway updates",
		},
		[]string{"transport", "kind"},
	)

	updatesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kory_delivery",
			Subsystem: "gateway",
			Name:      "updates_failed_total",
			Help:      "Total number of gateway updates rejected as malformed",
		},
		[]string{"transport"},
	)

	updateDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kory_delivery",
			Subsystem: "gateway",
			Name:      "update_duration_seconds",
			Help:      "Histogram of gateway update processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"transport"},
	)

	updatesInProgress = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "kory_delivery",
			Subsystem: "gateway",
			Name:      "updates_in_progress",
			Help:      "Number of gateway updates currently being processed",
		},
		[]string{"transport"},
	)
)

var (
	updatesDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kory_delivery",
			Subsystem: "kafka_consumer",
			Name:      "updates_dlq_total",
			Help:      "Total number of updates written to DLQ",
		},
	)

	repliesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kory_delivery",
			Subsystem: "kafka_consumer",
			Name:      "replies_failed_total",
			Help:      "Total number of replies that could not be published",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kory_delivery",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		updatesProcessed,
		updatesFailed,
		updateDuration,
		updatesInProgress,

		updatesDLQ,
		repliesFailed,
		commitErrors,
	)
}
