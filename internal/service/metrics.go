package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersConfirmed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kory_delivery",
			Subsystem: "orders",
			Name:      "confirmed_total",
			Help:      "Total number of confirmed orders by origin country",
		},
		[]string{"country"},
	)

	ordersFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kory_delivery",
			Subsystem: "orders",
			Name:      "failed_total",
			Help:      "Total number of orders that could not be stored",
		},
	)
)

var (
	rateLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kory_delivery",
			Subsystem: "rates",
			Name:      "lookups_total",
			Help:      "Total number of rate lookups by the layer that answered",
		},
		[]string{"layer"},
	)

	rateProviderErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kory_delivery",
			Subsystem: "rates",
			Name:      "provider_errors_total",
			Help:      "Total number of failed rate provider requests",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersConfirmed,
		ordersFailed,

		rateLookups,
		rateProviderErrors,
	)
}
