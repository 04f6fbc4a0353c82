package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "shoppinglist"

var (
	ItemOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "item_operations_total", Help: "Item store operations by operation and outcome."},
		[]string{"operation", "outcome"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request latency by method, route and status.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route", "status"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

// RegisterCollectors registers every collector of this package. Call once per registry.
func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(ItemOperations)
	reg.MustRegister(HTTPRequestDuration)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
