// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restaurant_cache_lookups_total",
			Help: "Total number of cache lookups by namespace and result",
		},
		[]string{"namespace", "result"},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "places_upstream_requests_total",
			Help: "Total number of Places API calls by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "places_upstream_duration_seconds",
			Help: "Duration of Places API calls in seconds",
		},
		[]string{"operation"},
	)

	MockFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "places_mock_fallbacks_total",
			Help: "Total number of responses served from mock data",
		},
		[]string{"operation", "reason"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of API requests in seconds",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of API requests currently being served",
		},
	)
)
