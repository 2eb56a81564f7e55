// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Realtime metrics track the WebSocket fan-out
var (
	// WebsocketConnections tracks the number of currently open WebSocket connections
	WebsocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Number of currently open WebSocket connections",
		},
	)

	// BroadcastEventsTotal counts broadcast events by type
	BroadcastEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broadcast_events_total",
			Help: "Total number of events pushed to the WebSocket fan-out",
		},
		[]string{"type"},
	)

	// BroadcastDroppedTotal counts per-client deliveries dropped because the
	// client's send buffer was full
	BroadcastDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "broadcast_dropped_total",
			Help: "Total number of per-client event deliveries dropped",
		},
	)
)

// Identity provider metrics
var (
	// IdentityLookupsTotal counts identity provider calls by outcome
	IdentityLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "identity_lookups_total",
			Help: "Total number of identity provider lookups",
		},
		[]string{"outcome"},
	)
)

// RecordBroadcast records one event pushed to the fan-out.
func RecordBroadcast(eventType string) {
	BroadcastEventsTotal.WithLabelValues(eventType).Inc()
}

// RecordIdentityLookup records the result of an identity provider call.
func RecordIdentityLookup(success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	IdentityLookupsTotal.WithLabelValues(outcome).Inc()
}
