package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal the total number of handled HTTP requests (counter)
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "http",
			Name:      "requests_total",
			Help:      "The total number of handled HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration time spent handling HTTP requests (summary with quantiles 0.5, 0.9, and 0.99)
	HTTPRequestDuration = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:  "http",
			Name:       "request_duration_seconds",
			Help:       "Time spent handling HTTP requests",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"method", "path"},
	)

	// BookingsCreated the total number of successful bookings (counter)
	BookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bookings",
			Name:      "created_total",
			Help:      "The total number of successful bookings",
		},
	)

	// BookingsRejected the total number of rejected booking attempts (counter)
	BookingsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookings",
			Name:      "rejected_total",
			Help:      "The total number of rejected booking attempts",
		},
		[]string{"reason"},
	)

	// SeatCounterDrift the total number of seat counter drifts detected by the reconciler (counter)
	SeatCounterDrift = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "reconciler",
			Name:      "seat_counter_drift_total",
			Help:      "The total number of seat counter drifts detected",
		},
	)
)
