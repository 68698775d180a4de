// Package metrics defines the prometheus collectors for the API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP request latency by route",
		},
		[]string{"method", "route"},
	)

	SignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_signups_total",
			Help: "Signup attempts by activity and outcome",
		},
		[]string{"activity", "outcome"},
	)

	UnregistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_unregistrations_total",
			Help: "Unregister attempts by activity and outcome",
		},
		[]string{"activity", "outcome"},
	)

	SpotsLeft = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "activity_spots_left",
			Help: "Remaining capacity per activity",
		},
		[]string{"activity"},
	)
)
