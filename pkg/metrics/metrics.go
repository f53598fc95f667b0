package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors exposed by the service.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	BookingsTotal   *prometheus.CounterVec
}

// New registers and returns the service collectors.
// serviceName is attached as a constant label so several services can share
// one Prometheus instance.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		BookingsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "facility_bookings_total",
			Help:        "Facility booking attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}
}

// Booking outcome label values.
const (
	OutcomeAccepted        = "accepted"
	OutcomeConflict        = "conflict"
	OutcomeDurationInvalid = "duration_invalid"
	OutcomeRejected        = "rejected"
)

// ObserveBooking increments the booking counter for the given outcome.
func (m *Metrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.BookingsTotal.WithLabelValues(outcome).Inc()
}
