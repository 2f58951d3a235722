package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	BookingsCreated    *prometheus.CounterVec
	MembershipsCreated prometheus.Counter
	EmailsSent         prometheus.Counter
	ExpirationNotices  prometheus.Counter
	RequestDuration    prometheus.Histogram
	ErrorsCount        *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		BookingsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "The total number of bookings created",
		}, []string{"booking_type"}),
		MembershipsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memberships_created_total",
			Help:      "The total number of membership registrations",
		}),
		EmailsSent: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_sent_total",
			Help:      "The total number of emails sent",
		}),
		ExpirationNotices: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expiration_notices_total",
			Help:      "The total number of membership expiration notices sent",
		}),
		RequestDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Time taken to handle requests",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
