package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are registered on the default registry at package load, so any
// package can record without threading a collector through constructors.
// The /metrics handler exposes the default gatherer.
var (
	recordsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kobo_records_created_total",
		Help: "Total financial records created by kind",
	}, []string{"kind"})

	projectionsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kobo_projections_computed_total",
		Help: "Total compound interest projections computed",
	})

	rateFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kobo_rate_fetches_total",
		Help: "Total exchange rate fetch attempts by outcome",
	}, []string{"outcome"})

	remindersSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kobo_reminders_sent_total",
		Help: "Total savings reminder emails sent",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kobo_http_requests_total",
		Help: "Total HTTP requests by method, path and status",
	}, []string{"method", "path", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kobo_http_request_duration_seconds",
		Help:    "HTTP request duration by method and path",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	authFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kobo_auth_failures_total",
		Help: "Total authentication failures by reason",
	}, []string{"reason"})
)

// RecordCreated counts one created record of the given kind
// (income, expense, subscription, savings, allocation, user).
func RecordCreated(kind string) {
	recordsCreated.WithLabelValues(kind).Inc()
}

// ProjectionComputed counts one compound interest projection.
func ProjectionComputed() {
	projectionsComputed.Inc()
}

// RateFetch counts one exchange rate fetch attempt.
// Outcome is "success", "error" or "stale".
func RateFetch(outcome string) {
	rateFetches.WithLabelValues(outcome).Inc()
}

// ReminderSent counts one savings reminder email.
func ReminderSent() {
	remindersSent.Inc()
}

// HTTPRequest records one completed HTTP request.
func HTTPRequest(method, path, status string, duration time.Duration) {
	httpRequests.WithLabelValues(method, path, status).Inc()
	httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// AuthFailure counts one failed authentication attempt.
func AuthFailure(reason string) {
	authFailures.WithLabelValues(reason).Inc()
}
