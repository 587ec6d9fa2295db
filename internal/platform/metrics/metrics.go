// Package metrics holds the Prometheus collectors exported by both services.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for the gateway lookup counter.
const (
	LookupFound         = "found"
	LookupNotRegistered = "not_registered"
	LookupUnavailable   = "unavailable"
)

// Metrics holds all Prometheus metrics for a service.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	postings        *prometheus.CounterVec
	postingRetries  prometheus.Counter
	customerLookups *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it, so constructing it twice (e.g. in tests) never panics.
func NewMetrics(service string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(prometheus.WrapRegistererWith(prometheus.Labels{"service": service}, reg))

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests by route, method and status.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		postings: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "banking_postings_total",
				Help: "Transactions posted, by type and result.",
			},
			[]string{"type", "result"},
		),
		postingRetries: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "banking_posting_retries_total",
				Help: "Postings retried after a concurrent update on the same account.",
			},
		),
		customerLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "banking_customer_lookups_total",
				Help: "Customer gateway lookups by outcome.",
			},
			[]string{"outcome"},
		),
	}
}

// RecordRequest records an HTTP request against its route template.
func (m *Metrics) RecordRequest(method, route, status string, d time.Duration) {
	m.requestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}

// IncrPosting counts a posting attempt outcome ("ok" or an error kind).
func (m *Metrics) IncrPosting(txnType, result string) {
	m.postings.WithLabelValues(txnType, result).Inc()
}

// IncrPostingRetry counts a retried posting.
func (m *Metrics) IncrPostingRetry() {
	m.postingRetries.Inc()
}

// IncrCustomerLookup counts a gateway lookup by outcome.
func (m *Metrics) IncrCustomerLookup(outcome string) {
	m.customerLookups.WithLabelValues(outcome).Inc()
}
