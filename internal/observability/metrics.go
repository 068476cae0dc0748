package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the dashboard's Prometheus collectors on a private registry.
type Metrics struct {
	registry       *prometheus.Registry
	requests       *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	errors         *prometheus.CounterVec
	clientCalls    *prometheus.CounterVec
	clientLatency  *prometheus.HistogramVec
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ticket_dashboard",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Dashboard HTTP requests, labeled by route, method and status",
		}, []string{"path", "method", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ticket_dashboard",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Dashboard HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path", "method"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ticket_dashboard",
			Subsystem: "http",
			Name:      "errors_total",
			Help:      "Dashboard HTTP errors, labeled by error code",
		}, []string{"path", "method", "code"}),
		clientCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ticket_dashboard",
			Subsystem: "api_client",
			Name:      "calls_total",
			Help:      "Calls to the ticket backend, labeled by operation and outcome",
		}, []string{"operation", "outcome"}),
		clientLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ticket_dashboard",
			Subsystem: "api_client",
			Name:      "call_duration_seconds",
			Help:      "Latency of calls to the ticket backend",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	m.registry.MustRegister(m.requests, m.requestLatency, m.errors, m.clientCalls, m.clientLatency)
	return m
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.requestLatency.WithLabelValues(path, method).Observe(duration.Seconds())
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(path, method, code).Inc()
}

// RecordClientCall records one call to the ticket backend.
func (m *Metrics) RecordClientCall(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.clientCalls.WithLabelValues(operation, outcome).Inc()
	m.clientLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
