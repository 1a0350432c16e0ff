// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "paperwork"

// Serial check outcomes.
const (
	CheckFree       = "free"
	CheckInUse      = "in_use"
	CheckFailed     = "check_failed"
	CheckSuperseded = "superseded"
)

// Reservation outcomes.
const (
	ReserveOK       = "reserved"
	ReserveConflict = "conflict"
	ReserveError    = "error"
)

// Metrics is the set of collectors registered on one registry. A private registry
// keeps tests from colliding on the global default one.
type Metrics struct {
	registry *prometheus.Registry

	Requests      *prometheus.CounterVec
	LatencyMS     *prometheus.HistogramVec
	SerialChecks  *prometheus.CounterVec
	Reservations  *prometheus.CounterVec
	StatusChanges *prometheus.CounterVec
	RemindersSent prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"route", "method", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"route"}),
		SerialChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "serial",
			Name:      "checks_total",
			Help:      "Serial availability checks by outcome.",
		}, []string{"outcome"}),
		Reservations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "serial",
			Name:      "reservations_total",
			Help:      "Serial reservation attempts by outcome.",
		}, []string{"outcome"}),
		StatusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "status_changes_total",
			Help:      "Order status changes by target status.",
		}, []string{"status"}),
		RemindersSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "payment_reminders_sent_total",
			Help:      "Payment reminders handed to the messenger.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Requests,
		m.LatencyMS,
		m.SerialChecks,
		m.Reservations,
		m.StatusChanges,
		m.RemindersSent,
	)
	return m
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(route, method string, status int, took time.Duration) {
	m.Requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.LatencyMS.WithLabelValues(route).Observe(float64(took) / float64(time.Millisecond))
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
