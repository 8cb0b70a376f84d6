// Package metrics holds the prometheus collectors of the service on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector the service records to.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Workflow metrics
	TransitionsTotal   *prometheus.CounterVec
	ConflictsTotal     *prometheus.CounterVec
	SideEffectFailures *prometheus.CounterVec

	// Station metrics
	StationLoadDrift *prometheus.GaugeVec

	// Relay metrics
	NotificationsRelayed *prometheus.CounterVec
	RelayPublishDuration prometheus.Histogram

	// Circuit breaker metrics
	CircuitBreakerState *prometheus.GaugeVec
}

// Config holds metrics configuration.
type Config struct {
	Namespace string
}

func DefaultConfig() *Config {
	return &Config{Namespace: "prepcenter"}
}

// New creates the collectors and registers them with a fresh registry.
func New(config *Config) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	m.TransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "transitions_total",
			Help:      "Committed state transitions by kind",
		},
		[]string{"kind"},
	)

	m.ConflictsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "conflicts_total",
			Help:      "Operations refused by a conditional update or admission check",
		},
		[]string{"operation", "reason"},
	)

	m.SideEffectFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "side_effect_failures_total",
			Help:      "Notifications or activity entries that could not be recorded after commit",
		},
		[]string{"effect"},
	)

	m.StationLoadDrift = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Name:      "station_load_drift",
			Help:      "current_load minus the number of IN_PROGRESS tasks bound to the station",
		},
		[]string{"station"},
	)

	m.NotificationsRelayed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "notifications_relayed_total",
			Help:      "Inbox notifications relayed to the broker",
		},
		[]string{"status"},
	)

	m.RelayPublishDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "relay_publish_duration_seconds",
			Help:      "Broker publish duration for one relay batch",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)

	m.CircuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.TransitionsTotal,
		m.ConflictsTotal,
		m.SideEffectFailures,
		m.StationLoadDrift,
		m.NotificationsRelayed,
		m.RelayPublishDuration,
		m.CircuitBreakerState,
	)

	return m
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordTransition(kind string) {
	m.TransitionsTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) RecordConflict(operation, reason string) {
	m.ConflictsTotal.WithLabelValues(operation, reason).Inc()
}

func (m *Metrics) RecordSideEffectFailure(effect string) {
	m.SideEffectFailures.WithLabelValues(effect).Inc()
}

func (m *Metrics) SetStationLoadDrift(stationID string, drift int) {
	m.StationLoadDrift.WithLabelValues(stationID).Set(float64(drift))
}

func (m *Metrics) RecordRelay(count int, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	m.NotificationsRelayed.WithLabelValues(status).Add(float64(count))
	m.RelayPublishDuration.Observe(duration.Seconds())
}

func (m *Metrics) SetCircuitBreakerState(name string, state int) {
	m.CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
