package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/katalvlaran/lvpal/lps"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lvpal"

// Solve outcomes recorded by Metrics.ObserveSolve.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics holds the HTTP and solver collectors of one server. Each server
// owns its registry so several can coexist in one process.
type Metrics struct {
	registry       *prometheus.Registry
	requestsTotal  *prometheus.CounterVec
	requestDur     *prometheus.HistogramVec
	activeRequests prometheus.Gauge
	solvesTotal    *prometheus.CounterVec
	solveDur       *prometheus.HistogramVec
	traceEvents    *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by method, endpoint and status code.",
		}, []string{"method", "endpoint", "status"}),
		requestDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		}, []string{"method", "endpoint", "status"}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "active_requests",
			Help:      "Number of currently active HTTP requests.",
		}),
		solvesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Solver runs by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		solveDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Solver run time in seconds as measured by the solver clock.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"algorithm"}),
		traceEvents: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trace_events",
			Help:      "Events per traced run.",
			Buckets:   prometheus.ExponentialBuckets(10, 10, 6),
		}, []string{"algorithm"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestsTotal,
		m.requestDur,
		m.activeRequests,
		m.solvesTotal,
		m.solveDur,
		m.traceEvents,
	)

	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the Prometheus exposition of this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware returns an Echo middleware that records HTTP metrics.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			m.activeRequests.Inc()
			defer m.activeRequests.Dec()

			err := next(c)
			if err != nil {
				// let the error handler settle the status first
				c.Error(err)
			}

			status := strconv.Itoa(c.Response().Status)
			labels := prometheus.Labels{
				"method":   c.Request().Method,
				"endpoint": normalizePath(c.Path()),
				"status":   status,
			}
			m.requestsTotal.With(labels).Inc()
			m.requestDur.With(labels).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}

// ObserveSolve records one solver run.
func (m *Metrics) ObserveSolve(id lps.ID, outcome string, elapsed time.Duration) {
	m.solvesTotal.WithLabelValues(string(id), outcome).Inc()
	if outcome == OutcomeOK {
		m.solveDur.WithLabelValues(string(id)).Observe(elapsed.Seconds())
	}
}

// ObserveTrace records the size of one trace.
func (m *Metrics) ObserveTrace(id lps.ID, events int) {
	m.traceEvents.WithLabelValues(string(id)).Observe(float64(events))
}

// normalizePath keeps the label set bounded; unmatched routes share one value.
func normalizePath(path string) string {
	if path == "" {
		return "unmatched"
	}

	return path
}
