// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "campus_events"

type Metrics struct {
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	syncRuns     *prometheus.CounterVec
	syncedIssues *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		syncRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "runs_total",
			Help:      "Tracker sync runs by result (ok, partial, error).",
		}, []string{"result"}),
		syncedIssues: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "issues_total",
			Help:      "Tracker issues reconciled by outcome (created, updated, failed).",
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.requests, m.duration, m.syncRuns, m.syncedIssues)

	return m
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) SyncFinished(result string) {
	m.syncRuns.WithLabelValues(result).Inc()
}

func (m *Metrics) IssueSynced(outcome string) {
	m.syncedIssues.WithLabelValues(outcome).Inc()
}
