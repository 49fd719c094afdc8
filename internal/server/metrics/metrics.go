// Package metrics owns the Prometheus collectors of the server and the HTTP
// endpoint that exposes them.
package metrics

import (
	"math"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "registerface"

// Face login outcomes.
const (
	OutcomeMatch    = "match"
	OutcomeMismatch = "mismatch"
	OutcomeLocked   = "locked"
	OutcomeNoFace   = "no_face"
)

var (
	latencyBuckets    = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5}
	similarityBuckets = prometheus.LinearBuckets(0, 10, 11)
)

// Metrics groups the collectors registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	requests   *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	similarity prometheus.Histogram
	faceLogins *prometheus.CounterVec
}

// New creates the collectors plus Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grpc_requests_total",
			Help:      "Count of handled gRPC requests",
		}, []string{"method", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "grpc_request_duration_seconds",
			Help:      "Latency distribution of gRPC handlers",
			Buckets:   latencyBuckets,
		}, []string{"method"}),
		similarity: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "face_similarity_percent",
			Help:      "Similarity of captured faces to the enrolled ones",
			Buckets:   similarityBuckets,
		}),
		faceLogins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "face_logins_total",
			Help:      "Face login attempts by outcome",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		m.requests, m.latency, m.similarity, m.faceLogins,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the private registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRPC records one finished gRPC call.
func (m *Metrics) ObserveRPC(method, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, code).Inc()
	m.latency.WithLabelValues(method).Observe(d.Seconds())
}

// ObserveFaceLogin counts a face login outcome. Similarity is recorded
// only for attempts that reached the matcher.
func (m *Metrics) ObserveFaceLogin(outcome string, similarity float64) {
	if m == nil {
		return
	}
	m.faceLogins.WithLabelValues(outcome).Inc()
	if (outcome == OutcomeMatch || outcome == OutcomeMismatch) && !math.IsNaN(similarity) {
		m.similarity.Observe(similarity)
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
