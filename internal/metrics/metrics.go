// Package metrics provides Prometheus instrumentation for page delivery.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "markz"

// Metrics holds the collectors for one server instance. Each instance owns
// its registry so tests and multiple servers never collide.
type Metrics struct {
	registry *prometheus.Registry

	pageRenders       *prometheus.CounterVec
	renderDuration    *prometheus.HistogramVec
	httpRequests      *prometheus.CounterVec
	fragmentCache     *prometheus.CounterVec
	accordionExpanded *prometheus.CounterVec
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func New() (*Metrics, error) {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.pageRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Total number of full page renders",
		},
		[]string{"edition"},
	)

	m.renderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time taken to render a full page",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
		},
		[]string{"edition"},
	)

	m.httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"}, // route: page, edition, editions, healthz, metrics, asset
	)

	m.fragmentCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fragment_cache_total",
			Help:      "Fragment cache lookups by result",
		},
		[]string{"result"}, // hit, miss, expired
	)

	m.accordionExpanded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "accordion_expanded_total",
			Help:      "Pages rendered with a service accordion expanded",
		},
		[]string{"key"},
	)

	for _, c := range []prometheus.Collector{
		m.pageRenders,
		m.renderDuration,
		m.httpRequests,
		m.fragmentCache,
		m.accordionExpanded,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordPageRender records one full page render.
func (m *Metrics) RecordPageRender(edition string, d time.Duration) {
	m.pageRenders.WithLabelValues(edition).Inc()
	m.renderDuration.WithLabelValues(edition).Observe(d.Seconds())
}

// RecordHTTPRequest records a completed request.
func (m *Metrics) RecordHTTPRequest(method, route string, status int) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// RecordCacheLookup records a fragment cache lookup result.
func (m *Metrics) RecordCacheLookup(result string) {
	m.fragmentCache.WithLabelValues(result).Inc()
}

// RecordExpanded counts each expanded accordion key of a rendered page.
func (m *Metrics) RecordExpanded(keys []string) {
	for _, k := range keys {
		m.accordionExpanded.WithLabelValues(k).Inc()
	}
}
