// Package prom implements the observability hooks with Prometheus collectors.
//
// A single [Metrics] value satisfies every hook interface, so one call to
// [Metrics.Register] wires the whole module:
//
//	m := prom.New(prometheus.DefaultRegisterer)
//	m.Register()
//	http.Handle("/metrics", promhttp.Handler())
package prom

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matzehuels/wordnet/pkg/observability"
)

const namespace = "wordnet"

// Metrics holds the Prometheus collectors for queries, loads, the distance
// cache and the HTTP server.
type Metrics struct {
	queryTotal    *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec

	loadTotal    *prometheus.CounterVec
	loadDuration prometheus.Histogram
	lexiconSize  *prometheus.GaugeVec

	cacheEvents    *prometheus.CounterVec
	cacheEntrySize prometheus.Histogram

	httpTotal    *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
// Passing prometheus.NewRegistry() keeps tests isolated from the default
// registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		queryTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_total",
			Help:      "Total common-ancestor queries by operation and result",
		}, []string{"op", "result"}),
		queryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Common-ancestor query duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"op"}),

		loadTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "load_total",
			Help:      "Total lexicon loads by result",
		}, []string{"result"}),
		loadDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Lexicon load duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		}),
		lexiconSize: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lexicon_size",
			Help:      "Size of the most recently loaded lexicon",
		}, []string{"kind"}), // "synsets", "nouns", "edges"

		cacheEvents: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_events_total",
			Help:      "Distance cache events by key type and event",
		}, []string{"key_type", "event"}), // "hit", "miss", "set"
		cacheEntrySize: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cache_entry_vertices",
			Help:      "Number of reachable vertices per cached distance map",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 500},
		}),

		httpTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Register installs m as the global query, load, cache and HTTP hooks.
func (m *Metrics) Register() {
	observability.SetQueryHooks(m)
	observability.SetLoadHooks(m)
	observability.SetCacheHooks(m)
	observability.SetHTTPHooks(m)
}

// OnQuery implements observability.QueryHooks.
func (m *Metrics) OnQuery(op string, duration time.Duration, err error) {
	m.queryTotal.WithLabelValues(op, result(err)).Inc()
	m.queryDuration.WithLabelValues(op).Observe(duration.Seconds())
}

// OnLoadStart implements observability.LoadHooks.
func (m *Metrics) OnLoadStart(context.Context) {}

// OnLoadComplete implements observability.LoadHooks.
func (m *Metrics) OnLoadComplete(_ context.Context, synsets, nouns, edges int, duration time.Duration, err error) {
	m.loadTotal.WithLabelValues(result(err)).Inc()
	m.loadDuration.Observe(duration.Seconds())
	if err != nil {
		return
	}
	m.lexiconSize.WithLabelValues("synsets").Set(float64(synsets))
	m.lexiconSize.WithLabelValues("nouns").Set(float64(nouns))
	m.lexiconSize.WithLabelValues("edges").Set(float64(edges))
}

// OnCacheHit implements observability.CacheHooks.
func (m *Metrics) OnCacheHit(keyType string) {
	m.cacheEvents.WithLabelValues(keyType, "hit").Inc()
}

// OnCacheMiss implements observability.CacheHooks.
func (m *Metrics) OnCacheMiss(keyType string) {
	m.cacheEvents.WithLabelValues(keyType, "miss").Inc()
}

// OnCacheSet implements observability.CacheHooks.
func (m *Metrics) OnCacheSet(keyType string, size int) {
	m.cacheEvents.WithLabelValues(keyType, "set").Inc()
	m.cacheEntrySize.Observe(float64(size))
}

// OnResponse implements observability.HTTPHooks.
func (m *Metrics) OnResponse(_ context.Context, method, route string, statusCode int, duration time.Duration) {
	m.httpTotal.WithLabelValues(method, route, statusClass(statusCode)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// statusClass collapses a status code to "2xx", "4xx" and so on.
func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	case code >= 200:
		return "2xx"
	default:
		return "1xx"
	}
}

var (
	_ observability.QueryHooks = (*Metrics)(nil)
	_ observability.LoadHooks  = (*Metrics)(nil)
	_ observability.CacheHooks = (*Metrics)(nil)
	_ observability.HTTPHooks  = (*Metrics)(nil)
)
