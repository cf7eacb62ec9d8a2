package infrastructure

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetricsCollector implements the MetricsCollector port on a
// dedicated Prometheus registry.
type PrometheusMetricsCollector struct {
	registry *prometheus.Registry

	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	cacheHitRatio    prometheus.Gauge
	upstreamCalls    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	resolutions      *prometheus.CounterVec

	mu     sync.Mutex
	hits   int64
	misses int64
}

// NewPrometheusMetricsCollector registers the UV dashboard metrics on a fresh registry
func NewPrometheusMetricsCollector() *PrometheusMetricsCollector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &PrometheusMetricsCollector{
		registry: registry,
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "uv_cache_hits_total",
			Help: "The total number of UV snapshot cache hits",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "uv_cache_misses_total",
			Help: "The total number of UV snapshot cache misses",
		}),
		cacheHitRatio: factory.NewGauge(prometheus.GaugeOpts{
			Name: "uv_cache_hit_ratio",
			Help: "UV snapshot cache hit ratio (hits/total lookups)",
		}),
		upstreamCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "uv_upstream_requests_total",
			Help: "UV provider fetches by outcome",
		}, []string{"provider", "outcome"}),
		upstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "uv_upstream_duration_seconds",
			Help:    "UV provider fetch duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "uv_location_resolutions_total",
			Help: "Location resolutions by source and whether the fallback was used",
		}, []string{"source", "fallback"}),
	}
}

func (p *PrometheusMetricsCollector) RecordCacheHit(ctx context.Context) {
	p.cacheHits.Inc()
	p.updateRatio(1, 0)
}

func (p *PrometheusMetricsCollector) RecordCacheMiss(ctx context.Context) {
	p.cacheMisses.Inc()
	p.updateRatio(0, 1)
}

func (p *PrometheusMetricsCollector) RecordUpstreamCall(ctx context.Context, provider string, outcome string, duration time.Duration) {
	p.upstreamCalls.WithLabelValues(provider, outcome).Inc()
	p.upstreamDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

func (p *PrometheusMetricsCollector) RecordLocationResolution(ctx context.Context, source string, fallback bool) {
	p.resolutions.WithLabelValues(source, strconv.FormatBool(fallback)).Inc()
}

// Registry exposes the underlying registry for tests and extra collectors
func (p *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the Prometheus exposition format
func (p *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

func (p *PrometheusMetricsCollector) updateRatio(hits, misses int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.hits += hits
	p.misses += misses
	if total := p.hits + p.misses; total > 0 {
		p.cacheHitRatio.Set(float64(p.hits) / float64(total))
	}
}
