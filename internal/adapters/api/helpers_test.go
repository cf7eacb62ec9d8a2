package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"uvdash.app/internal/core/location"
	"uvdash.app/internal/core/uv"
	"uvdash.app/internal/mocks"
	"uvdash.app/internal/ports"
)

var london = ports.Coordinate{Latitude: 51.5072, Longitude: -0.1276, Label: "London"}

type stubMetrics struct {
	metrics map[string]interface{}
	err     error
}

func (s stubMetrics) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	return s.metrics, s.err
}

type stubHealth map[string]ports.HealthStatus

func (s stubHealth) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	return s
}

type apiMocks struct {
	registry  *mocks.UVProviderRegistry
	provider  *mocks.UVProvider
	cache     *mocks.SnapshotCache
	config    *mocks.ConfigProvider
	logger    *mocks.Logger
	uvMetrics *mocks.UVMetrics
	collector *mocks.MetricsCollector
	source    *mocks.PositionSource
	catalog   *mocks.CityCatalog

	metrics MetricsCollector
	health  ports.SystemHealthChecker
}

func newAPIMocks(t *testing.T) *apiMocks {
	m := &apiMocks{
		registry:  mocks.NewUVProviderRegistry(t),
		provider:  mocks.NewUVProvider(t),
		cache:     mocks.NewSnapshotCache(t),
		config:    mocks.NewConfigProvider(t),
		logger:    mocks.NewLogger(t),
		uvMetrics: mocks.NewUVMetrics(t),
		collector: mocks.NewMetricsCollector(t),
		source:    mocks.NewPositionSource(t),
		catalog:   mocks.NewCityCatalog(t),
		metrics:   stubMetrics{metrics: map[string]interface{}{}},
		health:    stubHealth{},
	}

	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	m.config.EXPECT().GetUVConfig().Return(ports.UVConfig{
		DefaultProvider: ports.ProviderOpenMeteo,
		ForecastHours:   24,
		EnableCache:     true,
		CacheTTL:        5 * time.Minute,
	}).Maybe()
	m.config.EXPECT().GetLocationConfig().Return(ports.LocationConfig{
		Source:   "ipapi",
		Timeout:  time.Second,
		Fallback: location.DefaultFallback,
	}).Maybe()

	m.source.EXPECT().Name().Return("ipapi").Maybe()
	m.collector.EXPECT().RecordCacheHit(mock.Anything).Maybe()
	m.collector.EXPECT().RecordCacheMiss(mock.Anything).Maybe()
	m.collector.EXPECT().RecordUpstreamCall(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.collector.EXPECT().RecordLocationResolution(mock.Anything, mock.Anything, mock.Anything).Maybe()
	return m
}

func (m *apiMocks) newServer(t *testing.T) *HTTPServerAdapter {
	gin.SetMode(gin.TestMode)

	uvUseCase, err := uv.NewUseCase(uv.UseCaseDependencies{
		Providers: m.registry,
		Cache:     m.cache,
		Config:    m.config,
		Logger:    m.logger,
		Metrics:   m.uvMetrics,
		Collector: m.collector,
	})
	require.NoError(t, err)

	resolver, err := location.NewResolver(location.ResolverDependencies{
		Source:    m.source,
		Catalog:   m.catalog,
		Config:    m.config,
		Logger:    m.logger,
		Collector: m.collector,
	})
	require.NoError(t, err)

	server, err := NewHTTPServerAdapter(ServerOptions{
		UVUseCase:        uvUseCase,
		LocationResolver: resolver,
		MetricsCollector: m.metrics,
		HealthChecker:    m.health,
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("uv_cache_hits_total 0\n"))
		}),
	})
	require.NoError(t, err)
	return server
}

func sampleSnapshot(coord ports.Coordinate) *ports.UVSnapshotData {
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	return &ports.UVSnapshotData{
		Current:  ports.UVReadingData{Value: 3.4, ObservedAt: base},
		DailyMax: &ports.UVReadingData{Value: 11.4, ObservedAt: base.Add(4 * time.Hour)},
		Forecast: []ports.UVReadingData{
			{Value: 3.4, ObservedAt: base},
			{Value: 6.0, ObservedAt: base.Add(time.Hour)},
			{Value: 7.9, ObservedAt: base.Add(2 * time.Hour)},
			{Value: 8.2, ObservedAt: base.Add(3 * time.Hour)},
			{Value: 11.4, ObservedAt: base.Add(4 * time.Hour)},
		},
		SourceLabel: "OpenUV",
		Coordinate:  coord,
	}
}

func serve(t *testing.T, server *HTTPServerAdapter, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	server.GetRouter().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
