package uv_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"uvdash.app/internal/adapters/external"
	"uvdash.app/internal/adapters/infrastructure"
	"uvdash.app/internal/config"
	"uvdash.app/internal/core/uv"
	"uvdash.app/internal/ports"
)

const (
	openUVCurrentBody  = `{"result":{"uv":3.4,"uv_time":"2024-06-01T09:00:00.000Z","uv_max":8.1,"uv_max_time":"2024-06-01T12:00:00.000Z"}}`
	openUVForecastBody = `{"result":[
		{"uv":3.4,"uv_time":"2024-06-01T09:00:00.000Z"},
		{"uv":8.1,"uv_time":"2024-06-01T12:00:00.000Z"},
		{"uv":6.2,"uv_time":"2024-06-01T10:00:00.000Z"},
		{"uv":8.1,"uv_time":"2024-06-01T13:00:00.000Z"}
	]}`
)

type openUVStub struct {
	current  atomic.Int32
	forecast atomic.Int32
	gate     chan struct{}
}

func (s *openUVStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.gate != nil {
		<-s.gate
	}
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/uv":
		s.current.Add(1)
		_, _ = w.Write([]byte(openUVCurrentBody))
	case "/forecast":
		s.forecast.Add(1)
		_, _ = w.Write([]byte(openUVForecastBody))
	default:
		http.NotFound(w, r)
	}
}

func newIntegrationUseCase(t *testing.T, upstreamURL string) *uv.UseCase {
	t.Helper()
	logger := infrastructure.NewSlogLoggerAdapter(nil)

	registry, err := external.NewUVProviderRegistryAdapter(external.ProviderRegistryConfig{
		DefaultProvider: ports.ProviderOpenUV,
		OpenUVKey:       "test-key",
		OpenUVURL:       upstreamURL,
		ForecastHours:   24,
		HTTPTimeout:     5 * time.Second,
		Logger:          logger,
	})
	require.NoError(t, err)

	cache := external.NewMemoryCacheProvider()
	cfg := &config.Config{
		UV: config.UVConfig{
			Provider:        ports.ProviderOpenUV,
			ForecastHours:   24,
			EnableCache:     true,
			CacheTTLMinutes: 5,
		},
	}

	useCase, err := uv.NewUseCase(uv.UseCaseDependencies{
		Providers: registry,
		Cache:     external.NewSnapshotCacheAdapter(cache, logger),
		Config:    infrastructure.NewConfigProviderAdapter(cfg),
		Logger:    logger,
		Metrics:   external.NewUVMetricsAdapter(cache, registry, true),
		Collector: infrastructure.NewPrometheusMetricsCollector(),
	})
	require.NoError(t, err)
	return useCase
}

func TestUseCase_OpenUVThroughMemoryCache(t *testing.T) {
	stub := &openUVStub{}
	server := httptest.NewServer(stub)
	defer server.Close()

	useCase := newIntegrationUseCase(t, server.URL)
	request := uv.SnapshotRequest{Coordinate: ports.Coordinate{Latitude: 51.5072, Longitude: -0.1276}}

	first, err := useCase.GetSnapshot(context.Background(), request)
	require.NoError(t, err)
	second, err := useCase.GetSnapshot(context.Background(), request)
	require.NoError(t, err)

	assert.Equal(t, int32(1), stub.current.Load())
	assert.Equal(t, int32(1), stub.forecast.Load())

	assert.Equal(t, 3.4, first.Current.Value)
	assert.Equal(t, "OpenUV", first.SourceLabel)
	require.Len(t, first.Forecast, 4)
	for i := 1; i < len(first.Forecast); i++ {
		assert.True(t, first.Forecast[i-1].ObservedAt.Before(first.Forecast[i].ObservedAt))
	}
	require.NotNil(t, first.DailyMax)
	assert.Equal(t, 8.1, first.DailyMax.Value)
	assert.Equal(t, 12, first.DailyMax.ObservedAt.Hour(), "first of equal maxima wins")

	assert.Equal(t, first.Current, second.Current)
	assert.Equal(t, first.Forecast, second.Forecast)
	assert.Equal(t, *first.DailyMax, *second.DailyMax)
}

func TestUseCase_ConcurrentRequestsShareOneFetch(t *testing.T) {
	stub := &openUVStub{gate: make(chan struct{})}
	server := httptest.NewServer(stub)
	defer server.Close()

	useCase := newIntegrationUseCase(t, server.URL)
	request := uv.SnapshotRequest{Coordinate: ports.Coordinate{Latitude: 40.7128, Longitude: -74.006}}

	const callers = 5
	results := make([]*uv.Snapshot, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = useCase.GetSnapshot(context.Background(), request)
		}(i)
	}

	// Let every caller join before the upstream answers
	time.Sleep(50 * time.Millisecond)
	close(stub.gate)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0].Current, results[i].Current)
	}
	assert.Equal(t, int32(1), stub.current.Load())
	assert.Equal(t, int32(1), stub.forecast.Load())
}
