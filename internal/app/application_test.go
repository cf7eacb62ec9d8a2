package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"uvdash.app/internal/adapters/api"
	"uvdash.app/internal/config"
)

const openMeteoBody = `{
	"current": {"time": "2024-06-01T12:00", "uv_index": 5.2},
	"hourly": {
		"time": ["2024-06-01T13:00", "2024-06-01T12:00", "2024-06-01T14:00"],
		"uv_index": [6.1, 5.2, 4.0]
	}
}`

func newUpstream(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(openMeteoBody))
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func testConfig(upstreamURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 0},
		Log:    config.LogConfig{Level: "error", Format: "json"},
		UV: config.UVConfig{
			Provider:           "openmeteo",
			OpenMeteoBaseURL:   upstreamURL,
			ForecastHours:      24,
			EnableCache:        true,
			CacheTTLMinutes:    5,
			HTTPTimeoutSeconds: 5,
		},
		Location: config.LocationConfig{
			Source:            config.LocationSourceStatic,
			TimeoutMillis:     1000,
			FallbackLatitude:  59.3293,
			FallbackLongitude: 18.0686,
			FallbackLabel:     "Stockholm",
			StaticLatitude:    51.5072,
			StaticLongitude:   -0.1276,
			StaticLabel:       "London",
		},
		Cache: config.CacheConfig{
			Type:                 config.CacheTypeMemory,
			SweepIntervalSeconds: 60,
		},
	}
}

func newTestApplication(t *testing.T, cfg *config.Config) *Application {
	t.Helper()
	deps, err := NewDependencyContainer(cfg, DependencyOptions{})
	require.NoError(t, err)

	application, err := NewApplicationWithDependencies(cfg, deps)
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.Cleanup() })
	return application
}

func get(t *testing.T, application *Application, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	application.GetRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestApplication_ServesUVForStaticLocation(t *testing.T) {
	upstream, calls := newUpstream(t)
	application := newTestApplication(t, testConfig(upstream.URL))

	first := get(t, application, "/api/uv")
	second := get(t, application, "/api/uv")

	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, int32(1), calls.Load(), "second request is served from cache")

	var response api.UVResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &response))
	assert.Equal(t, 5.2, response.Current.Value)
	assert.Equal(t, "Open-Meteo", response.SourceLabel)
	assert.Equal(t, "static", response.LocationSource)
	assert.False(t, response.IsDefaultLocation)
	require.Len(t, response.Forecast, 3)
	assert.Equal(t, 5.2, response.Forecast[0].Value)
	require.NotNil(t, response.DailyMax)
	assert.Equal(t, 6.1, response.DailyMax.Value)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestApplication_Endpoints(t *testing.T) {
	upstream, _ := newUpstream(t)
	application := newTestApplication(t, testConfig(upstream.URL))

	t.Run("Cities", func(t *testing.T) {
		w := get(t, application, "/api/cities")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Stockholm")
	})

	t.Run("Providers", func(t *testing.T) {
		w := get(t, application, "/api/providers")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"default_provider":"openmeteo"`)
	})

	t.Run("Health", func(t *testing.T) {
		w := get(t, application, "/api/health")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"cache"`)
		assert.Contains(t, w.Body.String(), `"uvProviders"`)
	})

	t.Run("PrometheusMetrics", func(t *testing.T) {
		get(t, application, "/api/uv")
		w := get(t, application, "/metrics")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "uv_upstream")
	})
}

func TestNewDependencyContainer_Errors(t *testing.T) {
	t.Run("NilConfig", func(t *testing.T) {
		_, err := NewDependencyContainer(nil, DependencyOptions{})
		assert.Error(t, err)
	})

	t.Run("DefaultProviderMissingCredentials", func(t *testing.T) {
		cfg := testConfig("http://127.0.0.1:1")
		cfg.UV.Provider = "openuv"

		_, err := NewDependencyContainer(cfg, DependencyOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "openuv")
	})

	t.Run("MissingCitiesFile", func(t *testing.T) {
		cfg := testConfig("http://127.0.0.1:1")
		cfg.Location.CitiesFile = t.TempDir() + "/missing.yaml"

		_, err := NewDependencyContainer(cfg, DependencyOptions{})
		assert.Error(t, err)
	})
}

func TestApplication_StartsJanitorForMemoryCache(t *testing.T) {
	upstream, _ := newUpstream(t)
	application := newTestApplication(t, testConfig(upstream.URL))

	assert.NotNil(t, application.janitor)
	assert.NotNil(t, application.GetUVUseCase())
	assert.NotNil(t, application.GetLocationResolver())
	assert.Equal(t, "London", application.Config().Location.StaticLabel)
}
