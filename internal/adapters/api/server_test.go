package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"uvdash.app/internal/ports"
	"uvdash.app/pkg/errors"
)

func TestServerOptions_Validate(t *testing.T) {
	m := newAPIMocks(t)
	full := m.newServer(t)

	tests := []struct {
		name        string
		opts        ServerOptions
		expectedErr string
	}{
		{
			name:        "MissingUseCase",
			opts:        ServerOptions{LocationResolver: full.locationResolver, MetricsCollector: m.metrics, HealthChecker: m.health},
			expectedErr: "UV use case is required",
		},
		{
			name:        "MissingResolver",
			opts:        ServerOptions{UVUseCase: full.uvUseCase, MetricsCollector: m.metrics, HealthChecker: m.health},
			expectedErr: "location resolver is required",
		},
		{
			name:        "MissingMetrics",
			opts:        ServerOptions{UVUseCase: full.uvUseCase, LocationResolver: full.locationResolver, HealthChecker: m.health},
			expectedErr: "metrics collector is required",
		},
		{
			name:        "MissingHealth",
			opts:        ServerOptions{UVUseCase: full.uvUseCase, LocationResolver: full.locationResolver, MetricsCollector: m.metrics},
			expectedErr: "health checker is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.expectedErr)

			server, err := NewHTTPServerAdapter(tt.opts)
			assert.Nil(t, server)
			assert.Error(t, err)
		})
	}
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	m := newAPIMocks(t)
	m.catalog.EXPECT().List().Return(nil)
	server := m.newServer(t)

	req, err := http.NewRequest(http.MethodGet, "/api/cities", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "req-42")

	w := serveRequest(server, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestServer_Metrics(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		m := newAPIMocks(t)
		m.metrics = stubMetrics{metrics: map[string]interface{}{"cache": map[string]interface{}{"hits": 2}}}

		w := serve(t, m.newServer(t), http.MethodGet, "/api/metrics", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"cache":{"hits":2}}`, w.Body.String())
	})

	t.Run("JSONError", func(t *testing.T) {
		m := newAPIMocks(t)
		m.metrics = stubMetrics{err: fmt.Errorf("unavailable")}

		w := serve(t, m.newServer(t), http.MethodGet, "/api/metrics", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("Prometheus", func(t *testing.T) {
		m := newAPIMocks(t)

		w := serve(t, m.newServer(t), http.MethodGet, "/metrics", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "uv_cache_hits_total")
	})
}

func TestServer_Health(t *testing.T) {
	tests := []struct {
		name           string
		components     stubHealth
		expectedCode   int
		expectedStatus string
	}{
		{
			name: "Healthy",
			components: stubHealth{
				"cache": {Component: "cache", Status: "healthy"},
			},
			expectedCode:   http.StatusOK,
			expectedStatus: "healthy",
		},
		{
			name: "Degraded",
			components: stubHealth{
				"cache":    {Component: "cache", Status: "healthy"},
				"location": {Component: "location", Status: "degraded"},
			},
			expectedCode:   http.StatusOK,
			expectedStatus: "degraded",
		},
		{
			name: "Unhealthy",
			components: stubHealth{
				"location":    {Component: "location", Status: "degraded"},
				"uvProviders": {Component: "uvProviders", Status: "unhealthy"},
			},
			expectedCode:   http.StatusServiceUnavailable,
			expectedStatus: "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newAPIMocks(t)
			m.health = tt.components

			w := serve(t, m.newServer(t), http.MethodGet, "/api/health", "")

			assert.Equal(t, tt.expectedCode, w.Code)
			response := decode[struct {
				Status     string                       `json:"status"`
				Components map[string]ports.HealthStatus `json:"components"`
			}](t, w)
			assert.Equal(t, tt.expectedStatus, response.Status)
			assert.Len(t, response.Components, len(tt.components))
		})
	}
}

func TestServer_StaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>UV</h1>"), 0o644))

	m := newAPIMocks(t)
	server := m.newServer(t)
	server.config.StaticDir = dir
	server.setupStaticFiles()

	w := serve(t, server, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<h1>UV</h1>")
}

func TestValidateProvider(t *testing.T) {
	require.NoError(t, RegisterValidators())
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	for name, valid := range map[string]bool{
		"":            true,
		"openuv":      true,
		"OpenMeteo":   true,
		"meteomatics": true,
		"weatherapi":  false,
	} {
		err := v.Var(name, "uvprovider")
		assert.Equal(t, valid, err == nil, name)
	}
}

func serveRequest(server *HTTPServerAdapter, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	server.GetRouter().ServeHTTP(w, req)
	return w
}
