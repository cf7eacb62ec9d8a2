package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"uvdash.app/internal/core/location"
	"uvdash.app/internal/core/uv"
	"uvdash.app/internal/ports"
	"uvdash.app/pkg/errors"
)

func TestUVHandler_ExplicitCoordinates(t *testing.T) {
	m := newAPIMocks(t)
	coord := ports.Coordinate{Latitude: london.Latitude, Longitude: london.Longitude}
	key := uv.CacheKey("openuv", coord)
	data := sampleSnapshot(coord)

	m.registry.EXPECT().Get("openuv").Return(m.provider, nil)
	m.cache.EXPECT().Get(mock.Anything, key).Return((*ports.UVSnapshotData)(nil), errors.NewNotFoundError("cache miss"))
	m.provider.EXPECT().FetchSnapshot(mock.Anything, coord).Return(data, nil).Once()
	m.cache.EXPECT().Set(mock.Anything, key, data, mock.Anything).Return(nil).Once()

	w := serve(t, m.newServer(t), http.MethodGet, "/api/uv?provider=openuv&lat=51.5072&lon=-0.1276", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	response := decode[UVResponse](t, w)
	assert.Equal(t, 3.4, response.Current.Value)
	assert.Equal(t, "Moderate", response.Current.Severity)
	assert.Equal(t, "#F7E400", response.Current.Color)
	require.NotNil(t, response.DailyMax)
	assert.Equal(t, 11.4, response.DailyMax.Value)
	assert.Equal(t, "Extreme", response.DailyMax.Severity)
	require.Len(t, response.Forecast, 5)
	assert.Equal(t, []string{"Moderate", "High", "High", "Very High", "Extreme"}, []string{
		response.Forecast[0].Severity,
		response.Forecast[1].Severity,
		response.Forecast[2].Severity,
		response.Forecast[3].Severity,
		response.Forecast[4].Severity,
	})
	assert.Equal(t, "OpenUV", response.SourceLabel)
	assert.Equal(t, LocationSourceQuery, response.LocationSource)
	assert.False(t, response.IsDefaultLocation)
}

func TestUVHandler_ResolvedFallbackLocation(t *testing.T) {
	m := newAPIMocks(t)
	data := sampleSnapshot(location.DefaultFallback)
	data.SourceLabel = "Open-Meteo"

	m.source.EXPECT().CurrentPosition(mock.Anything, mock.Anything).
		Return(ports.Coordinate{}, fmt.Errorf("position unavailable")).Once()
	m.registry.EXPECT().DefaultProvider().Return(ports.ProviderOpenMeteo)
	m.registry.EXPECT().Get(ports.ProviderOpenMeteo).Return(m.provider, nil)
	m.cache.EXPECT().Get(mock.Anything, mock.Anything).Return((*ports.UVSnapshotData)(nil), errors.NewNotFoundError("cache miss"))
	m.provider.EXPECT().FetchSnapshot(mock.Anything, location.DefaultFallback).Return(data, nil).Once()
	m.cache.EXPECT().Set(mock.Anything, mock.Anything, data, mock.Anything).Return(nil)

	w := serve(t, m.newServer(t), http.MethodGet, "/api/uv", "")

	require.Equal(t, http.StatusOK, w.Code)
	response := decode[UVResponse](t, w)
	assert.True(t, response.IsDefaultLocation)
	assert.Equal(t, location.SourceFallback, response.LocationSource)
	assert.Equal(t, "Stockholm", response.Coordinate.Label)
	assert.Equal(t, "Open-Meteo", response.SourceLabel)
}

func TestUVHandler_CachedSnapshot(t *testing.T) {
	m := newAPIMocks(t)
	coord := ports.Coordinate{Latitude: london.Latitude, Longitude: london.Longitude}
	data := sampleSnapshot(ports.Coordinate{Latitude: coord.Latitude, Longitude: coord.Longitude, Label: "Earlier caller"})
	data.Forecast = nil
	data.DailyMax = nil

	m.registry.EXPECT().Get("openuv").Return(m.provider, nil)
	m.cache.EXPECT().Get(mock.Anything, uv.CacheKey("openuv", coord)).Return(data, nil)

	w := serve(t, m.newServer(t), http.MethodGet, "/api/uv?provider=openuv&lat=51.5072&lon=-0.1276", "")

	require.Equal(t, http.StatusOK, w.Code)
	response := decode[UVResponse](t, w)
	assert.Nil(t, response.DailyMax)
	assert.Empty(t, response.Forecast)
	assert.Equal(t, "Moderate", response.Current.Severity)
	assert.Equal(t, coord, response.Coordinate)
}

func TestUVHandler_InvalidQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "LatitudeWithoutLongitude", query: "lat=51.5"},
		{name: "LatitudeOutOfRange", query: "lat=95&lon=10"},
		{name: "LongitudeOutOfRange", query: "lat=10&lon=-181"},
		{name: "NotANumber", query: "lat=north&lon=10"},
		{name: "UnknownProvider", query: "provider=weatherapi&lat=10&lon=10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newAPIMocks(t)

			w := serve(t, m.newServer(t), http.MethodGet, "/api/uv?"+tt.query, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decode[ErrorResponse](t, w).Error)
		})
	}
}

func TestUVHandler_UpstreamStatusError(t *testing.T) {
	m := newAPIMocks(t)
	coord := ports.Coordinate{Latitude: london.Latitude, Longitude: london.Longitude}

	m.registry.EXPECT().Get("openuv").Return(m.provider, nil)
	m.cache.EXPECT().Get(mock.Anything, mock.Anything).Return((*ports.UVSnapshotData)(nil), errors.NewNotFoundError("cache miss"))
	m.provider.EXPECT().FetchSnapshot(mock.Anything, coord).Return(nil, errors.NewUpstreamStatusError("openuv", 500))

	w := serve(t, m.newServer(t), http.MethodGet, "/api/uv?provider=openuv&lat=51.5072&lon=-0.1276", "")

	require.Equal(t, http.StatusBadGateway, w.Code)
	response := decode[ErrorResponse](t, w)
	assert.Equal(t, "upstream-status", response.Reason)
	assert.Equal(t, 500, response.Status)
	assert.True(t, response.Retryable)
	assert.Contains(t, response.Error, "openuv")
}

func TestUVHandler_ProviderNotConfigured(t *testing.T) {
	m := newAPIMocks(t)

	m.registry.EXPECT().Get("meteomatics").Return(nil, errors.NewNotFoundError("UV provider meteomatics is not configured"))

	w := serve(t, m.newServer(t), http.MethodGet, "/api/uv?provider=meteomatics&lat=1&lon=1", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
