package uv

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"uvdash.app/internal/ports"
)

func TestClassifySeverity(t *testing.T) {
	tests := []struct {
		value    float64
		expected Severity
		label    string
	}{
		{0, SeverityLow, "Low"},
		{2.9, SeverityLow, "Low"},
		{2.999, SeverityLow, "Low"},
		{3.0, SeverityModerate, "Moderate"},
		{5.99, SeverityModerate, "Moderate"},
		{6.0, SeverityHigh, "High"},
		{7.999, SeverityHigh, "High"},
		{8.0, SeverityVeryHigh, "Very High"},
		{10.99, SeverityVeryHigh, "Very High"},
		{11.0, SeverityExtreme, "Extreme"},
		{15.2, SeverityExtreme, "Extreme"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			severity := ClassifySeverity(tt.value)
			assert.Equal(t, tt.expected, severity, "value %v", tt.value)
			assert.Equal(t, tt.label, severity.String())
		})
	}
}

func TestSeverity_Color(t *testing.T) {
	assert.Equal(t, "#289500", SeverityLow.Color())
	assert.Equal(t, "#6B49C8", SeverityExtreme.Color())
	assert.Equal(t, "#808080", Severity(42).Color())
	assert.Equal(t, "Unknown (42)", Severity(42).String())
}

func TestSnapshotRequest_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		coord   ports.Coordinate
		wantErr bool
	}{
		{"Stockholm", ports.Coordinate{Latitude: 59.3293, Longitude: 18.0686}, false},
		{"Poles", ports.Coordinate{Latitude: -90, Longitude: 180}, false},
		{"LatitudeTooHigh", ports.Coordinate{Latitude: 90.1, Longitude: 0}, true},
		{"LongitudeTooLow", ports.Coordinate{Latitude: 0, Longitude: -180.5}, true},
		{"NaN", ports.Coordinate{Latitude: math.NaN(), Longitude: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := SnapshotRequest{Coordinate: tt.coord}
			err := req.IsValid()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSnapshotRequest_NormalizeProvider(t *testing.T) {
	req := SnapshotRequest{Provider: "  OpenUV "}
	req.NormalizeProvider()
	assert.Equal(t, "openuv", req.Provider)
}

func TestSnapshot_IsValid(t *testing.T) {
	base := time.Date(2026, 6, 21, 10, 0, 0, 0, time.UTC)
	hour := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	forecast := []Reading{
		{Value: 1.5, ObservedAt: hour(0)},
		{Value: 6.2, ObservedAt: hour(1)},
		{Value: 6.2, ObservedAt: hour(2)},
		{Value: 3.0, ObservedAt: hour(3)},
	}

	t.Run("ForecastWithFirstMaximum", func(t *testing.T) {
		s := &Snapshot{
			Current:     Reading{Value: 1.5, ObservedAt: hour(0)},
			DailyMax:    &Reading{Value: 6.2, ObservedAt: hour(1)},
			Forecast:    forecast,
			SourceLabel: "OpenUV",
		}
		require.NoError(t, s.IsValid())
		assert.True(t, s.HasForecast())
	})

	t.Run("DailyMaxPointsAtLaterTie", func(t *testing.T) {
		s := &Snapshot{
			Current:     Reading{Value: 1.5, ObservedAt: hour(0)},
			DailyMax:    &Reading{Value: 6.2, ObservedAt: hour(2)},
			Forecast:    forecast,
			SourceLabel: "OpenUV",
		}
		assert.Error(t, s.IsValid())
	})

	t.Run("ForecastWithoutDailyMax", func(t *testing.T) {
		s := &Snapshot{Current: Reading{Value: 1}, Forecast: forecast, SourceLabel: "OpenUV"}
		assert.Error(t, s.IsValid())
	})

	t.Run("NoForecastProviderMax", func(t *testing.T) {
		s := &Snapshot{
			Current:     Reading{Value: 2},
			DailyMax:    &Reading{Value: 7.1, ObservedAt: hour(3)},
			SourceLabel: "OpenUV",
		}
		assert.NoError(t, s.IsValid())
		assert.False(t, s.HasForecast())
	})

	t.Run("NoForecastNoMax", func(t *testing.T) {
		s := &Snapshot{Current: Reading{Value: 0}, SourceLabel: "Open-Meteo"}
		assert.NoError(t, s.IsValid())
	})

	t.Run("EmptyLabel", func(t *testing.T) {
		s := &Snapshot{Current: Reading{Value: 2}, SourceLabel: " "}
		assert.Error(t, s.IsValid())
	})

	t.Run("NegativeCurrent", func(t *testing.T) {
		s := &Snapshot{Current: Reading{Value: -1}, SourceLabel: "OpenUV"}
		assert.Error(t, s.IsValid())
	})

	t.Run("OutOfOrderForecast", func(t *testing.T) {
		s := &Snapshot{
			Current:     Reading{Value: 1},
			DailyMax:    &Reading{Value: 4, ObservedAt: hour(1)},
			Forecast:    []Reading{{Value: 4, ObservedAt: hour(1)}, {Value: 2, ObservedAt: hour(0)}},
			SourceLabel: "OpenUV",
		}
		assert.Error(t, s.IsValid())
	})

	t.Run("TooManyEntries", func(t *testing.T) {
		long := make([]Reading, MaxForecastEntries+1)
		for i := range long {
			long[i] = Reading{Value: 1, ObservedAt: hour(i)}
		}
		s := &Snapshot{
			Current:     Reading{Value: 1},
			DailyMax:    &long[0],
			Forecast:    long,
			SourceLabel: "OpenUV",
		}
		assert.Error(t, s.IsValid())
	})
}

func TestCacheKey(t *testing.T) {
	key := CacheKey("openuv", ports.Coordinate{Latitude: 59.3293, Longitude: 18.0686})
	assert.Equal(t, "uv:openuv:59.3293:18.0686", key)

	other := CacheKey("openuv", ports.Coordinate{Latitude: 59.32931, Longitude: 18.0686})
	assert.NotEqual(t, key, other)
}
