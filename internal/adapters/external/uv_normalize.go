package external

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"uvdash.app/internal/ports"
)

const maxForecastEntries = 24

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// parseTimestamp accepts RFC 3339 and the offset-less ISO 8601 forms; offset-less values are UTC
func parseTimestamp(raw *string) (time.Time, bool) {
	if raw == nil {
		return time.Time{}, false
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func timestampOr(raw *string, fallback time.Time) time.Time {
	if t, ok := parseTimestamp(raw); ok {
		return t
	}
	return fallback
}

// uvValue reports whether v holds a usable UV index. Negative numbers are
// provider sentinels for missing data.
func uvValue(v *float64) (float64, bool) {
	if v == nil || *v < 0 {
		return 0, false
	}
	return *v, true
}

func uvValueOrZero(v *float64) float64 {
	value, _ := uvValue(v)
	return value
}

// normalizeForecast orders entries chronologically, keeps the first of any
// duplicate timestamps and truncates the series to maxForecastEntries.
func normalizeForecast(entries []ports.UVReadingData) []ports.UVReadingData {
	if len(entries) == 0 {
		return nil
	}

	sorted := make([]ports.UVReadingData, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ObservedAt.Before(sorted[j].ObservedAt)
	})

	out := make([]ports.UVReadingData, 0, min(len(sorted), maxForecastEntries))
	for _, entry := range sorted {
		if n := len(out); n > 0 && out[n-1].ObservedAt.Equal(entry.ObservedAt) {
			continue
		}
		out = append(out, entry)
		if len(out) == maxForecastEntries {
			break
		}
	}
	return out
}

// dailyMaxOf returns the first reading carrying the greatest value
func dailyMaxOf(series []ports.UVReadingData) *ports.UVReadingData {
	if len(series) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(series); i++ {
		if series[i].Value > series[best].Value {
			best = i
		}
	}
	reading := series[best]
	return &reading
}

// assembleSnapshot builds the normalized snapshot. The daily maximum exists only
// when the normalized forecast is non-empty.
func assembleSnapshot(label string, coord ports.Coordinate, current ports.UVReadingData, forecast []ports.UVReadingData) *ports.UVSnapshotData {
	snapshot := &ports.UVSnapshotData{
		Current:     current,
		SourceLabel: label,
		Coordinate:  coord,
	}

	if series := normalizeForecast(forecast); len(series) > 0 {
		snapshot.Forecast = series
		snapshot.DailyMax = dailyMaxOf(series)
	}
	return snapshot
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
