package uv

import (
	"fmt"
	"math"
	"strings"
	"time"

	"uvdash.app/internal/ports"
)

// MaxForecastEntries bounds the hourly forecast series
const MaxForecastEntries = 24

// Reading is a single UV index observation
type Reading struct {
	Value      float64
	ObservedAt time.Time
}

// Snapshot is one normalized provider result for a coordinate
type Snapshot struct {
	Current     Reading
	DailyMax    *Reading
	Forecast    []Reading
	SourceLabel string
	Coordinate  ports.Coordinate
}

// SnapshotRequest represents a request for UV data
type SnapshotRequest struct {
	Provider   string
	Coordinate ports.Coordinate
}

// IsValid validates the snapshot request
func (r *SnapshotRequest) IsValid() error {
	lat, lon := r.Coordinate.Latitude, r.Coordinate.Longitude
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// NormalizeProvider lower-cases and trims the requested provider name
func (r *SnapshotRequest) NormalizeProvider() {
	r.Provider = strings.ToLower(strings.TrimSpace(r.Provider))
}

// IsValid checks the snapshot invariants
func (s *Snapshot) IsValid() error {
	if strings.TrimSpace(s.SourceLabel) == "" {
		return fmt.Errorf("source label cannot be empty")
	}
	if !validValue(s.Current.Value) {
		return fmt.Errorf("current UV value must be a non-negative number")
	}
	if len(s.Forecast) > MaxForecastEntries {
		return fmt.Errorf("forecast cannot exceed %d entries", MaxForecastEntries)
	}

	maxIdx := -1
	for i, r := range s.Forecast {
		if !validValue(r.Value) {
			return fmt.Errorf("forecast value at %s must be a non-negative number", r.ObservedAt.Format(time.RFC3339))
		}
		if i > 0 && !r.ObservedAt.After(s.Forecast[i-1].ObservedAt) {
			return fmt.Errorf("forecast must be strictly chronological")
		}
		if maxIdx < 0 || r.Value > s.Forecast[maxIdx].Value {
			maxIdx = i
		}
	}

	if maxIdx < 0 {
		if s.DailyMax != nil && !validValue(s.DailyMax.Value) {
			return fmt.Errorf("daily max must be a non-negative number")
		}
		return nil
	}

	expected := s.Forecast[maxIdx]
	if s.DailyMax == nil {
		return fmt.Errorf("daily max is required when a forecast is present")
	}
	if s.DailyMax.Value != expected.Value || !s.DailyMax.ObservedAt.Equal(expected.ObservedAt) {
		return fmt.Errorf("daily max must be the first forecast entry with the greatest value")
	}
	return nil
}

// HasForecast reports whether the snapshot carries an hourly series
func (s *Snapshot) HasForecast() bool {
	return len(s.Forecast) > 0
}

func validValue(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Severity is the exposure category of a UV index value
type Severity int

const (
	SeverityLow Severity = iota
	SeverityModerate
	SeverityHigh
	SeverityVeryHigh
	SeverityExtreme
)

var severityNames = map[Severity]string{
	SeverityLow:      "Low",
	SeverityModerate: "Moderate",
	SeverityHigh:     "High",
	SeverityVeryHigh: "Very High",
	SeverityExtreme:  "Extreme",
}

// WHO UV index colour scale
var severityColors = map[Severity]string{
	SeverityLow:      "#289500",
	SeverityModerate: "#F7E400",
	SeverityHigh:     "#F85900",
	SeverityVeryHigh: "#D8001D",
	SeverityExtreme:  "#6B49C8",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", int(s))
}

// Color returns the display colour as a hex string
func (s Severity) Color() string {
	if c, ok := severityColors[s]; ok {
		return c
	}
	return "#808080"
}

// ClassifySeverity maps a UV index value onto its exposure category
func ClassifySeverity(value float64) Severity {
	switch {
	case value < 3:
		return SeverityLow
	case value < 6:
		return SeverityModerate
	case value < 8:
		return SeverityHigh
	case value < 11:
		return SeverityVeryHigh
	default:
		return SeverityExtreme
	}
}
