package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"uvdash.app/internal/ports"
	"uvdash.app/pkg/errors"
)

const openMeteoLabel = "Open-Meteo"

// OpenMeteoProviderAdapter implements UVProvider port for the Open-Meteo air quality API.
// Current value and hourly series arrive in a single response.
type OpenMeteoProviderAdapter struct {
	baseURL       string
	forecastHours int
	upstream      *upstreamClient
	logger        ports.Logger
	now           func() time.Time
}

// OpenMeteoProviderParams holds parameters for creating Open-Meteo provider
type OpenMeteoProviderParams struct {
	BaseURL       string
	ForecastHours int
	HTTPClient    HTTPClient
	Timeout       time.Duration
	Breaker       BreakerSettings
	Logger        ports.Logger
}

// openMeteoResponse keeps the hourly block raw so a bad series does not fail the current value
type openMeteoResponse struct {
	Current *struct {
		Time    *string  `json:"time"`
		UVIndex *float64 `json:"uv_index"`
	} `json:"current"`
	Hourly json.RawMessage `json:"hourly"`
}

type openMeteoHourly struct {
	Time    []*string  `json:"time"`
	UVIndex []*float64 `json:"uv_index"`
}

// NewOpenMeteoProviderAdapter creates a new Open-Meteo provider adapter
func NewOpenMeteoProviderAdapter(params OpenMeteoProviderParams) ports.UVProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://air-quality-api.open-meteo.com/v1"
	}
	hours := params.ForecastHours
	if hours <= 0 || hours > maxForecastEntries {
		hours = maxForecastEntries
	}

	return &OpenMeteoProviderAdapter{
		baseURL:       baseURL,
		forecastHours: hours,
		upstream:      newUpstreamClient(ports.ProviderOpenMeteo, params.HTTPClient, params.Timeout, params.Breaker, params.Logger),
		logger:        params.Logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// FetchSnapshot retrieves current and hourly UV index in one request
func (p *OpenMeteoProviderAdapter) FetchSnapshot(ctx context.Context, coord ports.Coordinate) (*ports.UVSnapshotData, error) {
	requestTime := p.now()

	query := url.Values{}
	query.Set("latitude", formatCoordinate(coord.Latitude))
	query.Set("longitude", formatCoordinate(coord.Longitude))
	query.Set("current", "uv_index")
	query.Set("hourly", "uv_index")
	query.Set("forecast_hours", strconv.Itoa(p.forecastHours))
	query.Set("timezone", "GMT")

	resp, err := p.upstream.get(ctx, fmt.Sprintf("%s/air-quality?%s", p.baseURL, query.Encode()), nil)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, errors.NewUpstreamStatusError(ports.ProviderOpenMeteo, resp.StatusCode)
	}

	var body openMeteoResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, errors.NewMalformedResponseError(ports.ProviderOpenMeteo, err)
	}
	if body.Current == nil {
		return nil, errors.NewMalformedResponseError(ports.ProviderOpenMeteo, fmt.Errorf("current missing"))
	}
	value, ok := uvValue(body.Current.UVIndex)
	if !ok {
		return nil, errors.NewMalformedResponseError(ports.ProviderOpenMeteo, fmt.Errorf("current.uv_index missing"))
	}

	reading := ports.UVReadingData{
		Value:      value,
		ObservedAt: timestampOr(body.Current.Time, requestTime),
	}

	return assembleSnapshot(openMeteoLabel, coord, reading, p.decodeHourly(body.Hourly)), nil
}

func (p *OpenMeteoProviderAdapter) decodeHourly(raw json.RawMessage) []ports.UVReadingData {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var hourly openMeteoHourly
	if err := json.Unmarshal(raw, &hourly); err != nil {
		if p.logger != nil {
			p.logger.Warn("Open-Meteo hourly block could not be decoded, omitting forecast",
				ports.F("provider", ports.ProviderOpenMeteo),
				ports.F("error", err))
		}
		return nil
	}

	series := make([]ports.UVReadingData, 0, len(hourly.Time))
	for i, ts := range hourly.Time {
		observedAt, ok := parseTimestamp(ts)
		if !ok {
			continue
		}
		var value float64
		if i < len(hourly.UVIndex) {
			value = uvValueOrZero(hourly.UVIndex[i])
		}
		series = append(series, ports.UVReadingData{Value: value, ObservedAt: observedAt})
	}
	return series
}

// GetProviderName returns the name of this UV provider
func (p *OpenMeteoProviderAdapter) GetProviderName() string {
	return ports.ProviderOpenMeteo
}

// BreakerState returns the circuit breaker state
func (p *OpenMeteoProviderAdapter) BreakerState() string {
	return p.upstream.breakerState()
}
