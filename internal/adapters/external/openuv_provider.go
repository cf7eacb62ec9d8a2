package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"
	"uvdash.app/internal/ports"
	"uvdash.app/pkg/errors"
)

const openUVLabel = "OpenUV"

// OpenUVProviderAdapter implements UVProvider port for openuv.io
type OpenUVProviderAdapter struct {
	apiKey   string
	baseURL  string
	upstream *upstreamClient
	logger   ports.Logger
	now      func() time.Time
}

// OpenUVProviderParams holds parameters for creating OpenUV provider
type OpenUVProviderParams struct {
	APIKey     string
	BaseURL    string
	HTTPClient HTTPClient
	Timeout    time.Duration
	Breaker    BreakerSettings
	Logger     ports.Logger
}

// openUVCurrentResponse mirrors GET /uv
type openUVCurrentResponse struct {
	Result *struct {
		UV     *float64 `json:"uv"`
		UVTime *string  `json:"uv_time"`
	} `json:"result"`
}

// openUVForecastResponse mirrors GET /forecast
type openUVForecastResponse struct {
	Result []struct {
		UV     *float64 `json:"uv"`
		UVTime *string  `json:"uv_time"`
	} `json:"result"`
}

// NewOpenUVProviderAdapter creates a new OpenUV provider adapter
func NewOpenUVProviderAdapter(params OpenUVProviderParams) ports.UVProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openuv.io/api/v1"
	}

	return &OpenUVProviderAdapter{
		apiKey:   params.APIKey,
		baseURL:  baseURL,
		upstream: newUpstreamClient(ports.ProviderOpenUV, params.HTTPClient, params.Timeout, params.Breaker, params.Logger),
		logger:   params.Logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// FetchSnapshot requests the current value and the hourly forecast concurrently
func (p *OpenUVProviderAdapter) FetchSnapshot(ctx context.Context, coord ports.Coordinate) (*ports.UVSnapshotData, error) {
	requestTime := p.now()

	query := url.Values{}
	query.Set("lat", formatCoordinate(coord.Latitude))
	query.Set("lng", formatCoordinate(coord.Longitude))
	currentURL := fmt.Sprintf("%s/uv?%s", p.baseURL, query.Encode())
	forecastURL := fmt.Sprintf("%s/forecast?%s", p.baseURL, query.Encode())

	var current, forecast *upstreamResponse
	var forecastErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := p.upstream.get(gctx, currentURL, p.authorize)
		if err != nil {
			return err
		}
		current = resp
		return nil
	})
	g.Go(func() error {
		forecast, forecastErr = p.upstream.get(gctx, forecastURL, p.authorize)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !current.OK() {
		return nil, errors.NewUpstreamStatusError(ports.ProviderOpenUV, current.StatusCode)
	}

	var body openUVCurrentResponse
	if err := json.Unmarshal(current.Body, &body); err != nil {
		return nil, errors.NewMalformedResponseError(ports.ProviderOpenUV, err)
	}
	if body.Result == nil {
		return nil, errors.NewMalformedResponseError(ports.ProviderOpenUV, fmt.Errorf("result missing"))
	}
	value, ok := uvValue(body.Result.UV)
	if !ok {
		return nil, errors.NewMalformedResponseError(ports.ProviderOpenUV, fmt.Errorf("result.uv missing"))
	}

	reading := ports.UVReadingData{
		Value:      value,
		ObservedAt: timestampOr(body.Result.UVTime, requestTime),
	}

	series := p.decodeForecast(forecast, forecastErr)
	return assembleSnapshot(openUVLabel, coord, reading, series), nil
}

// decodeForecast returns nil whenever the forecast request did not yield a usable body
func (p *OpenUVProviderAdapter) decodeForecast(resp *upstreamResponse, err error) []ports.UVReadingData {
	if err != nil {
		p.warnDegraded("forecast request failed", ports.F("error", err))
		return nil
	}
	if !resp.OK() {
		p.warnDegraded("forecast request returned an error status", ports.F("status", resp.StatusCode))
		return nil
	}

	var body openUVForecastResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		p.warnDegraded("forecast body could not be decoded", ports.F("error", err))
		return nil
	}

	series := make([]ports.UVReadingData, 0, len(body.Result))
	for _, entry := range body.Result {
		observedAt, ok := parseTimestamp(entry.UVTime)
		if !ok {
			continue
		}
		series = append(series, ports.UVReadingData{Value: uvValueOrZero(entry.UV), ObservedAt: observedAt})
	}
	return series
}

func (p *OpenUVProviderAdapter) warnDegraded(msg string, fields ...ports.Field) {
	if p.logger == nil {
		return
	}
	fields = append([]ports.Field{ports.F("provider", ports.ProviderOpenUV)}, fields...)
	p.logger.Warn("OpenUV "+msg+", omitting forecast", fields...)
}

func (p *OpenUVProviderAdapter) authorize(req *http.Request) {
	req.Header.Set("x-access-token", p.apiKey)
}

// GetProviderName returns the name of this UV provider
func (p *OpenUVProviderAdapter) GetProviderName() string {
	return ports.ProviderOpenUV
}

// BreakerState returns the circuit breaker state
func (p *OpenUVProviderAdapter) BreakerState() string {
	return p.upstream.breakerState()
}
