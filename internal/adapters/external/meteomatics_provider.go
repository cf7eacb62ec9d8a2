package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"uvdash.app/internal/ports"
	"uvdash.app/pkg/errors"
)

const (
	meteomaticsLabel      = "Meteomatics"
	meteomaticsTimeLayout = "2006-01-02T15:04:05Z"
)

// MeteomaticsProviderAdapter implements UVProvider port for the Meteomatics weather API
type MeteomaticsProviderAdapter struct {
	username      string
	password      string
	baseURL       string
	forecastHours int
	upstream      *upstreamClient
	logger        ports.Logger
	now           func() time.Time
}

// MeteomaticsProviderParams holds parameters for creating Meteomatics provider
type MeteomaticsProviderParams struct {
	Username      string
	Password      string
	BaseURL       string
	ForecastHours int
	HTTPClient    HTTPClient
	Timeout       time.Duration
	Breaker       BreakerSettings
	Logger        ports.Logger
}

// meteomaticsResponse mirrors the JSON time series format
type meteomaticsResponse struct {
	Status *string `json:"status"`
	Data   []struct {
		Parameter   *string `json:"parameter"`
		Coordinates []struct {
			Dates []struct {
				Date  *string  `json:"date"`
				Value *float64 `json:"value"`
			} `json:"dates"`
		} `json:"coordinates"`
	} `json:"data"`
}

// NewMeteomaticsProviderAdapter creates a new Meteomatics provider adapter
func NewMeteomaticsProviderAdapter(params MeteomaticsProviderParams) ports.UVProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://api.meteomatics.com"
	}
	hours := params.ForecastHours
	if hours <= 0 || hours > maxForecastEntries {
		hours = maxForecastEntries
	}

	return &MeteomaticsProviderAdapter{
		username:      params.Username,
		password:      params.Password,
		baseURL:       baseURL,
		forecastHours: hours,
		upstream:      newUpstreamClient(ports.ProviderMeteomatics, params.HTTPClient, params.Timeout, params.Breaker, params.Logger),
		logger:        params.Logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// FetchSnapshot requests the current value and the hourly window concurrently
func (p *MeteomaticsProviderAdapter) FetchSnapshot(ctx context.Context, coord ports.Coordinate) (*ports.UVSnapshotData, error) {
	requestTime := p.now()
	location := fmt.Sprintf("%s,%s", formatCoordinate(coord.Latitude), formatCoordinate(coord.Longitude))

	start := requestTime.Truncate(time.Hour)
	end := start.Add(time.Duration(p.forecastHours-1) * time.Hour)
	currentURL := fmt.Sprintf("%s/now/uv:idx/%s/json", p.baseURL, location)
	forecastURL := fmt.Sprintf("%s/%s--%s:PT1H/uv:idx/%s/json", p.baseURL,
		start.Format(meteomaticsTimeLayout), end.Format(meteomaticsTimeLayout), location)

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
		return nil, errors.NewUpstreamStatusError(ports.ProviderMeteomatics, current.StatusCode)
	}

	var body meteomaticsResponse
	if err := json.Unmarshal(current.Body, &body); err != nil {
		return nil, errors.NewMalformedResponseError(ports.ProviderMeteomatics, err)
	}
	if len(body.Data) == 0 || len(body.Data[0].Coordinates) == 0 || len(body.Data[0].Coordinates[0].Dates) == 0 {
		return nil, errors.NewMalformedResponseError(ports.ProviderMeteomatics, fmt.Errorf("data[0].coordinates[0].dates[0] missing"))
	}
	first := body.Data[0].Coordinates[0].Dates[0]
	value, ok := uvValue(first.Value)
	if !ok {
		return nil, errors.NewMalformedResponseError(ports.ProviderMeteomatics, fmt.Errorf("data[0].coordinates[0].dates[0].value missing"))
	}

	reading := ports.UVReadingData{
		Value:      value,
		ObservedAt: timestampOr(first.Date, requestTime),
	}

	return assembleSnapshot(meteomaticsLabel, coord, reading, p.decodeForecast(forecast, forecastErr)), nil
}

func (p *MeteomaticsProviderAdapter) decodeForecast(resp *upstreamResponse, err error) []ports.UVReadingData {
	if err != nil {
		p.warnDegraded("forecast request failed", ports.F("error", err))
		return nil
	}
	if !resp.OK() {
		p.warnDegraded("forecast request returned an error status", ports.F("status", resp.StatusCode))
		return nil
	}

	var body meteomaticsResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		p.warnDegraded("forecast body could not be decoded", ports.F("error", err))
		return nil
	}
	if len(body.Data) == 0 || len(body.Data[0].Coordinates) == 0 {
		return nil
	}

	dates := body.Data[0].Coordinates[0].Dates
	series := make([]ports.UVReadingData, 0, len(dates))
	for _, entry := range dates {
		observedAt, ok := parseTimestamp(entry.Date)
		if !ok {
			continue
		}
		series = append(series, ports.UVReadingData{Value: uvValueOrZero(entry.Value), ObservedAt: observedAt})
	}
	return series
}

func (p *MeteomaticsProviderAdapter) warnDegraded(msg string, fields ...ports.Field) {
	if p.logger == nil {
		return
	}
	fields = append([]ports.Field{ports.F("provider", ports.ProviderMeteomatics)}, fields...)
	p.logger.Warn("Meteomatics "+msg+", omitting forecast", fields...)
}

func (p *MeteomaticsProviderAdapter) authorize(req *http.Request) {
	req.SetBasicAuth(p.username, p.password)
}

// GetProviderName returns the name of this UV provider
func (p *MeteomaticsProviderAdapter) GetProviderName() string {
	return ports.ProviderMeteomatics
}

// BreakerState returns the circuit breaker state
func (p *MeteomaticsProviderAdapter) BreakerState() string {
	return p.upstream.breakerState()
}
