package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"uvdash.app/internal/ports"
	"uvdash.app/pkg/errors"
	"uvdash.app/pkg/validation"
)

const (
	PositionSourceIPAPI  = "ipapi"
	PositionSourceStatic = "static"
	PositionSourceNone   = "none"
)

// IPAPIPositionSource approximates the device position from its public IP
// address using an ip-api.com compatible endpoint.
type IPAPIPositionSource struct {
	baseURL string
	client  *upstreamClient
}

type ipapiResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
	City    string   `json:"city"`
	Country string   `json:"country"`
}

// NewIPAPIPositionSource creates an IP geolocation source
func NewIPAPIPositionSource(baseURL string, httpClient HTTPClient, logger ports.Logger) *IPAPIPositionSource {
	return &IPAPIPositionSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  newUpstreamClient(PositionSourceIPAPI, httpClient, 0, BreakerSettings{}, logger),
	}
}

func (s *IPAPIPositionSource) Name() string {
	return PositionSourceIPAPI
}

// CurrentPosition queries the endpoint, bounded by opts.Timeout when set
func (s *IPAPIPositionSource) CurrentPosition(ctx context.Context, opts ports.PositionOptions) (ports.Coordinate, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	url := s.baseURL + "?fields=status,message,lat,lon,city,country"
	resp, err := s.client.get(ctx, url, nil)
	if err != nil {
		return ports.Coordinate{}, err
	}
	if !resp.OK() {
		return ports.Coordinate{}, errors.NewUpstreamStatusError(PositionSourceIPAPI, resp.StatusCode)
	}

	var body ipapiResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return ports.Coordinate{}, errors.NewMalformedResponseError(PositionSourceIPAPI, err)
	}
	if body.Status != "success" {
		return ports.Coordinate{}, errors.NewExternalAPIError(
			fmt.Sprintf("ip geolocation failed: %s", body.Message), nil)
	}
	if body.Lat == nil || body.Lon == nil {
		return ports.Coordinate{}, errors.NewMalformedResponseError(PositionSourceIPAPI,
			fmt.Errorf("lat/lon missing"))
	}

	return ports.Coordinate{
		Latitude:  *body.Lat,
		Longitude: *body.Lon,
		Label:     body.City,
	}, nil
}

// StaticPositionSource always reports a configured coordinate
type StaticPositionSource struct {
	coord ports.Coordinate
}

// NewStaticPositionSource validates the coordinate once at construction
func NewStaticPositionSource(coord ports.Coordinate) (*StaticPositionSource, error) {
	if !validation.IsValidLatitude(coord.Latitude) || !validation.IsValidLongitude(coord.Longitude) {
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("invalid static position %v,%v", coord.Latitude, coord.Longitude), nil)
	}
	return &StaticPositionSource{coord: coord}, nil
}

func (s *StaticPositionSource) Name() string {
	return PositionSourceStatic
}

func (s *StaticPositionSource) CurrentPosition(ctx context.Context, opts ports.PositionOptions) (ports.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return ports.Coordinate{}, err
	}
	return s.coord, nil
}

// UnavailablePositionSource models a device without positioning; every
// lookup fails so callers fall back.
type UnavailablePositionSource struct{}

func NewUnavailablePositionSource() *UnavailablePositionSource {
	return &UnavailablePositionSource{}
}

func (s *UnavailablePositionSource) Name() string {
	return PositionSourceNone
}

func (s *UnavailablePositionSource) CurrentPosition(ctx context.Context, opts ports.PositionOptions) (ports.Coordinate, error) {
	return ports.Coordinate{}, errors.NewNotFoundError("position unavailable")
}

// PositionSourceParams selects and configures a position source
type PositionSourceParams struct {
	Source      string
	IPAPIURL    string
	Static      ports.Coordinate
	HTTPClient  HTTPClient
	HTTPTimeout time.Duration
	Logger      ports.Logger
}

// NewPositionSource builds the source named by params.Source
func NewPositionSource(params PositionSourceParams) (ports.PositionSource, error) {
	switch strings.ToLower(strings.TrimSpace(params.Source)) {
	case PositionSourceIPAPI:
		if params.IPAPIURL == "" {
			return nil, errors.NewConfigurationError("ip geolocation URL is required", nil)
		}
		client := params.HTTPClient
		if client == nil && params.HTTPTimeout > 0 {
			client = &http.Client{Timeout: params.HTTPTimeout}
		}
		return NewIPAPIPositionSource(params.IPAPIURL, client, params.Logger), nil
	case PositionSourceStatic:
		source, err := NewStaticPositionSource(params.Static)
		if err != nil {
			return nil, err
		}
		return source, nil
	case PositionSourceNone:
		return NewUnavailablePositionSource(), nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported position source: %s", params.Source), nil)
	}
}
