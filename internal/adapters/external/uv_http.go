// Package external provides adapters for external services.
// These adapters implement ports for UV providers, position sources and cache backends.
package external

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"uvdash.app/internal/ports"
	"uvdash.app/pkg/errors"
)

const (
	maxUpstreamBodyBytes   = 1 << 20
	defaultHTTPTimeout     = 10 * time.Second
	defaultBreakerFailures = 5
	defaultBreakerCooldown = 60 * time.Second
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// BreakerSettings configures the per-provider circuit breaker
type BreakerSettings struct {
	Enabled     bool
	MaxFailures uint32
	Cooldown    time.Duration
}

type upstreamResponse struct {
	StatusCode int
	Body       []byte
}

func (r *upstreamResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// upstreamClient issues GET requests on behalf of one provider. Only transport
// failures count towards tripping the breaker; any HTTP status is a valid answer.
type upstreamClient struct {
	provider string
	client   HTTPClient
	breaker  *gobreaker.CircuitBreaker
}

func newUpstreamClient(provider string, client HTTPClient, timeout time.Duration, settings BreakerSettings, logger ports.Logger) *upstreamClient {
	if client == nil {
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	uc := &upstreamClient{
		provider: provider,
		client:   client,
	}

	if settings.Enabled {
		maxFailures := settings.MaxFailures
		if maxFailures == 0 {
			maxFailures = defaultBreakerFailures
		}
		cooldown := settings.Cooldown
		if cooldown <= 0 {
			cooldown = defaultBreakerCooldown
		}

		uc.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        provider,
			MaxRequests: 1,
			Timeout:     cooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= maxFailures
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				if logger != nil {
					logger.Warn("Upstream circuit breaker state changed",
						ports.F("provider", name),
						ports.F("from", from.String()),
						ports.F("to", to.String()))
				}
			},
		})
	}

	return uc
}

// get performs the request and reads at most maxUpstreamBodyBytes of the body.
// configure may add headers or credentials before the request is sent.
func (c *upstreamClient) get(ctx context.Context, rawURL string, configure func(*http.Request)) (*upstreamResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.NewTransportError(c.provider, err)
	}
	req.Header.Set("Accept", "application/json")
	if configure != nil {
		configure(req)
	}

	do := func() (interface{}, error) {
		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBodyBytes))
		if err != nil {
			return nil, err
		}
		return &upstreamResponse{StatusCode: resp.StatusCode, Body: body}, nil
	}

	var result interface{}
	if c.breaker != nil {
		result, err = c.breaker.Execute(do)
	} else {
		result, err = do()
	}
	if err != nil {
		return nil, errors.NewTransportError(c.provider, err)
	}

	return result.(*upstreamResponse), nil
}

// breakerState reports the breaker state for health and provider info
func (c *upstreamClient) breakerState() string {
	if c.breaker == nil {
		return "disabled"
	}
	return c.breaker.State().String()
}
