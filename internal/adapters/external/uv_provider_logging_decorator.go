package external

import (
	"context"
	"time"

	"uvdash.app/internal/ports"
	"uvdash.app/pkg/errors"
)

// UVProviderLoggingDecorator decorates UV providers with structured logging
type UVProviderLoggingDecorator struct {
	provider ports.UVProvider
	logger   ports.Logger
}

// NewUVProviderLoggingDecorator creates a new logging decorator for UV providers
func NewUVProviderLoggingDecorator(provider ports.UVProvider, logger ports.Logger) *UVProviderLoggingDecorator {
	return &UVProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// FetchSnapshot wraps the provider call with structured logging
func (d *UVProviderLoggingDecorator) FetchSnapshot(ctx context.Context, coord ports.Coordinate) (*ports.UVSnapshotData, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("UV API request started",
		ports.F("provider", providerName),
		ports.F("latitude", coord.Latitude),
		ports.F("longitude", coord.Longitude),
		ports.F("event", "request"))

	startTime := time.Now()
	snapshot, err := d.provider.FetchSnapshot(ctx, coord)
	duration := time.Since(startTime)

	if err != nil {
		fields := []ports.Field{
			ports.F("provider", providerName),
			ports.F("latitude", coord.Latitude),
			ports.F("longitude", coord.Longitude),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()),
		}
		if fetchErr, ok := errors.AsFetchError(err); ok {
			fields = append(fields, ports.F("reason", string(fetchErr.Reason)))
			if fetchErr.Status != 0 {
				fields = append(fields, ports.F("status", fetchErr.Status))
			}
		}
		d.logger.Error("UV API request failed", fields...)
		return nil, err
	}

	fields := []ports.Field{
		ports.F("provider", providerName),
		ports.F("latitude", coord.Latitude),
		ports.F("longitude", coord.Longitude),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
	}
	if snapshot == nil {
		d.logger.Warn("UV API request returned no snapshot", fields...)
		return nil, nil
	}
	fields = append(fields,
		ports.F("current", snapshot.Current.Value),
		ports.F("forecast_entries", len(snapshot.Forecast)))
	if snapshot.DailyMax != nil {
		fields = append(fields, ports.F("daily_max", snapshot.DailyMax.Value))
	}
	d.logger.Info("UV API request completed", fields...)

	return snapshot, nil
}

// GetProviderName returns the name of the wrapped provider
func (d *UVProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}
