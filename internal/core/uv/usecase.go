package uv

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"
	"uvdash.app/internal/ports"
	"uvdash.app/pkg/errors"
)

// Upstream call outcomes reported to the metrics collector
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

type UseCase struct {
	providers ports.UVProviderRegistry
	cache     ports.SnapshotCache
	config    ports.ConfigProvider
	logger    ports.Logger
	metrics   ports.UVMetrics
	collector ports.MetricsCollector
	inflight  singleflight.Group
}

type UseCaseDependencies struct {
	Providers ports.UVProviderRegistry
	Cache     ports.SnapshotCache
	Config    ports.ConfigProvider
	Logger    ports.Logger
	Metrics   ports.UVMetrics
	Collector ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Providers == nil {
		return nil, errors.NewValidationError("provider registry is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if deps.Collector == nil {
		return nil, errors.NewValidationError("metrics collector is required")
	}

	return &UseCase{
		providers: deps.Providers,
		cache:     deps.Cache,
		config:    deps.Config,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
		collector: deps.Collector,
	}, nil
}

// CacheKey identifies a snapshot by provider and exact coordinate
func CacheKey(provider string, coord ports.Coordinate) string {
	return fmt.Sprintf("uv:%s:%s:%s", provider,
		strconv.FormatFloat(coord.Latitude, 'f', -1, 64),
		strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
}

func (uc *UseCase) GetSnapshot(ctx context.Context, request SnapshotRequest) (*Snapshot, error) {
	request.NormalizeProvider()
	if request.Provider == "" {
		request.Provider = uc.providers.DefaultProvider()
	}
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid snapshot request: " + err.Error())
	}

	provider, err := uc.providers.Get(request.Provider)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Getting UV snapshot",
		ports.F("provider", request.Provider),
		ports.F("latitude", request.Coordinate.Latitude),
		ports.F("longitude", request.Coordinate.Longitude))

	data, err := uc.getSnapshotWithCache(ctx, request.Provider, provider, request.Coordinate)
	if err != nil {
		uc.logger.Error("Failed to get UV snapshot",
			ports.F("provider", request.Provider),
			ports.F("latitude", request.Coordinate.Latitude),
			ports.F("longitude", request.Coordinate.Longitude),
			ports.F("error", err))
		return nil, fmt.Errorf("get snapshot from %s: %w", request.Provider, err)
	}

	snapshot := convertFromPortsSnapshot(data)
	// Cache entries are keyed by position only; the label belongs to this request
	snapshot.Coordinate = request.Coordinate
	uc.logger.Debug("UV snapshot retrieved successfully",
		ports.F("provider", request.Provider),
		ports.F("current", snapshot.Current.Value),
		ports.F("forecast_entries", len(snapshot.Forecast)))
	return snapshot, nil
}

func (uc *UseCase) getSnapshotWithCache(ctx context.Context, name string, provider ports.UVProvider, coord ports.Coordinate) (*ports.UVSnapshotData, error) {
	cfg := uc.config.GetUVConfig()
	key := CacheKey(name, coord)

	if cfg.EnableCache {
		cached, err := uc.cache.Get(ctx, key)
		if err == nil && cached != nil {
			uc.collector.RecordCacheHit(ctx)
			uc.logger.Debug("UV snapshot found in cache", ports.F("key", key))
			return cached, nil
		}
		if err != nil && !errors.IsNotFoundError(err) {
			uc.logger.Warn("Failed to read UV snapshot from cache",
				ports.F("key", key),
				ports.F("error", err))
		}
		uc.collector.RecordCacheMiss(ctx)
	}

	// The shared fetch must outlive a single caller giving up.
	fetchCtx := context.WithoutCancel(ctx)
	resultCh := uc.inflight.DoChan(key, func() (interface{}, error) {
		data, err := uc.fetchFromProvider(fetchCtx, name, provider, coord)
		if err != nil {
			return nil, err
		}

		if cfg.EnableCache {
			if cacheErr := uc.cache.Set(fetchCtx, key, data, cfg.CacheTTL); cacheErr != nil {
				uc.logger.Warn("Failed to cache UV snapshot",
					ports.F("key", key),
					ports.F("error", cacheErr))
			}
		}
		return data, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultCh:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			uc.logger.Debug("Shared in-flight UV fetch", ports.F("key", key))
		}
		return res.Val.(*ports.UVSnapshotData), nil
	}
}

func (uc *UseCase) fetchFromProvider(ctx context.Context, name string, provider ports.UVProvider, coord ports.Coordinate) (*ports.UVSnapshotData, error) {
	start := time.Now()
	data, err := provider.FetchSnapshot(ctx, coord)
	duration := time.Since(start)

	if err != nil {
		uc.collector.RecordUpstreamCall(ctx, name, outcomeOf(err), duration)
		if _, ok := errors.AsFetchError(err); ok {
			return nil, err
		}
		return nil, errors.NewExternalAPIError("uv provider failed", err)
	}
	if data == nil {
		uc.collector.RecordUpstreamCall(ctx, name, string(errors.FetchReasonMalformedResponse), duration)
		return nil, errors.NewMalformedResponseError(name, fmt.Errorf("provider returned no snapshot"))
	}

	if err := convertFromPortsSnapshot(data).IsValid(); err != nil {
		uc.collector.RecordUpstreamCall(ctx, name, string(errors.FetchReasonMalformedResponse), duration)
		return nil, errors.NewMalformedResponseError(name, err)
	}

	uc.collector.RecordUpstreamCall(ctx, name, OutcomeSuccess, duration)
	return data, nil
}

func outcomeOf(err error) string {
	if fetchErr, ok := errors.AsFetchError(err); ok {
		return string(fetchErr.Reason)
	}
	return OutcomeError
}

func convertFromPortsSnapshot(data *ports.UVSnapshotData) *Snapshot {
	snapshot := &Snapshot{
		Current:     Reading{Value: data.Current.Value, ObservedAt: data.Current.ObservedAt},
		SourceLabel: data.SourceLabel,
		Coordinate:  data.Coordinate,
	}
	if data.DailyMax != nil {
		snapshot.DailyMax = &Reading{Value: data.DailyMax.Value, ObservedAt: data.DailyMax.ObservedAt}
	}
	if len(data.Forecast) > 0 {
		snapshot.Forecast = make([]Reading, len(data.Forecast))
		for i, r := range data.Forecast {
			snapshot.Forecast[i] = Reading{Value: r.Value, ObservedAt: r.ObservedAt}
		}
	}
	return snapshot
}

func (uc *UseCase) GetProviderInfo(ctx context.Context) map[string]interface{} {
	return uc.metrics.GetProviderInfo()
}

func (uc *UseCase) GetCacheMetrics(ctx context.Context) (ports.CacheStats, error) {
	metrics, err := uc.metrics.GetCacheMetrics()
	if err != nil {
		return ports.CacheStats{}, fmt.Errorf("get cache metrics: %w", err)
	}
	return metrics, nil
}
