package location

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"uvdash.app/internal/ports"
	"uvdash.app/pkg/errors"
)

const resolveKey = "resolve"

// Resolver obtains the viewer's coordinate from a PositionSource, memoizing the result
// and substituting the fallback coordinate when the source fails or stays silent.
type Resolver struct {
	source    ports.PositionSource
	catalog   ports.CityCatalog
	logger    ports.Logger
	collector ports.MetricsCollector
	fallback  ports.Coordinate
	timeout   time.Duration

	mu         sync.RWMutex
	current    *Resolution
	generation uint64
	inflight   singleflight.Group
}

type ResolverDependencies struct {
	Source    ports.PositionSource
	Catalog   ports.CityCatalog
	Config    ports.ConfigProvider
	Logger    ports.Logger
	Collector ports.MetricsCollector
}

func NewResolver(deps ResolverDependencies) (*Resolver, error) {
	if deps.Source == nil {
		return nil, errors.NewValidationError("position source is required")
	}
	if deps.Catalog == nil {
		return nil, errors.NewValidationError("city catalog is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Collector == nil {
		return nil, errors.NewValidationError("metrics collector is required")
	}

	cfg := deps.Config.GetLocationConfig()
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	fallback := cfg.Fallback
	if fallback == (ports.Coordinate{}) {
		fallback = DefaultFallback
	}
	if err := ValidateCoordinate(fallback); err != nil {
		return nil, errors.NewValidationError("invalid fallback coordinate: " + err.Error())
	}

	return &Resolver{
		source:    deps.Source,
		catalog:   deps.Catalog,
		logger:    deps.Logger,
		collector: deps.Collector,
		fallback:  fallback,
		timeout:   timeout,
	}, nil
}

// Fallback returns the configured fallback coordinate
func (r *Resolver) Fallback() ports.Coordinate {
	return r.fallback
}

// IsFallback reports whether coord matches the configured fallback within FallbackTolerance
func (r *Resolver) IsFallback(coord ports.Coordinate) bool {
	return IsNear(coord, r.fallback)
}

// Current returns the memoized resolution without triggering a lookup
func (r *Resolver) Current() (Resolution, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current == nil {
		return Resolution{}, false
	}
	return *r.current, true
}

// Resolve returns the memoized resolution or performs a bounded lookup. It never fails.
func (r *Resolver) Resolve(ctx context.Context) Resolution {
	if res, ok := r.Current(); ok {
		return res
	}
	return r.resolve(ctx, false)
}

// Refresh forces a new lookup, sharing any lookup already in flight
func (r *Resolver) Refresh(ctx context.Context) Resolution {
	return r.resolve(ctx, true)
}

// Select memoizes a caller-chosen coordinate
func (r *Resolver) Select(coord ports.Coordinate) (Resolution, error) {
	if err := ValidateCoordinate(coord); err != nil {
		return Resolution{}, errors.NewValidationError("invalid coordinate: " + err.Error())
	}

	res := Resolution{
		Coordinate: coord,
		Source:     SourceManual,
		IsFallback: r.IsFallback(coord),
		ResolvedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.generation++
	r.current = &res
	r.mu.Unlock()

	r.logger.Info("Location selected manually",
		ports.F("latitude", coord.Latitude),
		ports.F("longitude", coord.Longitude),
		ports.F("label", coord.Label))
	return res, nil
}

// SelectCity looks a city up in the catalog and selects its coordinate
func (r *Resolver) SelectCity(name string) (Resolution, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Resolution{}, errors.NewValidationError("city name cannot be empty")
	}

	city, ok := r.catalog.Find(name)
	if !ok {
		return Resolution{}, errors.NewNotFoundError("unknown city: " + name)
	}
	return r.Select(city.Coordinate())
}

// Cities returns the manual selection catalog
func (r *Resolver) Cities() []ports.City {
	return r.catalog.List()
}

func (r *Resolver) resolve(ctx context.Context, force bool) Resolution {
	r.mu.RLock()
	gen := r.generation
	r.mu.RUnlock()

	lookupCtx := context.WithoutCancel(ctx)
	ch := r.inflight.DoChan(resolveKey, func() (interface{}, error) {
		// A flight that finished after the caller's memo check already stored a result
		if !force {
			if res, ok := r.Current(); ok {
				return res, nil
			}
		}
		res := r.lookup(lookupCtx)
		return r.store(gen, res), nil
	})

	select {
	case <-ctx.Done():
		r.logger.Warn("Location resolution abandoned by caller", ports.F("error", ctx.Err()))
		return r.fallbackResolution()
	case out := <-ch:
		return out.Val.(Resolution)
	}
}

// store memoizes res unless a manual selection happened after the lookup began
func (r *Resolver) store(gen uint64, res Resolution) Resolution {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.generation != gen && r.current != nil {
		return *r.current
	}
	r.generation++
	r.current = &res
	return res
}

type positionResult struct {
	coord ports.Coordinate
	err   error
}

func (r *Resolver) lookup(ctx context.Context) Resolution {
	sourceName := r.source.Name()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// Buffered so a late answer never blocks the source goroutine.
	done := make(chan positionResult, 1)
	go func() {
		coord, err := r.source.CurrentPosition(ctx, ports.PositionOptions{
			Timeout:    r.timeout,
			MaximumAge: 0,
		})
		done <- positionResult{coord: coord, err: err}
	}()

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	var res Resolution
	select {
	case out := <-done:
		if out.err != nil {
			r.logger.Warn("Position source failed, using fallback location",
				ports.F("source", sourceName),
				ports.F("error", out.err))
			res = r.fallbackResolution()
			break
		}
		if err := ValidateCoordinate(out.coord); err != nil {
			r.logger.Warn("Position source returned an invalid coordinate, using fallback location",
				ports.F("source", sourceName),
				ports.F("error", err))
			res = r.fallbackResolution()
			break
		}
		res = Resolution{
			Coordinate: out.coord,
			Source:     sourceName,
			IsFallback: r.IsFallback(out.coord),
			ResolvedAt: time.Now().UTC(),
		}
		r.logger.Info("Location resolved",
			ports.F("source", sourceName),
			ports.F("latitude", out.coord.Latitude),
			ports.F("longitude", out.coord.Longitude))
	case <-timer.C:
		r.logger.Warn("Position source timed out, using fallback location",
			ports.F("source", sourceName),
			ports.F("timeout_ms", r.timeout.Milliseconds()))
		res = r.fallbackResolution()
	}

	r.collector.RecordLocationResolution(ctx, res.Source, res.IsFallback)
	return res
}

func (r *Resolver) fallbackResolution() Resolution {
	return Resolution{
		Coordinate: r.fallback,
		Source:     SourceFallback,
		IsFallback: true,
		ResolvedAt: time.Now().UTC(),
	}
}
