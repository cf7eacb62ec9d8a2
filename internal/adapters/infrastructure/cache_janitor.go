package infrastructure

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"uvdash.app/internal/ports"
	"uvdash.app/pkg/errors"
)

// DefaultSweepInterval is used when no positive interval is configured
const DefaultSweepInterval = time.Minute

// CacheJanitor periodically removes expired entries from an in-process cache
type CacheJanitor struct {
	scheduler *gocron.Scheduler
	cache     ports.ExpiringCache
	logger    ports.Logger
	interval  time.Duration
}

// NewCacheJanitor creates a janitor for cache; call Start to schedule sweeps
func NewCacheJanitor(cache ports.ExpiringCache, interval time.Duration, logger ports.Logger) (*CacheJanitor, error) {
	if cache == nil {
		return nil, errors.NewValidationError("expiring cache is required")
	}
	if logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	return &CacheJanitor{
		scheduler: gocron.NewScheduler(time.UTC),
		cache:     cache,
		logger:    logger,
		interval:  interval,
	}, nil
}

// Start schedules the sweep job and starts the underlying scheduler
func (j *CacheJanitor) Start() error {
	_, err := j.scheduler.Every(j.interval).WaitForSchedule().SingletonMode().Do(func() {
		j.Sweep(context.Background())
	})
	if err != nil {
		return errors.NewConfigurationError("schedule cache sweep", err)
	}

	j.scheduler.StartAsync()
	j.logger.Info("Cache janitor started", ports.F("interval", j.interval.String()))
	return nil
}

// Sweep runs one cleanup pass and returns the number of entries removed
func (j *CacheJanitor) Sweep(ctx context.Context) int {
	removed := j.cache.Sweep(ctx)
	if removed > 0 {
		j.logger.Debug("Expired cache entries removed", ports.F("removed", removed))
	}
	return removed
}

// Stop stops the scheduler and cancels any future sweeps
func (j *CacheJanitor) Stop() {
	if j.scheduler != nil {
		j.scheduler.Stop()
	}
}
