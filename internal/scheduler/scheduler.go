// Package scheduler runs periodic cache maintenance: sweeping expired
// series entries and optionally pre-resolving a warmup set of symbols.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"StockSeer/internal/collector"
)

// Scheduler manages all cron tasks.
type Scheduler struct {
	cron     *cron.Cron
	cache    *collector.SeriesCache
	provider *collector.Provider
	ctx      context.Context
	logger   zerolog.Logger
}

// New creates a Scheduler.
func New(ctx context.Context, cache *collector.SeriesCache, provider *collector.Provider) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		cache:    cache,
		provider: provider,
		ctx:      ctx,
		logger:   log.With().Str("component", "scheduler").Logger(),
	}
}

// Register adds the sweep task and, when warmup symbols are configured,
// the warmup task.
func (s *Scheduler) Register(sweepCron, warmupCron string, warmupSymbols []string) error {
	if _, err := s.cron.AddFunc(sweepCron, s.sweepTask); err != nil {
		return fmt.Errorf("register sweep task: %w", err)
	}
	if len(warmupSymbols) > 0 {
		if _, err := s.cron.AddFunc(warmupCron, func() { s.warmupTask(warmupSymbols) }); err != nil {
			return fmt.Errorf("register warmup task: %w", err)
		}
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info().Msg("scheduler stopped")
}

func (s *Scheduler) sweepTask() {
	if removed := s.cache.PurgeExpired(); removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("purged expired cache entries")
	}
}

// warmupTask pre-resolves the configured symbols so the first user
// request after expiry does not pay the fetch.
func (s *Scheduler) warmupTask(symbols []string) {
	for _, symbol := range symbols {
		select {
		case <-s.ctx.Done():
			return
		default:
		}
		series := s.provider.GetSeries(s.ctx, symbol)
		s.logger.Debug().Str("symbol", symbol).Int("bars", len(series)).Msg("warmed up symbol")
	}
}
