package collector

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"StockSeer/internal/metrics"
	"StockSeer/internal/model"
)

// DefaultFetchTimeout bounds a single live fetch.
const DefaultFetchTimeout = 10 * time.Second

// Provider resolves a symbol to an ordered daily series. Resolution
// never fails: a cache hit is returned directly, otherwise a live fetch
// is attempted (when a live fetcher is configured) and any fetch error,
// rate limit, or empty payload falls through to the synthetic generator.
// Whatever was resolved is cached before returning.
//
// Duplicate concurrent requests for the same symbol may race on cache
// population and perform redundant fetches; the last write wins. There
// is deliberately no single-flight coalescing here.
type Provider struct {
	live    Fetcher // nil when no live source is configured
	synth   *Generator
	cache   *SeriesCache
	metrics *metrics.Metrics
	timeout time.Duration
	logger  zerolog.Logger
}

// NewProvider creates a Provider. live may be nil, in which case every
// resolution is synthetic; that is a fully supported mode, not a
// degraded one.
func NewProvider(live Fetcher, synth *Generator, cache *SeriesCache, m *metrics.Metrics) *Provider {
	return &Provider{
		live:    live,
		synth:   synth,
		cache:   cache,
		metrics: m,
		timeout: DefaultFetchTimeout,
		logger:  log.With().Str("component", "provider").Logger(),
	}
}

// GetSeries resolves the symbol to a series of at most model.MaxBars
// bars, oldest first. The symbol is expected to be normalized
// (trimmed, uppercase) by the caller.
func (p *Provider) GetSeries(ctx context.Context, symbol string) model.Series {
	if series, ok := p.cache.Get(symbol); ok {
		p.metrics.CacheHits.Inc()
		return series
	}
	p.metrics.CacheMisses.Inc()

	series := p.resolve(ctx, symbol)

	// Enforce ordering and the retention bound regardless of source.
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	series = series.Tail(model.MaxBars)

	if p.cache.Put(symbol, series) {
		p.metrics.CacheEvictions.Inc()
	}
	return series
}

func (p *Provider) resolve(ctx context.Context, symbol string) model.Series {
	if p.live == nil {
		p.logger.Debug().Str("symbol", symbol).Msg("no live source configured, generating synthetic series")
		return p.synth.Generate(symbol)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	bars, err := p.live.FetchDailyBars(fetchCtx, symbol, model.MaxBars)
	p.metrics.FetchDuration.Observe(time.Since(start).Seconds())

	if err != nil || len(bars) == 0 {
		// The functional contract absorbs the failure, but it must not
		// be invisible to operators.
		p.metrics.SyntheticFallbacks.Inc()
		p.logger.Warn().Err(err).
			Str("symbol", symbol).
			Str("source", p.live.Name()).
			Msg("live fetch failed, falling back to synthetic series")
		return p.synth.Generate(symbol)
	}
	return model.Series(bars)
}
