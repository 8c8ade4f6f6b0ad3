package collector

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"StockSeer/internal/metrics"
	"StockSeer/internal/model"
)

// failingFetcher always errors, exercising the synthetic fallback path.
type failingFetcher struct{ calls int }

func (f *failingFetcher) FetchDailyBars(_ context.Context, _ string, _ int) ([]model.Bar, error) {
	f.calls++
	return nil, errors.New("connection refused")
}

func (f *failingFetcher) Name() string { return "failing" }

// fixedFetcher returns a canned response.
type fixedFetcher struct{ bars []model.Bar }

func (f *fixedFetcher) FetchDailyBars(_ context.Context, _ string, _ int) ([]model.Bar, error) {
	return f.bars, nil
}

func (f *fixedFetcher) Name() string { return "fixed" }

func newTestProvider(live Fetcher) (*Provider, *metrics.Metrics) {
	m := metrics.New()
	p := NewProvider(live, NewGenerator(rand.NewSource(3)), NewSeriesCache(10, 5*time.Minute), m)
	return p, m
}

func TestProvider_SyntheticOnlyMode(t *testing.T) {
	p, _ := newTestProvider(nil)
	series := p.GetSeries(context.Background(), "AAPL")
	if len(series) != 100 {
		t.Fatalf("expected 100 bars in synthetic mode, got %d", len(series))
	}
	for i := 1; i < len(series); i++ {
		if !series[i].Date.After(series[i-1].Date) {
			t.Fatalf("dates not strictly increasing at %d", i)
		}
	}
}

func TestProvider_FallbackOnFetchError(t *testing.T) {
	f := &failingFetcher{}
	p, m := newTestProvider(f)

	series := p.GetSeries(context.Background(), "AAPL")
	if len(series) != 100 {
		t.Fatalf("fallback series should have 100 bars, got %d", len(series))
	}
	if f.calls != 1 {
		t.Errorf("expected exactly one fetch attempt (no retries), got %d", f.calls)
	}
	if got := testutil.ToFloat64(m.SyntheticFallbacks); got != 1 {
		t.Errorf("expected fallback counter 1, got %.0f", got)
	}
}

func TestProvider_FallbackOnEmptyPayload(t *testing.T) {
	p, _ := newTestProvider(&fixedFetcher{bars: nil})
	series := p.GetSeries(context.Background(), "AAPL")
	if len(series) == 0 {
		t.Fatal("empty live payload must fall back to synthetic data")
	}
}

func TestProvider_CachesResolvedSeries(t *testing.T) {
	f := &failingFetcher{}
	p, _ := newTestProvider(f)

	first := p.GetSeries(context.Background(), "AAPL")
	second := p.GetSeries(context.Background(), "AAPL")

	if f.calls != 1 {
		t.Errorf("second request within TTL must be served from cache, got %d fetches", f.calls)
	}
	if len(first) != len(second) {
		t.Fatalf("cached series length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("bar %d differs between cached reads", i)
		}
	}
}

func TestProvider_EnforcesOrderingAndBound(t *testing.T) {
	// 120 bars delivered newest-first; provider must sort and trim.
	bars := make([]model.Bar, 120)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		bars[i] = model.Bar{
			Date:   start.AddDate(0, 0, 119-i),
			Open:   100,
			High:   101,
			Low:    99,
			Close:  100,
			Volume: 1,
		}
	}
	p, _ := newTestProvider(&fixedFetcher{bars: bars})

	series := p.GetSeries(context.Background(), "AAPL")
	if len(series) != model.MaxBars {
		t.Fatalf("expected series trimmed to %d bars, got %d", model.MaxBars, len(series))
	}
	for i := 1; i < len(series); i++ {
		if !series[i].Date.After(series[i-1].Date) {
			t.Fatalf("series not oldest-first at %d", i)
		}
	}
	// The most recent bar must be retained.
	want := start.AddDate(0, 0, 119)
	if !series.Last().Date.Equal(want) {
		t.Errorf("expected last bar %v, got %v", want, series.Last().Date)
	}
}
