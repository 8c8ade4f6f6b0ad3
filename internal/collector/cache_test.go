package collector

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"StockSeer/internal/model"
)

func testSeries(closePrice float64) model.Series {
	return model.Series{{
		Date:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Open:   closePrice,
		High:   closePrice * 1.01,
		Low:    closePrice * 0.99,
		Close:  closePrice,
		Volume: 1000,
	}}
}

func TestCache_HitWithinTTL(t *testing.T) {
	c := NewSeriesCache(10, 5*time.Minute)
	c.Put("AAPL", testSeries(100))

	got, ok := c.Get("AAPL")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got[0].Close != 100 {
		t.Errorf("expected cached close 100, got %.2f", got[0].Close)
	}
}

func TestCache_MissAfterTTL(t *testing.T) {
	c := NewSeriesCache(10, 5*time.Minute)
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	now := base
	c.now = func() time.Time { return now }

	c.Put("AAPL", testSeries(100))
	now = base.Add(4 * time.Minute)
	if _, ok := c.Get("AAPL"); !ok {
		t.Fatal("expected hit before TTL")
	}
	now = base.Add(5 * time.Minute)
	if _, ok := c.Get("AAPL"); ok {
		t.Fatal("expected miss at TTL boundary")
	}
}

func TestCache_SupersedeRefreshesEntry(t *testing.T) {
	c := NewSeriesCache(10, 5*time.Minute)
	c.Put("AAPL", testSeries(100))
	if evicted := c.Put("AAPL", testSeries(200)); evicted {
		t.Error("overwrite must not evict")
	}
	got, _ := c.Get("AAPL")
	if got[0].Close != 200 {
		t.Errorf("expected superseded close 200, got %.2f", got[0].Close)
	}
	if c.Len() != 1 {
		t.Errorf("expected a single entry, got %d", c.Len())
	}
}

func TestCache_FIFOEviction(t *testing.T) {
	c := NewSeriesCache(3, 5*time.Minute)
	for i := 0; i < 3; i++ {
		c.Put(fmt.Sprintf("S%d", i), testSeries(float64(i+1)))
	}
	if evicted := c.Put("S3", testSeries(4)); !evicted {
		t.Fatal("expected eviction at capacity")
	}
	if _, ok := c.Get("S0"); ok {
		t.Error("oldest insertion should have been evicted")
	}
	for _, key := range []string{"S1", "S2", "S3"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("expected %s to survive eviction", key)
		}
	}
}

func TestCache_ReturnsOwnedCopies(t *testing.T) {
	c := NewSeriesCache(10, 5*time.Minute)
	c.Put("AAPL", testSeries(100))

	got, _ := c.Get("AAPL")
	got[0].Close = 999

	again, _ := c.Get("AAPL")
	if again[0].Close != 100 {
		t.Errorf("caller mutation leaked into the cache: %.2f", again[0].Close)
	}
}

func TestCache_PurgeExpired(t *testing.T) {
	c := NewSeriesCache(10, 5*time.Minute)
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	now := base
	c.now = func() time.Time { return now }

	c.Put("OLD", testSeries(1))
	now = base.Add(3 * time.Minute)
	c.Put("NEW", testSeries(2))
	now = base.Add(6 * time.Minute)

	if removed := c.PurgeExpired(); removed != 1 {
		t.Fatalf("expected 1 entry purged, got %d", removed)
	}
	if _, ok := c.Get("NEW"); !ok {
		t.Error("unexpired entry must survive the purge")
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry after purge, got %d", c.Len())
	}
}

func TestCache_SameSymbolStableWithinTTL(t *testing.T) {
	// Two generator draws differ, but within the TTL the cached draw is
	// returned bar-for-bar.
	g := NewGenerator(rand.NewSource(9))
	c := NewSeriesCache(10, 5*time.Minute)

	first := g.Generate("MSFT")
	c.Put("MSFT", first)

	cached, ok := c.Get("MSFT")
	if !ok {
		t.Fatal("expected hit")
	}
	for i := range first {
		if cached[i] != first[i] {
			t.Fatalf("bar %d differs from cached draw", i)
		}
	}
}
