package collector

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"StockSeer/internal/model"
)

// Base prices for well-known symbols. Unknown symbols start from
// defaultBasePrice.
var basePrices = map[string]float64{
	"AAPL":  178,
	"MSFT":  415,
	"GOOGL": 141,
	"AMZN":  186,
	"META":  504,
	"NVDA":  128,
	"TSLA":  248,
	"NFLX":  612,
	"AMD":   162,
	"INTC":  31,
	"JPM":   198,
	"V":     274,
	"KO":    62,
	"SPY":   545,
	"QQQ":   470,
	"DIA":   392,
	"VTI":   268,
}

const defaultBasePrice = 100.0

// Base daily volumes, again keyed by symbol; unknown symbols use
// defaultBaseVolume.
var baseVolumes = map[string]int64{
	"AAPL": 58_000_000,
	"MSFT": 21_000_000,
	"TSLA": 95_000_000,
	"NVDA": 240_000_000,
	"AMD":  55_000_000,
	"SPY":  48_000_000,
	"QQQ":  38_000_000,
	"KO":   12_000_000,
}

const defaultBaseVolume = 5_000_000

// highBetaSymbols move with a wider daily noise band; indexSymbols with
// a narrower one.
var highBetaSymbols = map[string]bool{
	"TSLA": true, "NVDA": true, "AMD": true, "NFLX": true, "META": true,
}

var indexSymbols = map[string]bool{
	"SPY": true, "QQQ": true, "DIA": true, "VTI": true,
}

func volatilityFor(symbol string) float64 {
	switch {
	case highBetaSymbols[symbol]:
		return 0.035
	case indexSymbols[symbol]:
		return 0.008
	default:
		return 0.02
	}
}

// Generator produces synthetic daily series with a plausible shape:
// a slow sinusoidal long trend, a faster short trend, and bounded
// uniform noise scaled per symbol class. The random source is injected
// so tests can pin the exact sequence.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator creates a generator drawing from the given source.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{
		rng: rand.New(src),
		now: time.Now,
	}
}

// Generate walks forward MaxBars daily steps ending today.
func (g *Generator) Generate(symbol string) model.Series {
	g.mu.Lock()
	defer g.mu.Unlock()

	base, ok := basePrices[symbol]
	if !ok {
		base = defaultBasePrice
	}
	baseVolume, ok := baseVolumes[symbol]
	if !ok {
		baseVolume = defaultBaseVolume
	}
	vol := volatilityFor(symbol)

	// Perturb the starting point so two cache generations for the same
	// symbol do not repeat the identical walk.
	price := base * (1 + (g.rng.Float64()-0.5)*0.1)

	today := g.now().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -(model.MaxBars - 1))

	series := make(model.Series, 0, model.MaxBars)
	for i := 0; i < model.MaxBars; i++ {
		longTrend := math.Sin(2*math.Pi*float64(i)/float64(model.MaxBars)) * 0.004
		shortTrend := math.Sin(2*math.Pi*float64(i)/15) * 0.002
		noise := (g.rng.Float64() - 0.5) * 2 * vol

		price *= 1 + longTrend + shortTrend + noise
		if price < 1 {
			price = 1 // keep prices strictly positive
		}

		open := price * (1 + (g.rng.Float64()-0.5)*0.01)
		closePrice := price * (1 + (g.rng.Float64()-0.5)*0.01)
		high := math.Max(open, closePrice) * (1 + g.rng.Float64()*0.01)
		low := math.Min(open, closePrice) * (1 - g.rng.Float64()*0.01)

		move := math.Abs(closePrice-open) / open
		volume := int64(float64(baseVolume) * (1 + move*10 + g.rng.Float64()*0.5))

		series = append(series, model.Bar{
			Date:   start.AddDate(0, 0, i),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closePrice,
			Volume: volume,
		})
	}
	return series
}
