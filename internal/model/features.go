package model

// Trend is the moving-average trend direction.
type Trend string

const (
	TrendBullish Trend = "BULLISH"
	TrendBearish Trend = "BEARISH"
)

// Volatility is the Bollinger-band volatility regime.
type Volatility string

const (
	VolatilityLow    Volatility = "LOW"
	VolatilityNormal Volatility = "NORMAL"
	VolatilityHigh   Volatility = "HIGH"
)

// VolumeTrend is the short-vs-prior volume average direction.
type VolumeTrend string

const (
	VolumeIncreasing VolumeTrend = "INCREASING"
	VolumeDecreasing VolumeTrend = "DECREASING"
)

// Features holds the classified indicator values extracted from a series.
// They are derived per request and never cached.
type Features struct {
	RSI         float64     `json:"rsi"`
	Trend       Trend       `json:"trend"`
	Volatility  Volatility  `json:"volatility"`
	VolumeTrend VolumeTrend `json:"volumeTrend"`
}
