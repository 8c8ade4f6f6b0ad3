package calculator

import "math"

// DefaultBollingerPeriod is the conventional Bollinger band lookback.
const DefaultBollingerPeriod = 20

// BollingerBands holds the three band values.
type BollingerBands struct {
	Upper  float64
	Middle float64
	Lower  float64
}

// CalculateBollingerBands computes Bollinger bands over the last
// `period` closes: middle = SMA(period), upper/lower = middle ± 2
// population standard deviations. With fewer closes than `period` the
// standard deviation is taken over whatever is available, and the middle
// inherits CalculateSMA's short-input fallback, so upper ≥ middle ≥
// lower always holds.
func CalculateBollingerBands(closes []float64, period int) BollingerBands {
	middle := CalculateSMA(closes, period)

	window := closes
	if len(closes) > period {
		window = closes[len(closes)-period:]
	}
	sd := stddev(window)

	return BollingerBands{
		Upper:  middle + 2*sd,
		Middle: middle,
		Lower:  middle - 2*sd,
	}
}

// stddev is the population standard deviation.
func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	return math.Sqrt(variance / float64(len(values)))
}
