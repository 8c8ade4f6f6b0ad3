// Package calculator provides pure, deterministic indicator math over
// price/volume slices. All functions are total over their documented
// input domain: short or degenerate input yields a documented default
// rather than an error.
package calculator

// DefaultRSIPeriod is the conventional RSI lookback.
const DefaultRSIPeriod = 14

// CalculateRSI computes the relative strength index over the most recent
// `period` close-to-close differences, using Wilder-style simple
// averaging of gains and losses.
//
// Fewer than period+1 closes returns the neutral value 50. A zero
// average loss returns 100 (fully overbought, avoids division by zero).
func CalculateRSI(closes []float64, period int) float64 {
	if len(closes) < period+1 {
		return 50.0
	}

	var gains, losses float64
	for i := len(closes) - period; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}
	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
