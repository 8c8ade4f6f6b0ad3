package calculator

// CalculateSMA computes the arithmetic mean of the last `period` values.
//
// When the input is shorter than `period` it returns the last available
// value instead of an average, a best-effort fallback for short series.
// An empty input returns 0.
func CalculateSMA(values []float64, period int) float64 {
	if len(values) == 0 {
		return 0
	}
	if len(values) < period {
		return values[len(values)-1]
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period)
}
