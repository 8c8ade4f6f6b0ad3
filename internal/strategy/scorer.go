package strategy

import (
	"math"

	"StockSeer/internal/model"
)

// Confidence thresholds for acting on a score. Same-day forecasts use a
// lower bar because the score and confidence are already penalized.
const (
	thresholdToday    = 0.5
	thresholdTomorrow = 0.6
)

// Same-day penalty factors.
const (
	todayConfidenceFactor = 0.8
	todayScoreFactor      = 0.9
)

// highVolatilityDamping shrinks the score when the last close sits
// outside the upper Bollinger band.
const highVolatilityDamping = 0.8

// rawScore accumulates the weighted heuristic score and counts how many
// signals contributed to it.
func rawScore(f model.Features) (score float64, signals int) {
	switch {
	case f.RSI < 30:
		score += 2 // oversold
	case f.RSI > 70:
		score -= 2 // overbought
	case f.RSI < 50:
		score++
	default:
		score--
	}
	signals++

	if f.Trend == model.TrendBullish {
		score++
	} else {
		score--
	}
	signals++

	// Rising volume confirms the trend in either direction. Falling
	// volume contributes nothing and is not counted as a signal.
	if f.VolumeTrend == model.VolumeIncreasing {
		switch f.Trend {
		case model.TrendBullish:
			score++
			signals++
		case model.TrendBearish:
			score--
			signals++
		}
	}

	if f.Volatility == model.VolatilityHigh {
		score *= highVolatilityDamping
	}
	return score, signals
}

// Score maps features and a timeframe to a discrete prediction plus an
// integer confidence percentage. It is a pure function: identical input
// always yields the identical output.
func Score(f model.Features, timeframe model.Timeframe) (model.Signal, int) {
	score, signals := rawScore(f)

	confidence := math.Abs(score) / (float64(signals) * 2)
	if confidence > 1 {
		confidence = 1
	}

	threshold := thresholdTomorrow
	if timeframe == model.TimeframeToday {
		confidence *= todayConfidenceFactor
		score *= todayScoreFactor
		threshold = thresholdToday
	}

	prediction := model.SignalHold
	switch {
	case score > 1 && confidence > threshold:
		prediction = model.SignalBuy
	case score < -1 && confidence > threshold:
		prediction = model.SignalSell
	}

	return prediction, int(math.Round(confidence * 100))
}
