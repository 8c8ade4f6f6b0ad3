// Package strategy turns a price series into classified features and a
// discrete trading signal.
package strategy

import (
	"StockSeer/internal/calculator"
	"StockSeer/internal/model"
)

const (
	shortTrendPeriod = 10
	longTrendPeriod  = 50

	recentVolumePeriod = 5
	priorVolumePeriod  = 15
)

// ExtractFeatures derives the classified feature set from a series.
// The series must have at least one bar; indicators degrade to their
// documented defaults below their natural lookback windows.
func ExtractFeatures(series model.Series) model.Features {
	closes := series.Closes()
	volumes := series.Volumes()

	f := model.Features{
		RSI: calculator.CalculateRSI(closes, calculator.DefaultRSIPeriod),
	}

	if calculator.CalculateSMA(closes, shortTrendPeriod) > calculator.CalculateSMA(closes, longTrendPeriod) {
		f.Trend = model.TrendBullish
	} else {
		f.Trend = model.TrendBearish
	}

	bands := calculator.CalculateBollingerBands(closes, calculator.DefaultBollingerPeriod)
	last := closes[len(closes)-1]
	switch {
	case last > bands.Upper:
		f.Volatility = model.VolatilityHigh
	case last < bands.Lower:
		f.Volatility = model.VolatilityLow
	default:
		f.Volatility = model.VolatilityNormal
	}

	f.VolumeTrend = classifyVolumeTrend(volumes)
	return f
}

// classifyVolumeTrend compares the average of the last 5 volumes against
// the average of the 15 days preceding them.
func classifyVolumeTrend(volumes []float64) model.VolumeTrend {
	recent := tail(volumes, recentVolumePeriod)

	priorEnd := len(volumes) - recentVolumePeriod
	if priorEnd < 0 {
		priorEnd = 0
	}
	priorStart := priorEnd - priorVolumePeriod
	if priorStart < 0 {
		priorStart = 0
	}
	prior := volumes[priorStart:priorEnd]

	if calculator.CalculateSMA(recent, recentVolumePeriod) > calculator.CalculateSMA(prior, priorVolumePeriod) {
		return model.VolumeIncreasing
	}
	return model.VolumeDecreasing
}

func tail(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}
