// Package predictor orchestrates series resolution, feature extraction,
// and scoring into the externally visible prediction.
package predictor

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"StockSeer/internal/collector"
	"StockSeer/internal/metrics"
	"StockSeer/internal/model"
	"StockSeer/internal/strategy"
)

// Same-day accuracy penalty, mirroring the scorer's reliability penalty.
const todayAccuracyFactor = 0.85

// Service is the prediction entry point consumed by the HTTP layer.
type Service struct {
	provider *collector.Provider
	metrics  *metrics.Metrics
	logger   zerolog.Logger

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewService creates a Service. The random source feeds only the
// synthesized accuracy figure and is injected for testability.
func NewService(provider *collector.Provider, m *metrics.Metrics, src rand.Source) *Service {
	return &Service{
		provider: provider,
		metrics:  m,
		logger:   log.With().Str("component", "predictor").Logger(),
		rng:      rand.New(src),
	}
}

// Predict produces the signal for a symbol and forecast horizon. It
// fails only on malformed input or an empty resolved series; live-source
// trouble is absorbed upstream by the provider.
func (s *Service) Predict(ctx context.Context, symbol string, timeframe model.Timeframe) (*model.PredictionResult, error) {
	sym := strings.ToUpper(strings.TrimSpace(symbol))
	if sym == "" {
		return nil, &ValidationError{Field: "symbol", Reason: "must not be empty"}
	}
	if !timeframe.Valid() {
		return nil, &ValidationError{Field: "timeframe", Reason: `must be "today" or "tomorrow"`}
	}

	series := s.provider.GetSeries(ctx, sym)
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}

	features := strategy.ExtractFeatures(series)
	prediction, confidence := strategy.Score(features, timeframe)

	result := &model.PredictionResult{
		Symbol:     sym,
		Prediction: prediction,
		Confidence: confidence,
		Accuracy:   s.accuracy(timeframe),
		Timeframe:  timeframe,
		Features:   features,
	}

	s.metrics.PredictionsTotal.WithLabelValues(string(prediction)).Inc()
	s.logger.Info().
		Str("symbol", sym).
		Str("timeframe", string(timeframe)).
		Str("prediction", string(prediction)).
		Int("confidence", confidence).
		Msg("prediction served")
	return result, nil
}

// accuracy synthesizes a display-only figure in [75, 90). It is
// illustrative, not a measured hit rate; nothing here is backtested.
func (s *Service) accuracy(timeframe model.Timeframe) float64 {
	s.mu.Lock()
	a := 75 + s.rng.Float64()*15
	s.mu.Unlock()

	if timeframe == model.TimeframeToday {
		a *= todayAccuracyFactor
	}
	return math.Round(a*10) / 10
}
