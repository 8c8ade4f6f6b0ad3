package predictor

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"StockSeer/internal/collector"
	"StockSeer/internal/metrics"
	"StockSeer/internal/model"
)

func newTestService() *Service {
	m := metrics.New()
	provider := collector.NewProvider(
		nil, // synthetic-only mode
		collector.NewGenerator(rand.NewSource(11)),
		collector.NewSeriesCache(10, 5*time.Minute),
		m,
	)
	return NewService(provider, m, rand.NewSource(12))
}

func TestPredict_EndToEnd(t *testing.T) {
	s := newTestService()
	result, err := s.Predict(context.Background(), "AAPL", model.TimeframeTomorrow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Symbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %s", result.Symbol)
	}
	if result.Confidence < 0 || result.Confidence > 100 {
		t.Errorf("confidence out of range: %d", result.Confidence)
	}
	if result.Accuracy < 0 || result.Accuracy > 100 {
		t.Errorf("accuracy out of range: %.2f", result.Accuracy)
	}
	if result.Features.RSI < 0 || result.Features.RSI > 100 {
		t.Errorf("RSI out of range: %.2f", result.Features.RSI)
	}
	switch result.Prediction {
	case model.SignalBuy, model.SignalSell, model.SignalHold:
	default:
		t.Errorf("unexpected prediction %q", result.Prediction)
	}
}

func TestPredict_NormalizesSymbol(t *testing.T) {
	s := newTestService()
	result, err := s.Predict(context.Background(), "  aapl ", model.TimeframeTomorrow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Symbol != "AAPL" {
		t.Errorf("expected normalized symbol AAPL, got %q", result.Symbol)
	}
}

func TestPredict_ValidationErrors(t *testing.T) {
	s := newTestService()
	tests := []struct {
		name      string
		symbol    string
		timeframe model.Timeframe
	}{
		{"empty symbol", "", model.TimeframeTomorrow},
		{"blank symbol", "   ", model.TimeframeTomorrow},
		{"bad timeframe", "AAPL", model.Timeframe("nextweek")},
		{"empty timeframe", "AAPL", model.Timeframe("")},
	}
	for _, tt := range tests {
		_, err := s.Predict(context.Background(), tt.symbol, tt.timeframe)
		if err == nil {
			t.Errorf("%s: expected validation error", tt.name)
			continue
		}
		if !IsValidationError(err) {
			t.Errorf("%s: expected ValidationError, got %T: %v", tt.name, err, err)
		}
	}
}

func TestPredict_AccuracyRange(t *testing.T) {
	s := newTestService()
	for i := 0; i < 50; i++ {
		tomorrow := s.accuracy(model.TimeframeTomorrow)
		if tomorrow < 75 || tomorrow > 90 {
			t.Fatalf("tomorrow accuracy outside 75-90: %.2f", tomorrow)
		}
		today := s.accuracy(model.TimeframeToday)
		if today < 63.7 || today > 76.5 {
			t.Fatalf("today accuracy outside penalized range: %.2f", today)
		}
	}
}

func TestPredict_DeterministicWithinCacheTTL(t *testing.T) {
	s := newTestService()
	first, err := s.Predict(context.Background(), "MSFT", model.TimeframeTomorrow)
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Predict(context.Background(), "MSFT", model.TimeframeTomorrow)
	if err != nil {
		t.Fatal(err)
	}
	// Same cached series, pure scorer: the signal must not move.
	if first.Prediction != second.Prediction || first.Confidence != second.Confidence {
		t.Errorf("prediction drifted within the cache TTL: (%s,%d) vs (%s,%d)",
			first.Prediction, first.Confidence, second.Prediction, second.Confidence)
	}
	if first.Features != second.Features {
		t.Errorf("features drifted within the cache TTL: %+v vs %+v", first.Features, second.Features)
	}
}

func TestIsValidationError(t *testing.T) {
	if IsValidationError(ErrEmptySeries) {
		t.Error("ErrEmptySeries must not classify as a validation error")
	}
	if !IsValidationError(&ValidationError{Field: "symbol", Reason: "x"}) {
		t.Error("expected ValidationError to classify as one")
	}
	if IsValidationError(errors.New("other")) {
		t.Error("arbitrary errors must not classify as validation errors")
	}
}
