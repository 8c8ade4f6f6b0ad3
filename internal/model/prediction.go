package model

// Signal is the discrete trading signal.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

// Timeframe is the forecast horizon.
type Timeframe string

const (
	TimeframeToday    Timeframe = "today"
	TimeframeTomorrow Timeframe = "tomorrow"
)

// Valid reports whether the timeframe is one of the recognized values.
func (t Timeframe) Valid() bool {
	return t == TimeframeToday || t == TimeframeTomorrow
}

// PredictionResult is the externally returned prediction. Accuracy is
// illustrative only; it is synthesized for display, not backtested.
type PredictionResult struct {
	Symbol     string    `json:"symbol"`
	Prediction Signal    `json:"prediction"`
	Confidence int       `json:"confidence"`
	Accuracy   float64   `json:"accuracy"`
	Timeframe  Timeframe `json:"timeframe"`
	Features   Features  `json:"features"`
}
