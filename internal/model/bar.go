package model

import "time"

// Bar represents a single daily OHLCV bar.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Series is an ordered sequence of daily bars, oldest first, strictly
// increasing by date. At most MaxBars most-recent bars are retained.
type Series []Bar

// MaxBars is the maximum number of bars kept in a Series.
const MaxBars = 100

// Closes returns the close prices in series order.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, b := range s {
		closes[i] = b.Close
	}
	return closes
}

// Volumes returns the volumes in series order as floats.
func (s Series) Volumes() []float64 {
	volumes := make([]float64, len(s))
	for i, b := range s {
		volumes[i] = float64(b.Volume)
	}
	return volumes
}

// Last returns the most recent bar. The series must be non-empty.
func (s Series) Last() Bar {
	return s[len(s)-1]
}

// Clone returns an independent copy of the series. The cache hands out
// clones so callers can never mutate a shared entry.
func (s Series) Clone() Series {
	if s == nil {
		return nil
	}
	out := make(Series, len(s))
	copy(out, s)
	return out
}

// Tail returns the most recent n bars (the whole series when shorter).
func (s Series) Tail(n int) Series {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
