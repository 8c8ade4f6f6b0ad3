package collector

import (
	"context"

	"StockSeer/internal/model"
)

// Fetcher defines the interface for fetching daily market data.
type Fetcher interface {
	// FetchDailyBars returns up to limit daily bars for the symbol,
	// oldest first.
	FetchDailyBars(ctx context.Context, symbol string, limit int) ([]model.Bar, error)
	Name() string
}
