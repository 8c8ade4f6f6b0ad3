package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"StockSeer/internal/model"
)

// DefaultAlphaVantageURL is the production endpoint.
const DefaultAlphaVantageURL = "https://www.alphavantage.co"

// AlphaVantageFetcher implements Fetcher using the Alpha Vantage
// TIME_SERIES_DAILY API. Requests are rate limited client-side; the free
// tier throttles hard and answers throttled calls with a 200 plus a
// "Note" payload instead of an error status.
type AlphaVantageFetcher struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// NewAlphaVantageFetcher creates a fetcher with the given request timeout.
func NewAlphaVantageFetcher(baseURL, apiKey string, timeout time.Duration) *AlphaVantageFetcher {
	if baseURL == "" {
		baseURL = DefaultAlphaVantageURL
	}
	return &AlphaVantageFetcher{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(12*time.Second), 2), // ~5 req/min free tier
		logger:  log.With().Str("component", "alphavantage").Logger(),
	}
}

func (f *AlphaVantageFetcher) Name() string { return "alphavantage" }

// avDaily is the relevant slice of the TIME_SERIES_DAILY response.
type avDaily struct {
	Series       map[string]avBar `json:"Time Series (Daily)"`
	Note         string           `json:"Note"`
	Information  string           `json:"Information"`
	ErrorMessage string           `json:"Error Message"`
}

type avBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

func (f *AlphaVantageFetcher) FetchDailyBars(ctx context.Context, symbol string, limit int) ([]model.Bar, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	endpoint := fmt.Sprintf("%s/query?function=TIME_SERIES_DAILY&symbol=%s&outputsize=compact&apikey=%s",
		f.baseURL, url.QueryEscape(symbol), url.QueryEscape(f.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch bars: status %d, body: %s", resp.StatusCode, string(body))
	}

	var daily avDaily
	if err := json.Unmarshal(body, &daily); err != nil {
		return nil, fmt.Errorf("decode bars: %w", err)
	}
	if daily.ErrorMessage != "" {
		return nil, fmt.Errorf("api error: %s", daily.ErrorMessage)
	}
	if daily.Note != "" || daily.Information != "" {
		// Rate-limit marker: the API answered but withheld data.
		return nil, fmt.Errorf("api rate limited: %s%s", daily.Note, daily.Information)
	}
	if len(daily.Series) == 0 {
		return nil, fmt.Errorf("no data returned for %s", symbol)
	}

	bars := make([]model.Bar, 0, len(daily.Series))
	for date, v := range daily.Series {
		bar, err := parseAVBar(date, v)
		if err != nil {
			f.logger.Warn().Err(err).Str("date", date).Msg("skipping malformed bar")
			continue
		}
		bars = append(bars, bar)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("no parsable bars for %s", symbol)
	}

	// Ensure chronological order, then trim to the most recent bars.
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	if len(bars) > limit {
		bars = bars[len(bars)-limit:]
	}

	f.logger.Debug().Str("symbol", symbol).Int("count", len(bars)).Msg("fetched bars")
	return bars, nil
}

func parseAVBar(date string, v avBar) (model.Bar, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return model.Bar{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	open, err := strconv.ParseFloat(v.Open, 64)
	if err != nil {
		return model.Bar{}, fmt.Errorf("parse open: %w", err)
	}
	high, err := strconv.ParseFloat(v.High, 64)
	if err != nil {
		return model.Bar{}, fmt.Errorf("parse high: %w", err)
	}
	low, err := strconv.ParseFloat(v.Low, 64)
	if err != nil {
		return model.Bar{}, fmt.Errorf("parse low: %w", err)
	}
	closePrice, err := strconv.ParseFloat(v.Close, 64)
	if err != nil {
		return model.Bar{}, fmt.Errorf("parse close: %w", err)
	}
	volume, err := strconv.ParseInt(v.Volume, 10, 64)
	if err != nil {
		return model.Bar{}, fmt.Errorf("parse volume: %w", err)
	}
	return model.Bar{
		Date:   t,
		Open:   open,
		High:   high,
		Low:    low,
		Close:  closePrice,
		Volume: volume,
	}, nil
}
