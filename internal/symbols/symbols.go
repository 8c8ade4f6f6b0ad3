// Package symbols provides the static symbol reference list consumed by
// autocomplete. The lookup is pure and stateless.
package symbols

import (
	"strings"

	"StockSeer/internal/model"
)

// MaxResults caps a single search response.
const MaxResults = 8

// reference is the built-in symbol list.
var reference = []model.SymbolInfo{
	{Symbol: "AAPL", Name: "Apple Inc.", Market: "NASDAQ"},
	{Symbol: "MSFT", Name: "Microsoft Corporation", Market: "NASDAQ"},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Market: "NASDAQ"},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", Market: "NASDAQ"},
	{Symbol: "META", Name: "Meta Platforms Inc.", Market: "NASDAQ"},
	{Symbol: "NVDA", Name: "NVIDIA Corporation", Market: "NASDAQ"},
	{Symbol: "TSLA", Name: "Tesla Inc.", Market: "NASDAQ"},
	{Symbol: "NFLX", Name: "Netflix Inc.", Market: "NASDAQ"},
	{Symbol: "AMD", Name: "Advanced Micro Devices Inc.", Market: "NASDAQ"},
	{Symbol: "INTC", Name: "Intel Corporation", Market: "NASDAQ"},
	{Symbol: "CSCO", Name: "Cisco Systems Inc.", Market: "NASDAQ"},
	{Symbol: "ADBE", Name: "Adobe Inc.", Market: "NASDAQ"},
	{Symbol: "CRM", Name: "Salesforce Inc.", Market: "NYSE"},
	{Symbol: "ORCL", Name: "Oracle Corporation", Market: "NYSE"},
	{Symbol: "IBM", Name: "International Business Machines", Market: "NYSE"},
	{Symbol: "JPM", Name: "JPMorgan Chase & Co.", Market: "NYSE"},
	{Symbol: "BAC", Name: "Bank of America Corporation", Market: "NYSE"},
	{Symbol: "GS", Name: "Goldman Sachs Group Inc.", Market: "NYSE"},
	{Symbol: "V", Name: "Visa Inc.", Market: "NYSE"},
	{Symbol: "MA", Name: "Mastercard Incorporated", Market: "NYSE"},
	{Symbol: "JNJ", Name: "Johnson & Johnson", Market: "NYSE"},
	{Symbol: "PFE", Name: "Pfizer Inc.", Market: "NYSE"},
	{Symbol: "KO", Name: "Coca-Cola Company", Market: "NYSE"},
	{Symbol: "PEP", Name: "PepsiCo Inc.", Market: "NASDAQ"},
	{Symbol: "WMT", Name: "Walmart Inc.", Market: "NYSE"},
	{Symbol: "DIS", Name: "Walt Disney Company", Market: "NYSE"},
	{Symbol: "XOM", Name: "Exxon Mobil Corporation", Market: "NYSE"},
	{Symbol: "CVX", Name: "Chevron Corporation", Market: "NYSE"},
	{Symbol: "SPY", Name: "SPDR S&P 500 ETF Trust", Market: "NYSEARCA"},
	{Symbol: "QQQ", Name: "Invesco QQQ Trust", Market: "NASDAQ"},
	{Symbol: "DIA", Name: "SPDR Dow Jones Industrial Average ETF", Market: "NYSEARCA"},
	{Symbol: "VTI", Name: "Vanguard Total Stock Market ETF", Market: "NYSEARCA"},
}

// Search returns up to MaxResults entries whose symbol or name contains
// the query, case-insensitively. An empty query yields no results.
func Search(query string) []model.SymbolInfo {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []model.SymbolInfo
	for _, info := range reference {
		if strings.Contains(info.Symbol, q) || strings.Contains(strings.ToUpper(info.Name), q) {
			results = append(results, info)
			if len(results) == MaxResults {
				break
			}
		}
	}
	return results
}
