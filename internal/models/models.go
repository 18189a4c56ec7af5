// Package models provides domain models for the LockedIn client.
package models

import (
	"github.com/shopspring/decimal"
)

// MarketQuote represents a market snapshot for a single instrument.
// Money fields use decimal.Decimal, which also absorbs numeric strings
// sent by the backend.
type MarketQuote struct {
	Ticker        string          `json:"ticker"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"changePercent"`
	Volume        int64           `json:"volume,omitempty"`
	MarketCap     decimal.Decimal `json:"marketCap,omitempty"`
	Sector        string          `json:"sector,omitempty"`
}

// IndexQuote represents a market index snapshot (S&P 500, NASDAQ, ...).
type IndexQuote struct {
	Ticker        string          `json:"ticker"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"changePercent"`
}

// PriceQuote is the live price lookup result for a ticker.
type PriceQuote struct {
	Ticker        string          `json:"ticker"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"changePercent"`
}

// HistoryPoint is a single point of a historical price series.
type HistoryPoint struct {
	Date   string          `json:"date"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume int64           `json:"volume"`
}

// StockDetail represents the full stock detail payload, optionally
// carrying a six-month historical series.
type StockDetail struct {
	Ticker           string          `json:"ticker"`
	Name             string          `json:"name"`
	Exchange         string          `json:"exchange"`
	Currency         string          `json:"currency"`
	Price            decimal.Decimal `json:"price"`
	Change           decimal.Decimal `json:"change"`
	ChangePercent    decimal.Decimal `json:"changePercent"`
	Open             decimal.Decimal `json:"open"`
	High             decimal.Decimal `json:"high"`
	Low              decimal.Decimal `json:"low"`
	PreviousClose    decimal.Decimal `json:"previousClose"`
	Volume           int64           `json:"volume"`
	AvgVolume        int64           `json:"avgVolume"`
	MarketCap        decimal.Decimal `json:"marketCap"`
	PERatio          decimal.Decimal `json:"peRatio"`
	EPS              decimal.Decimal `json:"eps"`
	DividendYield    decimal.Decimal `json:"dividendYield"`
	FiftyTwoWeekHigh decimal.Decimal `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow  decimal.Decimal `json:"fiftyTwoWeekLow"`
	Sector           string          `json:"sector"`
	Industry         string          `json:"industry"`
	HistoricalData   []HistoryPoint  `json:"historicalData,omitempty"`
}

// DisplayName returns the stock name, falling back to the ticker.
func (s *StockDetail) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Ticker
}

// MutualFund represents a mutual fund scheme.
type MutualFund struct {
	SchemeCode string          `json:"schemeCode"`
	SchemeName string          `json:"schemeName"`
	FundHouse  string          `json:"fundHouse"`
	Category   string          `json:"category"`
	NAV        decimal.Decimal `json:"nav"`
	NAVDate    string          `json:"navDate"`
	Return1Y   decimal.Decimal `json:"return1y"`
	Return3Y   decimal.Decimal `json:"return3y"`
}

// NewsItem represents a news article attached to a ticker or the market.
type NewsItem struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	Link        string `json:"link"`
	Summary     string `json:"summary"`
	PublishedAt string `json:"publishedAt"`
}
